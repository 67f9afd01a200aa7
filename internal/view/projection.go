package view

import (
	"sort"
	"strings"

	"pump_base/internal/common"
	"pump_base/internal/model"
	"pump_base/internal/view/filters"
)

// Config 搜索过滤器配置，任一过滤器命中即保留
type Config struct {
	Filters []filters.Filter
}

// DefaultConfig 返回默认配置：按名称或ticker搜索
func DefaultConfig() *Config {
	return &Config{
		Filters: []filters.Filter{
			filters.NewNameFilter(),
			filters.NewTickerFilter(),
		},
	}
}

var defaultConfig = DefaultConfig()

// Matches 判断代币是否命中查询，空查询命中所有代币
func Matches(token *model.Token, query string, config *Config) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, filter := range config.Filters {
		if filter.Match(token, q) {
			return true
		}
	}
	return false
}

// Project 过滤并排序得到展示列表，不修改传入的切片
func Project(tokens []model.Token, query string, sortBy common.SortOption) []model.Token {
	return ProjectWith(defaultConfig, tokens, query, sortBy)
}

func ProjectWith(config *Config, tokens []model.Token, query string, sortBy common.SortOption) []model.Token {
	out := make([]model.Token, 0, len(tokens))
	for i := range tokens {
		if Matches(&tokens[i], query, config) {
			out = append(out, tokens[i])
		}
	}

	less := lessFunc(sortBy)
	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out
}

// lessFunc 所有排序都是降序，值相同时按id升序
func lessFunc(sortBy common.SortOption) func(a, b *model.Token) bool {
	var cmp func(a, b *model.Token) int
	switch sortBy {
	case common.SORT_MARKET_CAP:
		cmp = func(a, b *model.Token) int { return compareFloat(b.MarketCap, a.MarketCap) }
	case common.SORT_CREATION:
		cmp = func(a, b *model.Token) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case common.SORT_LAST_REPLY:
		cmp = func(a, b *model.Token) int { return b.Replies - a.Replies }
	default:
		cmp = func(a, b *model.Token) int { return b.Progress - a.Progress }
	}
	return func(a, b *model.Token) bool {
		if c := cmp(a, b); c != 0 {
			return c < 0
		}
		return a.ID < b.ID
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
