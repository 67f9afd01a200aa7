package common

import (
	"errors"
	"fmt"
	"strings"
)

// 排序方式
type SortOption string

// 地址风格
type Chain string

const (
	SORT_BUMP       SortOption = "bump"      // 按曲线进度
	SORT_CREATION   SortOption = "creation"  // 按创建时间
	SORT_LAST_REPLY SortOption = "lastReply" // 按回复数
	SORT_MARKET_CAP SortOption = "marketCap" // 按市值
)

const (
	CHAIN_BASE   Chain = "base"
	CHAIN_SOLANA Chain = "solana"
)

const DEFAULT_SORT = SORT_BUMP

var (
	ErrUnknownSortOption = errors.New("未知的排序方式")
	ErrUnknownChain      = errors.New("未知的链类型")
)

// SortOptions 按界面显示顺序返回所有排序方式
func SortOptions() []SortOption {
	return []SortOption{SORT_BUMP, SORT_CREATION, SORT_LAST_REPLY, SORT_MARKET_CAP}
}

// ParseSortOption 解析排序方式，空字符串返回默认值
func ParseSortOption(s string) (SortOption, error) {
	if strings.TrimSpace(s) == "" {
		return DEFAULT_SORT, nil
	}
	for _, opt := range SortOptions() {
		if strings.EqualFold(string(opt), s) {
			return opt, nil
		}
	}
	// 兼容界面上的短标签
	switch strings.ToLower(s) {
	case "mcap":
		return SORT_MARKET_CAP, nil
	case "replies":
		return SORT_LAST_REPLY, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownSortOption, s)
}

// ParseChain 解析地址风格
func ParseChain(s string) (Chain, error) {
	switch Chain(strings.ToLower(strings.TrimSpace(s))) {
	case "", CHAIN_BASE:
		return CHAIN_BASE, nil
	case CHAIN_SOLANA:
		return CHAIN_SOLANA, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownChain, s)
}
