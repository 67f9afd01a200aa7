package filters

import (
	"pump_base/internal/model"
	"strings"
)

type TickerFilter struct{}

func NewTickerFilter() *TickerFilter {
	return &TickerFilter{}
}

func (f *TickerFilter) Name() string {
	return "tickerFilter"
}
func (f *TickerFilter) Type() FilterType {
	return TickerContains
}

// Match ticker包含查询串（不区分大小写）
func (f *TickerFilter) Match(token *model.Token, query string) bool {
	if token == nil {
		return false
	}
	return strings.Contains(strings.ToLower(token.Ticker), query)
}
