package filters

import (
	"pump_base/internal/model"
	"strings"
)

type NameFilter struct{}

func NewNameFilter() *NameFilter {
	return &NameFilter{}
}

func (f *NameFilter) Name() string {
	return "nameFilter"
}
func (f *NameFilter) Type() FilterType {
	return NameContains
}

// Match 名称包含查询串（不区分大小写）
func (f *NameFilter) Match(token *model.Token, query string) bool {
	if token == nil {
		return false
	}
	return strings.Contains(strings.ToLower(token.Name), query)
}
