package filters

import "pump_base/internal/model"

type Filter interface {
	// Match 判断代币是否命中查询，query 已转为小写且非空
	Match(token *model.Token, query string) bool
	Name() string
	Type() FilterType
}

type FilterType int

const (
	NameContains   FilterType = 1
	TickerContains FilterType = 2
)
