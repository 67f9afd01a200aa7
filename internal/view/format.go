package view

import (
	"fmt"
	"time"

	"pump_base/internal/common"
)

// FormatMarketCap 市值显示为 $1.2M / $12.3K / $999
func FormatMarketCap(value float64) string {
	switch {
	case value >= 1000000:
		return fmt.Sprintf("$%.1fM", value/1000000)
	case value >= 1000:
		return fmt.Sprintf("$%.1fK", value/1000)
	}
	return fmt.Sprintf("$%.0f", value)
}

// TimeAgo 相对时间，例如 "5m ago"
func TimeAgo(t time.Time, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)
	if seconds < 0 {
		seconds = 0
	}
	switch {
	case seconds < 60:
		return fmt.Sprintf("%ds ago", seconds)
	case seconds < 3600:
		return fmt.Sprintf("%dm ago", seconds/60)
	case seconds < 86400:
		return fmt.Sprintf("%dh ago", seconds/3600)
	}
	return fmt.Sprintf("%dd ago", seconds/86400)
}

// SortLabel 排序按钮上的文字
func SortLabel(opt common.SortOption) string {
	switch opt {
	case common.SORT_MARKET_CAP:
		return "mcap"
	case common.SORT_LAST_REPLY:
		return "replies"
	}
	return string(opt)
}
