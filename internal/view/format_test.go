package view

import (
	"testing"
	"time"

	"pump_base/internal/common"
)

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0"},
		{999, "$999"},
		{1000, "$1.0K"},
		{12345, "$12.3K"},
		{500999, "$501.0K"},
		{1000000, "$1.0M"},
		{2400000, "$2.4M"},
	}
	for _, tt := range tests {
		if got := FormatMarketCap(tt.value); got != tt.want {
			t.Errorf("FormatMarketCap(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "0s ago"},
		{59 * time.Second, "59s ago"},
		{90 * time.Second, "1m ago"},
		{2 * time.Hour, "2h ago"},
		{50 * time.Hour, "2d ago"},
		{-time.Minute, "0s ago"},
	}
	for _, tt := range tests {
		if got := TimeAgo(now.Add(-tt.ago), now); got != tt.want {
			t.Errorf("TimeAgo(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}

func TestSortLabel(t *testing.T) {
	want := map[common.SortOption]string{
		common.SORT_BUMP:       "bump",
		common.SORT_CREATION:   "creation",
		common.SORT_LAST_REPLY: "replies",
		common.SORT_MARKET_CAP: "mcap",
	}
	for opt, label := range want {
		if got := SortLabel(opt); got != label {
			t.Errorf("SortLabel(%s) = %q, want %q", opt, got, label)
		}
	}
}
