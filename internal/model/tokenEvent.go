package model

import (
	"fmt"
	"time"
)

// FormatToken 格式化显示代币信息，用于日志
func FormatToken(t *Token) string {
	return fmt.Sprintf(`
		==== 代币信息 ====
		id: %s
		name: %s
		ticker: %s
		creator: %s
		marketCap: %.0f
		replies: %d
		progress: %d
		createdAt: %s
		image: %s
		description: %s
		==================
`,
		t.ID,
		t.Name,
		t.Ticker,
		t.Creator,
		t.MarketCap,
		t.Replies,
		t.Progress,
		t.CreatedAt.Format(time.RFC3339),
		t.Image,
		t.Description,
	)
}
