package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"pump_base/internal/common"
)

var ErrInvalidToken = errors.New("代币数据不合法")

// Token 表示列表中的一个代币
type Token struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Ticker      string    `json:"ticker"`
	Image       string    `json:"image"`
	Creator     string    `json:"creator"`
	MarketCap   float64   `json:"marketCap"`
	Replies     int       `json:"replies"`
	Progress    int       `json:"progress"` // 联合曲线进度 0-100
	CreatedAt   time.Time `json:"createdAt"`
	Description string    `json:"description"`
}

// Validate 检查代币字段是否满足约束
func (t *Token) Validate() error {
	switch {
	case t.ID == "":
		return fmt.Errorf("%w: id为空", ErrInvalidToken)
	case t.Ticker != strings.ToUpper(t.Ticker):
		return fmt.Errorf("%w: ticker %q 不是大写", ErrInvalidToken, t.Ticker)
	case utf8.RuneCountInString(t.Ticker) > common.MAX_TICKER_LEN:
		return fmt.Errorf("%w: ticker %q 超过%d个字符", ErrInvalidToken, t.Ticker, common.MAX_TICKER_LEN)
	case t.Progress < 0 || t.Progress > common.MAX_PROGRESS:
		return fmt.Errorf("%w: progress %d 超出范围", ErrInvalidToken, t.Progress)
	case t.MarketCap < 0:
		return fmt.Errorf("%w: marketCap 为负数", ErrInvalidToken)
	case t.Replies < 0:
		return fmt.Errorf("%w: replies 为负数", ErrInvalidToken)
	}
	return nil
}
