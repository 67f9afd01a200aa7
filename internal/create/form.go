package create

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"pump_base/internal/common"
	"pump_base/internal/generator"
	"pump_base/internal/model"
)

var ErrMissingField = errors.New("必填字段为空")

// Form 创建代币的表单草稿
type Form struct {
	name        string
	ticker      string
	description string
}

func (f *Form) SetName(name string) {
	f.name = name
}

// SetTicker 输入时即转为大写并截断到8个字符
func (f *Form) SetTicker(ticker string) {
	f.ticker = NormalizeTicker(ticker)
}

func (f *Form) SetDescription(description string) {
	f.description = description
}

func (f *Form) Name() string        { return f.name }
func (f *Form) Ticker() string      { return f.ticker }
func (f *Form) Description() string { return f.description }

// CanSubmit 三个字段都非空时才允许提交
func (f *Form) CanSubmit() bool {
	return f.Validate() == nil
}

// Validate 返回缺失的字段
func (f *Form) Validate() error {
	var missing []string
	if f.name == "" {
		missing = append(missing, "name")
	}
	if f.ticker == "" {
		missing = append(missing, "ticker")
	}
	if f.description == "" {
		missing = append(missing, "description")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return nil
}

// Draft 返回当前表单内容的快照
func (f *Form) Draft() common.CreateTokenReq {
	return common.CreateTokenReq{
		Name:        f.name,
		Ticker:      f.ticker,
		Description: f.description,
	}
}

func (f *Form) Reset() {
	*f = Form{}
}

// NormalizeTicker 转为大写并保留前8个字符
func NormalizeTicker(ticker string) string {
	ticker = strings.ToUpper(ticker)
	if utf8.RuneCountInString(ticker) <= common.MAX_TICKER_LEN {
		return ticker
	}
	return string([]rune(ticker)[:common.MAX_TICKER_LEN])
}

// NewToken 根据表单内容构造新代币，统计数据全部为0
func NewToken(req common.CreateTokenReq, gen generator.Generator, now time.Time) model.Token {
	ticker := NormalizeTicker(req.Ticker)
	return model.Token{
		ID:          "token-" + uuid.NewString(),
		Name:        req.Name,
		Ticker:      ticker,
		Image:       common.ImageURI(ticker),
		Creator:     gen.CreatorAddress(),
		MarketCap:   0,
		Replies:     0,
		Progress:    0,
		CreatedAt:   now,
		Description: req.Description,
	}
}
