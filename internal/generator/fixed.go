package generator

import "time"

// Fixed 每次返回相同数值的生成器
type Fixed struct {
	Address    string
	Cap        float64
	ReplyCount int
	CurveStep  int
	Elapsed    time.Duration
}

func (f *Fixed) CreatorAddress() string { return f.Address }
func (f *Fixed) MarketCap() float64     { return f.Cap }
func (f *Fixed) Replies() int           { return f.ReplyCount }
func (f *Fixed) Progress() int          { return f.CurveStep }
func (f *Fixed) Age() time.Duration     { return f.Elapsed }
