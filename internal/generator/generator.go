package generator

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"

	"pump_base/internal/common"
)

const (
	minMarketCap  = 1000
	marketCapSpan = 500000
	maxReplies    = 150
	maxAge        = 3 * 24 * time.Hour
)

// Generator 所有随机数据的唯一来源，测试可以注入固定实现
type Generator interface {
	CreatorAddress() string
	MarketCap() float64
	Replies() int
	Progress() int
	Age() time.Duration
}

// Random 基于 math/rand 的默认实现
type Random struct {
	chain common.Chain
	rnd   *rand.Rand
	mutex sync.Mutex
}

// NewRandom 以当前时间为种子创建生成器
func NewRandom(chain common.Chain) *Random {
	return NewSeeded(time.Now().UnixNano(), chain)
}

// NewSeeded 创建固定种子的生成器，相同种子产生相同序列
func NewSeeded(seed int64, chain common.Chain) *Random {
	if chain == "" {
		chain = common.CHAIN_BASE
	}
	return &Random{
		chain: chain,
		rnd:   rand.New(rand.NewSource(seed)),
	}
}

// CreatorAddress 生成一个看起来像链上地址的字符串，与任何密钥无关
func (r *Random) CreatorAddress() string {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if r.chain == common.CHAIN_SOLANA {
		var b [32]byte
		r.rnd.Read(b[:])
		return ShortenAddress(solana.PublicKeyFromBytes(b[:]).String())
	}
	return fmt.Sprintf("0x%08x...%04x", r.rnd.Uint32(), r.rnd.Intn(0x10000))
}

// MarketCap 返回 [1000, 501000) 内的整数市值
func (r *Random) MarketCap() float64 {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return float64(r.rnd.Intn(marketCapSpan) + minMarketCap)
}

func (r *Random) Replies() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.rnd.Intn(maxReplies)
}

// Progress 返回 [0, 100) 内的曲线进度
func (r *Random) Progress() int {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.rnd.Intn(common.MAX_PROGRESS)
}

// Age 返回过去三天内的随机时长
func (r *Random) Age() time.Duration {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return time.Duration(r.rnd.Int63n(int64(maxAge)))
}

// ShortenAddress 保留地址首尾各4个字符
func ShortenAddress(addr string) string {
	if len(addr) <= 11 {
		return addr
	}
	return addr[:4] + "..." + addr[len(addr)-4:]
}
