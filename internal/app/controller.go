package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"pump_base/internal/catalog"
	"pump_base/internal/common"
	"pump_base/internal/create"
	"pump_base/internal/delay"
	"pump_base/internal/generator"
	"pump_base/internal/model"
	"pump_base/internal/queue"
	"pump_base/internal/view"
)

var (
	ErrSubmitting = errors.New("代币正在创建中")
	ErrFormClosed = errors.New("创建表单未打开")
	ErrNotLoaded  = errors.New("代币列表尚未加载")
)

// Options 控制器参数
type Options struct {
	LoadDelay   time.Duration    // 首次加载的模拟延时
	SubmitDelay time.Duration    // 提交表单的模拟延时
	QueueSize   int              // 事件队列容量
	Now         func() time.Time // 当前时间，测试可替换
}

// DefaultOptions 返回与网页版一致的延时
func DefaultOptions() Options {
	return Options{
		LoadDelay:   common.DEFAULT_LOAD_DELAY,
		SubmitDelay: common.DEFAULT_SUBMIT_DELAY,
		QueueSize:   16,
		Now:         time.Now,
	}
}

// State 界面状态，只由持有控制器的一方修改
type State struct {
	Query      string
	SortBy     common.SortOption
	Loading    bool
	ShowCreate bool
	Submitting bool
	Wallet     model.Wallet
}

// Snapshot 一次渲染所需的全部数据
type Snapshot struct {
	State
	Tokens    []model.Token // 过滤排序后的展示列表
	Total     int           // 列表中的代币总数
	Empty     bool          // 加载完成但没有匹配的代币
	CanSubmit bool
	Draft     common.CreateTokenReq
}

// Controller 持有全部应用状态。除延时任务外没有其他协程，
// 延时任务只向事件队列发送消息，由持有者调用 Apply 处理。
type Controller struct {
	store      *catalog.Store
	gen        generator.Generator
	form       create.Form
	state      State
	opts       Options
	scheduler  *delay.Scheduler
	events     *queue.MessageQueue
	cancelFunc context.CancelFunc

	started    bool
	submitTask *delay.Task
	submitSeq  uint64
}

// 创建新的控制器
func NewController(opts Options, gen generator.Generator) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = 16
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		store:      catalog.NewStore(),
		gen:        gen,
		opts:       opts,
		state:      State{SortBy: common.DEFAULT_SORT, Loading: true},
		scheduler:  delay.NewScheduler(ctx),
		events:     queue.NewMessageQueue("ui_events", opts.QueueSize),
		cancelFunc: cancel,
	}
}

// Start 安排首次加载，重复调用无效
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true
	c.scheduler.After(c.opts.LoadDelay, func(ctx context.Context) {
		c.send(ctx, model.NewLoadedMessage())
	})
	common.Log.WithField("delay", c.opts.LoadDelay).Info("开始加载代币列表")
}

func (c *Controller) send(ctx context.Context, msg *model.QueueMessage) {
	if err := c.events.SendMessage(ctx, msg); err != nil && !errors.Is(err, context.Canceled) {
		common.Log.WithError(err).Warnf("事件 %s 发送失败", msg.Type)
	}
}

// Events 延时任务完成后产生的事件
func (c *Controller) Events() <-chan *model.QueueMessage {
	return c.events.Messages()
}

// Done 控制器关闭后关闭
func (c *Controller) Done() <-chan struct{} {
	return c.events.Done()
}

// Await 等待下一个事件并处理
func (c *Controller) Await(ctx context.Context) error {
	select {
	case msg := <-c.events.Messages():
		return c.Apply(msg)
	case <-c.events.Done():
		return queue.ErrQueueStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Apply 处理事件，必须由状态持有者调用
func (c *Controller) Apply(msg *model.QueueMessage) error {
	if msg == nil {
		return nil
	}
	switch msg.Type {
	case model.MessageTypeLoaded:
		tokens := c.store.Initialize(c.gen, c.opts.Now())
		c.state.Loading = false
		common.Log.WithField("count", len(tokens)).Info("代币列表加载完成")
		return nil

	case model.MessageTypeCreated:
		if !c.state.Submitting || msg.Seq != c.submitSeq || msg.Draft == nil {
			common.Log.WithField("seq", msg.Seq).Debug("忽略已取消的创建事件")
			return nil
		}
		token := create.NewToken(*msg.Draft, c.gen, c.opts.Now())
		c.state.Submitting = false
		c.submitTask = nil
		if err := c.store.Prepend(token); err != nil {
			return fmt.Errorf("添加代币失败: %w", err)
		}
		c.form.Reset()
		c.state.ShowCreate = false
		common.Log.WithFields(logrus.Fields{
			"id":      token.ID,
			"ticker":  token.Ticker,
			"creator": token.Creator,
		}).Info("代币已创建")
		common.Log.Debug(model.FormatToken(&token))
		return nil
	}
	return fmt.Errorf("未知的事件类型: %d", msg.Type)
}

// SetQuery 更新搜索词
func (c *Controller) SetQuery(query string) {
	c.state.Query = query
}

// SetSort 更新排序方式
func (c *Controller) SetSort(sortBy common.SortOption) error {
	opt, err := common.ParseSortOption(string(sortBy))
	if err != nil {
		return err
	}
	c.state.SortBy = opt
	return nil
}

// OpenCreate 打开创建表单
func (c *Controller) OpenCreate() error {
	if c.state.Loading {
		return ErrNotLoaded
	}
	c.state.ShowCreate = true
	return nil
}

// CloseCreate 关闭表单，未完成的提交会被取消
func (c *Controller) CloseCreate() {
	if c.submitTask != nil {
		c.submitTask.Cancel()
		c.submitTask = nil
		common.Log.WithField("seq", c.submitSeq).Info("已取消未完成的创建")
	}
	c.state.Submitting = false
	c.state.ShowCreate = false
	c.form.Reset()
}

// Form 返回表单草稿供界面编辑
func (c *Controller) Form() *create.Form {
	return &c.form
}

// Submit 校验表单并开始模拟提交。校验失败时表单保持打开，不添加代币。
func (c *Controller) Submit() error {
	if !c.state.ShowCreate {
		return ErrFormClosed
	}
	if c.state.Submitting {
		return ErrSubmitting
	}
	if err := c.form.Validate(); err != nil {
		return err
	}

	c.submitSeq++
	seq := c.submitSeq
	draft := c.form.Draft()
	c.state.Submitting = true
	c.submitTask = c.scheduler.After(c.opts.SubmitDelay, func(ctx context.Context) {
		c.send(ctx, model.NewCreatedMessage(draft, seq))
	})
	common.Log.WithFields(logrus.Fields{
		"seq":    seq,
		"ticker": draft.Ticker,
	}).Info("提交创建代币")
	return nil
}

// ConnectWallet 连接模拟钱包，已连接时保持原地址
func (c *Controller) ConnectWallet() model.Wallet {
	if !c.state.Wallet.Connected {
		c.state.Wallet.Connect(c.gen.CreatorAddress())
		common.Log.WithField("address", c.state.Wallet.Address).Info("钱包已连接")
	}
	return c.state.Wallet
}

func (c *Controller) DisconnectWallet() model.Wallet {
	if c.state.Wallet.Connected {
		c.state.Wallet.Disconnect()
		common.Log.Info("钱包已断开")
	}
	return c.state.Wallet
}

// ToggleWallet 在连接与断开之间切换
func (c *Controller) ToggleWallet() model.Wallet {
	if c.state.Wallet.Connected {
		return c.DisconnectWallet()
	}
	return c.ConnectWallet()
}

// State 返回当前状态的副本
func (c *Controller) State() State {
	return c.state
}

// View 计算当前展示内容，每次调用都重新过滤排序
func (c *Controller) View() Snapshot {
	snap := Snapshot{
		State:     c.state,
		Total:     c.store.Len(),
		CanSubmit: !c.state.Submitting && c.form.CanSubmit(),
		Draft:     c.form.Draft(),
	}
	if c.state.Loading {
		return snap
	}
	snap.Tokens = view.Project(c.store.All(), c.state.Query, c.state.SortBy)
	snap.Empty = len(snap.Tokens) == 0
	return snap
}

// Close 取消所有延时任务并释放资源
func (c *Controller) Close() {
	c.cancelFunc()
	c.scheduler.Close()
	c.events.Stop()
	common.Log.Info("控制器已关闭")
}
