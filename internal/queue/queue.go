package queue

import (
	"context"
	"errors"
	"sync"

	"pump_base/internal/common"
	"pump_base/internal/model"
)

var ErrQueueStopped = errors.New("队列已停止")

// 消息队列，把延时任务的结果交回给唯一的状态持有者
type MessageQueue struct {
	name     string                   // 队列名称
	messages chan *model.QueueMessage // 消息通道
	stopChan chan struct{}
	once     sync.Once
}

// 创建新消息队列
func NewMessageQueue(name string, bufferSize int) *MessageQueue {
	return &MessageQueue{
		name:     name,
		messages: make(chan *model.QueueMessage, bufferSize),
		stopChan: make(chan struct{}),
	}
}

// 发送消息到队列，阻塞直到入队、ctx取消或队列停止
func (q *MessageQueue) SendMessage(ctx context.Context, msg *model.QueueMessage) error {
	select {
	case <-q.stopChan:
		return ErrQueueStopped
	default:
	}

	select {
	case q.messages <- msg:
		common.Log.Debugf("消息已发送到队列 %s: type=%s", q.name, msg.Type)
		return nil
	case <-q.stopChan:
		return ErrQueueStopped
	case <-ctx.Done():
		common.Log.Warnf("队列 %s 发送取消: type=%s, err=%v", q.name, msg.Type, ctx.Err())
		return ctx.Err()
	}
}

// Messages 返回只读消息通道
func (q *MessageQueue) Messages() <-chan *model.QueueMessage {
	return q.messages
}

// Done 队列停止后关闭
func (q *MessageQueue) Done() <-chan struct{} {
	return q.stopChan
}

// 停止队列，可重复调用
func (q *MessageQueue) Stop() {
	q.once.Do(func() {
		close(q.stopChan)
		common.Log.Infof("队列 %s 已停止", q.name)
	})
}
