package model

import (
	"time"

	"pump_base/internal/common"
)

// 消息类型
type MessageType int

const (
	MessageTypeLoaded  MessageType = iota // 首次加载完成
	MessageTypeCreated                    // 代币创建完成
)

func (m MessageType) String() string {
	switch m {
	case MessageTypeLoaded:
		return "loaded"
	case MessageTypeCreated:
		return "created"
	}
	return "unknown"
}

// 队列消息
type QueueMessage struct {
	Type      MessageType            // 消息类型
	Draft     *common.CreateTokenReq // 创建表单快照，仅 MessageTypeCreated 使用
	Seq       uint64                 // 提交序号，用于丢弃已取消的提交
	Timestamp time.Time              // 时间戳
}

// 创建加载完成消息
func NewLoadedMessage() *QueueMessage {
	return &QueueMessage{
		Type:      MessageTypeLoaded,
		Timestamp: time.Now(),
	}
}

// 创建代币完成消息
func NewCreatedMessage(draft common.CreateTokenReq, seq uint64) *QueueMessage {
	return &QueueMessage{
		Type:      MessageTypeCreated,
		Draft:     &draft,
		Seq:       seq,
		Timestamp: time.Now(),
	}
}
