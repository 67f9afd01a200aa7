package delay

import (
	"context"
	"sync"
	"time"
)

// Scheduler 管理模拟延时任务，Close 时取消所有未完成任务并等待其退出
type Scheduler struct {
	ctx        context.Context
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
	mutex      sync.Mutex
	closed     bool
}

// Task 单个延时任务
type Task struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(parent context.Context) *Scheduler {
	ctx, cancel := context.WithCancel(parent)
	return &Scheduler{
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// After 在 d 之后执行 fn。任务被取消时 fn 不会执行。
// fn 收到的 ctx 在任务取消或调度器关闭时失效。
func (s *Scheduler) After(d time.Duration, fn func(ctx context.Context)) *Task {
	ctx, cancel := context.WithCancel(s.ctx)
	task := &Task{cancel: cancel, done: make(chan struct{})}

	s.mutex.Lock()
	if s.closed {
		s.mutex.Unlock()
		cancel()
		close(task.done)
		return task
	}
	s.wg.Add(1)
	s.mutex.Unlock()

	go func() {
		defer s.wg.Done()
		defer close(task.done)
		defer cancel()

		timer := time.NewTimer(d)
		defer timer.Stop()

		select {
		case <-timer.C:
			// 到期与取消同时发生时以取消为准
			if ctx.Err() != nil {
				return
			}
			fn(ctx)
		case <-ctx.Done():
		}
	}()
	return task
}

// Cancel 取消任务，可重复调用
func (t *Task) Cancel() {
	t.cancel()
}

// Done 任务结束（执行完或被取消）后关闭
func (t *Task) Done() <-chan struct{} {
	return t.done
}

// Close 取消所有任务并等待协程退出
func (s *Scheduler) Close() {
	s.mutex.Lock()
	s.closed = true
	s.mutex.Unlock()

	s.cancelFunc()
	s.wg.Wait()
}
