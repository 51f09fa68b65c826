package app

import (
	"context"
	"sync"
	"time"
)

// ReplyScheduler runs at most one pending assistant reply per chat.
// Scheduling for a chat that already has a pending reply supersedes it,
// and Cancel drops the pending reply when its chat is deleted, so a late
// timer can never write into a chat that no longer wants it.
type ReplyScheduler struct {
	mu      sync.Mutex
	pending map[uint]*replyTask
	wg      sync.WaitGroup
}

type replyTask struct {
	timer  *time.Timer
	cancel context.CancelFunc
}

func NewReplyScheduler() *ReplyScheduler {
	return &ReplyScheduler{pending: make(map[uint]*replyTask)}
}

// Schedule runs fn after delay unless the task is cancelled or superseded
// first. fn receives a context cancelled together with the task.
func (s *ReplyScheduler) Schedule(chatID uint, delay time.Duration, fn func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	if prev, ok := s.pending[chatID]; ok {
		prev.timer.Stop()
		prev.cancel()
	}
	task := &replyTask{cancel: cancel}
	task.timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		if s.pending[chatID] == task {
			delete(s.pending, chatID)
		}
		s.mu.Unlock()

		if ctx.Err() != nil {
			return
		}
		s.wg.Add(1)
		defer s.wg.Done()
		fn(ctx)
	})
	s.pending[chatID] = task
	s.mu.Unlock()
}

// Cancel drops the pending reply for the chat, if any.
func (s *ReplyScheduler) Cancel(chatID uint) {
	s.mu.Lock()
	if task, ok := s.pending[chatID]; ok {
		task.timer.Stop()
		task.cancel()
		delete(s.pending, chatID)
	}
	s.mu.Unlock()
}

// Close cancels every pending reply and waits for in-flight ones.
func (s *ReplyScheduler) Close() {
	s.mu.Lock()
	for chatID, task := range s.pending {
		task.timer.Stop()
		task.cancel()
		delete(s.pending, chatID)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
