package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplySchedulerRunsAfterDelay(t *testing.T) {
	s := NewReplyScheduler()
	defer s.Close()

	var fired atomic.Int32
	s.Schedule(1, time.Millisecond, func(context.Context) { fired.Add(1) })

	require.Eventually(t, func() bool { return fired.Load() == 1 }, time.Second, time.Millisecond)
}

func TestReplySchedulerCancelDropsPendingTask(t *testing.T) {
	s := NewReplyScheduler()
	defer s.Close()

	var fired atomic.Int32
	s.Schedule(1, 20*time.Millisecond, func(context.Context) { fired.Add(1) })
	s.Cancel(1)

	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, fired.Load())
}

func TestReplySchedulerSupersedesSameChat(t *testing.T) {
	s := NewReplyScheduler()
	defer s.Close()

	var first, second atomic.Int32
	s.Schedule(1, 20*time.Millisecond, func(context.Context) { first.Add(1) })
	s.Schedule(1, time.Millisecond, func(context.Context) { second.Add(1) })

	require.Eventually(t, func() bool { return second.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, first.Load(), "superseded task must not run")
}

func TestReplySchedulerTracksChatsIndependently(t *testing.T) {
	s := NewReplyScheduler()
	defer s.Close()

	var a, b atomic.Int32
	s.Schedule(1, time.Millisecond, func(context.Context) { a.Add(1) })
	s.Schedule(2, time.Millisecond, func(context.Context) { b.Add(1) })
	s.Cancel(1)

	require.Eventually(t, func() bool { return b.Load() == 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, a.Load())
}
