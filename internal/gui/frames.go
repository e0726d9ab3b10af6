package gui

import (
	"context"
	"sync"
	"time"
)

// DefaultFrameInterval is roughly 60 frames per second.
const DefaultFrameInterval = 16 * time.Millisecond

// FrameLoop measures the wall-clock delta between ticks and hands it to
// onFrame. onFrame is called from the loop goroutine; callers hop onto the UI
// thread themselves.
type FrameLoop struct {
	interval time.Duration
	onFrame  func(dt time.Duration)

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once
}

func NewFrameLoop(interval time.Duration, onFrame func(dt time.Duration)) *FrameLoop {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &FrameLoop{
		interval: interval,
		onFrame:  onFrame,
		ctx:      ctx,
		cancel:   cancel,
	}
}

func (l *FrameLoop) Start() {
	l.once.Do(func() {
		l.wg.Add(1)
		go l.run()
	})
}

func (l *FrameLoop) Shutdown() {
	l.cancel()
	l.wg.Wait()
}

func (l *FrameLoop) run() {
	defer l.wg.Done()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			l.onFrame(dt)
		case <-l.ctx.Done():
			return
		}
	}
}
