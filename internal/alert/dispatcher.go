package alert

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"deskclock/internal/eventbus"
	"deskclock/internal/logger"
)

const (
	EventStarted  = "alert_started"
	EventFinished = "alert_finished"
	EventFailed   = "alert_failed"
)

const component = "Alert"

// Publisher is the subset of the event bus the dispatcher needs.
type Publisher interface {
	Publish(event eventbus.Event)
}

// Dispatcher runs alert episodes off the UI thread.
type Dispatcher struct {
	window Window
	player Player
	logger logger.Logger
	events Publisher

	queue chan struct{}

	mu            sync.Mutex
	cancelEpisode context.CancelFunc
	episode       uint64

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(window Window, player Player, log logger.Logger, events Publisher) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())

	d := &Dispatcher{
		window: window,
		player: player,
		logger: log,
		events: events,
		queue:  make(chan struct{}, 1),
		ctx:    ctx,
		cancel: cancel,
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Trigger queues an alert episode without blocking. It reports false when an
// episode is already pending or the dispatcher is shut down.
func (d *Dispatcher) Trigger() bool {
	if d.ctx.Err() != nil {
		return false
	}

	select {
	case d.queue <- struct{}{}:
		return true
	default:
		d.logger.Debug(component, "alert already pending, trigger coalesced", nil)
		return false
	}
}

// Cancel drops a pending episode and stops playback of the running one. The
// running episode still restores the window.
func (d *Dispatcher) Cancel() {
	select {
	case <-d.queue:
	default:
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancelEpisode != nil {
		d.cancelEpisode()
	}
}

// Shutdown cancels any running episode and waits for the worker to exit.
func (d *Dispatcher) Shutdown() {
	d.cancel()
	d.wg.Wait()
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-d.queue:
			d.runEpisode()
		}
	}
}

func (d *Dispatcher) runEpisode() {
	ctx, cancel := context.WithCancel(d.ctx)

	d.mu.Lock()
	d.episode++
	id := d.episode
	d.cancelEpisode = cancel
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.cancelEpisode = nil
		d.mu.Unlock()
		cancel()
	}()

	start := time.Now()
	d.logger.Info(component, "alert episode started", map[string]interface{}{
		"episode": id,
	})
	d.publish(EventStarted, map[string]interface{}{"episode": id})

	d.window.SetLevel(LevelAlwaysOnBottom)
	d.window.SetMousePassthrough(true)

	var err error
	defer func() {
		d.restore()
		d.finish(id, start, err)
	}()

	err = d.play(ctx)
}

// play converts a panicking backend into an error so the restore step runs.
func (d *Dispatcher) play(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio playback panicked: %v", r)
		}
	}()

	return d.player.Play(ctx)
}

func (d *Dispatcher) restore() {
	d.window.SetLevel(LevelAlwaysOnTop)
	d.window.SetMousePassthrough(false)
	d.window.RequestFocus()
	d.window.RequestRepaint()
}

func (d *Dispatcher) finish(id uint64, start time.Time, err error) {
	fields := map[string]interface{}{
		"episode":     id,
		"duration_ms": time.Since(start).Milliseconds(),
	}

	switch {
	case err == nil:
		d.logger.Info(component, "alert episode finished", fields)
		d.publish(EventFinished, fields)
	case errors.Is(err, context.Canceled):
		fields["cancelled"] = true
		d.logger.Info(component, "alert playback cancelled", fields)
		d.publish(EventFinished, fields)
	default:
		d.logger.Error(component, err, fields)
		fields["error"] = err.Error()
		d.publish(EventFailed, fields)
	}
}

func (d *Dispatcher) publish(eventType string, data map[string]interface{}) {
	if d.events == nil {
		return
	}

	d.events.Publish(eventbus.Event{
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	})
}
