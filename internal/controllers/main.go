package controllers

import (
	"fmt"
	"sync"
	"time"

	"deskclock/internal/alert"
	"deskclock/internal/eventbus"
	"deskclock/internal/logger"
	"deskclock/internal/timer"
)

const component = "Controller"

// AlertDispatcher starts and cancels alert episodes.
type AlertDispatcher interface {
	Trigger() bool
	Cancel()
}

// ViewState is everything the view renders for the timer.
type ViewState struct {
	Timer  timer.Snapshot
	Status string
}

// MainController owns the timer state machine. Frame and the button handlers
// run on the UI thread; alert events arrive on the event bus worker.
type MainController struct {
	machine *timer.Machine
	alerts  AlertDispatcher
	logger  logger.Logger

	mu     sync.RWMutex
	status string
}

func NewMainController(alerts AlertDispatcher, log logger.Logger) *MainController {
	return &MainController{
		machine: timer.New(),
		alerts:  alerts,
		logger:  log,
		status:  "Ready",
	}
}

// Frame advances the countdown by the frame delta and dispatches the alert on
// the transition into Elapsed.
func (c *MainController) Frame(dt time.Duration) ViewState {
	c.mu.Lock()
	fire := c.machine.Tick(dt)
	c.mu.Unlock()

	if fire {
		queued := c.alerts.Trigger()
		c.logger.Info(component, "countdown elapsed", map[string]interface{}{
			"alert_queued": queued,
		})
	}

	return c.State()
}

// ToggleTimer is the start/stop button.
func (c *MainController) ToggleTimer() ViewState {
	c.mu.Lock()
	c.machine.Toggle()
	snap := c.machine.Snapshot()
	c.mu.Unlock()

	if snap.Running() {
		c.logger.Info(component, "countdown started", map[string]interface{}{
			"duration_s": snap.Duration.Seconds(),
		})
	} else {
		c.logger.Info(component, "countdown stopped", map[string]interface{}{
			"remaining_s": snap.Remaining.Seconds(),
		})
	}

	return c.State()
}

// Reset restores the default idle state and cancels any alert in flight.
func (c *MainController) Reset() ViewState {
	c.mu.Lock()
	c.machine.Reset()
	c.mu.Unlock()

	c.alerts.Cancel()
	c.logger.Info(component, "timer reset", nil)

	return c.State()
}

func (c *MainController) SetDuration(d time.Duration) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	applied := c.machine.SetDuration(d)
	c.logger.Debug(component, "duration changed", map[string]interface{}{
		"duration_s": applied.Seconds(),
	})
	return applied
}

func (c *MainController) State() ViewState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return ViewState{
		Timer:  c.machine.Snapshot(),
		Status: c.status,
	}
}

// Subscribe registers the controller for alert lifecycle events.
func (c *MainController) Subscribe(bus *eventbus.Bus) {
	for _, eventType := range []string{alert.EventStarted, alert.EventFinished, alert.EventFailed} {
		bus.Subscribe(eventType, c)
	}
}

func (c *MainController) GetID() string {
	return component
}

// Handle turns alert lifecycle events into the status line.
func (c *MainController) Handle(event eventbus.Event) {
	var status string
	switch event.Type {
	case alert.EventStarted:
		status = "Time's up!"
	case alert.EventFinished:
		status = "Ready"
	case alert.EventFailed:
		status = fmt.Sprintf("Alert sound failed: %v", event.Data["error"])
	default:
		return
	}

	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
}
