package gui

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"deskclock/internal/alert"
	"deskclock/internal/controllers"
	"deskclock/internal/logger"
	"deskclock/internal/timer"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/require"
)

type countingAlerts struct {
	triggers atomic.Int32
}

func (a *countingAlerts) Trigger() bool {
	a.triggers.Add(1)
	return true
}

func (a *countingAlerts) Cancel() {}

func newTestManager(t *testing.T) (*Manager, *controllers.MainController, *countingAlerts) {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	window := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(window.Close)

	alerts := &countingAlerts{}
	controller := controllers.NewMainController(alerts, logger.NoOpLogger{})
	m := NewManager(window, controller, logger.NoOpLogger{})
	window.SetContent(m.GetMainContainer())

	return m, controller, alerts
}

func TestManagerRendersInitialState(t *testing.T) {
	m, _, _ := newTestManager(t)

	require.Equal(t, "Start Timer", m.controls.ToggleLabel())
	require.Len(t, m.clockText.Text, len("15:04:05"))
}

func TestManagerToggleAndFrames(t *testing.T) {
	m, controller, alerts := newTestManager(t)
	controller.SetDuration(2 * time.Second)

	m.onToggle()
	require.Equal(t, "Stop Timer", m.controls.ToggleLabel())

	m.Frame(time.Second)
	require.Equal(t, time.Second, controller.State().Timer.Remaining)

	m.Frame(time.Second)
	m.Frame(time.Second)
	require.Equal(t, "Start Timer", m.controls.ToggleLabel())
	require.Equal(t, timer.PhaseElapsed, controller.State().Timer.Phase)
	require.EqualValues(t, 1, alerts.triggers.Load())
}

func TestManagerResetRestoresDefault(t *testing.T) {
	m, controller, _ := newTestManager(t)
	controller.SetDuration(5 * time.Minute)
	m.onToggle()
	m.Frame(time.Minute)

	m.onReset()
	state := controller.State()
	require.Equal(t, timer.PhaseIdle, state.Timer.Phase)
	require.Equal(t, timer.DefaultDuration, state.Timer.Remaining)
	require.Equal(t, "Start Timer", m.controls.ToggleLabel())
}

func TestManagerSliderSetsDuration(t *testing.T) {
	m, controller, _ := newTestManager(t)

	m.onSliderMoved(1)
	require.Equal(t, timer.MaxDuration, controller.State().Timer.Duration)

	m.onSliderMoved(0)
	require.Equal(t, timer.MinDuration, controller.State().Timer.Duration)
}

func TestManagerIgnoresFramesAfterShutdown(t *testing.T) {
	m, controller, _ := newTestManager(t)
	m.onToggle()
	m.Shutdown()
	m.Shutdown()

	m.Frame(time.Second)
	require.Equal(t, timer.DefaultDuration, controller.State().Timer.Remaining)
}

func TestWindowCommanderTracksRequests(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := test.NewWindow(widget.NewLabel(""))
	defer window.Close()

	var mu sync.Mutex
	var interactive []bool

	c := NewWindowCommander(window, func(enabled bool) {
		mu.Lock()
		defer mu.Unlock()
		interactive = append(interactive, enabled)
	}, logger.NoOpLogger{})
	c.do = func(fn func()) { fn() }

	c.SetLevel(alert.LevelAlwaysOnBottom)
	c.SetMousePassthrough(true)
	require.Equal(t, alert.LevelAlwaysOnBottom, c.Level())
	require.True(t, c.Passthrough())

	c.SetLevel(alert.LevelAlwaysOnTop)
	c.SetMousePassthrough(false)
	c.RequestFocus()
	c.RequestRepaint()

	require.Equal(t, alert.LevelAlwaysOnTop, c.Level())
	require.False(t, c.Passthrough())

	mu.Lock()
	require.Equal(t, []bool{false, true}, interactive)
	mu.Unlock()
}

func TestFrameLoopReportsPositiveDeltas(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var deltas []time.Duration

	loop := NewFrameLoop(time.Millisecond, func(dt time.Duration) {
		mu.Lock()
		defer mu.Unlock()
		deltas = append(deltas, dt)
	})
	loop.Start()
	loop.Start()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(deltas) >= 5
	}, 2*time.Second, time.Millisecond)

	loop.Shutdown()

	mu.Lock()
	defer mu.Unlock()
	for _, dt := range deltas {
		require.Positive(t, dt)
	}
}
