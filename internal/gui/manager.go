package gui

import (
	"sync/atomic"
	"time"

	"deskclock/internal/clock"
	"deskclock/internal/controllers"
	"deskclock/internal/gui/components"
	"deskclock/internal/logger"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Controller is the part of the main controller the view drives.
type Controller interface {
	Frame(dt time.Duration) controllers.ViewState
	ToggleTimer() controllers.ViewState
	Reset() controllers.ViewState
	SetDuration(d time.Duration) time.Duration
	State() controllers.ViewState
}

type Manager struct {
	window     fyne.Window
	controller Controller
	logger     logger.Logger
	isShutdown atomic.Bool

	startedAt time.Time
	now       func() time.Time

	clockText *canvas.Text
	controls  *components.TimerControls
	status    *components.StatusBar
}

func NewManager(window fyne.Window, controller Controller, log logger.Logger) *Manager {
	m := &Manager{
		window:     window,
		controller: controller,
		logger:     log,
		now:        time.Now,
		controls:   components.NewTimerControls(),
		status:     components.NewStatusBar(),
	}
	m.startedAt = m.now()

	m.clockText = canvas.NewText("", clock.RainbowColor(0))
	m.clockText.TextStyle = fyne.TextStyle{Monospace: true}
	m.clockText.Alignment = fyne.TextAlignCenter

	m.controls.SetToggleHandler(m.onToggle)
	m.controls.SetResetHandler(m.onReset)
	m.controls.SetPositionHandler(m.onSliderMoved)

	m.Render(controller.State())

	log.Info("GUIManager", "initialized", nil)
	return m
}

func (m *Manager) GetMainContainer() *fyne.Container {
	heading := widget.NewLabelWithStyle("Current Time", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	return container.NewBorder(
		nil,
		m.status.GetContainer(),
		nil, nil,
		container.NewVBox(
			heading,
			m.clockText,
			widget.NewSeparator(),
			m.controls.GetContainer(),
		),
	)
}

// Frame runs one UI frame. It must be called on the UI thread.
func (m *Manager) Frame(dt time.Duration) {
	if m.isShutdown.Load() {
		return
	}
	m.Render(m.controller.Frame(dt))
}

// Render draws the clock and the timer state.
func (m *Manager) Render(state controllers.ViewState) {
	now := m.now()

	m.clockText.Text = clock.FormatTime(now)
	m.clockText.Color = clock.RainbowColor(now.Sub(m.startedAt))
	if m.window != nil {
		size := m.window.Canvas().Size()
		if size.Width > 0 && size.Height > 0 {
			m.clockText.TextSize = clock.FontSize(size.Width, size.Height)
		}
	}
	m.clockText.Refresh()

	m.controls.SetPosition(clock.DurationToSlider(state.Timer.Duration))
	m.controls.SetDurationText(state.Timer.Duration.String())
	m.controls.SetRemaining(clock.FormatRemaining(state.Timer.Remaining))
	m.controls.SetRunning(state.Timer.Running())

	m.status.SetStatus(state.Status)
	m.status.SetPhase(state.Timer.Phase.String())
}

// SetInteractive toggles whether the controls accept input.
func (m *Manager) SetInteractive(enabled bool) {
	m.controls.SetInteractive(enabled)
}

func (m *Manager) Shutdown() {
	if !m.isShutdown.CompareAndSwap(false, true) {
		return
	}

	m.logger.Info("GUIManager", "shutdown initiated", nil)
}

func (m *Manager) onToggle() {
	m.Render(m.controller.ToggleTimer())
}

func (m *Manager) onReset() {
	m.Render(m.controller.Reset())
}

func (m *Manager) onSliderMoved(pos float64) {
	applied := m.controller.SetDuration(clock.SliderToDuration(pos))
	m.controls.SetDurationText(applied.String())
}
