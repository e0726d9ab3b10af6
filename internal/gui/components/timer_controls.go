package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const (
	startLabel        = "Start Timer"
	stopLabel         = "Stop Timer"
	remainingTextSize = 30
	sliderSteps       = 1000
)

// TimerControls groups the duration slider, the remaining-time readout and
// the start/stop and reset buttons.
type TimerControls struct {
	container     *fyne.Container
	slider        *widget.Slider
	durationLabel *widget.Label
	remaining     *canvas.Text
	toggleButton  *widget.Button
	resetButton   *widget.Button

	toggleHandler   func()
	resetHandler    func()
	positionHandler func(float64)
	suppressSlider  bool
}

func NewTimerControls() *TimerControls {
	tc := &TimerControls{}
	tc.createComponents()
	tc.buildLayout()
	return tc
}

func (tc *TimerControls) createComponents() {
	tc.slider = widget.NewSlider(0, sliderSteps)
	tc.slider.Step = 1
	tc.slider.OnChanged = tc.onSliderChanged

	tc.durationLabel = widget.NewLabel("")

	tc.remaining = canvas.NewText("", theme.Color(theme.ColorNameForeground))
	tc.remaining.TextSize = remainingTextSize
	tc.remaining.TextStyle = fyne.TextStyle{Bold: true}
	tc.remaining.Alignment = fyne.TextAlignCenter

	tc.toggleButton = widget.NewButton(startLabel, tc.onToggleClicked)
	tc.toggleButton.Importance = widget.HighImportance

	tc.resetButton = widget.NewButton("Reset", tc.onResetClicked)
}

func (tc *TimerControls) buildLayout() {
	tc.container = container.NewVBox(
		widget.NewLabel("Set Timer Duration:"),
		container.NewBorder(nil, nil, nil, tc.durationLabel, tc.slider),
		tc.remaining,
		container.NewGridWithColumns(2, tc.toggleButton, tc.resetButton),
	)
}

func (tc *TimerControls) GetContainer() *fyne.Container {
	return tc.container
}

func (tc *TimerControls) SetToggleHandler(handler func())           { tc.toggleHandler = handler }
func (tc *TimerControls) SetResetHandler(handler func())            { tc.resetHandler = handler }
func (tc *TimerControls) SetPositionHandler(handler func(float64)) { tc.positionHandler = handler }

// SetPosition moves the slider without reporting the change back.
func (tc *TimerControls) SetPosition(pos float64) {
	value := pos * sliderSteps
	if tc.slider.Value == value {
		return
	}

	tc.suppressSlider = true
	tc.slider.SetValue(value)
	tc.suppressSlider = false
}

func (tc *TimerControls) SetDurationText(text string) {
	if tc.durationLabel.Text != text {
		tc.durationLabel.SetText(text)
	}
}

func (tc *TimerControls) SetRemaining(text string) {
	if tc.remaining.Text != text {
		tc.remaining.Text = text
		tc.remaining.Refresh()
	}
}

func (tc *TimerControls) SetRunning(running bool) {
	label := startLabel
	if running {
		label = stopLabel
	}
	if tc.toggleButton.Text != label {
		tc.toggleButton.SetText(label)
	}
}

// SetInteractive enables or disables the buttons.
func (tc *TimerControls) SetInteractive(enabled bool) {
	for _, w := range []fyne.Disableable{tc.toggleButton, tc.resetButton} {
		if enabled {
			w.Enable()
		} else {
			w.Disable()
		}
	}
}

func (tc *TimerControls) ToggleLabel() string {
	return tc.toggleButton.Text
}

func (tc *TimerControls) Interactive() bool {
	return !tc.toggleButton.Disabled()
}

func (tc *TimerControls) onSliderChanged(value float64) {
	if tc.suppressSlider || tc.positionHandler == nil {
		return
	}
	tc.positionHandler(value / sliderSteps)
}

func (tc *TimerControls) onToggleClicked() {
	if tc.toggleHandler != nil {
		tc.toggleHandler()
	}
}

func (tc *TimerControls) onResetClicked() {
	if tc.resetHandler != nil {
		tc.resetHandler()
	}
}
