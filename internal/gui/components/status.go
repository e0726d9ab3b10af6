package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	phaseLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready")
	statusLabel.Truncation = fyne.TextTruncateEllipsis
	phaseLabel := widget.NewLabel("idle")

	mainContainer := container.NewBorder(
		nil, nil,
		nil,
		phaseLabel,
		statusLabel,
	)

	return &StatusBar{
		container:   mainContainer,
		statusLabel: statusLabel,
		phaseLabel:  phaseLabel,
	}
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func (sb *StatusBar) SetStatus(status string) {
	if sb.statusLabel.Text != status {
		sb.statusLabel.SetText(status)
	}
}

func (sb *StatusBar) SetPhase(phase string) {
	if sb.phaseLabel.Text != phase {
		sb.phaseLabel.SetText(phase)
	}
}
