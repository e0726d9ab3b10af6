package gui

import (
	"sync"

	"deskclock/internal/alert"
	"deskclock/internal/logger"

	"fyne.io/fyne/v2"
)

// WindowCommander applies alert window commands to a fyne window. fyne has no
// stacking-level or pointer-passthrough API, so the level is tracked and
// raising is done with Show/RequestFocus, while passthrough is approximated by
// making the controls non-interactive.
type WindowCommander struct {
	window      fyne.Window
	interactive func(bool)
	logger      logger.Logger
	do          func(func())

	mu          sync.Mutex
	level       alert.Level
	passthrough bool
}

func NewWindowCommander(window fyne.Window, interactive func(bool), log logger.Logger) *WindowCommander {
	return &WindowCommander{
		window:      window,
		interactive: interactive,
		logger:      log,
		do:          fyne.Do,
	}
}

func (c *WindowCommander) SetLevel(level alert.Level) {
	c.mu.Lock()
	c.level = level
	c.mu.Unlock()

	c.logger.Debug("Window", "stacking level requested", map[string]interface{}{
		"level": level.String(),
	})

	if level == alert.LevelAlwaysOnTop {
		c.do(c.window.Show)
	}
}

func (c *WindowCommander) SetMousePassthrough(enabled bool) {
	c.mu.Lock()
	c.passthrough = enabled
	c.mu.Unlock()

	c.logger.Debug("Window", "mouse passthrough requested", map[string]interface{}{
		"enabled": enabled,
	})

	if c.interactive != nil {
		c.do(func() { c.interactive(!enabled) })
	}
}

func (c *WindowCommander) RequestFocus() {
	c.do(c.window.RequestFocus)
}

func (c *WindowCommander) RequestRepaint() {
	c.do(func() {
		if content := c.window.Content(); content != nil {
			content.Refresh()
		}
	})
}

// Level reports the last requested stacking level.
func (c *WindowCommander) Level() alert.Level {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level
}

func (c *WindowCommander) Passthrough() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.passthrough
}
