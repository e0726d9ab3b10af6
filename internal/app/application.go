package app

import (
	"time"

	"deskclock/internal/alert"
	"deskclock/internal/assets"
	"deskclock/internal/config"
	"deskclock/internal/controllers"
	"deskclock/internal/eventbus"
	"deskclock/internal/gui"
	"deskclock/internal/logger"
	"deskclock/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName      = "Real-Time Clock"
	AppID        = "com.deskclock.realtime"
	AppVersion   = "1.0.0"
	WindowWidth  = 300
	WindowHeight = 300
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	bus        *eventbus.Bus
	dispatcher *alert.Dispatcher
	controller *controllers.MainController
	guiManager *gui.Manager
	frames     *gui.FrameLoop
	lifecycle  *shutdown.Manager
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)

	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  WindowWidth,
		"window_height": WindowHeight,
		"alert_sound":   cfg.AlertSound,
		"mute":          cfg.Mute,
	})

	bus := eventbus.NewBus(cfg.EventQueue)

	var guiManager *gui.Manager
	commander := gui.NewWindowCommander(window, func(enabled bool) {
		if guiManager != nil {
			guiManager.SetInteractive(enabled)
		}
	}, log)

	dispatcher := alert.NewDispatcher(commander, newPlayer(cfg), log, bus)

	controller := controllers.NewMainController(dispatcher, log)
	controller.Subscribe(bus)

	guiManager = gui.NewManager(window, controller, log)
	frames := gui.NewFrameLoop(gui.DefaultFrameInterval, func(dt time.Duration) {
		fyne.Do(func() {
			guiManager.Frame(dt)
		})
	})

	lifecycle := shutdown.NewManager(log)
	lifecycle.Register("event bus", bus)
	lifecycle.Register("alert dispatcher", dispatcher)
	lifecycle.Register("frame loop", frames)
	lifecycle.Register("gui", guiManager)

	log.Info("Application", "initialization complete", nil)

	return &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		bus:        bus,
		dispatcher: dispatcher,
		controller: controller,
		guiManager: guiManager,
		frames:     frames,
		lifecycle:  lifecycle,
	}, nil
}

func newPlayer(cfg config.Config) alert.Player {
	if cfg.Mute {
		return alert.SilentPlayer{}
	}
	return alert.NewSpeakerPlayer(cfg.AlertSound, assets.Load)
}

// Run shows the window and blocks until the UI loop exits.
func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.lifecycle.Listen(func() {
		fyne.Do(a.fyneApp.Quit)
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()
	a.frames.Start()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}
