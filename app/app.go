package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/box-annotator/config"
	"github.com/soocke/box-annotator/debug"
	"github.com/soocke/box-annotator/ui/presenter"
	"github.com/soocke/box-annotator/ui/theme"
	"github.com/soocke/box-annotator/ui/view"
)

const (
	tick = 50 * time.Millisecond

	// Space taken by the toolbar, status row and edit form around the canvas.
	chromeWidth  = 260
	chromeHeight = 120
)

type app struct {
	config  *config.Config
	cfgPath string
	logger  *slog.Logger
	c       *AppContainer
	afterID string
	cancel  context.CancelFunc
}

// NewApp creates the main window and wires the container.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	setDPIAware(logger)
	a := &app{cfgPath: cfgPath, logger: logger}
	a.c = BuildContainer(cfg, logger)
	cfg = a.c.Config
	a.config = cfg

	a.c.Session.OnImageDir = func(dir string) {
		a.config.LastImageDir = dir
		a.saveConfig()
	}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowWidth, cfg.WindowHeight))
	theme.Apply(cfg.DarkMode)
	return a
}

// Run builds the layout, starts the update loop and blocks until the window
// closes. initialImage is loaded first when non-empty.
func (a *app) Run(initialImage string) {
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	if a.config.Debug {
		debug.StartGoroutineLogger(ctx, 5*time.Second, a.logger)
		debug.StartMemLogger(ctx, 5*time.Second, a.logger)
	}

	canvasW := max(a.config.WindowWidth-chromeWidth, 100)
	canvasH := max(a.config.WindowHeight-chromeHeight, 100)
	h := a.c.Handlers(view.AskImagePath, a.exitHandler)
	a.c.RootView.Build(guard(a.logger, h), canvasW, canvasH)

	a.c.Loop = presenter.NewLoop(a.c.Canvas, a.c.State, a.c.Session, a.scheduleUpdate)
	if initialImage != "" {
		a.c.Session.Load(initialImage)
	}
	a.scheduleUpdate()
	App.Wait()
}

func (a *app) update() {
	defer func() {
		if r := recover(); r != nil {
			if a.logger != nil {
				a.logger.Error("update loop panic", "error", r)
			}
			a.scheduleUpdate()
		}
	}()
	a.c.Loop.Tick()
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	if a.cancel != nil {
		a.cancel()
	}
	a.saveConfig()
	Destroy(App)
}

func (a *app) saveConfig() {
	if a.cfgPath == "" {
		return
	}
	if err := a.config.Save(a.cfgPath); err != nil && a.logger != nil {
		a.logger.Error("config save failed", "path", a.cfgPath, "error", err)
	}
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r)
		}
	}
}
