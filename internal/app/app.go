// Package app ties a data source, the grid controller and the grid view to
// a terminal backend and runs the interactive event loop.
package app

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dshills/gridstorm/internal/config"
	"github.com/dshills/gridstorm/internal/data"
	"github.com/dshills/gridstorm/internal/grid/autosize"
	"github.com/dshills/gridstorm/internal/grid/controller"
	"github.com/dshills/gridstorm/internal/grid/sizing"
	"github.com/dshills/gridstorm/internal/input/mouse"
	"github.com/dshills/gridstorm/internal/renderer/backend"
	"github.com/dshills/gridstorm/internal/renderer/core"
	"github.com/dshills/gridstorm/internal/renderer/gridview"
	"github.com/dshills/gridstorm/internal/renderer/statusline"
	"github.com/dshills/gridstorm/internal/watch"
)

// minColumnWidth keeps one text column next to the border.
const minColumnWidth = 2

// filterTimeout bounds one filter pass over the loaded rows.
const filterTimeout = 2 * time.Second

// Options configure an Application.
type Options struct {
	Source  data.Source
	Backend backend.Backend

	// Config defaults to config.Default().
	Config *config.Config

	// Logger defaults to a discarding logger.
	Logger *slog.Logger

	// Watch reloads the source whenever its file changes.
	Watch bool
}

// Application is the interactive grid.
//
// All state is owned by the goroutine running Run; loads and file watching
// report back over channels.
type Application struct {
	cfg     *config.Config
	log     *slog.Logger
	backend backend.Backend
	source  data.Source
	loader  *data.Loader
	watcher *watch.Watcher
	keys    *keymap
	theme   gridview.Theme

	cols     *sizing.SeriesSizes
	rows     *sizing.SeriesSizes
	ctl      *controller.Controller
	view     *gridview.View
	tracker  *mouse.Tracker
	autosize autosize.Pass
	measurer autosize.TerminalMeasurer

	// base is the loaded set with edits applied; shown is base after the
	// filters.
	base    *data.RowSet
	shown   *data.RowSet
	filters []string
	// columnsConfigured is set once the configured frozen and hidden
	// columns were applied; reloads keep what the user changed since.
	columnsConfigured bool

	editor *lineEditor
	jump   *columnJump
	drag   *columnDrag

	loads <-chan data.Result
	// filterTimeout bounds refilter; tests shorten it.
	filterTimeout time.Duration

	status *statusline.StatusLine
	// modified is set once a cell was edited since the last load.
	modified bool

	width, height int
	running       atomic.Bool
}

// columnDrag is a header border drag resizing one column.
type columnDrag struct {
	col       int // real index
	startX    int
	startSize int
}

// New creates an application. The backend is initialized by Run.
func New(opts Options) (*Application, error) {
	if opts.Source == nil {
		return nil, ErrNoSource
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	keys, err := newKeymap(cfg)
	if err != nil {
		return nil, err
	}
	theme, err := buildTheme(cfg.Theme)
	if err != nil {
		return nil, err
	}

	app := &Application{
		cfg:     cfg,
		log:     log,
		backend: opts.Backend,
		source:  opts.Source,
		loader:  data.NewLoader(opts.Source, log),
		keys:    keys,
		theme:   theme,
		status:  statusline.New(theme.Gutter),
		cols:    sizing.New(cfg.Grid.DefaultColumnWidth, cfg.Grid.DefaultColumnWidth),
		rows:    sizing.New(cfg.Grid.RowHeight, cfg.Grid.RowHeight),
		tracker: mouse.NewTracker(mouse.Config{
			DoubleClickTime:     time.Duration(cfg.Mouse.DoubleClickMillis) * time.Millisecond,
			DoubleClickDistance: 1,
			ScrollLines:         cfg.Mouse.ScrollLines,
		}),
		autosize: autosize.Pass{
			SampleRows: cfg.Grid.SampleRows,
			Padding:    cfg.Grid.Padding,
			MaxRatio:   cfg.Grid.MaxWidthRatio,
			Logger:     log,
		},
		filterTimeout: filterTimeout,
	}
	app.ctl = controller.New(app.cols, app.rows,
		controller.WithHooks(controller.Hooks{
			OpenEditor:  app.openCellEditor,
			FocusFilter: app.openFilterEditor,
			IsEditing:   func() bool { return app.editor != nil },
		}),
		controller.WithLogger(log))
	app.view = gridview.New(app.cols, app.rows, app.ctl,
		gridview.WithTheme(theme),
		gridview.WithLogger(log))

	app.status.SetHelp(app.help())

	if opts.Watch {
		w, err := watch.New(opts.Source.Path(), watch.WithLogger(log))
		if err != nil {
			return nil, &InitError{Component: "watcher", Err: err}
		}
		app.watcher = w
	}
	return app, nil
}

// Run initializes the backend, starts the first load and processes events
// until the user quits or ctx is done.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()
	defer app.close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan backend.Event)
	go app.pollEvents(ctx, events)

	app.width, app.height = app.backend.Size()
	app.layout()
	app.reload(ctx)
	app.draw()
	return app.eventLoop(ctx, events)
}

// pollEvents forwards backend events until ctx is done or the backend
// closes.
func (app *Application) pollEvents(ctx context.Context, out chan<- backend.Event) {
	defer close(out)
	for {
		ev := app.backend.PollEvent()
		select {
		case out <- ev:
		case <-ctx.Done():
			return
		}
		if ev.Type == backend.EventClosed {
			return
		}
	}
}

// eventLoop is the main application loop. It redraws after every event.
func (app *Application) eventLoop(ctx context.Context, events <-chan backend.Event) error {
	var changes <-chan watch.Event
	var watchErrs <-chan error
	if app.watcher != nil {
		changes, watchErrs = app.watcher.Events(), app.watcher.Errors()
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleBackendEvent(ctx, ev); err != nil {
				if errors.Is(err, ErrQuit) {
					return nil
				}
				return err
			}

		case res, ok := <-app.loads:
			app.loads = nil
			if ok {
				app.applyLoad(res)
			}

		case ev, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			app.log.Info("source changed", "path", ev.Path, "op", ev.Op)
			app.reload(ctx)

		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			app.setError(&OperationError{Op: "watch", Target: app.source.Path(), Err: err})
		}
		app.draw()
	}
}

// close stops background work.
func (app *Application) close() {
	app.loader.Cancel()
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.log.Warn("closing watcher", "err", err)
		}
	}
}

// layout places the grid above the status line.
func (app *Application) layout() {
	h := max(app.height-1, 0)
	app.view.Resize(core.RectFromSize(0, 0, app.width, h))
}

// draw renders the grid and the status line and flushes the frame.
func (app *Application) draw() {
	app.view.Draw(app.backend)
	app.drawStatus()
	app.backend.Show()
}
