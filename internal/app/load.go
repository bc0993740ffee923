package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dshills/gridstorm/internal/data"
)

// reload starts loading the source. The result arrives on app.loads; a load
// still in flight is superseded.
func (app *Application) reload(ctx context.Context) {
	app.loads = app.loader.Load(ctx)
	app.setStatus("loading " + app.source.Path())
}

// applyLoad installs a loaded row set. Filters, column sizes set by the
// user, hidden and frozen columns survive a reload as long as the columns
// still exist; edits do not.
func (app *Application) applyLoad(res data.Result) {
	if res.Err != nil {
		if errors.Is(res.Err, context.Canceled) {
			return
		}
		app.setError(&OperationError{Op: "load", Target: app.source.Path(), Err: res.Err})
		return
	}
	if app.editor != nil {
		app.closeEditor()
	}
	app.jump = nil

	rs := res.Set
	app.base = rs
	app.modified = false
	n := rs.ColumnCount()
	if len(app.filters) != n {
		filters := make([]string, n)
		copy(filters, app.filters)
		app.filters = filters
	}

	app.cols.SetCount(n)
	if !app.columnsConfigured {
		app.applyColumnConfig(rs)
		app.columnsConfigured = true
	} else {
		app.cols.SetExtraordinaryIndexes(below(app.cols.HiddenIndexes(), n), below(app.cols.FrozenIndexes(), n))
	}
	app.cols.BuildIndex()

	if err := app.refilter(); err != nil {
		// Filters that fail on the new rows are dropped.
		app.log.Warn("reapplying filters", "err", err)
		clear(app.filters)
		app.setShown(rs)
	}
	// Measured after the rows are shown so the gutter width is final.
	if app.cfg.Grid.Autosize {
		app.runAutosize()
	}
	app.setStatus(fmt.Sprintf("%d rows, %d columns in %s", rs.RowCount(), n, res.Elapsed.Round(time.Millisecond)))
}

// applyColumnConfig freezes and hides the configured columns by name.
func (app *Application) applyColumnConfig(rs *data.RowSet) {
	resolve := func(names []string) []int {
		var out []int
		for _, name := range names {
			i := rs.ColumnIndex(name)
			if i < 0 {
				app.log.Warn("configured column not found", "column", name)
				continue
			}
			out = append(out, i)
		}
		return out
	}
	app.cols.SetExtraordinaryIndexes(resolve(app.cfg.Grid.Hidden), resolve(app.cfg.Grid.Frozen))
}

// below keeps the indexes smaller than n.
func below(idx []int, n int) []int {
	out := idx[:0]
	for _, i := range idx {
		if i < n {
			out = append(out, i)
		}
	}
	return out
}
