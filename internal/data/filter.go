package data

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	lua "github.com/yuin/gopher-lua"
)

// ExprPrefix marks a filter text as a Lua expression.
const ExprPrefix = "="

// checkEvery is how many rows are matched between context checks.
const checkEvery = 4096

// condition constrains one column.
type condition struct {
	col    int
	needle string
	fn     *lua.LFunction
}

// Filter keeps the rows whose cells match every non-empty filter text.
//
// A text starting with "=" is a Lua expression evaluated per row with the
// globals value (the cell text), num (the cell as a number, or nil) and
// cell(name) (another cell of the same row). Any other text matches cells
// containing it, ignoring case.
//
// A Filter is not safe for concurrent use.
type Filter struct {
	conds []condition
	L     *lua.LState

	row     []string
	columns []Column
}

// NewFilter compiles one filter text per column. Empty texts do not
// constrain their column.
func NewFilter(texts []string) (*Filter, error) {
	f := &Filter{}
	for col, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		expr, ok := strings.CutPrefix(text, ExprPrefix)
		if !ok {
			f.conds = append(f.conds, condition{col: col, needle: strings.ToLower(text)})
			continue
		}
		if f.L == nil {
			f.L = f.newState()
		}
		fn, err := f.L.LoadString("return " + expr)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("column %d %q: %w: %v", col+1, expr, ErrBadFilter, err)
		}
		f.conds = append(f.conds, condition{col: col, fn: fn})
	}
	return f, nil
}

func (f *Filter) newState() *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	L.SetTop(0)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
	L.SetGlobal("cell", L.NewFunction(f.luaCell))
	return L
}

// luaCell implements cell(name) for the row being matched.
func (f *Filter) luaCell(L *lua.LState) int {
	name := L.CheckString(1)
	for i, c := range f.columns {
		if (c.Name == name || c.Label == name) && i < len(f.row) {
			L.Push(lua.LString(f.row[i]))
			return 1
		}
	}
	L.Push(lua.LNil)
	return 1
}

// Active reports whether the filter constrains any column.
func (f *Filter) Active() bool {
	return len(f.conds) > 0
}

// Close releases the Lua state.
func (f *Filter) Close() {
	if f.L != nil {
		f.L.Close()
		f.L = nil
	}
}

// Apply returns the rows of base that match. An inactive filter returns base
// itself. The result shares cells with base; its Origin maps back to the
// unfiltered rows of base.
func (f *Filter) Apply(ctx context.Context, base *RowSet) (*RowSet, error) {
	if !f.Active() {
		return base, nil
	}
	if f.L != nil {
		f.L.SetContext(ctx)
		defer f.L.RemoveContext()
	}
	f.columns = base.Columns

	out := &RowSet{
		ID:      uuid.New(),
		Source:  base.Source,
		Columns: base.Columns,
	}
	for i, row := range base.Rows {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		ok, err := f.match(row)
		if err != nil {
			return nil, err
		}
		if ok {
			out.Rows = append(out.Rows, row)
			out.Origin = append(out.Origin, base.OriginRow(i))
		}
	}
	if out.Origin == nil {
		out.Origin = []int{}
	}
	return out, nil
}

func (f *Filter) match(row []string) (bool, error) {
	for _, c := range f.conds {
		var text string
		if c.col < len(row) {
			text = row[c.col]
		}
		if c.fn == nil {
			if !strings.Contains(strings.ToLower(text), c.needle) {
				return false, nil
			}
			continue
		}
		ok, err := f.eval(c.fn, row, text)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// eval runs a compiled expression. Runtime errors such as comparing nil to a
// number count as no match; only cancellation is reported.
func (f *Filter) eval(fn *lua.LFunction, row []string, text string) (bool, error) {
	L := f.L
	f.row = row
	L.SetGlobal("value", lua.LString(text))
	if n, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil {
		L.SetGlobal("num", lua.LNumber(n))
	} else {
		L.SetGlobal("num", lua.LNil)
	}

	L.Push(fn)
	if err := L.PCall(0, 1, nil); err != nil {
		L.SetTop(0)
		if ctx := L.Context(); ctx != nil && ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, nil
	}
	ret := L.Get(-1)
	L.Pop(1)
	return lua.LVAsBool(ret), nil
}
