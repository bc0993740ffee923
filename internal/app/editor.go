package app

import (
	"github.com/dshills/gridstorm/internal/grid/selection"
	"github.com/dshills/gridstorm/internal/input/key"
	"github.com/dshills/gridstorm/internal/renderer/gridview"
)

// editResult tells the caller what a key did to an editor.
type editResult uint8

const (
	editContinue editResult = iota
	editCommit
	editCancel
)

// lineEditor is a single-line text editor opened over a cell or filter cell.
type lineEditor struct {
	target selection.Address
	// col is the model column being edited.
	col int
	// row is the row of the unfiltered set being edited; -1 for filters.
	row int

	text  []rune
	caret int
}

func newLineEditor(target selection.Address, row, col int, text string) *lineEditor {
	r := []rune(text)
	return &lineEditor{target: target, row: row, col: col, text: r, caret: len(r)}
}

func (e *lineEditor) isFilter() bool {
	return e.target.Row.Kind == selection.KindFilter
}

func (e *lineEditor) String() string {
	return string(e.text)
}

func (e *lineEditor) overlay() *gridview.Overlay {
	return &gridview.Overlay{Target: e.target, Text: string(e.text), Caret: e.caret}
}

// handleKey applies one key. Up, Down and Tab commit like Enter.
func (e *lineEditor) handleKey(ev key.Event) editResult {
	switch ev.Key {
	case key.KeyEnter, key.KeyTab, key.KeyUp, key.KeyDown:
		return editCommit
	case key.KeyEscape:
		return editCancel
	case key.KeyLeft:
		e.caret = max(e.caret-1, 0)
	case key.KeyRight:
		e.caret = min(e.caret+1, len(e.text))
	case key.KeyHome:
		e.caret = 0
	case key.KeyEnd:
		e.caret = len(e.text)
	case key.KeyBackspace:
		if e.caret > 0 {
			e.text = append(e.text[:e.caret-1], e.text[e.caret:]...)
			e.caret--
		}
	case key.KeyDelete:
		if e.caret < len(e.text) {
			e.text = append(e.text[:e.caret], e.text[e.caret+1:]...)
		}
	case key.KeyRune:
		switch {
		case ev.Modifiers.HasCtrl() && ev.Rune == 'u':
			e.text = e.text[e.caret:]
			e.caret = 0
		case ev.Modifiers.HasCtrl() && ev.Rune == 'a':
			e.caret = 0
		case ev.Modifiers.HasCtrl() && ev.Rune == 'e':
			e.caret = len(e.text)
		case ev.IsChar():
			e.text = append(e.text[:e.caret], append([]rune{ev.Rune}, e.text[e.caret:]...)...)
			e.caret++
		}
	}
	return editContinue
}
