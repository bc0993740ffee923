package gridview

import (
	"github.com/dshills/gridstorm/internal/grid/sizing"
	"github.com/dshills/gridstorm/internal/renderer/core"
)

// Slot is one visible column or row.
type Slot struct {
	Real  int
	Model int
	// Offset is measured from the start of the data area.
	Offset int
	Size   int
	Frozen bool
}

// End returns the offset just past the slot.
func (s Slot) End() int {
	return s.Offset + s.Size
}

// Layout is the visible window of the grid as last computed.
type Layout struct {
	Area        core.Rect
	GutterWidth int

	HeaderY int
	FilterY int
	DataX   int
	DataY   int

	// DataWidth and DataHeight describe the data area including frozen
	// items.
	DataWidth  int
	DataHeight int

	Cols []Slot
	Rows []Slot

	// Scroll state the slots were computed from.
	FirstCol, FirstRow int
}

// headerRows is the number of screen rows above the data: header and filter.
const headerRows = 2

// visibleSlots lists the frozen items followed by the scrollable items from
// first that fit into extent.
func visibleSlots(s *sizing.SeriesSizes, first, extent int) []Slot {
	var out []Slot
	frozen := s.FrozenCount()
	for i := range frozen {
		off := s.GetFrozenPosition(i)
		if off >= extent {
			return out
		}
		out = append(out, Slot{
			Real:   i,
			Model:  s.RealToModel(i),
			Offset: off,
			Size:   s.GetSizeByRealIndex(i),
			Frozen: true,
		})
	}

	frozenSize := s.GetFrozenSize()
	scrollExtent := extent - frozenSize
	if scrollExtent <= 0 {
		return out
	}
	base := s.GetPositionByScrollIndex(first)
	if base < 0 {
		return out
	}
	n := s.GetVisibleScrollCount(first, scrollExtent)
	for si := first; si < first+n; si++ {
		ri := si + frozen
		out = append(out, Slot{
			Real:   ri,
			Model:  s.RealToModel(ri),
			Offset: frozenSize + s.GetPositionByScrollIndex(si) - base,
			Size:   s.GetSizeByScrollIndex(si),
		})
	}
	return out
}

func gutterWidth(rowCount int) int {
	digits := 1
	for n := rowCount; n >= 10; n /= 10 {
		digits++
	}
	return max(digits+1, 3)
}

// slotAt returns the slot covering offset, using the sizing index for
// scrollable items.
func slotAt(slots []Slot, s *sizing.SeriesSizes, first, offset int) (Slot, bool) {
	if offset < 0 {
		return Slot{}, false
	}
	frozenSize := s.GetFrozenSize()
	if offset < frozenSize {
		for _, sl := range slots {
			if sl.Frozen && offset >= sl.Offset && offset < sl.End() {
				return sl, true
			}
		}
		return Slot{}, false
	}
	base := s.GetPositionByScrollIndex(first)
	if base < 0 {
		return Slot{}, false
	}
	si := s.GetScrollIndexOnPosition(base + offset - frozenSize)
	if si < 0 {
		return Slot{}, false
	}
	ri := si + s.FrozenCount()
	for _, sl := range slots {
		if sl.Real == ri {
			return sl, true
		}
	}
	return Slot{}, false
}
