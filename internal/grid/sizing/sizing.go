// Package sizing maps the logical items of one grid axis (columns or rows)
// to their rendered order and pixel offsets.
//
// Three index spaces are involved:
//
//   - model index: position in the underlying, unfiltered data order
//   - real index: rendered position, frozen items first, hidden items removed
//   - scroll index: position among the items that are neither frozen nor hidden
//
// Derived lookup data lives in an immutable snapshot that BuildIndex replaces
// wholesale. SeriesSizes is not safe for concurrent mutation; the owner must
// serialize calls (the grid event loop does this).
package sizing

import (
	"maps"
	"slices"
	"sort"
)

// MinSize is the smallest size an item can have. Smaller sizes are raised to it
// so that positions stay strictly increasing.
const MinSize = 1

type override struct {
	size   int
	byUser bool
}

// SeriesSizes holds the sizing configuration of one axis and the index built
// from it.
type SeriesSizes struct {
	defaultSize int
	maxSize     int
	count       int

	overrides map[int]override
	hidden    []int
	frozen    []int

	idx *snapshot
}

// New creates an empty axis. maxSize caps automatic overrides only.
func New(defaultSize, maxSize int) *SeriesSizes {
	if defaultSize < MinSize {
		defaultSize = MinSize
	}
	if maxSize < defaultSize {
		maxSize = defaultSize
	}
	return &SeriesSizes{
		defaultSize: defaultSize,
		maxSize:     maxSize,
		overrides:   make(map[int]override),
		idx:         &snapshot{defaultSize: defaultSize},
	}
}

// Count returns the number of model items.
func (s *SeriesSizes) Count() int {
	return s.count
}

// SetCount sets the number of model items. Call BuildIndex afterwards.
func (s *SeriesSizes) SetCount(n int) {
	s.count = max(n, 0)
}

// DefaultSize returns the size used for items without an override.
func (s *SeriesSizes) DefaultSize() int {
	return s.defaultSize
}

// SetDefaultSize changes the fallback size. Call BuildIndex afterwards.
func (s *SeriesSizes) SetDefaultSize(size int) {
	s.defaultSize = max(size, MinSize)
	if s.maxSize < s.defaultSize {
		s.maxSize = s.defaultSize
	}
}

// MaxSize returns the cap applied to automatic overrides.
func (s *SeriesSizes) MaxSize() int {
	return s.maxSize
}

// SetMaxSize changes the cap applied to automatic overrides. It never goes
// below the default size.
func (s *SeriesSizes) SetMaxSize(size int) {
	s.maxSize = max(size, s.defaultSize)
}

// PutSizeOverride records a size for a model index.
//
// Automatic overrides (sizeByUser false) are clamped to MaxSize and only grow:
// a smaller value than the stored one is ignored, and an override set by the
// user is never touched. User overrides replace unconditionally and are not
// capped. The index is not rebuilt.
func (s *SeriesSizes) PutSizeOverride(modelIndex, size int, sizeByUser bool) {
	if modelIndex < 0 {
		return
	}
	size = max(size, MinSize)
	if !sizeByUser {
		size = min(size, s.maxSize)
		if cur, ok := s.overrides[modelIndex]; ok && (cur.byUser || cur.size >= size) {
			return
		}
	}
	s.overrides[modelIndex] = override{size: size, byUser: sizeByUser}
}

// Resize sets the size of the item at realIndex as a user action and rebuilds
// the index. Out-of-range indexes are ignored.
func (s *SeriesSizes) Resize(realIndex, newSize int) {
	m := s.RealToModel(realIndex)
	if m < 0 {
		return
	}
	s.PutSizeOverride(m, newSize, true)
	s.BuildIndex()
}

// RemoveSizeOverride drops the override of the item at realIndex. The caller
// must rebuild the index.
func (s *SeriesSizes) RemoveSizeOverride(realIndex int) {
	m := s.RealToModel(realIndex)
	if m < 0 {
		return
	}
	delete(s.overrides, m)
}

// ResetAutomaticOverrides drops every override that was not set by the user.
// The caller must rebuild the index.
func (s *SeriesSizes) ResetAutomaticOverrides() {
	maps.DeleteFunc(s.overrides, func(_ int, o override) bool {
		return !o.byUser
	})
}

// IsUserSized reports whether the model index carries a user override.
func (s *SeriesSizes) IsUserSized(modelIndex int) bool {
	o, ok := s.overrides[modelIndex]
	return ok && o.byUser
}

// SetExtraordinaryIndexes replaces the hidden and frozen model index sets and
// rebuilds the index. Negative entries are dropped and both lists are sorted.
// An index present in both lists is frozen, not hidden.
func (s *SeriesSizes) SetExtraordinaryIndexes(hidden, frozen []int) {
	s.frozen = normalize(frozen)
	s.hidden = slices.DeleteFunc(normalize(hidden), func(m int) bool {
		_, found := slices.BinarySearch(s.frozen, m)
		return found
	})
	s.BuildIndex()
}

// HiddenIndexes returns the effective hidden model indexes.
func (s *SeriesSizes) HiddenIndexes() []int {
	return slices.Clone(s.hidden)
}

// FrozenIndexes returns the frozen model indexes in ascending order.
func (s *SeriesSizes) FrozenIndexes() []int {
	return slices.Clone(s.frozen)
}

// IsFrozen reports whether the model index is frozen.
func (s *SeriesSizes) IsFrozen(modelIndex int) bool {
	_, found := slices.BinarySearch(s.frozen, modelIndex)
	return found
}

// BuildIndex recomputes the snapshot from the current configuration.
func (s *SeriesSizes) BuildIndex() {
	s.idx = s.build()
}

func (s *SeriesSizes) build() *snapshot {
	n := s.count
	ix := &snapshot{defaultSize: s.defaultSize, count: n}

	ix.frozen = slices.Clone(below(s.frozen, n))
	hidden := below(s.hidden, n)
	excluded := mergeSorted(hidden, ix.frozen)
	ix.scrollCount = n - len(excluded)

	pos := 0
	ix.frozenPos = make([]int, len(ix.frozen))
	ix.frozenSizes = make([]int, len(ix.frozen))
	for i, m := range ix.frozen {
		size := s.modelSize(m)
		ix.frozenPos[i] = pos
		ix.frozenSizes[i] = size
		pos += size
	}
	ix.frozenSize = pos

	keys := slices.Sorted(maps.Keys(s.overrides))
	pos, prev := 0, -1
	for _, m := range keys {
		if m >= n {
			break
		}
		skipped := sort.SearchInts(excluded, m)
		if skipped < len(excluded) && excluded[skipped] == m {
			continue
		}
		si := m - skipped
		size := s.overrides[m].size
		pos += (si - prev - 1) * s.defaultSize
		ix.cpIndex = append(ix.cpIndex, si)
		ix.cpPos = append(ix.cpPos, pos)
		ix.cpSize = append(ix.cpSize, size)
		pos += size
		prev = si
	}

	if len(excluded) == 0 {
		return ix
	}
	ix.realToModel = make([]int, 0, len(ix.frozen)+ix.scrollCount)
	ix.realToModel = append(ix.realToModel, ix.frozen...)
	ix.modelToReal = make([]int, n)
	for m := range ix.modelToReal {
		ix.modelToReal[m] = -1
	}
	for r, m := range ix.frozen {
		ix.modelToReal[m] = r
	}
	e := 0
	for m := 0; m < n; m++ {
		if e < len(excluded) && excluded[e] == m {
			e++
			continue
		}
		ix.modelToReal[m] = len(ix.realToModel)
		ix.realToModel = append(ix.realToModel, m)
	}
	return ix
}

func (s *SeriesSizes) modelSize(m int) int {
	if o, ok := s.overrides[m]; ok {
		return o.size
	}
	return s.defaultSize
}

// RealCount returns the number of rendered items.
func (s *SeriesSizes) RealCount() int {
	return s.idx.realCount()
}

// ScrollCount returns the number of scrollable items.
func (s *SeriesSizes) ScrollCount() int {
	return s.idx.scrollCount
}

// FrozenCount returns the number of frozen items.
func (s *SeriesSizes) FrozenCount() int {
	return len(s.idx.frozen)
}

// RealToModel returns the model index rendered at realIndex, or -1.
func (s *SeriesSizes) RealToModel(realIndex int) int {
	ix := s.idx
	if realIndex < 0 || realIndex >= ix.realCount() {
		return -1
	}
	if ix.realToModel == nil {
		return realIndex
	}
	return ix.realToModel[realIndex]
}

// ModelToReal returns the rendered position of modelIndex, or -1 when it is
// hidden or out of range.
func (s *SeriesSizes) ModelToReal(modelIndex int) int {
	ix := s.idx
	if modelIndex < 0 || modelIndex >= ix.count {
		return -1
	}
	if ix.modelToReal == nil {
		return modelIndex
	}
	return ix.modelToReal[modelIndex]
}

// ScrollToModel returns the model index at scrollIndex, or -1.
func (s *SeriesSizes) ScrollToModel(scrollIndex int) int {
	if scrollIndex < 0 || scrollIndex >= s.idx.scrollCount {
		return -1
	}
	return s.RealToModel(scrollIndex + len(s.idx.frozen))
}

// GetSizeByModelIndex returns the size of a model item, or -1.
func (s *SeriesSizes) GetSizeByModelIndex(modelIndex int) int {
	if modelIndex < 0 || modelIndex >= s.count {
		return -1
	}
	return s.modelSize(modelIndex)
}

// GetSizeByScrollIndex returns the size of a scrollable item, or -1.
func (s *SeriesSizes) GetSizeByScrollIndex(scrollIndex int) int {
	ix := s.idx
	if scrollIndex < 0 || scrollIndex >= ix.scrollCount {
		return -1
	}
	return ix.size(scrollIndex)
}

// GetSizeByRealIndex returns the size of a rendered item, or -1.
func (s *SeriesSizes) GetSizeByRealIndex(realIndex int) int {
	ix := s.idx
	if realIndex < 0 {
		return -1
	}
	if realIndex < len(ix.frozen) {
		return ix.frozenSizes[realIndex]
	}
	return s.GetSizeByScrollIndex(realIndex - len(ix.frozen))
}

// GetPositionByScrollIndex returns the offset of a scrollable item from the
// start of the scroll area, or -1. scrollIndex may equal ScrollCount, which
// yields the total scroll extent.
func (s *SeriesSizes) GetPositionByScrollIndex(scrollIndex int) int {
	ix := s.idx
	if scrollIndex < 0 || scrollIndex > ix.scrollCount {
		return -1
	}
	return ix.position(scrollIndex)
}

// GetPositionByRealIndex returns the offset of a rendered item, or -1. Frozen
// items are measured from the start of the frozen area, scrollable items from
// the start of the scroll area.
func (s *SeriesSizes) GetPositionByRealIndex(realIndex int) int {
	ix := s.idx
	if realIndex < 0 || realIndex >= ix.realCount() {
		return -1
	}
	if realIndex < len(ix.frozen) {
		return ix.frozenPos[realIndex]
	}
	return ix.position(realIndex - len(ix.frozen))
}

// GetFrozenSize returns the summed size of all frozen items.
func (s *SeriesSizes) GetFrozenSize() int {
	return s.idx.frozenSize
}

// GetFrozenPosition returns the offset of the frozenIndex-th frozen item from
// the start of the frozen area, or -1.
func (s *SeriesSizes) GetFrozenPosition(frozenIndex int) int {
	ix := s.idx
	if frozenIndex < 0 || frozenIndex >= len(ix.frozen) {
		return -1
	}
	return ix.frozenPos[frozenIndex]
}

// GetScrollIndexOnPosition returns the scrollable item covering pos, measured
// from the start of the scroll area, or -1 when pos is outside the extent.
func (s *SeriesSizes) GetScrollIndexOnPosition(pos int) int {
	ix := s.idx
	if pos < 0 || pos >= ix.position(ix.scrollCount) {
		return -1
	}
	return sort.Search(ix.scrollCount, func(i int) bool {
		return ix.position(i+1) > pos
	})
}

// GetVisibleScrollCount returns how many items starting at firstVisible are
// needed to cover viewportSize. The last item may be partially visible.
func (s *SeriesSizes) GetVisibleScrollCount(firstVisible, viewportSize int) int {
	ix := s.idx
	if firstVisible < 0 || firstVisible >= ix.scrollCount {
		return 0
	}
	count, total := 0, 0
	for i := firstVisible; i < ix.scrollCount && total < viewportSize; i++ {
		total += ix.size(i)
		count++
	}
	return count
}

// GetVisibleScrollCountReversed is the mirror of GetVisibleScrollCount,
// walking backwards from lastVisible.
func (s *SeriesSizes) GetVisibleScrollCountReversed(lastVisible, viewportSize int) int {
	ix := s.idx
	if lastVisible < 0 || lastVisible >= ix.scrollCount {
		return 0
	}
	count, total := 0, 0
	for i := lastVisible; i >= 0 && total < viewportSize; i-- {
		total += ix.size(i)
		count++
	}
	return count
}

// IsWholeInView reports whether the item at index ends inside the viewport
// when rendering starts at firstVisible.
func (s *SeriesSizes) IsWholeInView(firstVisible, index, viewportSize int) bool {
	ix := s.idx
	if firstVisible < 0 || index < firstVisible || index >= ix.scrollCount {
		return false
	}
	end := ix.position(index) + ix.size(index)
	return end-ix.position(firstVisible) <= viewportSize
}

// ScrollInView returns the smallest first visible index, not before
// firstVisible, that shows targetIndex entirely. A target before firstVisible
// becomes the new first item. A target larger than the viewport is shown from
// its start.
func (s *SeriesSizes) ScrollInView(firstVisible, targetIndex, viewportSize int) int {
	sc := s.idx.scrollCount
	if sc == 0 {
		return 0
	}
	firstVisible = clamp(firstVisible, 0, sc-1)
	targetIndex = clamp(targetIndex, 0, sc-1)
	if targetIndex <= firstVisible || s.IsWholeInView(firstVisible, targetIndex, viewportSize) {
		return min(firstVisible, targetIndex)
	}
	lo, hi := firstVisible+1, targetIndex
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.IsWholeInView(mid, targetIndex, viewportSize) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// snapshot is the derived, read-only index of one axis.
type snapshot struct {
	defaultSize int
	count       int
	scrollCount int

	frozen      []int
	frozenPos   []int
	frozenSizes []int
	frozenSize  int

	// Checkpoints: overridden scrollable items in ascending scroll order.
	cpIndex []int
	cpPos   []int
	cpSize  []int

	// nil when nothing is hidden or frozen and real equals model.
	realToModel []int
	modelToReal []int
}

func (ix *snapshot) realCount() int {
	return len(ix.frozen) + ix.scrollCount
}

func (ix *snapshot) size(scrollIndex int) int {
	k := sort.SearchInts(ix.cpIndex, scrollIndex)
	if k < len(ix.cpIndex) && ix.cpIndex[k] == scrollIndex {
		return ix.cpSize[k]
	}
	return ix.defaultSize
}

// position extrapolates with the default size past the nearest checkpoint.
func (ix *snapshot) position(scrollIndex int) int {
	k := sort.SearchInts(ix.cpIndex, scrollIndex+1) - 1
	if k < 0 {
		return scrollIndex * ix.defaultSize
	}
	if ix.cpIndex[k] == scrollIndex {
		return ix.cpPos[k]
	}
	return ix.cpPos[k] + ix.cpSize[k] + (scrollIndex-ix.cpIndex[k]-1)*ix.defaultSize
}

func normalize(in []int) []int {
	out := make([]int, 0, len(in))
	for _, v := range in {
		if v >= 0 {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// below returns the prefix of a sorted slice with values under n.
func below(sorted []int, n int) []int {
	return sorted[:sort.SearchInts(sorted, n)]
}

func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
