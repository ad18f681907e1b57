package core

import (
	"time"

	"github.com/lumipallolabs/sprout/internal/model"
)

// doubleClickWindow is how long two clicks on the same row count as a
// double-click.
const doubleClickWindow = 500 * time.Millisecond

// fastScrollLines is how many single-line steps a page scroll takes.
// Paging repeats the one-line op so the clamping lives in one place.
const fastScrollLines = 10

// ClickAction is the outcome of a pointer click on the tree viewport.
type ClickAction int

const (
	ClickNone ClickAction = iota
	ClickSelect
	ClickOpen
)

// ViewportController owns scroll offset and selection over the
// currently-revealed node set. Nodes are referenced by position in the
// index, never by pointer.
type ViewportController struct {
	index *model.Index
	anim  *RevealAnimator

	offset   int
	selected int // index into index.Nodes, -1 for none

	lastClickIndex int
	lastClickTime  time.Time
}

// NewViewportController creates a viewport over the given index, bound
// to the animator's visible set. Nothing is selected initially.
func NewViewportController(index *model.Index, anim *RevealAnimator) *ViewportController {
	return &ViewportController{
		index:          index,
		anim:           anim,
		selected:       -1,
		lastClickIndex: -1,
	}
}

// VisibleIndices returns the positions of currently-revealed nodes, in
// pre-order.
func (v *ViewportController) VisibleIndices() []int {
	visible := make([]int, 0, v.index.Len())
	for i, n := range v.index.Nodes {
		if v.anim.IsVisible(n.Depth) {
			visible = append(visible, i)
		}
	}
	return visible
}

// Offset returns the current scroll offset into the visible set.
func (v *ViewportController) Offset() int {
	return v.offset
}

// SelectedIndex returns the selected node's position in the index, or
// -1 when nothing is selected.
func (v *ViewportController) SelectedIndex() int {
	return v.selected
}

// ScrollUp scrolls the tree viewport one line towards the top.
func (v *ViewportController) ScrollUp() {
	if v.offset > 0 {
		v.offset--
	}
}

// ScrollDown scrolls one line towards the bottom, clamped so the last
// page of visible nodes stays full.
func (v *ViewportController) ScrollDown(viewportHeight int) {
	maxScroll := len(v.VisibleIndices()) - viewportHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if v.offset < maxScroll {
		v.offset++
	}
}

// PageUp fast-scrolls towards the top.
func (v *ViewportController) PageUp() {
	for i := 0; i < fastScrollLines; i++ {
		v.ScrollUp()
	}
}

// PageDown fast-scrolls towards the bottom.
func (v *ViewportController) PageDown(viewportHeight int) {
	for i := 0; i < fastScrollLines; i++ {
		v.ScrollDown(viewportHeight)
	}
}

// SelectPrevious moves the selection to the previous revealed entry.
// With no selection it lands on the first visible node. Reports
// whether the selection changed.
func (v *ViewportController) SelectPrevious() bool {
	return v.moveSelection(-1)
}

// SelectNext moves the selection to the next revealed entry. With no
// selection it lands on the first visible node. Reports whether the
// selection changed.
func (v *ViewportController) SelectNext() bool {
	return v.moveSelection(1)
}

func (v *ViewportController) moveSelection(delta int) bool {
	visible := v.VisibleIndices()
	if len(visible) == 0 {
		return false
	}
	if v.selected < 0 {
		v.selected = visible[0]
		return true
	}

	pos := v.visiblePosition(visible, v.selected)
	if pos < 0 {
		// Selection somehow not in the visible set; reset to the top.
		v.selected = visible[0]
		return true
	}

	pos += delta
	if pos < 0 || pos >= len(visible) {
		return false // no-op at either end
	}
	v.selected = visible[pos]
	return true
}

// EnsureSelectedVisible adjusts the scroll offset minimally so the
// selected entry lies within the viewport.
func (v *ViewportController) EnsureSelectedVisible(viewportHeight int) {
	if v.selected < 0 || viewportHeight < 1 {
		return
	}
	pos := v.visiblePosition(v.VisibleIndices(), v.selected)
	if pos < 0 {
		return
	}
	if pos < v.offset {
		v.offset = pos
	} else if pos >= v.offset+viewportHeight {
		v.offset = pos - viewportHeight + 1
	}
}

// HandleClick maps a pointer row to a node and applies the
// click/double-click protocol. The viewport is not interactive while
// the reveal animation runs. Rows outside the list area, including the
// border rows, are ignored.
func (v *ViewportController) HandleClick(row, viewportTop, viewportHeight int, now time.Time) (ClickAction, int) {
	if !v.anim.Complete() {
		return ClickNone, -1
	}
	if row <= viewportTop || row >= viewportTop+viewportHeight-1 {
		return ClickNone, -1
	}

	visible := v.VisibleIndices()
	clicked := row - viewportTop - 1 + v.offset
	if clicked < 0 || clicked >= len(visible) {
		return ClickNone, -1
	}
	nodeIdx := visible[clicked]

	if v.lastClickIndex == nodeIdx && now.Sub(v.lastClickTime) < doubleClickWindow {
		v.lastClickIndex = -1
		v.lastClickTime = time.Time{}
		if v.index.At(nodeIdx).IsDir {
			return ClickOpen, nodeIdx
		}
		return ClickNone, nodeIdx
	}

	// Fresh single click; a click on a different row never carries
	// double-click state over.
	v.lastClickIndex = nodeIdx
	v.lastClickTime = now
	v.selected = nodeIdx
	return ClickSelect, nodeIdx
}

// visiblePosition returns the position of nodeIdx within the visible
// ordering, or -1.
func (v *ViewportController) visiblePosition(visible []int, nodeIdx int) int {
	for pos, idx := range visible {
		if idx == nodeIdx {
			return pos
		}
	}
	return -1
}
