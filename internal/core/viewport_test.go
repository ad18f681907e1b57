package core

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumipallolabs/sprout/internal/model"
)

// testIndex builds an in-memory index from slash paths relative to a
// fake root. All entries are directories.
func testIndex(t *testing.T, paths ...string) *model.Index {
	t.Helper()
	root := filepath.FromSlash("/fake/root")
	entries := make([]model.Entry, 0, len(paths))
	for _, p := range paths {
		entries = append(entries, model.Entry{
			Path:  filepath.Join(root, filepath.FromSlash(p)),
			Name:  filepath.Base(p),
			Depth: strings.Count(p, "/") + 1,
			IsDir: true,
		})
	}
	return model.BuildIndex(root, entries)
}

// completedViewport returns a viewport whose animation has finished.
func completedViewport(t *testing.T, paths ...string) (*ViewportController, *RevealAnimator) {
	t.Helper()
	idx := testIndex(t, paths...)
	anim := NewRevealAnimator(idx.Stats.MaxDepth)
	for !anim.Complete() {
		anim.Tick()
	}
	return NewViewportController(idx, anim), anim
}

func TestVisibleIndicesGrowWithReveal(t *testing.T) {
	idx := testIndex(t, "a", "a/x", "a/x/deep", "b")
	anim := NewRevealAnimator(idx.Stats.MaxDepth)
	v := NewViewportController(idx, anim)

	assert.Equal(t, []int{0}, v.VisibleIndices(), "only the root before the first tick")

	anim.Tick()
	assert.Len(t, v.VisibleIndices(), 3, "root, a, b at depth 1")

	anim.Tick()
	assert.Len(t, v.VisibleIndices(), 4)

	anim.Tick()
	assert.Len(t, v.VisibleIndices(), 5, "everything revealed")
}

func TestScrollClampWithinBounds(t *testing.T) {
	v, _ := completedViewport(t, "a", "b", "c", "d", "e", "f")
	const height = 3
	n := len(v.VisibleIndices())

	v.ScrollUp()
	assert.Equal(t, 0, v.Offset(), "scrolling up at the top is a no-op")

	for i := 0; i < 50; i++ {
		v.ScrollDown(height)
	}
	assert.Equal(t, n-height, v.Offset(), "scroll stops at N-H")

	v.PageUp()
	assert.Equal(t, 0, v.Offset())

	v.PageDown(height)
	assert.Equal(t, n-height, v.Offset(), "a page is ten clamped single lines")
}

func TestScrollClampOnShortList(t *testing.T) {
	v, _ := completedViewport(t, "a")
	v.ScrollDown(10)
	v.PageDown(10)
	assert.Equal(t, 0, v.Offset(), "viewport taller than the list never scrolls")
}

func TestSelectionMovesThroughVisibleSet(t *testing.T) {
	v, _ := completedViewport(t, "a", "a/x", "b")
	const height = 10

	assert.Equal(t, -1, v.SelectedIndex())

	require.True(t, v.SelectNext())
	assert.Equal(t, 0, v.SelectedIndex(), "first selection lands on the root")

	require.True(t, v.SelectNext())
	require.True(t, v.SelectNext())
	require.True(t, v.SelectNext())
	assert.Equal(t, 3, v.SelectedIndex())

	assert.False(t, v.SelectNext(), "no-op past the end")
	assert.Equal(t, 3, v.SelectedIndex())

	require.True(t, v.SelectPrevious())
	assert.Equal(t, 2, v.SelectedIndex())

	v.EnsureSelectedVisible(height)
	assert.Equal(t, 0, v.Offset())
}

func TestSelectionNeverLandsBeyondRevealedDepth(t *testing.T) {
	idx := testIndex(t, "a", "a/x", "a/x/deep", "b")
	anim := NewRevealAnimator(idx.Stats.MaxDepth)
	v := NewViewportController(idx, anim)
	anim.Tick() // only depths 0 and 1 revealed

	for i := 0; i < 10; i++ {
		v.SelectNext()
		sel := v.SelectedIndex()
		require.GreaterOrEqual(t, sel, 0)
		assert.LessOrEqual(t, idx.At(sel).Depth, anim.RevealedDepth())
	}
}

func TestSelectionOnEmptyVisibleSetIsNoOp(t *testing.T) {
	idx := &model.Index{Root: "/fake"}
	anim := NewRevealAnimator(0)
	v := NewViewportController(idx, anim)

	assert.False(t, v.SelectNext())
	assert.False(t, v.SelectPrevious())
	assert.Equal(t, -1, v.SelectedIndex())
}

func TestEnsureSelectedVisibleScrollsMinimally(t *testing.T) {
	v, _ := completedViewport(t, "a", "b", "c", "d", "e", "f", "g")
	const height = 3

	// Walk selection to the bottom; the selected row must always stay
	// inside [offset, offset+height).
	for i := 0; i < len(v.VisibleIndices()); i++ {
		v.SelectNext()
		v.EnsureSelectedVisible(height)
		pos := v.SelectedIndex() // index == position here: all visible, pre-order
		assert.GreaterOrEqual(t, pos, v.Offset())
		assert.Less(t, pos, v.Offset()+height)
	}
	// Selected is the last row; it is the last visible line.
	assert.Equal(t, len(v.VisibleIndices())-height, v.Offset())

	// Jump the offset away and snap back up.
	for i := 0; i < 5; i++ {
		v.SelectPrevious()
	}
	v.EnsureSelectedVisible(height)
	assert.Equal(t, v.SelectedIndex(), v.Offset(), "scrolling up snaps the selection to the top row")
}

func TestHandleClickRejectedWhileGrowing(t *testing.T) {
	idx := testIndex(t, "a", "b")
	anim := NewRevealAnimator(idx.Stats.MaxDepth)
	v := NewViewportController(idx, anim)

	action, _ := v.HandleClick(2, 0, 10, time.Now())
	assert.Equal(t, ClickNone, action, "viewport is not interactive during the reveal")
	assert.Equal(t, -1, v.SelectedIndex())
}

func TestHandleClickSelectAndDoubleClick(t *testing.T) {
	v, _ := completedViewport(t, "a", "b", "c")
	const top, height = 0, 10
	t0 := time.Unix(1000, 0)

	// Row 4 maps to visible position 3 (row - top - 1 + offset).
	action, idx := v.HandleClick(4, top, height, t0)
	assert.Equal(t, ClickSelect, action)
	assert.Equal(t, 3, idx)
	assert.Equal(t, 3, v.SelectedIndex())

	// Second click on the same row within 500ms opens.
	action, idx = v.HandleClick(4, top, height, t0.Add(200*time.Millisecond))
	assert.Equal(t, ClickOpen, action)
	assert.Equal(t, 3, idx)

	// Tracking was cleared: the next click is a plain select again.
	action, _ = v.HandleClick(4, top, height, t0.Add(300*time.Millisecond))
	assert.Equal(t, ClickSelect, action)
}

func TestHandleClickDoubleClickWindowExpires(t *testing.T) {
	v, _ := completedViewport(t, "a", "b", "c")
	t0 := time.Unix(1000, 0)

	action, _ := v.HandleClick(4, 0, 10, t0)
	assert.Equal(t, ClickSelect, action)

	action, _ = v.HandleClick(4, 0, 10, t0.Add(600*time.Millisecond))
	assert.Equal(t, ClickSelect, action, "after 500ms the click starts over")
}

func TestHandleClickDifferentRowResetsTracking(t *testing.T) {
	v, _ := completedViewport(t, "a", "b", "c")
	t0 := time.Unix(1000, 0)

	action, _ := v.HandleClick(2, 0, 10, t0)
	assert.Equal(t, ClickSelect, action)

	// Quick click on another row is a fresh select, not an open.
	action, idx := v.HandleClick(3, 0, 10, t0.Add(100*time.Millisecond))
	assert.Equal(t, ClickSelect, action)
	assert.Equal(t, 2, idx)

	// And the retarget armed the new row for a double-click.
	action, _ = v.HandleClick(3, 0, 10, t0.Add(200*time.Millisecond))
	assert.Equal(t, ClickOpen, action)
}

func TestHandleClickIgnoresBorderAndOutOfRangeRows(t *testing.T) {
	v, _ := completedViewport(t, "a")
	const top, height = 0, 5
	now := time.Now()

	for _, row := range []int{top, top + height - 1, top + height, -1, 100} {
		action, _ := v.HandleClick(row, top, height, now)
		assert.Equal(t, ClickNone, action, "row %d must be ignored", row)
	}

	// Rows inside the frame but past the listing are ignored too.
	action, _ := v.HandleClick(top+3, top, height, now)
	assert.Equal(t, ClickNone, action)
}
