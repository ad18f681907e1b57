package core

// revealFrames is the length of the partial-connector glyph cycle the
// render layer draws at the frontier depth.
const revealFrames = 3

// RevealAnimator is the timed state machine behind the growing-tree
// effect. Depth levels are disclosed one per tick until every level is
// out, then the animator latches Complete and freezes.
//
// Revealing by depth rather than by flat index makes whole tree levels
// appear together and keeps the visible set a strictly growing prefix,
// so scroll and selection logic never deal with arbitrary subsets.
type RevealAnimator struct {
	maxDepth      int
	revealedDepth int
	complete      bool
	frame         int
}

// NewRevealAnimator creates an animator for a tree whose deepest level
// is maxDepth. Only the root (depth 0) is visible before the first
// tick.
func NewRevealAnimator(maxDepth int) *RevealAnimator {
	return &RevealAnimator{maxDepth: maxDepth}
}

// Tick advances the reveal by one depth level. Once revealedDepth
// passes maxDepth the animator transitions to Complete; further ticks
// do nothing and the frame counter stays frozen.
func (a *RevealAnimator) Tick() {
	if a.complete {
		return
	}
	a.revealedDepth++
	a.frame = (a.frame + 1) % revealFrames
	if a.revealedDepth > a.maxDepth {
		a.complete = true
	}
}

// IsVisible reports whether a node at the given depth is currently
// part of the user-facing tree. Every component filters through this
// predicate; nothing keeps its own notion of visibility.
func (a *RevealAnimator) IsVisible(depth int) bool {
	return depth <= a.revealedDepth
}

// RevealedDepth returns the deepest currently-disclosed level. This is
// also the frontier depth eligible for partial-connector glyphs while
// the animation runs.
func (a *RevealAnimator) RevealedDepth() int {
	return a.revealedDepth
}

// Complete reports whether the whole tree has been disclosed.
func (a *RevealAnimator) Complete() bool {
	return a.complete
}

// Frame returns the cyclic frame counter driving the frontier glyphs.
func (a *RevealAnimator) Frame() int {
	return a.frame
}
