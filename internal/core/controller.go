package core

import (
	"time"

	"github.com/lumipallolabs/sprout/internal/logging"
	"github.com/lumipallolabs/sprout/internal/model"
)

// Controller manages the core application logic without UI
// dependencies: the immutable index, the reveal animation, the tree
// viewport and the preview pane. The render layer reads its state each
// frame and feeds it input events.
type Controller struct {
	index    *model.Index
	anim     *RevealAnimator
	viewport *ViewportController
	preview  *PreviewLoader

	// opener reveals a path in the platform file manager; injected by
	// the UI layer so core stays free of exec calls.
	opener func(path string) error
}

// NewController creates a controller over a built index.
func NewController(index *model.Index) *Controller {
	anim := NewRevealAnimator(index.Stats.MaxDepth)
	return &Controller{
		index:    index,
		anim:     anim,
		viewport: NewViewportController(index, anim),
		preview:  NewPreviewLoader(),
	}
}

// SetOpener installs the platform "open in file manager" action.
func (c *Controller) SetOpener(opener func(path string) error) {
	c.opener = opener
}

// Index returns the immutable directory index.
func (c *Controller) Index() *model.Index {
	return c.index
}

// Animator returns the reveal animator.
func (c *Controller) Animator() *RevealAnimator {
	return c.anim
}

// Viewport returns the tree viewport controller.
func (c *Controller) Viewport() *ViewportController {
	return c.viewport
}

// Preview returns the preview loader.
func (c *Controller) Preview() *PreviewLoader {
	return c.preview
}

// Tick advances the reveal animation one step.
func (c *Controller) Tick() {
	c.anim.Tick()
}

// SelectedNode returns the selected node and true, or a zero node and
// false when nothing is selected.
func (c *Controller) SelectedNode() (model.Node, bool) {
	idx := c.viewport.SelectedIndex()
	if idx < 0 {
		return model.Node{}, false
	}
	return c.index.At(idx), true
}

// SelectPrevious moves the selection up and refreshes the preview on
// change.
func (c *Controller) SelectPrevious(viewportHeight int) {
	if c.viewport.SelectPrevious() {
		c.viewport.EnsureSelectedVisible(viewportHeight)
		c.refreshPreview()
	}
}

// SelectNext moves the selection down and refreshes the preview on
// change.
func (c *Controller) SelectNext(viewportHeight int) {
	if c.viewport.SelectNext() {
		c.viewport.EnsureSelectedVisible(viewportHeight)
		c.refreshPreview()
	}
}

// HandleClick routes a pointer click through the viewport. A select
// refreshes the preview; a double-click opens the directory in the
// platform file manager.
func (c *Controller) HandleClick(row, viewportTop, viewportHeight int, now time.Time) {
	action, idx := c.viewport.HandleClick(row, viewportTop, viewportHeight, now)
	switch action {
	case ClickSelect:
		c.refreshPreview()
	case ClickOpen:
		c.OpenPath(c.index.At(idx).Path)
	}
}

// OpenPath hands a path to the injected file-manager action.
func (c *Controller) OpenPath(path string) {
	if c.opener == nil {
		return
	}
	if err := c.opener(path); err != nil {
		logging.Debug.Printf("[Controller] open %s: %v", path, err)
	}
}

// refreshPreview rebuilds the preview listing for the current
// selection, synchronously and from scratch.
func (c *Controller) refreshPreview() {
	node, ok := c.SelectedNode()
	if !ok {
		c.preview.Clear()
		return
	}
	c.preview.Load(node.Path)
}
