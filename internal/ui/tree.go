package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/sprout/internal/core"
	"github.com/lumipallolabs/sprout/internal/model"
)

// TreePanel displays the animated directory tree.
type TreePanel struct {
	width  int
	height int
}

// SetSize sets the panel dimensions.
func (t *TreePanel) SetSize(w, h int) {
	t.width = w
	t.height = h
}

// ListHeight returns how many tree rows fit inside the borders.
func (t TreePanel) ListHeight() int {
	h := t.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

// View renders the tree. The frame is drawn by hand so the title sits
// in the top border: list row r of the viewport is exactly screen row
// r+1, which is what the click handler assumes.
func (t TreePanel) View(ctrl *core.Controller) string {
	idx := ctrl.Index()
	anim := ctrl.Animator()
	vp := ctrl.Viewport()

	visible := vp.VisibleIndices()
	rows := t.ListHeight()
	innerW := t.width - 2
	if innerW < 1 {
		innerW = 1
	}

	glyph := "🌳"
	if !anim.Complete() {
		glyph = "🌿"
	}
	title := fmt.Sprintf(" %s (%d/%d) - Depth %d/%d ",
		glyph, len(visible), idx.Len(), anim.RevealedDepth(), idx.Stats.MaxDepth)
	if lipgloss.Width(title) > innerW-2 {
		title = ""
	}

	borderStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	fill := innerW - 1 - lipgloss.Width(title)

	var b strings.Builder
	b.WriteString(borderStyle.Render("╭─"))
	b.WriteString(PanelTitleStyle.Render(title))
	b.WriteString(borderStyle.Render(strings.Repeat("─", fill) + "╮"))
	b.WriteString("\n")

	for r := 0; r < rows; r++ {
		var line string
		li := vp.Offset() + r
		if li < len(visible) {
			line = t.renderNode(ctrl, visible, li, innerW)
		}
		pad := innerW - lipgloss.Width(line)
		if pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString(borderStyle.Render("│") + line + borderStyle.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(borderStyle.Render("╰" + strings.Repeat("─", innerW) + "╯"))
	return b.String()
}

// renderNode builds one styled tree row.
func (t TreePanel) renderNode(ctrl *core.Controller, visible []int, li, innerW int) string {
	idx := ctrl.Index()
	nodeIdx := visible[li]
	node := idx.At(nodeIdx)

	prefix := connectorPrefix(idx, ctrl.Animator(), visible, li)

	icon := "📁"
	if node.Depth == 0 {
		icon = "🌱"
	}
	name := node.Name
	if name == "" {
		name = node.Path
	}

	itemStyle := TreeItemStyle
	if nodeIdx == ctrl.Viewport().SelectedIndex() {
		itemStyle = TreeItemSelected
	}

	line := ConnectorStyle.Render(prefix) + itemStyle.Render(fmt.Sprintf("%s %s", icon, name))
	return lipgloss.NewStyle().MaxWidth(innerW).Render(line)
}

// connectorPrefix builds the box-drawing prefix for the node at
// listIdx in the visible ordering: continuation bars for ancestors
// that still have entries below, then the node's own tee or corner.
// The frontier depth cycles through partial connectors while the
// reveal animation runs.
func connectorPrefix(idx *model.Index, anim *core.RevealAnimator, visible []int, listIdx int) string {
	node := idx.At(visible[listIdx])
	if node.Depth == 0 {
		return ""
	}

	var b strings.Builder
	for ancestorDepth := 1; ancestorDepth < node.Depth; ancestorDepth++ {
		ancestor := model.AncestorAt(node.Path, node.Depth-ancestorDepth)

		// A vertical bar is needed while some later visible node still
		// hangs under the same ancestor.
		hasMore := false
		for _, futureIdx := range visible[listIdx+1:] {
			future := idx.At(futureIdx)
			if future.Depth >= ancestorDepth &&
				model.AncestorAt(future.Path, future.Depth-ancestorDepth) == ancestor {
				hasMore = true
				break
			}
		}

		if hasMore {
			b.WriteString("│   ")
		} else {
			b.WriteString("    ")
		}
	}

	base := "├── "
	stem := "├"
	if node.IsLastSibling {
		base = "╰── "
		stem = "╰"
	}

	// Growing-roots effect at the frontier depth.
	if !anim.Complete() && node.Depth == anim.RevealedDepth() {
		switch anim.Frame() {
		case 0:
			b.WriteString(stem + "─")
		case 1:
			b.WriteString(stem + "──")
		default:
			b.WriteString(base)
		}
	} else {
		b.WriteString(base)
	}

	return b.String()
}
