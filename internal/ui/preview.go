package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/sprout/internal/core"
)

// PreviewPanel lists the selected directory's immediate children.
type PreviewPanel struct {
	width  int
	height int
}

// SetSize sets the panel dimensions.
func (p *PreviewPanel) SetSize(w, h int) {
	p.width = w
	p.height = h
}

// View renders the preview panel.
func (p PreviewPanel) View(ctrl *core.Controller) string {
	maxLines := p.height - 2
	if maxLines < 1 {
		maxLines = 1
	}
	maxW := p.width - 4

	node, ok := ctrl.SelectedNode()
	if !ok {
		content := PanelTitleStyle.Render(" Preview") + "\n" +
			DimStyle.Render(" Select a folder to preview")
		return PanelStyle.Width(p.width - 2).Height(p.height - 2).Render(content)
	}

	pv := ctrl.Preview()
	entries := pv.Entries()

	var lines []string
	lines = append(lines, PanelTitleStyle.Render(fmt.Sprintf(" 📁 %s (%d)", node.Name, len(entries))))

	if len(entries) == 0 {
		lines = append(lines, DimStyle.Render(" empty"))
	}

	for i := pv.Offset(); i < len(entries) && len(lines) < maxLines; i++ {
		e := entries[i]

		var line string
		if e.IsDir {
			line = PreviewDirStyle.Render(fmt.Sprintf(" 📁 %s/", e.Name))
		} else {
			detail := FormatSize(e.Size)
			if e.Kind != "" {
				detail = e.Kind + " · " + detail
			}
			line = PreviewFileStyle.Render(fmt.Sprintf(" 📄 %s ", e.Name)) + LabelStyle.Render(detail)
		}
		lines = append(lines, lipgloss.NewStyle().MaxWidth(maxW).Render(line))
	}

	return PanelStyle.Width(p.width - 2).Height(p.height - 2).Render(strings.Join(lines, "\n"))
}
