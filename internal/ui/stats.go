package ui

import (
	"fmt"
	"strings"

	"github.com/lumipallolabs/sprout/internal/core"
	"github.com/lumipallolabs/sprout/internal/model"
)

const diskGaugeWidth = 20

// StatsPanel shows the aggregate numbers for the scanned tree plus the
// key hints.
type StatsPanel struct {
	width  int
	height int

	diskTotal int64
	diskFree  int64
}

// SetSize sets the panel dimensions.
func (s *StatsPanel) SetSize(w, h int) {
	s.width = w
	s.height = h
}

// MeasureDisk samples the filesystem holding root once; the gauge is
// hidden when the numbers are unavailable.
func (s *StatsPanel) MeasureDisk(root string) {
	s.diskTotal, s.diskFree = model.DiskUsage(root)
}

// View renders the stats panel.
func (s StatsPanel) View(ctrl *core.Controller) string {
	stats := ctrl.Index().Stats

	var lines []string
	lines = append(lines, PanelTitleStyle.Render(" Statistics"))
	lines = append(lines, "")
	lines = append(lines, LabelStyle.Render(" Path: ")+ValueStyle.Render(ctrl.Index().Root))
	lines = append(lines, "")
	lines = append(lines, LabelStyle.Render(" Folders: ")+PreviewDirStyle.Render(fmt.Sprintf("%d", stats.TotalDirs)))
	lines = append(lines, LabelStyle.Render(" Files: ")+ValueStyle.Render(fmt.Sprintf("%d", stats.TotalFiles)))
	lines = append(lines, LabelStyle.Render(" Total Items: ")+ValueStyle.Render(fmt.Sprintf("%d", stats.TotalDirs+stats.TotalFiles)))
	lines = append(lines, LabelStyle.Render(" Total Size: ")+ValueStyle.Render(FormatSize(stats.TotalSize)))
	lines = append(lines, LabelStyle.Render(" Max Depth: ")+ValueStyle.Render(fmt.Sprintf("%d", stats.MaxDepth)))

	if s.diskTotal > 0 {
		used := s.diskTotal - s.diskFree
		filled := int(float64(used) / float64(s.diskTotal) * diskGaugeWidth)
		if filled > diskGaugeWidth {
			filled = diskGaugeWidth
		}
		gauge := ConnectorStyle.Render(strings.Repeat("▓", filled)) +
			DimStyle.Render(strings.Repeat("░", diskGaugeWidth-filled))
		lines = append(lines, "")
		lines = append(lines, LabelStyle.Render(" Disk: ")+gauge+
			LabelStyle.Render(fmt.Sprintf(" %s free", FormatSize(s.diskFree))))
	}

	lines = append(lines, "")
	lines = append(lines, PanelTitleStyle.Render(" Controls:"))
	lines = append(lines, LabelStyle.Render(" ↑/↓ scroll · PgUp/PgDn fast"))
	lines = append(lines, LabelStyle.Render(" j/k select · ←/→ preview"))
	if ctrl.Animator().Complete() {
		lines = append(lines, LabelStyle.Render(" Double-click folder to open"))
	} else {
		lines = append(lines, DimStyle.Render(" Wait for animation..."))
	}
	lines = append(lines, LabelStyle.Render(" q quit"))

	maxLines := s.height - 2
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return PanelStyle.Width(s.width - 2).Height(s.height - 2).Render(strings.Join(lines, "\n"))
}
