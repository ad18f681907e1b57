package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Colors - cyberpunk/neon palette
var (
	ColorPrimary = lipgloss.Color("#C084FC") // soft violet
	ColorSuccess = lipgloss.Color("#39FF14") // neon green
	ColorBorder  = lipgloss.Color("#4A5568") // border
	ColorCyan    = lipgloss.Color("#00FFFF") // neon cyan
	ColorDir     = lipgloss.Color("#00FFFF") // cyan for directories
	ColorFile    = lipgloss.Color("#A0A0A0") // dimmer for files
	ColorMuted   = lipgloss.Color("#6B7280") // labels, hints
	ColorBranch  = lipgloss.Color("#34D399") // tree connectors
)

// Styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	TreeItemSelected = lipgloss.NewStyle().
				Background(ColorPrimary).
				Foreground(lipgloss.Color("#FFFFFF")).
				Bold(true)

	TreeItemStyle = lipgloss.NewStyle().
			Foreground(ColorDir).
			Bold(true)

	ConnectorStyle = lipgloss.NewStyle().
			Foreground(ColorBranch)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3D4555"))

	KeyHint = lipgloss.NewStyle().
		Foreground(ColorCyan).
		Background(lipgloss.Color("#1E3A4C")).
		Padding(0, 1)

	PreviewDirStyle = lipgloss.NewStyle().
			Foreground(ColorDir)

	PreviewFileStyle = lipgloss.NewStyle().
				Foreground(ColorFile)
)

// FormatSize formats bytes to human readable string
func FormatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
		GB = MB * 1024
		TB = GB * 1024
	)

	negative := bytes < 0
	if negative {
		bytes = -bytes
	}

	var result string
	switch {
	case bytes >= TB:
		result = fmt.Sprintf("%.1fTB", float64(bytes)/TB)
	case bytes >= GB:
		result = fmt.Sprintf("%.1fGB", float64(bytes)/GB)
	case bytes >= MB:
		result = fmt.Sprintf("%.1fMB", float64(bytes)/MB)
	case bytes >= KB:
		result = fmt.Sprintf("%.1fKB", float64(bytes)/KB)
	default:
		result = fmt.Sprintf("%dB", bytes)
	}

	if negative {
		return "-" + result
	}
	return result
}
