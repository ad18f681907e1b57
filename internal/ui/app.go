package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lumipallolabs/sprout/internal/core"
	"github.com/lumipallolabs/sprout/internal/logging"
	"github.com/lumipallolabs/sprout/internal/model"
)

// revealTickInterval paces the depth-by-depth reveal animation.
const revealTickInterval = 100 * time.Millisecond

type revealTickMsg struct{}

// App is the main TUI application model
type App struct {
	ctrl *core.Controller
	keys KeyMap

	tree    TreePanel
	stats   StatsPanel
	preview PreviewPanel

	width  int
	height int
}

// NewApp creates the application over an already-built index.
func NewApp(index *model.Index) App {
	ctrl := core.NewController(index)
	ctrl.SetOpener(openInFileManager)

	app := App{
		ctrl: ctrl,
		keys: DefaultKeyMap(),
	}
	app.stats.MeasureDisk(index.Root)
	return app
}

// Init implements tea.Model
func (a App) Init() tea.Cmd {
	return a.revealTick()
}

func (a App) revealTick() tea.Cmd {
	return tea.Tick(revealTickInterval, func(time.Time) tea.Msg {
		return revealTickMsg{}
	})
}

// Update implements tea.Model
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.updateLayout()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			// Clicks land on the tree panel only; it starts at row 0.
			if msg.X < a.tree.width {
				a.ctrl.HandleClick(msg.Y, 0, a.tree.height, time.Now())
			}
		}
		return a, nil

	case revealTickMsg:
		if !a.ctrl.Animator().Complete() {
			a.ctrl.Tick()
			return a, a.revealTick()
		}
		return a, nil
	}

	return a, nil
}

// handleKey handles keyboard input
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	h := a.tree.ListHeight()

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.ScrollUp):
		a.ctrl.Viewport().ScrollUp()

	case key.Matches(msg, a.keys.ScrollDown):
		a.ctrl.Viewport().ScrollDown(h)

	case key.Matches(msg, a.keys.PageUp):
		a.ctrl.Viewport().PageUp()

	case key.Matches(msg, a.keys.PageDown):
		a.ctrl.Viewport().PageDown(h)

	case key.Matches(msg, a.keys.SelectUp):
		a.ctrl.SelectPrevious(h)

	case key.Matches(msg, a.keys.SelectDown):
		a.ctrl.SelectNext(h)

	case key.Matches(msg, a.keys.PreviewUp):
		a.ctrl.Preview().ScrollUp()

	case key.Matches(msg, a.keys.PreviewDown):
		a.ctrl.Preview().ScrollDown()

	case key.Matches(msg, a.keys.Open):
		if node, ok := a.ctrl.SelectedNode(); ok {
			a.ctrl.OpenPath(node.Path)
		}

	case key.Matches(msg, a.keys.QuickLook):
		if node, ok := a.ctrl.SelectedNode(); ok {
			if err := previewInQuickLook(node.Path); err != nil {
				logging.Debug.Printf("[App] quick look %s: %v", node.Path, err)
			}
		}
	}

	return a, nil
}

// updateLayout calculates component sizes
func (a *App) updateLayout() {
	treeWidth := a.width * 7 / 10
	if treeWidth < 20 {
		treeWidth = 20
	}
	rightWidth := a.width - treeWidth

	statsHeight := 17
	if statsHeight > a.height/2 {
		statsHeight = a.height / 2
	}
	if statsHeight < 3 {
		statsHeight = 3
	}

	a.tree.SetSize(treeWidth, a.height)
	a.stats.SetSize(rightWidth, statsHeight)
	a.preview.SetSize(rightWidth, a.height-statsHeight)
}

// View implements tea.Model
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	right := lipgloss.JoinVertical(lipgloss.Left,
		a.stats.View(a.ctrl),
		a.preview.View(a.ctrl),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, a.tree.View(a.ctrl), right)
}
