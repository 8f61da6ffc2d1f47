package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/speakfeed/app"
	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/editor"
	"github.com/CrestNiraj12/speakfeed/render"
	"github.com/CrestNiraj12/speakfeed/tui/common"
	"github.com/CrestNiraj12/speakfeed/tui/preview"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Templates app.TemplateSource
	Clipboard app.Clipboard
	Editor    *editor.EnvEditor
	Batch     domain.Batch
	Now       func() time.Time // Defaults to time.Now
}

// App is the root Bubble Tea model. It owns quitting and the status bar
// and routes everything else to the preview.
type App struct {
	deps    Deps
	preview preview.Model
	keys    common.KeyMap
	width   int
	status  string // Transient status message (e.g. "Copied.")
	isErr   bool
}

// NewApp creates the root model with all dependencies wired.
func NewApp(deps Deps) App {
	return App{
		deps:    deps,
		preview: preview.New(deps.Templates, deps.Clipboard, deps.Editor, deps.Batch, deps.Now),
		keys:    common.DefaultKeyMap(),
	}
}

// Init delegates to the preview.
func (a App) Init() tea.Cmd {
	return a.preview.Init()
}

// Update handles messages and routes to the preview.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			return a, tea.Quit
		}
		// Any other key clears the last status.
		a.status = ""

	case tea.WindowSizeMsg:
		a.width = msg.Width
		// Leave room for the status bar.
		msg.Height = max(msg.Height-4, 0)
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return a, cmd

	case preview.StatusMsg:
		a.status = msg.Text
		a.isErr = msg.Err
		return a, nil
	}

	var cmd tea.Cmd
	a.preview, cmd = a.preview.Update(msg)
	return a, cmd
}

// View renders the preview and the status bar.
func (a App) View() string {
	s := a.preview.View()

	bar := "  " + strings.Join(a.keys.Hints(), " • ")
	if a.status != "" {
		style := common.SuccessStyle
		if a.isErr {
			style = common.ErrorStyle
		}
		bar = style.Render(a.status) + "\n" + bar
	}
	return s + "\n" + common.StatusBarStyle.Render(common.ClampLinesToWidth(bar, a.width))
}

// Templates returns the stored templates with the drafts applied.
func (a App) Templates() render.Set {
	return a.preview.Templates()
}

// Drafts returns the templates the user changed and did not revert.
func (a App) Drafts() map[render.Slot]string {
	return a.preview.Drafts()
}
