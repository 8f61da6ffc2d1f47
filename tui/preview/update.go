package preview

import (
	"fmt"
	"maps"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/speakfeed/render"
)

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the preview.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(m.input.Prompt)-2, 10)
		return m, nil

	case ReloadedMsg:
		if msg.Err != nil {
			return m, status(fmt.Sprintf("Reload failed: %v", msg.Err), true)
		}
		m.saveDraft()
		m.snap = msg.Snapshot
		// Slots without a draft follow the file; drafts the file now
		// matches are done.
		maps.DeleteFunc(m.drafts, func(s render.Slot, d string) bool {
			return d == m.snap.Templates.Get(s)
		})
		m.loadSlot()
		return m, status("Templates reloaded.", false)

	case editorFinishedMsg:
		if msg.err != nil {
			return m, status(fmt.Sprintf("Editor: %v", msg.err), true)
		}
		content, err := m.editor.ReadContent(msg.tmpPath)
		if err != nil {
			return m, status(err.Error(), true)
		}
		m.saveDraft()
		if content == "" || content == m.snap.Templates.Get(msg.slot) {
			delete(m.drafts, msg.slot)
		} else {
			m.drafts[msg.slot] = content
		}
		m.loadSlot()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.NextSlot):
			m.switchSlot(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevSlot):
			m.switchSlot(-1)
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case key.Matches(msg, m.keys.Down):
			if m.selected < m.batch.Len(m.Slot().Kind())-1 {
				m.selected++
			}
			return m, nil
		case key.Matches(msg, m.keys.Revert):
			delete(m.drafts, m.Slot())
			m.loadSlot()
			return m, status(fmt.Sprintf("Reverted %s.", m.Slot()), false)
		case key.Matches(msg, m.keys.Reload):
			return m, m.reload()
		case key.Matches(msg, m.keys.Copy):
			return m, m.copySelected()
		case key.Matches(msg, m.keys.Edit):
			return m, m.launchEditor()
		}
	}

	// Everything else is typing.
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) switchSlot(step int) {
	m.saveDraft()
	n := len(m.slots)
	m.active = ((m.active+step)%n + n) % n
	m.loadSlot()
}

func (m Model) reload() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		snap, err := source.Reload()
		return ReloadedMsg{Snapshot: snap, Err: err}
	}
}

func (m Model) copySelected() tea.Cmd {
	text, ok := m.copyText()
	if !ok {
		return status("Nothing to copy.", true)
	}
	clip := m.clip
	return func() tea.Msg {
		if err := clip.WriteText(text); err != nil {
			return StatusMsg{Text: "Copy failed: " + err.Error(), Err: true}
		}
		return StatusMsg{Text: "Copied."}
	}
}

// launchEditor prepares the editor command and uses tea.ExecProcess to
// suspend Bubble Tea's raw terminal mode while the editor runs.
func (m Model) launchEditor() tea.Cmd {
	slot := m.Slot()
	cmd, tmpPath, err := m.editor.Cmd(slot.String(), render.Fields(slot.Kind()), m.input.Value())
	if err != nil {
		return status(fmt.Sprintf("Preparing editor: %v", err), true)
	}
	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{slot: slot, tmpPath: tmpPath, err: err}
	})
}

// status wraps a StatusMsg into a tea.Cmd for immediate delivery.
func status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Err: isErr} }
}
