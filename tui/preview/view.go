package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/CrestNiraj12/speakfeed/tui/common"
)

// View renders the slot tabs, the draft, its problems and the preview.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(common.AppTitleStyle.Render("speakfeed"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderProblems())
	b.WriteString("\n\n")
	b.WriteString(m.renderLines())
	return b.String()
}

func (m Model) renderTabs() string {
	drafts := m.Drafts()
	tabs := make([]string, 0, len(m.slots))
	for i, s := range m.slots {
		label := s.String()
		if _, ok := drafts[s]; ok {
			label += "*"
		}
		if i == m.active {
			tabs = append(tabs, common.ActionActiveStyle.Render("["+label+"]"))
		} else {
			tabs = append(tabs, common.ActionInactiveStyle.Render(label))
		}
	}
	return common.ClampLinesToWidth(lipgloss.JoinHorizontal(lipgloss.Top, tabs...), m.width)
}

func (m Model) renderProblems() string {
	problems := m.Problems()
	if len(problems) == 0 {
		return common.SuccessStyle.Render("No problems.")
	}
	lines := make([]string, 0, len(problems))
	for _, p := range problems {
		lines = append(lines, common.ErrorStyle.Render(p.String()))
	}
	return strings.Join(lines, "\n")
}

// linesHeight is the room left for rendered records below the header.
func (m Model) linesHeight() int {
	if m.height == 0 {
		return 0
	}
	used := 8 + len(m.Problems())
	return max(m.height-used, 3)
}

func (m Model) renderLines() string {
	lines := m.Lines()
	k := m.Slot().Kind()
	header := common.TaglineStyle.Render(fmt.Sprintf("%s %s", humanize.Comma(int64(len(lines))), plural(k.String(), len(lines))))
	if len(lines) == 0 {
		return header
	}

	start, end := common.Window(len(lines), m.selected, m.linesHeight())
	out := []string{header}
	for i := start; i < end; i++ {
		// One record per row; multi-line text is flattened.
		ln := strings.ReplaceAll(lines[i], "\n", " ")
		if i == m.selected {
			out = append(out, common.SelectedStyle.Render(common.ClampLinesToWidth("> "+ln, m.width)))
		} else {
			out = append(out, common.ContentStyle.Render(common.ClampLinesToWidth("  "+ln, m.width)))
		}
	}
	return strings.Join(out, "\n")
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
