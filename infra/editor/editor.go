package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EnvEditor prepares an external editor command using $EDITOR (fallback: "vi").
// It does NOT run the editor itself. Callers use tea.Exec with the returned
// *exec.Cmd so Bubble Tea properly suspends raw terminal mode.
type EnvEditor struct{}

// NewEnvEditor creates an EnvEditor.
func NewEnvEditor() *EnvEditor {
	return &EnvEditor{}
}

// marker ends the header; everything after it is the template.
const marker = "# ---- template below this line ----"

// header describes the slot being edited and lists the fields it accepts.
func header(slot string, fields []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# speakfeed: editing the %q template.\n", slot)
	b.WriteString("#\n")
	b.WriteString("# SAVE and EXIT to apply the draft. Deleting everything reverts it.\n")
	b.WriteString("# Placeholders are written $field$; unknown fields render empty.\n")
	if len(fields) > 0 {
		b.WriteString("#\n# Fields:\n")
		for _, f := range fields {
			fmt.Fprintf(&b, "#   $%s$\n", f)
		}
	}
	b.WriteString(marker + "\n")
	return b.String()
}

// Cmd prepares an *exec.Cmd for the editor and a temp file path.
// It writes a header naming slot and its fields, then the draft.
func (e *EnvEditor) Cmd(slot string, fields []string, draft string) (*exec.Cmd, string, error) {
	args := strings.Fields(os.Getenv("EDITOR"))
	if len(args) == 0 {
		args = []string{"vi"}
	}

	tmpFile, err := os.CreateTemp("", "speakfeed-*.txt")
	if err != nil {
		return nil, "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer tmpFile.Close()

	if _, err := tmpFile.WriteString(header(slot, fields) + draft + "\n"); err != nil {
		os.Remove(tmpPath)
		return nil, "", fmt.Errorf("writing to temp file: %w", err)
	}

	args = append(args, "+", tmpPath)
	cmd := exec.Command(args[0], args[1:]...)
	return cmd, tmpPath, nil
}

// ReadContent reads the temp file, drops the header, and removes the file.
// Line breaks inside the template become spaces; a template is one line.
func (e *EnvEditor) ReadContent(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading temp file: %w", err)
	}

	content := string(data)
	if _, after, ok := strings.Cut(content, marker+"\n"); ok {
		content = after
	}
	content = strings.TrimRight(content, "\r\n")
	return strings.Join(strings.Split(content, "\n"), " "), nil
}
