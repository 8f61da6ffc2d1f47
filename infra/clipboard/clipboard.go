// Package clipboard copies rendered text to the system clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/CrestNiraj12/speakfeed/domain"
)

// System implements app.Clipboard with the OS clipboard (pbcopy,
// xclip/xsel/wl-copy, or the Windows API).
type System struct{}

// New returns the system clipboard.
func New() System { return System{} }

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return domain.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrClipboardUnavailable, err)
	}
	return nil
}

// Memory implements app.Clipboard in process. Used when no system
// clipboard tool is installed, and in tests.
type Memory struct {
	Text string
}

func (m *Memory) WriteText(text string) error {
	m.Text = text
	return nil
}
