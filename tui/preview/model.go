// Package preview is the template editing screen: a draft of one slot,
// the loaded records rendered with that draft, and the draft's problems.
package preview

import (
	"maps"
	"time"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/CrestNiraj12/speakfeed/app"
	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/editor"
	"github.com/CrestNiraj12/speakfeed/render"
	"github.com/CrestNiraj12/speakfeed/tui/common"
)

// --- Messages ---

// ReloadedMsg delivers a store reload, from ctrl+r or the file watcher.
type ReloadedMsg struct {
	Snapshot app.Snapshot
	Err      error
}

// StatusMsg asks the root model to show a transient status line.
type StatusMsg struct {
	Text string
	Err  bool
}

// editorFinishedMsg is sent after the external editor exits.
type editorFinishedMsg struct {
	slot    render.Slot
	tmpPath string
	err     error
}

// --- Model ---

// Model holds the preview state. Drafts live here until the user copies
// them into the templates file; the store is never written.
type Model struct {
	source app.TemplateSource
	clip   app.Clipboard
	editor *editor.EnvEditor
	batch  domain.Batch
	now    func() time.Time
	keys   common.KeyMap

	snap     app.Snapshot
	slots    []render.Slot
	active   int
	input    textinput.Model
	drafts   map[render.Slot]string
	selected int
	width    int
	height   int
}

// New creates a preview over batch. Only slots whose kind has records
// are offered; with an empty batch every slot is.
func New(source app.TemplateSource, clip app.Clipboard, ed *editor.EnvEditor, batch domain.Batch, now func() time.Time) Model {
	if now == nil {
		now = time.Now
	}
	ti := textinput.New()
	ti.Prompt = "template> "
	ti.Placeholder = "$user.name$: $text$"
	ti.Focus()

	m := Model{
		source: source,
		clip:   clip,
		editor: ed,
		batch:  batch,
		now:    now,
		keys:   common.DefaultKeyMap(),
		snap:   source.Snapshot(),
		slots:  slotsFor(batch),
		input:  ti,
		drafts: make(map[render.Slot]string),
	}
	m.input.SetValue(m.stored())
	m.input.CursorEnd()
	return m
}

func slotsFor(b domain.Batch) []render.Slot {
	var out []render.Slot
	for _, s := range render.Slots() {
		if b.Len(s.Kind()) > 0 {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return render.Slots()
	}
	return out
}

// Slot returns the slot being edited.
func (m Model) Slot() render.Slot { return m.slots[m.active] }

// stored returns the template the store holds for the active slot.
func (m Model) stored() string { return m.snap.Templates.Get(m.Slot()) }

// Drafts returns every slot whose draft differs from the stored
// template, with the draft text.
func (m Model) Drafts() map[render.Slot]string {
	out := maps.Clone(m.drafts)
	if out == nil {
		out = make(map[render.Slot]string)
	}
	if v := m.input.Value(); v != m.stored() {
		out[m.Slot()] = v
	} else {
		delete(out, m.Slot())
	}
	return out
}

// Templates returns the stored templates with every draft applied.
func (m Model) Templates() render.Set {
	set := m.snap.Templates
	for s, d := range m.Drafts() {
		set = set.With(s, d)
	}
	return set
}

// saveDraft records the input for the active slot, or forgets the draft
// when it matches the stored template.
func (m *Model) saveDraft() {
	m.drafts = m.Drafts()
}

// loadSlot shows the draft or stored template of the active slot.
func (m *Model) loadSlot() {
	v, ok := m.drafts[m.Slot()]
	if !ok {
		v = m.stored()
	}
	m.input.SetValue(v)
	m.input.CursorEnd()
	m.selected = min(m.selected, max(m.batch.Len(m.Slot().Kind())-1, 0))
}

// format returns the snapshot format stamped with the current time, so
// relative timestamps measure from this render pass.
func (m Model) format() render.Format {
	f := m.snap.Format
	f.Now = m.now()
	return f
}

// Lines renders every record of the active slot's kind with the draft.
func (m Model) Lines() []string {
	t := render.Parse(m.input.Value())
	return t.Lines(m.batch, m.Slot().Kind(), m.format())
}

// Problems lints the draft against the active slot's kind.
func (m Model) Problems() []render.Problem {
	return render.Check(m.Slot().Kind(), m.input.Value())
}

// copyText renders the selected record for the clipboard. Posts use the
// copy template (draft applied); other kinds copy the previewed line.
func (m Model) copyText() (string, bool) {
	k := m.Slot().Kind()
	if m.selected >= m.batch.Len(k) {
		return "", false
	}
	if k == domain.KindPost {
		return render.Parse(m.Templates().Copy).Post(m.batch.Posts[m.selected], m.format()), true
	}
	return m.Lines()[m.selected], true
}
