package preview

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/CrestNiraj12/speakfeed/app"
	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/clipboard"
	"github.com/CrestNiraj12/speakfeed/infra/editor"
	"github.com/CrestNiraj12/speakfeed/render"
)

type fakeSource struct {
	snap      app.Snapshot
	reloadErr error
}

func (f *fakeSource) Snapshot() app.Snapshot { return f.snap }

func (f *fakeSource) Reload() (app.Snapshot, error) {
	if f.reloadErr != nil {
		return f.snap, f.reloadErr
	}
	return f.snap, nil
}

var fixedNow = time.Date(2024, 3, 5, 15, 0, 0, 0, time.UTC)

func testBatch() domain.Batch {
	alice := domain.User{ID: "1", DisplayName: "Alice", Handle: "alice"}
	bob := domain.User{ID: "2", DisplayName: "Bob", Handle: "bob"}
	orig := domain.Post{ID: "9", Author: bob, Text: "first"}
	return domain.Batch{
		Posts: []domain.Post{
			{ID: "1", Author: alice, Text: "hello", CreatedAt: fixedNow.Add(-5 * time.Minute)},
			{ID: "2", Author: alice, Repost: &orig},
		},
		Users: []domain.User{alice, bob},
	}
}

func newTestModel(t *testing.T) (Model, *fakeSource, *clipboard.Memory) {
	t.Helper()
	src := &fakeSource{snap: app.Snapshot{
		Templates: render.Set{
			Post:        "$user.name$: $text$",
			Repost:      "$user.name$ reposted $original.text$",
			Quote:       "$text$",
			Copy:        "@$user.screen_name$ said $text$",
			User:        "$name$",
			UserSummary: "@$screen_name$",
		},
		Format: render.DefaultFormat(),
	}}
	clip := &clipboard.Memory{}
	m := New(src, clip, editor.NewEnvEditor(), testBatch(), func() time.Time { return fixedNow })
	return m, src, clip
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	return m.Update(tea.KeyMsg{Type: k})
}

func TestNew_OffersSlotsWithRecords(t *testing.T) {
	m, _, _ := newTestModel(t)
	want := []render.Slot{render.SlotPost, render.SlotRepost, render.SlotQuote, render.SlotCopy, render.SlotUser, render.SlotUserSummary}
	if diff := cmp.Diff(want, m.slots); diff != "" {
		t.Fatalf("slots mismatch (-want +got):\n%s", diff)
	}
	if m.input.Value() != "$user.name$: $text$" {
		t.Fatalf("expected stored post template in input, got %q", m.input.Value())
	}

	empty := New(&fakeSource{}, nil, nil, domain.Batch{}, nil)
	if len(empty.slots) != len(render.Slots()) {
		t.Fatalf("empty batch should offer every slot, got %v", empty.slots)
	}
}

func TestLines_RenderDraftLive(t *testing.T) {
	m, _, _ := newTestModel(t)
	if diff := cmp.Diff([]string{"Alice: hello", "Alice: "}, m.Lines()); diff != "" {
		t.Fatalf("initial lines (-want +got):\n%s", diff)
	}

	m = typeText(m, " $bogus$")
	lines := m.Lines()
	if lines[0] != "Alice: hello " {
		t.Fatalf("draft not applied live: %q", lines[0])
	}
	problems := m.Problems()
	if len(problems) != 1 || problems[0].Field != "bogus" {
		t.Fatalf("expected one unknown field problem, got %v", problems)
	}
	if !strings.Contains(m.View(), `unknown field "bogus"`) {
		t.Fatalf("view should list problems:\n%s", m.View())
	}
}

func TestFormat_UsesInjectedNow(t *testing.T) {
	m, src, _ := newTestModel(t)
	src.snap.Format.Relative = true
	m.snap = src.snap
	m.input.SetValue("$created_at$")
	if got := m.Lines()[0]; got != "5 minutes ago" {
		t.Fatalf("expected relative time from injected clock, got %q", got)
	}
}

func TestSwitchSlot_KeepsDrafts(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = typeText(m, "!")
	m, _ = press(m, tea.KeyTab)
	if m.Slot() != render.SlotRepost || m.input.Value() != "$user.name$ reposted $original.text$" {
		t.Fatalf("expected repost slot, got %v %q", m.Slot(), m.input.Value())
	}
	m, _ = press(m, tea.KeyShiftTab)
	if m.input.Value() != "$user.name$: $text$!" {
		t.Fatalf("draft lost on slot switch: %q", m.input.Value())
	}
	m, _ = press(m, tea.KeyShiftTab)
	if m.Slot() != render.SlotUserSummary {
		t.Fatalf("shift+tab should wrap to the last slot, got %v", m.Slot())
	}
	if m.batch.Len(m.Slot().Kind()) != 2 || m.Lines()[1] != "@bob" {
		t.Fatalf("user slot should render users: %v", m.Lines())
	}

	drafts := m.Drafts()
	if diff := cmp.Diff(map[render.Slot]string{render.SlotPost: "$user.name$: $text$!"}, drafts); diff != "" {
		t.Fatalf("drafts mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(m.View(), "post*") {
		t.Fatalf("drafted tab should be marked:\n%s", m.View())
	}
}

func TestRevert_RestoresStored(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = typeText(m, "xyz")
	m, cmd := press(m, tea.KeyEsc)
	if m.input.Value() != "$user.name$: $text$" || len(m.Drafts()) != 0 {
		t.Fatalf("revert failed: %q %v", m.input.Value(), m.Drafts())
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.Err {
		t.Fatalf("expected status message, got %#v", msg)
	}
}

func TestCopy_UsesCopyTemplateWithDraft(t *testing.T) {
	m, _, clip := newTestModel(t)
	_, cmd := press(m, tea.KeyCtrlY)
	if msg := cmd().(StatusMsg); msg.Err {
		t.Fatalf("copy failed: %s", msg.Text)
	}
	if clip.Text != "@alice said hello" {
		t.Fatalf("unexpected clipboard text: %q", clip.Text)
	}

	// A draft of the copy slot applies to ctrl+y from any post slot.
	for m.Slot() != render.SlotCopy {
		m, _ = press(m, tea.KeyTab)
	}
	m.input.SetValue("copied: $text$")
	m, _ = press(m, tea.KeyShiftTab)
	m, _ = press(m, tea.KeyDown)
	_, cmd = press(m, tea.KeyCtrlY)
	cmd()
	if clip.Text != "copied: " {
		t.Fatalf("expected copy draft on the repost, got %q", clip.Text)
	}
}

func TestCopy_NonPostCopiesPreviewLine(t *testing.T) {
	m, _, clip := newTestModel(t)
	for m.Slot() != render.SlotUser {
		m, _ = press(m, tea.KeyTab)
	}
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown) // Clamped at the last user.
	_, cmd := press(m, tea.KeyCtrlY)
	cmd()
	if clip.Text != "Bob" {
		t.Fatalf("unexpected clipboard text: %q", clip.Text)
	}
}

type failingClip struct{}

func (failingClip) WriteText(string) error { return domain.ErrClipboardUnavailable }

func TestCopy_ReportsFailure(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.clip = failingClip{}
	_, cmd := press(m, tea.KeyCtrlY)
	msg := cmd().(StatusMsg)
	if !msg.Err || !strings.Contains(msg.Text, "clipboard") {
		t.Fatalf("expected clipboard failure status, got %#v", msg)
	}
}

func TestReload_FollowsFileForUndraftedSlots(t *testing.T) {
	m, src, _ := newTestModel(t)
	m, _ = press(m, tea.KeyTab)
	m = typeText(m, "!")
	m, _ = press(m, tea.KeyShiftTab)

	src.snap.Templates.Post = "NEW $text$"
	src.snap.Templates.Repost = "$user.name$ reposted $original.text$!"
	_, cmd := press(m, tea.KeyCtrlR)
	msg := cmd()
	m, next := m.Update(msg)
	if m.input.Value() != "NEW $text$" {
		t.Fatalf("undrafted slot should follow the file, got %q", m.input.Value())
	}
	if len(m.Drafts()) != 0 {
		t.Fatalf("draft matching the file should be dropped, got %v", m.Drafts())
	}
	if s := next().(StatusMsg); s.Err {
		t.Fatalf("unexpected reload error: %s", s.Text)
	}

	src.reloadErr = errors.New("bad yaml")
	_, cmd = press(m, tea.KeyCtrlR)
	m, next = m.Update(cmd())
	if s := next().(StatusMsg); !s.Err || !strings.Contains(s.Text, "bad yaml") {
		t.Fatalf("expected reload failure status, got %#v", s)
	}
	if m.input.Value() != "NEW $text$" {
		t.Fatalf("failed reload must keep templates, got %q", m.input.Value())
	}
}

func TestEditorFinished_AppliesOrRevertsDraft(t *testing.T) {
	m, _, _ := newTestModel(t)
	ed := editor.NewEnvEditor()

	_, path, err := ed.Cmd("post", nil, "$text$ edited")
	if err != nil {
		t.Fatalf("editor cmd: %v", err)
	}
	m, _ = m.Update(editorFinishedMsg{slot: render.SlotPost, tmpPath: path})
	if m.input.Value() != "$text$ edited" {
		t.Fatalf("expected edited draft, got %q", m.input.Value())
	}

	_, path, err = ed.Cmd("post", nil, "")
	if err != nil {
		t.Fatalf("editor cmd: %v", err)
	}
	m, _ = m.Update(editorFinishedMsg{slot: render.SlotPost, tmpPath: path})
	if m.input.Value() != "$user.name$: $text$" {
		t.Fatalf("emptied file should revert, got %q", m.input.Value())
	}

	_, cmd := m.Update(editorFinishedMsg{slot: render.SlotPost, err: errors.New("exit 1")})
	if s := cmd().(StatusMsg); !s.Err {
		t.Fatalf("expected editor error status")
	}
}

func TestView_ClampsToWidth(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 20, Height: 30})
	for _, ln := range strings.Split(m.renderLines(), "\n") {
		if w := ansi.StringWidth(ln); w > 20 {
			t.Fatalf("line wider than terminal (%d): %q", w, ln)
		}
	}
}
