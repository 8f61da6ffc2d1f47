package render

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/CrestNiraj12/speakfeed/domain"
)

var testTime = time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)

func samplePost() domain.Post {
	return domain.Post{
		ID: "109",
		Author: domain.User{
			ID:          "1",
			DisplayName: "Alice A.",
			Handle:      "alice",
		},
		Text:          "hello",
		CreatedAt:     testTime,
		Source:        "Tusky",
		RepostCount:   3,
		FavoriteCount: 12345,
		Sensitive:     true,
		Language:      "en",
	}
}

func sampleDM() domain.DirectMessage {
	return domain.DirectMessage{
		ID:        "dm1",
		Sender:    domain.User{DisplayName: "Bob", Handle: "bob@example.social"},
		Recipient: domain.User{DisplayName: "Carol", Handle: "carol"},
		Text:      "hi carol",
		CreatedAt: testTime,
	}
}

func records() []any {
	return []any{
		samplePost(),
		sampleDM(),
		domain.User{DisplayName: "Dana", Handle: "dana"},
		domain.Notification{Type: "follow"},
		42,
		nil,
	}
}

func TestRender_NoDelimiterIsIdentity(t *testing.T) {
	tmpls := []string{"", "plain text", "ünïcödé 100%", "line1\nline2"}
	for _, tmpl := range tmpls {
		for _, rec := range records() {
			if got := Render(tmpl, rec, DefaultFormat()); got != tmpl {
				t.Fatalf("Render(%q, %T) = %q", tmpl, rec, got)
			}
		}
	}
}

func TestRender_TextIdentity(t *testing.T) {
	p := samplePost()
	p.Text = "text with $dollars$ and\nnewlines"
	if got := Render("$text$", p, DefaultFormat()); got != p.Text {
		t.Fatalf("post text mismatch: %q", got)
	}
	m := sampleDM()
	if got := Render("$text$", m, DefaultFormat()); got != m.Text {
		t.Fatalf("dm text mismatch: %q", got)
	}
}

func TestRender_EmptyPlaceholder(t *testing.T) {
	for _, rec := range records() {
		if got := Render("$$", rec, DefaultFormat()); got != "" {
			t.Fatalf("expected empty for %T, got %q", rec, got)
		}
	}
}

func TestRender_UnknownFieldIsEmpty(t *testing.T) {
	for _, rec := range records() {
		if got := Render("$nonexistent_field$", rec, DefaultFormat()); got != "" {
			t.Fatalf("expected empty for %T, got %q", rec, got)
		}
	}
	if got := Render("[$user.nonexistent.foo$]", samplePost(), DefaultFormat()); got != "[]" {
		t.Fatalf("unknown intermediate segment must be empty: %q", got)
	}
	if got := Render("$Text$", samplePost(), DefaultFormat()); got != "" {
		t.Fatalf("lookup must be case-sensitive: %q", got)
	}
}

func TestRender_PostExample(t *testing.T) {
	p := samplePost()
	got := Render("$user.screen_name$ says $text$", p, DefaultFormat())
	if got != "alice says hello" {
		t.Fatalf("unexpected render: %q", got)
	}
}

func TestRender_UnterminatedIsLiteral(t *testing.T) {
	for _, rec := range records() {
		if got := Render("prefix$unterminated", rec, DefaultFormat()); got != "prefix$unterminated" {
			t.Fatalf("unexpected render for %T: %q", rec, got)
		}
	}
	got := Render("$text$ costs $5", samplePost(), DefaultFormat())
	if got != "hello costs $5" {
		t.Fatalf("trailing lone delimiter must stay literal: %q", got)
	}
}

func TestRender_IsDeterministic(t *testing.T) {
	tmpl := "$user.name$ ($user.screen_name$) $created_at$ $favorite_count$ $possibly_sensitive$"
	p := samplePost()
	first := Render(tmpl, p, DefaultFormat())
	for i := 0; i < 10; i++ {
		if got := Render(tmpl, p, DefaultFormat()); got != first {
			t.Fatalf("render %d differs: %q vs %q", i, got, first)
		}
	}
}

func TestRender_DirectMessageExample(t *testing.T) {
	got := Render("$sender.name$ -> $recipient.name$", sampleDM(), DefaultFormat())
	if got != "Bob -> Carol" {
		t.Fatalf("unexpected render: %q", got)
	}
	got = Render("@$sender.screen_name$", sampleDM(), DefaultFormat())
	if got != "@bob@example.social" {
		t.Fatalf("unexpected handle render: %q", got)
	}
}

func TestRender_DoesNotMutateRecord(t *testing.T) {
	p := samplePost()
	p.Repost = &domain.Post{Text: "orig"}
	before := fmt.Sprintf("%+v %+v", p, *p.Repost)
	_ = Render("$text$ $original.text$ $original.user.name$", &p, DefaultFormat())
	after := fmt.Sprintf("%+v %+v", p, *p.Repost)
	if before != after {
		t.Fatalf("record mutated:\n%s\n%s", before, after)
	}
}

func TestRender_FormatsValues(t *testing.T) {
	p := samplePost()
	f := DefaultFormat()

	if got := Render("$created_at$", p, f); got != "Mar 5, 2024 2:07 PM" {
		t.Fatalf("unexpected timestamp: %q", got)
	}
	if got := Render("$favorite_count$/$repost_count$", p, f); got != "12345/3" {
		t.Fatalf("unexpected counts: %q", got)
	}
	if got := Render("$possibly_sensitive$", p, f); got != "yes" {
		t.Fatalf("unexpected bool: %q", got)
	}

	f.Yes, f.No = "ja", "nein"
	f.GroupDigits = true
	f.TimeLayout = time.RFC3339
	if got := Render("$sensitive$ $favourites_count$ $created_at$", p, f); got != "ja 12,345 2024-03-05T14:07:00Z" {
		t.Fatalf("unexpected custom format: %q", got)
	}
	p.Sensitive = false
	if got := Render("$sensitive$", p, f); got != "nein" {
		t.Fatalf("unexpected false word: %q", got)
	}
}

func TestRender_ZeroFormatUsesDefaults(t *testing.T) {
	p := samplePost()
	got := Render("$created_at$ $possibly_sensitive$", p, Format{})
	if got != "Mar 5, 2024 2:07 PM yes" {
		t.Fatalf("unexpected render with zero format: %q", got)
	}
	p.CreatedAt = time.Time{}
	if got := Render("[$created_at$]", p, Format{}); got != "[]" {
		t.Fatalf("zero time must render empty: %q", got)
	}
}

func TestRender_RelativeTime(t *testing.T) {
	p := samplePost()
	f := DefaultFormat()
	f.Relative = true
	f.Now = testTime.Add(5 * time.Minute)
	if got := Render("$created_at$", p, f); got != "5 minutes ago" {
		t.Fatalf("unexpected relative time: %q", got)
	}

	f.Now = time.Time{}
	if got := Render("$created_at$", p, f); got != "Mar 5, 2024 2:07 PM" {
		t.Fatalf("relative without Now must fall back to layout: %q", got)
	}
}

func TestRender_LanguageName(t *testing.T) {
	p := samplePost()
	if got := Render("$lang$ $language_name$", p, DefaultFormat()); got != "en English" {
		t.Fatalf("unexpected language render: %q", got)
	}
	p.Language = ""
	if got := Render("[$language_name$]", p, DefaultFormat()); got != "[]" {
		t.Fatalf("empty language must render empty: %q", got)
	}
	p.Language = "@@"
	if got := Render("[$language_name$]", p, DefaultFormat()); got != "[]" {
		t.Fatalf("malformed language must render empty: %q", got)
	}
}

func TestRender_RepostAndQuote(t *testing.T) {
	orig := samplePost()
	repost := domain.Post{
		Author:    domain.User{DisplayName: "Eve", Handle: "eve"},
		CreatedAt: testTime,
		Repost:    &orig,
	}
	got := Render("$user.name$ reposted $original.user.name$: $reblog.text$", repost, DefaultFormat())
	if got != "Eve reposted Alice A.: hello" {
		t.Fatalf("unexpected repost render: %q", got)
	}

	quote := domain.Post{
		Author: domain.User{DisplayName: "Finn"},
		Text:   "so true",
		Quote:  &orig,
	}
	got = Render("$account.display_name$: $text$ / $quoted.user.screen_name$: $quote.content$", quote, DefaultFormat())
	if got != "Finn: so true / alice: hello" {
		t.Fatalf("unexpected quote render: %q", got)
	}

	// No original: nested fields are empty, not a crash.
	if got := Render("[$original.text$][$quoted.user.name$]", orig, DefaultFormat()); got != "[][]" {
		t.Fatalf("missing nested post must render empty: %q", got)
	}
	// Only one level of nesting.
	if got := Render("[$original.original.text$]", repost, DefaultFormat()); got != "[]" {
		t.Fatalf("double nesting must be unknown: %q", got)
	}
}

func TestRender_UserAndNotification(t *testing.T) {
	u := domain.User{
		DisplayName:    "Dana",
		Handle:         "dana",
		FollowersCount: 10,
		FollowingCount: 2,
		StatusesCount:  99,
		Description:    "bio here",
		Locked:         true,
	}
	got := Render("$name$ (@$screen_name$): $followers_count$/$friends_count$/$statuses_count$ $note$ $locked$", u, DefaultFormat())
	if got != "Dana (@dana): 10/2/99 bio here yes" {
		t.Fatalf("unexpected user render: %q", got)
	}

	p := samplePost()
	n := domain.Notification{Type: "favourite", Account: u, Post: &p}
	got = Render("$user.name$ $type$ $status.text$", n, DefaultFormat())
	if got != "Dana favourite hello" {
		t.Fatalf("unexpected notification render: %q", got)
	}
	n.Post = nil
	if got := Render("$account.name$ $type$[$post.text$]", n, DefaultFormat()); got != "Dana favourite[]" {
		t.Fatalf("notification without post: %q", got)
	}
}

func TestRender_NilPointerRecord(t *testing.T) {
	var p *domain.Post
	if got := Render("a$text$b", p, DefaultFormat()); got != "ab" {
		t.Fatalf("nil record must render literals only: %q", got)
	}
}

func TestTemplate_ConcurrentUse(t *testing.T) {
	tmpl := Parse("$user.name$: $text$ $created_at$")
	want := tmpl.Post(samplePost(), DefaultFormat())
	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := tmpl.Post(samplePost(), DefaultFormat()); got != want {
					errs <- got
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for got := range errs {
		t.Fatalf("concurrent render differs: %q", got)
	}
}

func TestTemplate_Lines(t *testing.T) {
	b := domain.Batch{
		Posts: []domain.Post{samplePost(), {Text: "second"}},
		Users: []domain.User{{Handle: "u1"}},
	}
	lines := Parse("> $text$").Lines(b, domain.KindPost, DefaultFormat())
	if strings.Join(lines, "|") != "> hello|> second" {
		t.Fatalf("unexpected lines: %#v", lines)
	}
	users := Parse("@$screen_name$").Lines(b, domain.KindUser, DefaultFormat())
	if len(users) != 1 || users[0] != "@u1" {
		t.Fatalf("unexpected user lines: %#v", users)
	}
	if got := Parse("x").Lines(b, domain.KindDirectMessage, DefaultFormat()); len(got) != 0 {
		t.Fatalf("expected no dm lines: %#v", got)
	}
}

func BenchmarkTimeline200(b *testing.B) {
	posts := make([]domain.Post, 200)
	for i := range posts {
		posts[i] = samplePost()
		posts[i].Text = strings.Repeat("word ", 40)
		if i%5 == 0 {
			orig := samplePost()
			posts[i].Repost = &orig
		}
	}
	set := DefaultSet()
	f := DefaultFormat()
	b.ReportAllocs()
	for b.Loop() {
		_ = set.Timeline(posts, f)
	}
}
