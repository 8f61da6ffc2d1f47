package textclean

import (
	"strings"
	"testing"
)

func TestStripHTML_DecodesEntitiesAndStripsTags(t *testing.T) {
	in := `<p>Hello &lt;world&gt; &amp; crew</p><script>x</script><br/>line2`
	got := StripHTML(in)
	if strings.Contains(got, "<p>") || strings.Contains(got, "<script>") {
		t.Fatalf("expected HTML tags stripped: %q", got)
	}
	if !strings.Contains(got, "<world>") || !strings.Contains(got, "&") {
		t.Fatalf("expected html entities decoded: %q", got)
	}
	if !strings.Contains(got, "\nline2") {
		t.Fatalf("expected line break retained: %q", got)
	}
}

func TestStripHTML_ParagraphsBecomeBlankLines(t *testing.T) {
	got := StripHTML("<p>one</p><p>two</p>\n\n\n\n<p>three</p>")
	if got != "one\n\ntwo\n\nthree" {
		t.Fatalf("unexpected paragraph layout: %q", got)
	}
}

func TestSanitizeForTerminal_RemovesEscapesAndControls(t *testing.T) {
	in := "ok\x1b[31mred\x1b[0m\x1b]8;;http://x\x07bad\x01\x02"
	got := SanitizeForTerminal(in)
	if strings.Contains(got, "\x1b") {
		t.Fatalf("expected ansi removed: %q", got)
	}
	if strings.ContainsRune(got, '\x01') || strings.ContainsRune(got, '\x02') {
		t.Fatalf("expected controls removed: %q", got)
	}
	if !strings.Contains(got, "ok") || !strings.Contains(got, "red") {
		t.Fatalf("expected plain text preserved: %q", got)
	}
}

func TestSanitizeForTerminal_StripsMalformedSequences(t *testing.T) {
	in := "a\x1b[9999;9999Xb\x1b\\c\x7fd"
	got := SanitizeForTerminal(in)
	if got != "abcd" {
		t.Fatalf("unexpected sanitized content: %q", got)
	}
}
