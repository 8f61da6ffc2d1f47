// Package render expands display templates such as
// "$user.name$: $text$" against post, direct message, user and
// notification records.
//
// Rendering never fails. A "$" with no closing "$" is kept as a literal,
// "$$" and unknown field paths expand to the empty string, so a typo in a
// user-edited template degrades one field instead of the whole timeline.
// Templates and tables are immutable and safe for concurrent use.
package render

import "strings"

const delim = '$'

type segment struct {
	text   string
	field  bool
	offset int // Byte offset of the opening delimiter for fields.
}

// Template is a parsed template. The zero value renders as "".
type Template struct {
	src          string
	segs         []segment
	unterminated int // Offset of a trailing lone delimiter, or -1.
}

// Parse splits src into literal and placeholder segments. It never fails.
func Parse(src string) Template {
	t := Template{src: src, unterminated: -1}
	rest := src
	base := 0
	for {
		open := strings.IndexByte(rest, delim)
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open+1:], delim)
		if end < 0 {
			t.unterminated = base + open
			break
		}
		end += open + 1
		if open > 0 {
			t.segs = append(t.segs, segment{text: rest[:open]})
		}
		t.segs = append(t.segs, segment{
			text:   rest[open+1 : end],
			field:  true,
			offset: base + open,
		})
		base += end + 1
		rest = rest[end+1:]
	}
	if rest != "" {
		t.segs = append(t.segs, segment{text: rest})
	}
	return t
}

// String returns the source text.
func (t Template) String() string { return t.src }

// Placeholders returns the field paths referenced by t, in order.
func (t Template) Placeholders() []string {
	var out []string
	for _, s := range t.segs {
		if s.field {
			out = append(out, s.text)
		}
	}
	return out
}

func execute[T any](t Template, tbl table[T], rec *T, f *Format) string {
	var b strings.Builder
	b.Grow(len(t.src) + 32)
	for _, s := range t.segs {
		if !s.field {
			b.WriteString(s.text)
			continue
		}
		if rec == nil {
			continue
		}
		if get, ok := tbl[s.text]; ok {
			b.WriteString(get(rec, f))
		}
	}
	return b.String()
}
