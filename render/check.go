package render

import (
	"fmt"

	"github.com/CrestNiraj12/speakfeed/domain"
)

// Problem describes a template construct that renders as something the
// author probably did not intend. Problems never change rendering.
type Problem struct {
	Offset int    // Byte offset of the opening "$"
	Field  string // Offending path, empty for an unterminated placeholder
	Reason string
}

func (p Problem) String() string {
	if p.Field == "" {
		return fmt.Sprintf("offset %d: %s", p.Offset, p.Reason)
	}
	return fmt.Sprintf("offset %d: %s %q", p.Offset, p.Reason, p.Field)
}

const (
	reasonUnknown      = "unknown field"
	reasonUnterminated = "unterminated placeholder, \"$\" is kept as text"
)

// Check lints tmpl against the fields recognised for kind k.
func Check(k domain.Kind, tmpl string) []Problem {
	return Parse(tmpl).Check(k)
}

// Check lints t against the fields recognised for kind k. An empty
// placeholder ("$$") is allowed.
func (t Template) Check(k domain.Kind) []Problem {
	var out []Problem
	for _, s := range t.segs {
		if !s.field || s.text == "" {
			continue
		}
		if !Known(k, s.text) {
			out = append(out, Problem{Offset: s.offset, Field: s.text, Reason: reasonUnknown})
		}
	}
	if t.unterminated >= 0 {
		out = append(out, Problem{Offset: t.unterminated, Reason: reasonUnterminated})
	}
	return out
}

// CheckSet lints every slot of s and returns the problems keyed by slot.
// Slots without problems are omitted.
func CheckSet(s Set) map[Slot][]Problem {
	out := make(map[Slot][]Problem)
	for _, slot := range Slots() {
		if ps := Check(slot.Kind(), s.Get(slot)); len(ps) > 0 {
			out[slot] = ps
		}
	}
	return out
}
