package render

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DefaultTimeLayout is used when Format.TimeLayout is empty.
const DefaultTimeLayout = "Jan 2, 2006 3:04 PM"

// Format controls how non-string values are written.
type Format struct {
	TimeLayout string         // time.Format layout
	Location   *time.Location // nil keeps each timestamp's own zone

	// Relative renders timestamps as "5 minutes ago" measured from Now.
	// It has no effect while Now is zero.
	Relative bool
	Now      time.Time

	Yes string // Word for true, default "yes"
	No  string // Word for false, default "no"

	// GroupDigits writes counts as 12,345 instead of 12345.
	GroupDigits bool

	// Locale selects the language used for $language_name$.
	// The zero value means English.
	Locale language.Tag
}

// DefaultFormat returns the format used when no config file overrides it.
func DefaultFormat() Format {
	return Format{
		TimeLayout: DefaultTimeLayout,
		Yes:        "yes",
		No:         "no",
	}
}

func (f *Format) timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if f.Relative && !f.Now.IsZero() {
		return humanize.RelTime(t, f.Now, "ago", "from now")
	}
	if f.Location != nil {
		t = t.In(f.Location)
	}
	layout := f.TimeLayout
	if layout == "" {
		layout = DefaultTimeLayout
	}
	return t.Format(layout)
}

func (f *Format) boolean(v bool) string {
	if v {
		if f.Yes == "" {
			return "yes"
		}
		return f.Yes
	}
	if f.No == "" {
		return "no"
	}
	return f.No
}

func (f *Format) count(n int) string {
	if f.GroupDigits {
		return humanize.Comma(int64(n))
	}
	return strconv.Itoa(n)
}

func (f *Format) languageName(code string) string {
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	namer := display.English.Tags()
	if !f.Locale.IsRoot() {
		if n := display.Tags(f.Locale); n != nil {
			namer = n
		}
	}
	if name := namer.Name(tag); name != "" {
		return name
	}
	return code
}
