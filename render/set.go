package render

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/speakfeed/domain"
)

// Slot names one configurable template.
type Slot int

const (
	SlotPost Slot = iota
	SlotRepost
	SlotQuote
	SlotCopy
	SlotDirectMessage
	SlotUser
	SlotUserSummary
	SlotNotification
)

var slotNames = [...]string{
	SlotPost:          "post",
	SlotRepost:        "repost",
	SlotQuote:         "quote",
	SlotCopy:          "copy",
	SlotDirectMessage: "direct_message",
	SlotUser:          "user",
	SlotUserSummary:   "user_summary",
	SlotNotification:  "notification",
}

// Slots returns every slot in display order.
func Slots() []Slot {
	out := make([]Slot, len(slotNames))
	for i := range slotNames {
		out[i] = Slot(i)
	}
	return out
}

func (s Slot) String() string {
	if s < 0 || int(s) >= len(slotNames) {
		return fmt.Sprintf("slot(%d)", int(s))
	}
	return slotNames[s]
}

// Kind returns the record kind the slot's template is written against.
func (s Slot) Kind() domain.Kind {
	switch s {
	case SlotDirectMessage:
		return domain.KindDirectMessage
	case SlotUser, SlotUserSummary:
		return domain.KindUser
	case SlotNotification:
		return domain.KindNotification
	}
	return domain.KindPost
}

// ParseSlot maps a config key or flag value to a Slot.
func ParseSlot(name string) (Slot, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	switch n {
	case "dm", "message":
		return SlotDirectMessage, nil
	case "summary":
		return SlotUserSummary, nil
	}
	for i, s := range slotNames {
		if s == n {
			return Slot(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", domain.ErrUnknownSlot, name)
}

// Set is one snapshot of every template slot.
type Set struct {
	Post          string
	Repost        string
	Quote         string
	Copy          string
	DirectMessage string
	User          string
	UserSummary   string
	Notification  string
}

// DefaultSet returns the built-in templates.
func DefaultSet() Set {
	return Set{
		Post:          "$user.name$: $text$ $created_at$",
		Repost:        "$user.name$ reposted $original.user.name$: $original.text$ $created_at$",
		Quote:         "$user.name$: $text$. Quoting $quoted.user.name$: $quoted.text$ $created_at$",
		Copy:          "$user.screen_name$: $text$",
		DirectMessage: "$sender.name$ to $recipient.name$: $text$ $created_at$",
		User:          "$name$ (@$screen_name$): $followers_count$ followers, $friends_count$ following, $statuses_count$ posts. $description$",
		UserSummary:   "$name$ (@$screen_name$)",
		Notification:  "$user.name$ $type$: $post.text$ $created_at$",
	}
}

// Get returns the template stored in slot.
func (s Set) Get(slot Slot) string {
	if p := s.field(slot); p != nil {
		return *p
	}
	return ""
}

// With returns a copy of s with slot replaced.
func (s Set) With(slot Slot, tmpl string) Set {
	if p := s.field(slot); p != nil {
		*p = tmpl
	}
	return s
}

func (s *Set) field(slot Slot) *string {
	switch slot {
	case SlotPost:
		return &s.Post
	case SlotRepost:
		return &s.Repost
	case SlotQuote:
		return &s.Quote
	case SlotCopy:
		return &s.Copy
	case SlotDirectMessage:
		return &s.DirectMessage
	case SlotUser:
		return &s.User
	case SlotUserSummary:
		return &s.UserSummary
	case SlotNotification:
		return &s.Notification
	}
	return nil
}

// DefaultSlot is the slot used for records of kind k when none is named.
// Posts pick theirs per item with SlotFor.
func DefaultSlot(k domain.Kind) Slot {
	switch k {
	case domain.KindDirectMessage:
		return SlotDirectMessage
	case domain.KindUser:
		return SlotUser
	case domain.KindNotification:
		return SlotNotification
	}
	return SlotPost
}

// SlotFor picks the post, repost or quote slot for p.
func SlotFor(p domain.Post) Slot {
	switch {
	case p.IsRepost():
		return SlotRepost
	case p.IsQuote():
		return SlotQuote
	}
	return SlotPost
}

// ForPost returns the template that applies to p.
func (s Set) ForPost(p domain.Post) string {
	return s.Get(SlotFor(p))
}

// Timeline renders posts, choosing the template per item with ForPost.
// Each of the three templates is parsed once.
func (s Set) Timeline(posts []domain.Post, f Format) []string {
	compiled := map[Slot]Template{
		SlotPost:   Parse(s.Post),
		SlotRepost: Parse(s.Repost),
		SlotQuote:  Parse(s.Quote),
	}
	out := make([]string, 0, len(posts))
	for i := range posts {
		t := compiled[SlotFor(posts[i])]
		out = append(out, execute(t, postFields, &posts[i], &f))
	}
	return out
}
