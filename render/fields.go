package render

import (
	"maps"
	"sort"
	"strings"

	"github.com/CrestNiraj12/speakfeed/domain"
)

type accessor[T any] func(rec *T, f *Format) string

type table[T any] map[string]accessor[T]

var (
	userFields         table[domain.User]
	postFields         table[domain.Post]
	dmFields           table[domain.DirectMessage]
	notificationFields table[domain.Notification]
)

func init() {
	userFields = newUserTable()

	// Nested posts expose the same fields as a top-level post, minus a
	// further original/quoted level.
	inner := newPostTable()
	postFields = newPostTable()
	embed(postFields, "original.", inner, func(p *domain.Post) *domain.Post { return p.Repost })
	embed(postFields, "quoted.", inner, func(p *domain.Post) *domain.Post { return p.Quote })
	alias(postFields, "reblog.", "original.")
	alias(postFields, "quote.", "quoted.")

	dmFields = table[domain.DirectMessage]{
		"id":         func(m *domain.DirectMessage, _ *Format) string { return m.ID },
		"text":       func(m *domain.DirectMessage, _ *Format) string { return m.Text },
		"created_at": func(m *domain.DirectMessage, f *Format) string { return f.timestamp(m.CreatedAt) },
	}
	embed(dmFields, "sender.", userFields, func(m *domain.DirectMessage) *domain.User { return &m.Sender })
	embed(dmFields, "recipient.", userFields, func(m *domain.DirectMessage) *domain.User { return &m.Recipient })

	notificationFields = table[domain.Notification]{
		"id":         func(n *domain.Notification, _ *Format) string { return n.ID },
		"type":       func(n *domain.Notification, _ *Format) string { return n.Type },
		"created_at": func(n *domain.Notification, f *Format) string { return f.timestamp(n.CreatedAt) },
	}
	embed(notificationFields, "user.", userFields, func(n *domain.Notification) *domain.User { return &n.Account })
	embed(notificationFields, "post.", inner, func(n *domain.Notification) *domain.Post { return n.Post })
	alias(notificationFields, "account.", "user.")
	alias(notificationFields, "status.", "post.")
}

func newUserTable() table[domain.User] {
	t := table[domain.User]{
		"id":              func(u *domain.User, _ *Format) string { return u.ID },
		"name":            func(u *domain.User, _ *Format) string { return u.DisplayName },
		"screen_name":     func(u *domain.User, _ *Format) string { return u.Handle },
		"followers_count": func(u *domain.User, f *Format) string { return f.count(u.FollowersCount) },
		"friends_count":   func(u *domain.User, f *Format) string { return f.count(u.FollowingCount) },
		"statuses_count":  func(u *domain.User, f *Format) string { return f.count(u.StatusesCount) },
		"description":     func(u *domain.User, _ *Format) string { return u.Description },
		"created_at":      func(u *domain.User, f *Format) string { return f.timestamp(u.CreatedAt) },
		"url":             func(u *domain.User, _ *Format) string { return u.URL },
		"bot":             func(u *domain.User, f *Format) string { return f.boolean(u.Bot) },
		"locked":          func(u *domain.User, f *Format) string { return f.boolean(u.Locked) },
		"platform":        func(u *domain.User, _ *Format) string { return u.Platform },
	}
	alias(t, "display_name", "name")
	alias(t, "acct", "screen_name")
	alias(t, "handle", "screen_name")
	alias(t, "following_count", "friends_count")
	alias(t, "posts_count", "statuses_count")
	alias(t, "note", "description")
	alias(t, "bio", "description")
	return t
}

func newPostTable() table[domain.Post] {
	t := table[domain.Post]{
		"id":                 func(p *domain.Post, _ *Format) string { return p.ID },
		"text":               func(p *domain.Post, _ *Format) string { return p.Text },
		"created_at":         func(p *domain.Post, f *Format) string { return f.timestamp(p.CreatedAt) },
		"source":             func(p *domain.Post, _ *Format) string { return p.Source },
		"repost_count":       func(p *domain.Post, f *Format) string { return f.count(p.RepostCount) },
		"favorite_count":     func(p *domain.Post, f *Format) string { return f.count(p.FavoriteCount) },
		"reply_count":        func(p *domain.Post, f *Format) string { return f.count(p.ReplyCount) },
		"possibly_sensitive": func(p *domain.Post, f *Format) string { return f.boolean(p.Sensitive) },
		"spoiler_text":       func(p *domain.Post, _ *Format) string { return p.SpoilerText },
		"language":           func(p *domain.Post, _ *Format) string { return p.Language },
		"language_name":      func(p *domain.Post, f *Format) string { return f.languageName(p.Language) },
		"url":                func(p *domain.Post, _ *Format) string { return p.URL },
		"visibility":         func(p *domain.Post, _ *Format) string { return p.Visibility },
		"in_reply_to":        func(p *domain.Post, _ *Format) string { return p.InReplyTo },
		"media_count":        func(p *domain.Post, f *Format) string { return f.count(p.MediaCount) },
		"platform":           func(p *domain.Post, _ *Format) string { return p.Platform },
	}
	alias(t, "content", "text")
	alias(t, "reblogs_count", "repost_count")
	alias(t, "boosts_count", "repost_count")
	alias(t, "favourites_count", "favorite_count")
	alias(t, "like_count", "favorite_count")
	alias(t, "replies_count", "reply_count")
	alias(t, "sensitive", "possibly_sensitive")
	alias(t, "cw", "spoiler_text")
	alias(t, "lang", "language")
	embed(t, "user.", userFields, func(p *domain.Post) *domain.User { return &p.Author })
	alias(t, "account.", "user.")
	return t
}

// embed adds every field of src to dst under prefix. A nil child renders
// as the empty string.
func embed[P, C any](dst table[P], prefix string, src table[C], child func(*P) *C) {
	for name, get := range src {
		dst[prefix+name] = func(rec *P, f *Format) string {
			c := child(rec)
			if c == nil {
				return ""
			}
			return get(c, f)
		}
	}
}

// alias makes name resolve like target. A target ending in "." copies
// every field under that prefix.
func alias[T any](t table[T], name, target string) {
	if target[len(target)-1] != '.' {
		t[name] = t[target]
		return
	}
	added := make(table[T])
	for field, get := range t {
		if rest, ok := strings.CutPrefix(field, target); ok && rest != "" {
			added[name+rest] = get
		}
	}
	maps.Copy(t, added)
}

// Fields returns the recognised field paths for kind k, sorted.
func Fields(k domain.Kind) []string {
	var names []string
	switch k {
	case domain.KindPost:
		names = keys(postFields)
	case domain.KindDirectMessage:
		names = keys(dmFields)
	case domain.KindUser:
		names = keys(userFields)
	case domain.KindNotification:
		names = keys(notificationFields)
	}
	sort.Strings(names)
	return names
}

// Known reports whether path is a recognised field for kind k.
func Known(k domain.Kind, path string) bool {
	switch k {
	case domain.KindPost:
		_, ok := postFields[path]
		return ok
	case domain.KindDirectMessage:
		_, ok := dmFields[path]
		return ok
	case domain.KindUser:
		_, ok := userFields[path]
		return ok
	case domain.KindNotification:
		_, ok := notificationFields[path]
		return ok
	}
	return false
}

func keys[T any](t table[T]) []string {
	out := make([]string, 0, len(t))
	for k := range t {
		out = append(out, k)
	}
	return out
}
