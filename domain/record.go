package domain

import (
	"fmt"
	"strings"
	"time"
)

// Kind names the record shape a template applies to.
type Kind int

const (
	KindPost Kind = iota
	KindDirectMessage
	KindUser
	KindNotification
)

// String returns the name used in flags and config files.
func (k Kind) String() string {
	switch k {
	case KindPost:
		return "post"
	case KindDirectMessage:
		return "dm"
	case KindUser:
		return "user"
	case KindNotification:
		return "notification"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind maps a flag value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "post", "posts", "status", "statuses":
		return KindPost, nil
	case "dm", "dms", "direct_message", "message", "messages":
		return KindDirectMessage, nil
	case "user", "users", "account", "accounts", "profile", "profiles":
		return KindUser, nil
	case "notification", "notifications":
		return KindNotification, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// User is a profile as seen by the client.
type User struct {
	ID             string
	DisplayName    string
	Handle         string // acct on Mastodon, handle on Bluesky
	FollowersCount int
	FollowingCount int
	StatusesCount  int
	Description    string // Plain text, HTML stripped
	CreatedAt      time.Time
	URL            string
	Bot            bool
	Locked         bool
	Platform       string
}

// Post is a post-like item: a post, reply, repost or quote.
type Post struct {
	ID            string
	Author        User
	Text          string // Plain text, HTML stripped
	CreatedAt     time.Time
	Source        string // Posting client, empty when unknown
	RepostCount   int
	FavoriteCount int
	ReplyCount    int
	Sensitive     bool
	SpoilerText   string
	Language      string
	URL           string
	Visibility    string
	InReplyTo     string // Handle of the replied-to account
	MediaCount    int
	Platform      string

	// Repost is the original post when this item is a repost; Author is
	// then the reposting account.
	Repost *Post
	// Quote is the embedded quoted post, if any.
	Quote *Post
}

// IsRepost reports whether the item wraps another post.
func (p Post) IsRepost() bool { return p.Repost != nil }

// IsQuote reports whether the item embeds a quoted post.
func (p Post) IsQuote() bool { return p.Quote != nil }

// DirectMessage is a private message between two accounts.
type DirectMessage struct {
	ID        string
	Sender    User
	Recipient User
	Text      string
	CreatedAt time.Time
}

// Notification is an event such as a follow, favourite or mention.
type Notification struct {
	ID        string
	Type      string // follow, favourite, reblog, mention, poll, ...
	Account   User   // Who triggered it
	Post      *Post  // Related post, if any
	CreatedAt time.Time
}

// Batch holds decoded records. Decoders fill only the slice matching the
// requested kind.
type Batch struct {
	Posts          []Post
	DirectMessages []DirectMessage
	Users          []User
	Notifications  []Notification
}

// Len returns the number of records of the given kind.
func (b Batch) Len(k Kind) int {
	switch k {
	case KindPost:
		return len(b.Posts)
	case KindDirectMessage:
		return len(b.DirectMessages)
	case KindUser:
		return len(b.Users)
	case KindNotification:
		return len(b.Notifications)
	}
	return 0
}
