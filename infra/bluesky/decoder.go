// Package bluesky decodes AT Protocol XRPC responses (app.bsky.* and
// chat.bsky.*) into domain records.
package bluesky

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/usercache"
)

const platform = "bluesky"

// Decoder implements app.Decoder for saved Bluesky responses.
type Decoder struct {
	users *usercache.Cache
	self  domain.User
}

// NewDecoder creates a Decoder. users may be nil; when set, every decoded
// profile is remembered and used to name reply targets and message senders.
func NewDecoder(users *usercache.Cache) *Decoder {
	return &Decoder{users: users}
}

// WithSelf sets the logged-in account, used as the recipient when a
// conversation lists no other member.
func (d *Decoder) WithSelf(u domain.User) *Decoder {
	d.self = u
	return d
}

func (d *Decoder) Decode(kind domain.Kind, data []byte) (domain.Batch, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Batch{}, domain.ErrEmptyPayload
	}

	var b domain.Batch
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return b, fmt.Errorf("parsing %s response: %w", kind, err)
	}

	switch kind {
	case domain.KindPost:
		b.Posts = d.mapFeed(p.Feed)
		b.Posts = append(b.Posts, d.mapPostViews(p.Posts)...)
	case domain.KindUser:
		profiles := p.Profiles
		for _, list := range [][]bskyProfile{p.Follows, p.Followers, p.Actors} {
			profiles = append(profiles, list...)
		}
		if len(profiles) == 0 {
			// app.bsky.actor.getProfile returns the profile itself.
			var single bskyProfile
			if err := json.Unmarshal(data, &single); err == nil && single.DID != "" {
				profiles = append(profiles, single)
			}
		}
		b.Users = d.mapProfiles(profiles)
	case domain.KindDirectMessage:
		b.DirectMessages = d.mapMessages(p.Convo, p.Messages)
	case domain.KindNotification:
		b.Notifications = d.mapNotifications(p.Notifications)
	default:
		return b, fmt.Errorf("%w: %v", domain.ErrUnknownKind, kind)
	}
	return b, nil
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// didFromURI returns the repository DID of an at:// URI.
func didFromURI(uri string) string {
	rest, ok := strings.CutPrefix(uri, "at://")
	if !ok {
		return ""
	}
	did, _, _ := strings.Cut(rest, "/")
	return did
}

// rkeyFromURI returns the record key, the last path segment of an at:// URI.
func rkeyFromURI(uri string) string {
	if i := strings.LastIndexByte(uri, '/'); i >= 0 {
		return uri[i+1:]
	}
	return ""
}

func postURL(handle, uri string) string {
	rkey := rkeyFromURI(uri)
	if handle == "" || rkey == "" {
		return ""
	}
	return "https://bsky.app/profile/" + handle + "/post/" + rkey
}
