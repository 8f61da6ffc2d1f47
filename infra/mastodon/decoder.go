package mastodon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/usercache"
)

const platform = "mastodon"

// Decoder implements app.Decoder for Mastodon REST API responses: arrays
// of Status, Account, Conversation or Notification entities.
type Decoder struct {
	users *usercache.Cache
	self  domain.User
}

// NewDecoder creates a Decoder. users may be nil; when set, every decoded
// account is remembered and used to name reply targets.
func NewDecoder(users *usercache.Cache) *Decoder {
	return &Decoder{users: users}
}

// WithSelf sets the authenticated account, used as the recipient of
// direct messages that other people sent.
func (d *Decoder) WithSelf(u domain.User) *Decoder {
	d.self = u
	return d
}

func (d *Decoder) Decode(kind domain.Kind, data []byte) (domain.Batch, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.Batch{}, domain.ErrEmptyPayload
	}

	var b domain.Batch
	switch kind {
	case domain.KindPost:
		var statuses []mastodonStatus
		if err := json.Unmarshal(data, &statuses); err != nil {
			return b, fmt.Errorf("parsing statuses: %w", err)
		}
		b.Posts = d.mapStatuses(statuses)
	case domain.KindUser:
		var accounts []mastodonAccount
		if err := json.Unmarshal(data, &accounts); err != nil {
			return b, fmt.Errorf("parsing accounts: %w", err)
		}
		b.Users = d.mapAccounts(accounts)
	case domain.KindDirectMessage:
		var convs []mastodonConversation
		if err := json.Unmarshal(data, &convs); err != nil {
			return b, fmt.Errorf("parsing conversations: %w", err)
		}
		b.DirectMessages = d.mapConversations(convs)
	case domain.KindNotification:
		var notifs []mastodonNotification
		if err := json.Unmarshal(data, &notifs); err != nil {
			return b, fmt.Errorf("parsing notifications: %w", err)
		}
		b.Notifications = d.mapNotifications(notifs)
	default:
		return b, fmt.Errorf("%w: %v", domain.ErrUnknownKind, kind)
	}
	return b, nil
}

// parseTime accepts RFC 3339 with or without fractional seconds.
// Unparseable values become the zero time, which renders as "".
func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
