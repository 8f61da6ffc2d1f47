package bluesky

import (
	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/textclean"
)

// mapMessages converts chat.bsky.convo.getMessages output. Senders carry
// only a DID; names come from the convo members, then the user cache.
// Deleted messages are skipped.
func (d *Decoder) mapMessages(convo *bskyConvo, msgs []bskyMessage) []domain.DirectMessage {
	var members []domain.User
	if convo != nil {
		for _, m := range convo.Members {
			d.remember(m)
			members = append(members, d.mapProfile(m))
		}
	}

	out := make([]domain.DirectMessage, 0, len(msgs))
	for _, m := range msgs {
		if m.Type == typeDeletedMessage {
			continue
		}
		sender := d.userFor(m.Sender.DID, members)
		out = append(out, domain.DirectMessage{
			ID:        m.ID,
			Sender:    sender,
			Recipient: d.recipient(members, sender.ID),
			Text:      textclean.SanitizeForTerminal(m.Text),
			CreatedAt: parseTime(m.SentAt),
		})
	}
	return out
}

func (d *Decoder) userFor(did string, members []domain.User) domain.User {
	for _, u := range members {
		if u.ID == did {
			return u
		}
	}
	if u, ok := d.users.LookupByID(did); ok {
		return u
	}
	return domain.User{ID: did, DisplayName: did, Handle: did, Platform: platform}
}

// recipient is the first member other than the sender. In a group convo
// that is an arbitrary member.
func (d *Decoder) recipient(members []domain.User, senderID string) domain.User {
	for _, u := range members {
		if u.ID != senderID {
			return u
		}
	}
	return d.self
}
