package mastodon

import (
	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/textclean"
)

// mapConversations turns each conversation's last status into a direct
// message. Conversations without a last status are skipped.
func (d *Decoder) mapConversations(convs []mastodonConversation) []domain.DirectMessage {
	msgs := make([]domain.DirectMessage, 0, len(convs))
	for _, c := range convs {
		if c.LastStatus == nil {
			continue
		}
		d.rememberStatus(c.LastStatus)
		for _, a := range c.Accounts {
			d.users.Add(d.mapAccount(a))
		}

		st := c.LastStatus
		sender := d.mapAccount(st.Account)
		msgs = append(msgs, domain.DirectMessage{
			ID:        st.ID,
			Sender:    sender,
			Recipient: d.recipient(c, sender.ID),
			Text:      textclean.StripHTML(st.Content),
			CreatedAt: parseTime(st.CreatedAt),
		})
	}
	return msgs
}

// recipient picks the first participant who is not the sender. The
// account list excludes the authenticated user, so when the only
// participant sent the last status the recipient is the user set with
// WithSelf (zero when unset).
func (d *Decoder) recipient(c mastodonConversation, senderID string) domain.User {
	for _, a := range c.Accounts {
		if a.ID != senderID {
			return d.mapAccount(a)
		}
	}
	return d.self
}
