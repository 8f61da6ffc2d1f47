package mastodon

import "github.com/CrestNiraj12/speakfeed/domain"

func (d *Decoder) mapNotifications(notifs []mastodonNotification) []domain.Notification {
	out := make([]domain.Notification, 0, len(notifs))
	for _, n := range notifs {
		acct := d.mapAccount(n.Account)
		d.users.Add(acct)
		item := domain.Notification{
			ID:        n.ID,
			Type:      n.Type,
			Account:   acct,
			CreatedAt: parseTime(n.CreatedAt),
		}
		if n.Status != nil {
			d.rememberStatus(n.Status)
			p := d.mapStatus(n.Status, false)
			item.Post = &p
		}
		out = append(out, item)
	}
	return out
}
