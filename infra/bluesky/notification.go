package bluesky

import "github.com/CrestNiraj12/speakfeed/domain"

// notificationTypes maps Bluesky reasons to the Mastodon notification
// types templates are written against. Unknown reasons pass through.
var notificationTypes = map[string]string{
	"like":   "favourite",
	"repost": "reblog",
	"reply":  "mention",
	"quote":  "mention",
}

func (d *Decoder) mapNotifications(notifs []bskyNotification) []domain.Notification {
	out := make([]domain.Notification, 0, len(notifs))
	for _, n := range notifs {
		d.remember(n.Author)
		typ := n.Reason
		if mapped, ok := notificationTypes[typ]; ok {
			typ = mapped
		}
		item := domain.Notification{
			ID:        n.URI,
			Type:      typ,
			Account:   d.mapProfile(n.Author),
			CreatedAt: parseTime(n.IndexedAt),
		}
		// For these reasons the notification record is the post itself.
		if n.Record != nil && typ == "mention" {
			pv := bskyPostView{
				URI:       n.URI,
				Author:    n.Author,
				Record:    *n.Record,
				IndexedAt: n.IndexedAt,
			}
			d.rememberMentions(pv.Record)
			p := d.mapPostView(&pv, false)
			item.Post = &p
		}
		out = append(out, item)
	}
	return out
}
