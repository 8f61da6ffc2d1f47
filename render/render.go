package render

import "github.com/CrestNiraj12/speakfeed/domain"

// Render expands tmpl against rec. rec may be a domain.Post,
// domain.DirectMessage, domain.User or domain.Notification, or a pointer
// to one. Any other value keeps the literal text and drops every
// placeholder.
func Render(tmpl string, rec any, f Format) string {
	return Parse(tmpl).Execute(rec, f)
}

// RenderPost expands tmpl against a post-like record.
func RenderPost(tmpl string, p domain.Post, f Format) string {
	return Parse(tmpl).Post(p, f)
}

// RenderDirectMessage expands tmpl against a direct message.
func RenderDirectMessage(tmpl string, m domain.DirectMessage, f Format) string {
	return Parse(tmpl).DirectMessage(m, f)
}

// RenderUser expands tmpl against a user profile.
func RenderUser(tmpl string, u domain.User, f Format) string {
	return Parse(tmpl).User(u, f)
}

// RenderNotification expands tmpl against a notification.
func RenderNotification(tmpl string, n domain.Notification, f Format) string {
	return Parse(tmpl).Notification(n, f)
}

// Execute dispatches on the record type like Render.
func (t Template) Execute(rec any, f Format) string {
	switch r := rec.(type) {
	case domain.Post:
		return t.Post(r, f)
	case *domain.Post:
		return execute(t, postFields, r, &f)
	case domain.DirectMessage:
		return t.DirectMessage(r, f)
	case *domain.DirectMessage:
		return execute(t, dmFields, r, &f)
	case domain.User:
		return t.User(r, f)
	case *domain.User:
		return execute(t, userFields, r, &f)
	case domain.Notification:
		return t.Notification(r, f)
	case *domain.Notification:
		return execute(t, notificationFields, r, &f)
	}
	return execute[struct{}](t, nil, nil, &f)
}

func (t Template) Post(p domain.Post, f Format) string {
	return execute(t, postFields, &p, &f)
}

func (t Template) DirectMessage(m domain.DirectMessage, f Format) string {
	return execute(t, dmFields, &m, &f)
}

func (t Template) User(u domain.User, f Format) string {
	return execute(t, userFields, &u, &f)
}

func (t Template) Notification(n domain.Notification, f Format) string {
	return execute(t, notificationFields, &n, &f)
}

// Lines renders every record of kind k in b, in order.
func (t Template) Lines(b domain.Batch, k domain.Kind, f Format) []string {
	out := make([]string, 0, b.Len(k))
	switch k {
	case domain.KindPost:
		for i := range b.Posts {
			out = append(out, execute(t, postFields, &b.Posts[i], &f))
		}
	case domain.KindDirectMessage:
		for i := range b.DirectMessages {
			out = append(out, execute(t, dmFields, &b.DirectMessages[i], &f))
		}
	case domain.KindUser:
		for i := range b.Users {
			out = append(out, execute(t, userFields, &b.Users[i], &f))
		}
	case domain.KindNotification:
		for i := range b.Notifications {
			out = append(out, execute(t, notificationFields, &b.Notifications[i], &f))
		}
	}
	return out
}
