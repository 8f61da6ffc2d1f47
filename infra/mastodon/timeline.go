package mastodon

import (
	"encoding/json"

	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/textclean"
)

func (d *Decoder) mapStatuses(statuses []mastodonStatus) []domain.Post {
	// Remember every author first so replies can name accounts that
	// appear later in the same page.
	for i := range statuses {
		d.rememberStatus(&statuses[i])
	}
	posts := make([]domain.Post, 0, len(statuses))
	for i := range statuses {
		posts = append(posts, d.mapStatus(&statuses[i], true))
	}
	return posts
}

func (d *Decoder) rememberStatus(st *mastodonStatus) {
	if st == nil {
		return
	}
	d.users.Add(d.mapAccount(st.Account))
	for _, m := range st.Mentions {
		if _, ok := d.users.LookupByID(m.ID); !ok {
			d.users.Add(domain.User{ID: m.ID, Handle: m.Acct, DisplayName: m.Acct, URL: m.URL, Platform: platform})
		}
	}
	d.rememberStatus(st.Reblog)
	d.rememberStatus(decodeQuote(st.Quote))
}

// mapStatus converts one status. withEmbeds is false for the inner status of
// a reblog or quote, which never carries its own reblog/quote.
func (d *Decoder) mapStatus(st *mastodonStatus, withEmbeds bool) domain.Post {
	p := domain.Post{
		ID:            st.ID,
		Author:        d.mapAccount(st.Account),
		Text:          textclean.StripHTML(st.Content),
		CreatedAt:     parseTime(st.CreatedAt),
		RepostCount:   st.ReblogsCount,
		FavoriteCount: st.FavouritesCount,
		ReplyCount:    st.RepliesCount,
		Sensitive:     st.Sensitive,
		SpoilerText:   textclean.SanitizeForTerminal(st.SpoilerText),
		URL:           st.URL,
		Visibility:    st.Visibility,
		MediaCount:    len(st.MediaAttachments),
		Platform:      platform,
	}
	if p.URL == "" {
		p.URL = st.URI
	}
	if st.Application != nil {
		p.Source = textclean.SanitizeForTerminal(st.Application.Name)
	}
	if st.Language != nil {
		p.Language = *st.Language
	}
	if st.InReplyToAccountID != nil {
		p.InReplyTo = d.replyTarget(st, *st.InReplyToAccountID)
	}
	if !withEmbeds {
		return p
	}
	if st.Reblog != nil {
		orig := d.mapStatus(st.Reblog, false)
		p.Repost = &orig
	}
	if q := decodeQuote(st.Quote); q != nil {
		quoted := d.mapStatus(q, false)
		p.Quote = &quoted
	}
	return p
}

func (d *Decoder) replyTarget(st *mastodonStatus, accountID string) string {
	if accountID == "" {
		return ""
	}
	if accountID == st.Account.ID {
		return st.Account.Acct
	}
	for _, m := range st.Mentions {
		if m.ID == accountID {
			return m.Acct
		}
	}
	if u, ok := d.users.LookupByID(accountID); ok {
		return u.Handle
	}
	return ""
}

// decodeQuote accepts the 4.4+ Quote entity or a bare Status. A quote
// whose state hides the post (pending, deleted, ...) has no
// quoted_status and decodes to nil.
func decodeQuote(raw json.RawMessage) *mastodonStatus {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var q mastodonQuote
	if err := json.Unmarshal(raw, &q); err == nil && q.QuotedStatus != nil {
		return q.QuotedStatus
	}
	var st mastodonStatus
	if err := json.Unmarshal(raw, &st); err == nil && st.ID != "" {
		return &st
	}
	return nil
}
