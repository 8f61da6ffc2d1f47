package mastodon

import "encoding/json"

// mastodonStatus is the subset of Mastodon's Status entity we care about.
type mastodonStatus struct {
	ID                 string                    `json:"id"`
	Content            string                    `json:"content"` // HTML
	CreatedAt          string                    `json:"created_at"`
	URL                string                    `json:"url"`
	URI                string                    `json:"uri"`
	Account            mastodonAccount           `json:"account"`
	Reblog             *mastodonStatus           `json:"reblog"`
	Quote              json.RawMessage           `json:"quote"`
	Application        *mastodonApplication      `json:"application"`
	ReblogsCount       int                       `json:"reblogs_count"`
	FavouritesCount    int                       `json:"favourites_count"`
	RepliesCount       int                       `json:"replies_count"`
	Sensitive          bool                      `json:"sensitive"`
	SpoilerText        string                    `json:"spoiler_text"`
	Language           *string                   `json:"language"`
	Visibility         string                    `json:"visibility"`
	InReplyToID        any                       `json:"in_reply_to_id"`
	InReplyToAccountID *string                   `json:"in_reply_to_account_id"`
	MediaAttachments   []mastodonMediaAttachment `json:"media_attachments"`
	Mentions           []mastodonMention         `json:"mentions"`
}

type mastodonAccount struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Acct           string `json:"acct"`
	DisplayName    string `json:"display_name"`
	Note           string `json:"note"` // HTML
	URL            string `json:"url"`
	CreatedAt      string `json:"created_at"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	StatusesCount  int    `json:"statuses_count"`
	Bot            bool   `json:"bot"`
	Locked         bool   `json:"locked"`
}

type mastodonApplication struct {
	Name string `json:"name"`
}

type mastodonMediaAttachment struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

type mastodonMention struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Acct     string `json:"acct"`
	URL      string `json:"url"`
}

// mastodonQuote is the 4.4+ Quote entity. Some forks put the quoted
// Status directly in the "quote" field instead; decodeQuote handles both.
type mastodonQuote struct {
	State        string          `json:"state"`
	QuotedStatus *mastodonStatus `json:"quoted_status"`
}

type mastodonConversation struct {
	ID         string            `json:"id"`
	Accounts   []mastodonAccount `json:"accounts"`
	LastStatus *mastodonStatus   `json:"last_status"`
	Unread     bool              `json:"unread"`
}

type mastodonNotification struct {
	ID        string          `json:"id"`
	Type      string          `json:"type"`
	CreatedAt string          `json:"created_at"`
	Account   mastodonAccount `json:"account"`
	Status    *mastodonStatus `json:"status"`
}
