package bluesky

import "encoding/json"

// Lexicon $type values the decoder branches on.
const (
	typeEmbedImages     = "app.bsky.embed.images#view"
	typeEmbedVideo      = "app.bsky.embed.video#view"
	typeEmbedRecord     = "app.bsky.embed.record#view"
	typeEmbedRecordWith = "app.bsky.embed.recordWithMedia#view"
	typeViewRecord      = "app.bsky.embed.record#viewRecord"
	typeFacetMention    = "app.bsky.richtext.facet#mention"
	typeDeletedMessage  = "chat.bsky.convo.defs#deletedMessageView"
)

// payload is the union of the XRPC response bodies the decoder accepts.
// Only the lists matching the requested kind are read.
type payload struct {
	Feed          []bskyFeedViewPost `json:"feed"`
	Posts         []bskyPostView     `json:"posts"`
	Profiles      []bskyProfile      `json:"profiles"`
	Follows       []bskyProfile      `json:"follows"`
	Followers     []bskyProfile      `json:"followers"`
	Actors        []bskyProfile      `json:"actors"`
	Convo         *bskyConvo         `json:"convo"`
	Messages      []bskyMessage      `json:"messages"`
	Notifications []bskyNotification `json:"notifications"`
}

type bskyProfile struct {
	DID            string      `json:"did"`
	Handle         string      `json:"handle"`
	DisplayName    string      `json:"displayName"`
	Description    string      `json:"description"`
	FollowersCount int         `json:"followersCount"`
	FollowsCount   int         `json:"followsCount"`
	PostsCount     int         `json:"postsCount"`
	CreatedAt      string      `json:"createdAt"`
	Labels         []bskyLabel `json:"labels"`
}

type bskyLabel struct {
	Val string `json:"val"`
}

// bskyRecord is an app.bsky.feed.post record.
type bskyRecord struct {
	Text      string          `json:"text"`
	CreatedAt string          `json:"createdAt"`
	Langs     []string        `json:"langs"`
	Labels    *bskySelfLabels `json:"labels"`
	Reply     *bskyReplyRef   `json:"reply"`
	Facets    []bskyFacet     `json:"facets"`
}

type bskySelfLabels struct {
	Values []bskyLabel `json:"values"`
}

type bskyReplyRef struct {
	Parent struct {
		URI string `json:"uri"`
	} `json:"parent"`
}

type bskyFacet struct {
	Index struct {
		ByteStart int `json:"byteStart"`
		ByteEnd   int `json:"byteEnd"`
	} `json:"index"`
	Features []struct {
		Type string `json:"$type"`
		DID  string `json:"did"`
	} `json:"features"`
}

type bskyPostView struct {
	URI         string      `json:"uri"`
	Author      bskyProfile `json:"author"`
	Record      bskyRecord  `json:"record"`
	Embed       *bskyEmbed  `json:"embed"`
	ReplyCount  int         `json:"replyCount"`
	RepostCount int         `json:"repostCount"`
	LikeCount   int         `json:"likeCount"`
	IndexedAt   string      `json:"indexedAt"`
	Labels      []bskyLabel `json:"labels"`
}

// bskyEmbed covers the #view embed variants. Record holds a viewRecord
// for record#view and a record#view for recordWithMedia#view.
type bskyEmbed struct {
	Type   string            `json:"$type"`
	Images []json.RawMessage `json:"images"`
	Record json.RawMessage   `json:"record"`
	Media  *bskyEmbed        `json:"media"`
}

// bskyViewRecord is a quoted post as embedded in another post.
type bskyViewRecord struct {
	Type        string      `json:"$type"`
	URI         string      `json:"uri"`
	Author      bskyProfile `json:"author"`
	Value       bskyRecord  `json:"value"`
	Embeds      []bskyEmbed `json:"embeds"`
	ReplyCount  int         `json:"replyCount"`
	RepostCount int         `json:"repostCount"`
	LikeCount   int         `json:"likeCount"`
	IndexedAt   string      `json:"indexedAt"`
	Labels      []bskyLabel `json:"labels"`
}

type bskyFeedViewPost struct {
	Post   bskyPostView `json:"post"`
	Reason *struct {
		Type      string      `json:"$type"`
		URI       string      `json:"uri"`
		By        bskyProfile `json:"by"`
		IndexedAt string      `json:"indexedAt"`
	} `json:"reason"`
	Reply *struct {
		Parent *bskyPostView `json:"parent"`
	} `json:"reply"`
}

type bskyConvo struct {
	ID      string        `json:"id"`
	Members []bskyProfile `json:"members"`
}

type bskyMessage struct {
	Type   string `json:"$type"`
	ID     string `json:"id"`
	Text   string `json:"text"`
	SentAt string `json:"sentAt"`
	Sender struct {
		DID string `json:"did"`
	} `json:"sender"`
}

type bskyNotification struct {
	URI       string      `json:"uri"`
	Author    bskyProfile `json:"author"`
	Reason    string      `json:"reason"`
	Record    *bskyRecord `json:"record"`
	IndexedAt string      `json:"indexedAt"`
}
