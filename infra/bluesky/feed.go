package bluesky

import (
	"encoding/json"
	"slices"
	"strings"

	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/textclean"
)

func (d *Decoder) mapFeed(items []bskyFeedViewPost) []domain.Post {
	// Remember every profile first so replies can name parents that
	// appear later in the same page.
	for i := range items {
		it := &items[i]
		d.rememberPost(&it.Post)
		if it.Reason != nil {
			d.remember(it.Reason.By)
		}
		if it.Reply != nil && it.Reply.Parent != nil {
			d.rememberPost(it.Reply.Parent)
		}
	}

	posts := make([]domain.Post, 0, len(items))
	for i := range items {
		it := &items[i]
		if it.Reason == nil || !strings.Contains(it.Reason.Type, "reasonRepost") {
			posts = append(posts, d.mapPostView(&it.Post, true))
			continue
		}
		orig := d.mapPostView(&it.Post, false)
		id := it.Reason.URI
		if id == "" {
			id = orig.ID
		}
		posts = append(posts, domain.Post{
			ID:        id,
			Author:    d.mapProfile(it.Reason.By),
			CreatedAt: parseTime(it.Reason.IndexedAt),
			URL:       orig.URL,
			Platform:  platform,
			Repost:    &orig,
		})
	}
	return posts
}

func (d *Decoder) mapPostViews(views []bskyPostView) []domain.Post {
	for i := range views {
		d.rememberPost(&views[i])
	}
	posts := make([]domain.Post, 0, len(views))
	for i := range views {
		posts = append(posts, d.mapPostView(&views[i], true))
	}
	return posts
}

func (d *Decoder) rememberPost(pv *bskyPostView) {
	d.remember(pv.Author)
	d.rememberMentions(pv.Record)
	if q := quotedRecord(pv.Embed); q != nil {
		d.remember(q.Author)
		d.rememberMentions(q.Value)
	}
}

// rememberMentions caches the handle each mention facet covers, unless
// the DID is already known.
func (d *Decoder) rememberMentions(rec bskyRecord) {
	for _, f := range rec.Facets {
		start, end := f.Index.ByteStart, f.Index.ByteEnd
		if start < 0 || end > len(rec.Text) || start >= end {
			continue
		}
		handle := strings.TrimPrefix(rec.Text[start:end], "@")
		for _, feat := range f.Features {
			if feat.Type != typeFacetMention || feat.DID == "" {
				continue
			}
			if _, ok := d.users.LookupByID(feat.DID); !ok {
				d.remember(bskyProfile{DID: feat.DID, Handle: handle})
			}
		}
	}
}

// mapPostView converts one post. withEmbeds is false for reposted and
// quoted posts, which never carry their own quote.
func (d *Decoder) mapPostView(pv *bskyPostView, withEmbeds bool) domain.Post {
	rec := pv.Record
	author := d.mapProfile(pv.Author)
	p := domain.Post{
		ID:            pv.URI,
		Author:        author,
		Text:          textclean.SanitizeForTerminal(rec.Text),
		CreatedAt:     parseTime(rec.CreatedAt),
		RepostCount:   pv.RepostCount,
		FavoriteCount: pv.LikeCount,
		ReplyCount:    pv.ReplyCount,
		URL:           postURL(author.Handle, pv.URI),
		MediaCount:    mediaCount(pv.Embed),
		Platform:      platform,
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = parseTime(pv.IndexedAt)
	}
	if len(rec.Langs) > 0 {
		p.Language = rec.Langs[0]
	}
	if labels := labelValues(pv.Labels, rec.Labels); len(labels) > 0 {
		p.Sensitive = true
		p.SpoilerText = strings.Join(labels, ", ")
	}
	if rec.Reply != nil {
		if did := didFromURI(rec.Reply.Parent.URI); did != "" {
			p.InReplyTo = d.handleFor(did)
		}
	}
	if withEmbeds {
		if q := quotedRecord(pv.Embed); q != nil {
			quoted := d.mapViewRecord(q)
			p.Quote = &quoted
		}
	}
	return p
}

func (d *Decoder) mapViewRecord(v *bskyViewRecord) domain.Post {
	pv := bskyPostView{
		URI:         v.URI,
		Author:      v.Author,
		Record:      v.Value,
		ReplyCount:  v.ReplyCount,
		RepostCount: v.RepostCount,
		LikeCount:   v.LikeCount,
		IndexedAt:   v.IndexedAt,
		Labels:      v.Labels,
	}
	if len(v.Embeds) > 0 {
		pv.Embed = &v.Embeds[0]
	}
	return d.mapPostView(&pv, false)
}

// quotedRecord returns the post a record or recordWithMedia embed
// quotes. Blocked, deleted and non-post records (feeds, lists) yield nil.
func quotedRecord(e *bskyEmbed) *bskyViewRecord {
	if e == nil {
		return nil
	}
	raw := e.Record
	switch e.Type {
	case typeEmbedRecord:
	case typeEmbedRecordWith:
		var inner struct {
			Record json.RawMessage `json:"record"`
		}
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil
		}
		raw = inner.Record
	default:
		return nil
	}
	var v bskyViewRecord
	if err := json.Unmarshal(raw, &v); err != nil || v.Type != typeViewRecord {
		return nil
	}
	return &v
}

func mediaCount(e *bskyEmbed) int {
	if e == nil {
		return 0
	}
	switch e.Type {
	case typeEmbedImages:
		return len(e.Images)
	case typeEmbedVideo:
		return 1
	case typeEmbedRecordWith:
		return mediaCount(e.Media)
	}
	return 0
}

// labelValues merges moderation labels and self labels. System labels
// ("!no-unauthenticated" and friends) are not content warnings.
func labelValues(labels []bskyLabel, self *bskySelfLabels) []string {
	all := labels
	if self != nil {
		all = append(slices.Clip(all), self.Values...)
	}
	var out []string
	for _, l := range all {
		if l.Val == "" || strings.HasPrefix(l.Val, "!") || slices.Contains(out, l.Val) {
			continue
		}
		out = append(out, l.Val)
	}
	return out
}
