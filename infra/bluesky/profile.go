package bluesky

import (
	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/textclean"
)

func (d *Decoder) mapProfiles(profiles []bskyProfile) []domain.User {
	users := make([]domain.User, 0, len(profiles))
	for _, p := range profiles {
		u := d.mapProfile(p)
		d.users.Add(u)
		users = append(users, u)
	}
	return users
}

func (d *Decoder) mapProfile(p bskyProfile) domain.User {
	handle := textclean.SanitizeForTerminal(p.Handle)
	name := textclean.SanitizeForTerminal(p.DisplayName)
	if name == "" {
		name = handle
	}
	u := domain.User{
		ID:             p.DID,
		DisplayName:    name,
		Handle:         handle,
		FollowersCount: p.FollowersCount,
		FollowingCount: p.FollowsCount,
		StatusesCount:  p.PostsCount,
		Description:    textclean.SanitizeForTerminal(p.Description),
		CreatedAt:      parseTime(p.CreatedAt),
		Platform:       platform,
	}
	if handle != "" {
		u.URL = "https://bsky.app/profile/" + handle
	}
	for _, l := range p.Labels {
		if l.Val == "bot" {
			u.Bot = true
		}
	}
	return u
}

// remember caches p unless it is empty. Handles in partial views (such
// as a message sender) never overwrite a cached full profile.
func (d *Decoder) remember(p bskyProfile) {
	if p.DID == "" {
		return
	}
	if p.Handle == "" {
		if _, ok := d.users.LookupByID(p.DID); ok {
			return
		}
	}
	d.users.Add(d.mapProfile(p))
}

// handleFor names the account behind did: a cached handle, otherwise
// the DID itself.
func (d *Decoder) handleFor(did string) string {
	if u, ok := d.users.LookupByID(did); ok && u.Handle != "" {
		return u.Handle
	}
	return did
}
