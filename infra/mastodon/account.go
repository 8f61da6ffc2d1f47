package mastodon

import (
	"github.com/CrestNiraj12/speakfeed/domain"
	"github.com/CrestNiraj12/speakfeed/infra/textclean"
)

func (d *Decoder) mapAccounts(accounts []mastodonAccount) []domain.User {
	users := make([]domain.User, 0, len(accounts))
	for _, a := range accounts {
		u := d.mapAccount(a)
		d.users.Add(u)
		users = append(users, u)
	}
	return users
}

func (d *Decoder) mapAccount(a mastodonAccount) domain.User {
	handle := textclean.SanitizeForTerminal(a.Acct)
	if handle == "" {
		handle = textclean.SanitizeForTerminal(a.Username)
	}
	name := textclean.SanitizeForTerminal(a.DisplayName)
	if name == "" {
		name = handle
	}
	return domain.User{
		ID:             a.ID,
		DisplayName:    name,
		Handle:         handle,
		FollowersCount: a.FollowersCount,
		FollowingCount: a.FollowingCount,
		StatusesCount:  a.StatusesCount,
		Description:    textclean.StripHTML(a.Note),
		CreatedAt:      parseTime(a.CreatedAt),
		URL:            a.URL,
		Bot:            a.Bot,
		Locked:         a.Locked,
		Platform:       platform,
	}
}
