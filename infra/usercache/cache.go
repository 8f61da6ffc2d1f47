package usercache

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/CrestNiraj12/speakfeed/domain"
)

// DefaultSize bounds the number of users kept per account.
const DefaultSize = 500

// Cache remembers recently seen users so decoders can resolve IDs that
// payloads carry without a full profile. In memory only.
type Cache struct {
	users *lru.Cache[string, domain.User]
}

// New creates a cache holding at most size users. size <= 0 uses DefaultSize.
func New(size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[string, domain.User](size)
	if err != nil {
		// Only returned for a non-positive size.
		panic(err)
	}
	return &Cache{users: c}
}

// Add stores u, replacing any entry with the same ID. Users without an
// ID are ignored.
func (c *Cache) Add(u domain.User) {
	if c == nil || u.ID == "" {
		return
	}
	c.users.Add(u.ID, u)
}

// AddFromPost stores the author of p and of any reposted or quoted post.
func (c *Cache) AddFromPost(p domain.Post) {
	c.Add(p.Author)
	if p.Repost != nil {
		c.AddFromPost(*p.Repost)
	}
	if p.Quote != nil {
		c.AddFromPost(*p.Quote)
	}
}

// LookupByID returns the user with the given ID.
func (c *Cache) LookupByID(id string) (domain.User, bool) {
	if c == nil || id == "" {
		return domain.User{}, false
	}
	return c.users.Get(id)
}

// LookupByName finds a user by handle, ignoring case and a leading "@".
// "alice" matches both "alice" and "alice@example.social".
func (c *Cache) LookupByName(name string) (domain.User, bool) {
	if c == nil {
		return domain.User{}, false
	}
	name = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), "@"))
	if name == "" {
		return domain.User{}, false
	}
	keys := c.users.Keys()
	// Newest first.
	for i := len(keys) - 1; i >= 0; i-- {
		u, ok := c.users.Peek(keys[i])
		if !ok {
			continue
		}
		handle := strings.ToLower(u.Handle)
		local, _, _ := strings.Cut(handle, "@")
		if handle == name || local == name {
			return u, true
		}
	}
	return domain.User{}, false
}

// Len returns the number of cached users.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.users.Len()
}
