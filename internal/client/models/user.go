package models

import "time"

// User is the authenticated identity plus its per-user story subsets.
type User struct {
	Username  string
	Name      string
	CreatedAt time.Time

	// LoginToken rotates on every login.
	LoginToken string

	Favorites  []*Story
	OwnStories []*Story
}

// IsFavorite reports whether a story with id is in u's favorites.
// A nil user has no favorites.
func (u *User) IsFavorite(id string) bool {
	if u == nil {
		return false
	}
	return IndexOf(u.Favorites, id) >= 0
}

// Owns reports whether u submitted the story with id.
func (u *User) Owns(id string) bool {
	if u == nil {
		return false
	}
	return IndexOf(u.OwnStories, id) >= 0
}

// FavoriteIDs returns the ids of u's favorites in order.
func (u *User) FavoriteIDs() []string {
	if u == nil {
		return nil
	}
	ids := make([]string, 0, len(u.Favorites))
	for _, s := range u.Favorites {
		ids = append(ids, s.ID)
	}
	return ids
}
