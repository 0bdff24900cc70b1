// Package render turns stories and users into output fragments. HTML mirrors
// the browser markup of the story lists; Text is what the terminal client
// prints.
package render

import (
	"time"

	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
)

// StoryView is a story plus the per-user flags that change how it is drawn.
type StoryView struct {
	Story    *models.Story
	Own      bool
	Favorite bool
}

// Renderer produces one fragment per story, the empty-state message of a
// list and the profile panel.
type Renderer interface {
	Story(v StoryView) string
	Empty(msg string) string
	Profile(u *models.User) string
}

func accountDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}
