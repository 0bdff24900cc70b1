package view

import "github.com/dmitrijs2005/hacksnooze/internal/client/models"

// Story is re-exported so callers of this package rarely need models.
type Story = models.Story

// Trigger names a user action.
type Trigger string

const (
	Home         Trigger = "home"
	NavMyStories Trigger = "nav-my-stories"
	NavFavorites Trigger = "nav-favorites"
	NavProfile   Trigger = "nav-profile"
	NavLogin     Trigger = "nav-login"
	NavSubmit    Trigger = "nav-submit"
	NavLogout    Trigger = "nav-logout"

	SubmitLogin    Trigger = "submit-login"
	SubmitRegister Trigger = "submit-register"
	SubmitStory    Trigger = "submit-story"

	Star  Trigger = "star"
	Trash Trigger = "trash"
)

// Event is a trigger with its payload. Only the fields relevant to the
// trigger are read.
type Event struct {
	Trigger Trigger

	// StoryID is used by Star and Trash.
	StoryID string

	// Username, Password and Name are used by SubmitLogin and SubmitRegister.
	// Password is wiped once the request is done.
	Username string
	Password []byte
	Name     string

	// Story is used by SubmitStory.
	Story models.StoryFields
}

// Outcome describes what the caller has to do after a transition.
type Outcome struct {
	// Reload asks the caller to discard the controller and its services and
	// boot a new one.
	Reload bool

	// Story is the story created by SubmitStory.
	Story *models.Story
}

// Drafts are the form contents kept between attempts. Passwords are never
// kept.
type Drafts struct {
	LoginUsername    string
	RegisterUsername string
	RegisterName     string
	Story            models.StoryFields
}
