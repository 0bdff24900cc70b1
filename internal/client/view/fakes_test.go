package view

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
	"github.com/dmitrijs2005/hacksnooze/internal/client/render"
	"github.com/dmitrijs2005/hacksnooze/internal/logging"
)

// ---- fakes ----

type fakeSessions struct {
	Session models.Session
	Err     error
}

func (f *fakeSessions) Load(context.Context) (models.Session, error) {
	return f.Session, f.Err
}

type fakeUsers struct {
	HydrateRet *models.User
	HydrateErr error

	LoginRet *models.User
	LoginErr error

	RegisterRet *models.User
	RegisterErr error

	LogoutErr   error
	LogoutCalls int

	FavoriteErr error
	// FavoriteEntered and FavoriteRelease, when set, make ToggleFavorite
	// signal its start and wait before returning.
	FavoriteEntered chan struct{}
	FavoriteRelease chan struct{}
	FavoriteCalls   int

	LastPassword []byte
}

func (f *fakeUsers) Hydrate(context.Context, models.Session) (*models.User, error) {
	return f.HydrateRet, f.HydrateErr
}

func (f *fakeUsers) Login(_ context.Context, _ string, password []byte) (*models.User, error) {
	f.LastPassword = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeUsers) Register(_ context.Context, _ string, password []byte, _ string) (*models.User, error) {
	f.LastPassword = password
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeUsers) Logout(context.Context) error {
	f.LogoutCalls++
	return f.LogoutErr
}

func (f *fakeUsers) ToggleFavorite(_ context.Context, user *models.User, storyID string, add bool) error {
	f.FavoriteCalls++
	if f.FavoriteEntered != nil {
		f.FavoriteEntered <- struct{}{}
	}
	if f.FavoriteRelease != nil {
		<-f.FavoriteRelease
	}
	if f.FavoriteErr != nil {
		return f.FavoriteErr
	}
	if add {
		if !user.IsFavorite(storyID) {
			user.Favorites = append(user.Favorites, &models.Story{ID: storyID})
		}
	} else {
		user.Favorites = models.Without(user.Favorites, storyID)
	}
	return nil
}

type fakeCatalog struct {
	List []*models.Story

	RefreshErr   error
	RefreshCalls int

	AddRet *models.Story
	AddErr error

	RemoveErr error

	AdoptCalls int
}

func (f *fakeCatalog) Refresh(context.Context) error {
	f.RefreshCalls++
	return f.RefreshErr
}

func (f *fakeCatalog) Stories() []*models.Story {
	return append([]*models.Story(nil), f.List...)
}

func (f *fakeCatalog) Get(id string) (*models.Story, bool) {
	if i := models.IndexOf(f.List, id); i >= 0 {
		return f.List[i], true
	}
	return nil, false
}

func (f *fakeCatalog) AddStory(_ context.Context, user *models.User, _ models.StoryFields) (*models.Story, error) {
	if f.AddErr != nil {
		return nil, f.AddErr
	}
	f.List = append([]*models.Story{f.AddRet}, f.List...)
	user.OwnStories = append([]*models.Story{f.AddRet}, user.OwnStories...)
	return f.AddRet, nil
}

func (f *fakeCatalog) RemoveStory(_ context.Context, user *models.User, id string) error {
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	f.List = models.Without(f.List, id)
	user.OwnStories = models.Without(user.OwnStories, id)
	user.Favorites = models.Without(user.Favorites, id)
	return nil
}

func (f *fakeCatalog) Adopt(user *models.User) {
	f.AdoptCalls++
	if user == nil {
		return
	}
	for _, set := range [][]*models.Story{user.OwnStories, user.Favorites} {
		for i, s := range set {
			if j := models.IndexOf(f.List, s.ID); j >= 0 {
				set[i] = f.List[j]
			}
		}
	}
}

// ---- helpers ----

type fixture struct {
	sessions *fakeSessions
	users    *fakeUsers
	catalog  *fakeCatalog
	ctrl     *Controller
}

func newFixture(t *testing.T, stories ...*models.Story) *fixture {
	t.Helper()
	f := &fixture{
		sessions: &fakeSessions{},
		users:    &fakeUsers{},
		catalog:  &fakeCatalog{List: stories},
	}
	f.ctrl = NewController(f.sessions, f.users, f.catalog, render.NewHTML(), logging.Discard())
	return f
}

// loggedIn boots the fixture with user already hydrated.
func (f *fixture) loggedIn(t *testing.T, user *models.User) *fixture {
	t.Helper()
	f.sessions.Session = models.Session{Token: "tok", Username: user.Username}
	f.users.HydrateRet = user
	if err := f.ctrl.Boot(context.Background()); err != nil {
		t.Fatalf("boot: %v", err)
	}
	return f
}

func (f *fixture) loggedOut(t *testing.T) *fixture {
	t.Helper()
	if err := f.ctrl.Boot(context.Background()); err != nil {
		t.Fatalf("boot: %v", err)
	}
	return f
}

func story(id string) *models.Story {
	return &models.Story{ID: id, Title: "Title " + id, URL: "https://www.example.com/" + id, Author: "a", Username: "u"}
}

func dispatch(t *testing.T, c *Controller, trigger Trigger) error {
	t.Helper()
	_, err := c.Dispatch(context.Background(), Event{Trigger: trigger})
	return err
}
