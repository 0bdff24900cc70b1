package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/hacksnooze/internal/client/client"
	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// ---- fake client ----

// fakeClient implements client.Client for the service tests.
type fakeClient struct {
	LoginRet *models.User
	LoginErr error

	SignupRet *models.User
	SignupErr error

	GetUserRet   *models.User
	GetUserErr   error
	GetUserCalls int

	GetStoriesRet []*models.Story
	GetStoriesErr error

	AddStoryRet *models.Story
	AddStoryErr error

	DeleteStoryErr error

	FavoriteRet *models.User
	FavoriteErr error

	LastToken    string
	LastUsername string
	LastStoryID  string
	LastFields   models.StoryFields
	LastLimit    int
	Calls        []string
}

func (f *fakeClient) Login(ctx context.Context, username string, password []byte) (*models.User, error) {
	f.Calls = append(f.Calls, "login")
	f.LastUsername = username
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error) {
	f.Calls = append(f.Calls, "signup")
	f.LastUsername = username
	return f.SignupRet, f.SignupErr
}

func (f *fakeClient) GetUser(ctx context.Context, token, username string) (*models.User, error) {
	f.Calls = append(f.Calls, "get_user")
	f.GetUserCalls++
	f.LastToken, f.LastUsername = token, username
	return f.GetUserRet, f.GetUserErr
}

func (f *fakeClient) GetStories(ctx context.Context, limit int) ([]*models.Story, error) {
	f.Calls = append(f.Calls, "get_stories")
	f.LastLimit = limit
	return f.GetStoriesRet, f.GetStoriesErr
}

func (f *fakeClient) AddStory(ctx context.Context, token string, fields models.StoryFields) (*models.Story, error) {
	f.Calls = append(f.Calls, "add_story")
	f.LastToken, f.LastFields = token, fields
	return f.AddStoryRet, f.AddStoryErr
}

func (f *fakeClient) DeleteStory(ctx context.Context, token, storyID string) (*models.Story, error) {
	f.Calls = append(f.Calls, "delete_story")
	f.LastToken, f.LastStoryID = token, storyID
	return &models.Story{ID: storyID}, f.DeleteStoryErr
}

func (f *fakeClient) AddFavorite(ctx context.Context, token, username, storyID string) (*models.User, error) {
	f.Calls = append(f.Calls, "add_favorite")
	f.LastToken, f.LastUsername, f.LastStoryID = token, username, storyID
	return f.FavoriteRet, f.FavoriteErr
}

func (f *fakeClient) RemoveFavorite(ctx context.Context, token, username, storyID string) (*models.User, error) {
	f.Calls = append(f.Calls, "remove_favorite")
	f.LastToken, f.LastUsername, f.LastStoryID = token, username, storyID
	return f.FavoriteRet, f.FavoriteErr
}
