package client

import (
	"context"

	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
)

// Client is the remote news API as seen by the services. Users returned by
// Login and Signup carry the fresh LoginToken.
type Client interface {
	Login(ctx context.Context, username string, password []byte) (*models.User, error)
	Signup(ctx context.Context, username string, password []byte, name string) (*models.User, error)
	GetUser(ctx context.Context, token, username string) (*models.User, error)

	GetStories(ctx context.Context, limit int) ([]*models.Story, error)
	AddStory(ctx context.Context, token string, fields models.StoryFields) (*models.Story, error)
	DeleteStory(ctx context.Context, token, storyID string) (*models.Story, error)

	AddFavorite(ctx context.Context, token, username, storyID string) (*models.User, error)
	RemoveFavorite(ctx context.Context, token, username, storyID string) (*models.User, error)
}
