package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/hacksnooze/internal/client/client"
	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
	"github.com/dmitrijs2005/hacksnooze/internal/logging"
)

// StoryCatalog is the in-memory list of all stories in server order.
type StoryCatalog struct {
	client client.Client
	limit  int
	log    logging.Logger

	mu      sync.RWMutex
	stories []*models.Story
}

// NewStoryCatalog returns an empty catalog. limit caps the number of stories
// fetched on Refresh; zero leaves it to the server.
func NewStoryCatalog(c client.Client, limit int, log logging.Logger) *StoryCatalog {
	return &StoryCatalog{client: c, limit: limit, log: log}
}

// Refresh replaces the whole list with a fresh fetch. The list is untouched
// when the fetch fails.
func (c *StoryCatalog) Refresh(ctx context.Context) error {
	stories, err := c.client.GetStories(ctx, c.limit)
	if err != nil {
		return fmt.Errorf("refresh stories: %w", err)
	}

	c.mu.Lock()
	c.stories = stories
	c.mu.Unlock()

	c.log.Debug(ctx, "catalog refreshed", "count", len(stories))
	return nil
}

// Stories returns a snapshot of the list.
func (c *StoryCatalog) Stories() []*models.Story {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*models.Story(nil), c.stories...)
}

func (c *StoryCatalog) Get(id string) (*models.Story, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := models.IndexOf(c.stories, id); i >= 0 {
		return c.stories[i], true
	}
	return nil, false
}

// AddStory submits a story for user. The server's copy is put at the head of
// both the catalog and the user's own stories, and returned.
func (c *StoryCatalog) AddStory(ctx context.Context, user *models.User, fields models.StoryFields) (*models.Story, error) {
	if user == nil {
		return nil, ErrNoSession
	}
	fields.Username = user.Username

	story, err := c.client.AddStory(ctx, user.LoginToken, fields)
	if err != nil {
		return nil, fmt.Errorf("add story: %w", err)
	}
	if story.Username == "" {
		story.Username = user.Username
	}

	c.mu.Lock()
	c.stories = append([]*models.Story{story}, c.stories...)
	c.mu.Unlock()

	user.OwnStories = append([]*models.Story{story}, user.OwnStories...)

	c.log.Info(ctx, "story added", "story_id", story.ID, "username", user.Username)
	return story, nil
}

// RemoveStory deletes storyID on the server and then drops it from the
// catalog and from the user's own and favorite sets. Other views showing the
// story are the caller's to re-render.
func (c *StoryCatalog) RemoveStory(ctx context.Context, user *models.User, storyID string) error {
	if user == nil {
		return ErrNoSession
	}
	if _, err := c.client.DeleteStory(ctx, user.LoginToken, storyID); err != nil {
		return fmt.Errorf("remove story %s: %w", storyID, err)
	}

	c.mu.Lock()
	c.stories = models.Without(c.stories, storyID)
	c.mu.Unlock()

	user.OwnStories = models.Without(user.OwnStories, storyID)
	user.Favorites = models.Without(user.Favorites, storyID)

	c.log.Info(ctx, "story removed", "story_id", storyID, "username", user.Username)
	return nil
}

// Adopt points the user's own and favorite entries at the catalog instances
// with the same id, so that every view shares one Story per id.
func (c *StoryCatalog) Adopt(user *models.User) {
	if user == nil {
		return
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, set := range [][]*models.Story{user.OwnStories, user.Favorites} {
		for i, s := range set {
			if j := models.IndexOf(c.stories, s.ID); j >= 0 {
				set[i] = c.stories[j]
			}
		}
	}
}
