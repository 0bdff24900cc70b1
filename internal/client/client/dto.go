package client

import (
	"time"

	"github.com/dmitrijs2005/hacksnooze/internal/client/models"
)

type storyDTO struct {
	StoryID   string    `json:"storyId"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	URL       string    `json:"url"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type userDTO struct {
	Username  string     `json:"username"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	Favorites []storyDTO `json:"favorites"`
	Stories   []storyDTO `json:"stories"`
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

type authRequest struct {
	User credentials `json:"user"`
}

type authResponse struct {
	User  userDTO `json:"user"`
	Token string  `json:"token"`
}

type userResponse struct {
	User userDTO `json:"user"`
}

type storiesResponse struct {
	Stories []storyDTO `json:"stories"`
}

type newStory struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
}

type addStoryRequest struct {
	Token string   `json:"token"`
	Story newStory `json:"story"`
}

type storyResponse struct {
	Story storyDTO `json:"story"`
}

type errorResponse struct {
	Error struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	} `json:"error"`
}

func (d storyDTO) model() *models.Story {
	return &models.Story{
		ID:        d.StoryID,
		Title:     d.Title,
		URL:       d.URL,
		Author:    d.Author,
		Username:  d.Username,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func storyModels(in []storyDTO) []*models.Story {
	out := make([]*models.Story, 0, len(in))
	for _, d := range in {
		out = append(out, d.model())
	}
	return out
}

func (d userDTO) model(token string) *models.User {
	return &models.User{
		Username:   d.Username,
		Name:       d.Name,
		CreatedAt:  d.CreatedAt,
		LoginToken: token,
		Favorites:  storyModels(d.Favorites),
		OwnStories: storyModels(d.Stories),
	}
}
