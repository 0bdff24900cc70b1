// Package models defines the client-side domain types: stories, users and the
// persisted session.
package models

import "time"

// Story is a submitted link. Stories are shared by pointer between the catalog
// and the user's favorite/own sets.
type Story struct {
	// ID is assigned by the server.
	ID string

	Title  string
	URL    string
	Author string

	// Username is the submitter.
	Username string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoryFields is what a user fills in to submit a story.
type StoryFields struct {
	Title    string
	URL      string
	Author   string
	Username string
}

// IndexOf returns the position of the story with id in list, or -1.
func IndexOf(list []*Story, id string) int {
	for i, s := range list {
		if s != nil && s.ID == id {
			return i
		}
	}
	return -1
}

// Without returns list minus every story with id. The input slice is not
// modified.
func Without(list []*Story, id string) []*Story {
	out := make([]*Story, 0, len(list))
	for _, s := range list {
		if s != nil && s.ID == id {
			continue
		}
		out = append(out, s)
	}
	return out
}
