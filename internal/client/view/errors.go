package view

import "errors"

var (
	ErrNotLoggedIn    = errors.New("you need to log in first")
	ErrLoggedIn       = errors.New("already logged in")
	ErrNotOwner       = errors.New("you can only delete your own stories")
	ErrNotInMyStories = errors.New("stories are deleted from 'mine'")
	ErrUnknownTrigger = errors.New("unknown trigger")
	ErrUnknownStory   = errors.New("unknown story")
	ErrInFlight       = errors.New("request already in progress")
	ErrInvalidForm    = errors.New("title and url are required")
)
