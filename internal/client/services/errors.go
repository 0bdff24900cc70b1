package services

import "errors"

var (
	// ErrNoSession is returned by operations that need a logged-in user.
	ErrNoSession = errors.New("no active session")

	errTokenExpired  = errors.New("token expired")
	errTokenMismatch = errors.New("token issued for another user")
)
