package domain

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that need a session when none is established.
	ErrNotAuthenticated = errors.New("not logged in")
	// ErrUnreadableSession is wrapped by stores whose slot exists but cannot be
	// decoded or unsealed.
	ErrUnreadableSession = errors.New("session slot unreadable")
	// ErrChoreNameRequired is returned when a chore is submitted without a name.
	ErrChoreNameRequired = errors.New("chore name is required")
	// ErrInvalidChoreSchedule is returned for negative frequency or duration values.
	ErrInvalidChoreSchedule = errors.New("chore frequency and duration must not be negative")
)
