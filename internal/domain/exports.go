package domain

import (
	interfaces "haus/internal/domain/interfaces"
	types "haus/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Username        = types.Username
	ChoreID         = types.ChoreID
	MemberID        = types.MemberID
	Session         = types.Session
	LoginResult     = types.LoginResult
	SuccessResult   = types.SuccessResult
	FormField       = types.FormField
	ErrorState      = types.ErrorState
	Chore           = types.Chore
	NewChore        = types.NewChore
	Date            = types.Date
	HouseholdMember = types.HouseholdMember
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	SessionStore = interfaces.SessionStore
	Backend      = interfaces.Backend
	Refresher    = interfaces.Refresher
)

// Constants re-exported for callers that only import domain.
const (
	FieldUsername       = types.FieldUsername
	FieldPassword       = types.FieldPassword
	FieldCreateUsername = types.FieldCreateUsername

	DefaultFrequencyDays   = types.DefaultFrequencyDays
	DefaultDurationMinutes = types.DefaultDurationMinutes
)
