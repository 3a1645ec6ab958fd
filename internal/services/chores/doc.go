// Package chores keeps the logged-in user's chore list in step with the
// backend.
//
// Completing a chore removes it locally at once, waits for the backend to
// acknowledge, then schedules a full refetch after a short settle delay. A
// failed completion puts the chore back where it was.
package chores
