// Package session owns the current login session.
//
// A Manager is built once at startup and shared by every controller. It is
// the only writer of the SessionStore, so the in-memory Session and the
// persisted slot never disagree.
package session
