// Package domain defines the session, chore and household models shared across
// the client, plus the store and backend contracts the services depend on.
// It contains plain types (wire/state) and interfaces only.
package domain
