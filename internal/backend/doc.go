// Package backend provides an HTTP implementation of the domain.Backend
// interface used by haus.
//
// The backend is the household's record of accounts, chores and members.
// Requests are form-encoded POSTs (GET for the member list) and answers are
// JSON. Every request accepts a context for cancellation and deadlines, and
// each attempt is bounded by the http.Client timeout.
//
// Idempotent requests (login, fetching chores and members, completing a chore)
// are retried once on transient failure: transport errors, timeouts, and 429,
// 502, 503 and 504 statuses. Account creation, account deletion and chore
// creation are sent exactly once. Non-2xx statuses are returned as
// *StatusError with the method, path and status text.
package backend
