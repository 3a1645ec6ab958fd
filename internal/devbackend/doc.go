// Package devbackend is an in-memory household backend for local development
// and tests.
//
// It serves the same endpoints as the production backend: accounts with
// bcrypt-hashed passwords, chores auto-assigned to the least loaded member,
// and the member list. State lives only as long as the process.
package devbackend
