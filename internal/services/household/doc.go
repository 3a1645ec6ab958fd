// Package household manages the member list, the add-chore form and the
// delete-account form.
package household
