// Package auth drives the login and create-account forms.
//
// Validation and credential failures are reported through the form error
// channel, not as Go errors. Errors returned by this package mean the backend
// or the session store could not be reached.
package auth
