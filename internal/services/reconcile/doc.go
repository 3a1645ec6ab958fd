// Package reconcile schedules delayed refetches after a mutation has been
// acknowledged by the backend.
package reconcile
