// Package formerror holds the single form error shown next to a control.
package formerror
