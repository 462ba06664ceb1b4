package service

import "errors"

// ErrConfirmationDeclined is returned when the user declines a destructive
// action; nothing is mutated in that case.
var ErrConfirmationDeclined = errors.New("confirmation declined")

// Confirmer approves destructive actions (plan deletion, exercise deletion,
// password reset). The presentation layer supplies an implementation that
// prompts the user.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// AlwaysConfirm approves everything. Useful for non-interactive callers.
var AlwaysConfirm = ConfirmerFunc(func(string) bool { return true })
