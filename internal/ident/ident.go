// Package ident generates opaque unique string identifiers for new entities.
package ident

import "github.com/google/uuid"

// Generator produces a new opaque identifier on each call. Identifiers carry
// no ordering or timestamp semantics.
type Generator func() string

// New returns a Generator backed by random UUIDs.
func New() Generator {
	return func() string {
		return uuid.NewString()
	}
}
