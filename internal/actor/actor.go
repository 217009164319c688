// Package actor describes the authenticated user on whose behalf records are
// created. Authentication itself lives outside this program; the repository
// only consumes a Provider and refuses to create records without one.
package actor

import "context"

// Actor identifies the current user. The three fields are stamped onto every
// record at creation and never rewritten afterwards.
type Actor struct {
	ID    string
	Name  string
	Email string
}

// Provider yields the current actor at call time. A nil actor with a nil
// error means nobody is signed in.
type Provider interface {
	Current(ctx context.Context) (*Actor, error)
}

// Static always returns the same actor. The main program builds one from
// configuration; tests build one inline.
type Static struct {
	actor *Actor
}

// NewStatic returns a provider fixed to a. Pass nil to model a signed-out
// session.
func NewStatic(a *Actor) *Static {
	return &Static{actor: a}
}

func (s *Static) Current(ctx context.Context) (*Actor, error) {
	return s.actor, nil
}
