// Package session tracks who is signed in to an interactive front end and
// carries that identity through a context.Context into the domain services.
package session

import (
	"context"
	"hotel/shared/constant"
	"sync"
)

// State holds zero or one authenticated user.
type State struct {
	mu     sync.RWMutex
	userID int64
}

func New() *State {
	return &State{}
}

// Login marks userID as the authenticated user, replacing any previous one.
func (s *State) Login(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = userID
}

func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = 0
}

// Current returns the authenticated user and whether there is one.
func (s *State) Current() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.userID, s.userID != 0
}

func (s *State) Authenticated() bool {
	_, ok := s.Current()

	return ok
}

// Context attaches the current user, if any, to ctx.
func (s *State) Context(ctx context.Context) context.Context {
	if userID, ok := s.Current(); ok {
		return WithUser(ctx, userID)
	}

	return ctx
}

func WithUser(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, constant.ContextKeyUserID, userID)
}

// UserID returns the authenticated user carried by ctx.
func UserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(constant.ContextKeyUserID).(int64)

	return userID, ok && userID > 0
}
