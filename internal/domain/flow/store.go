package flow

import "context"

type SessionStore interface {
	// Get the user's session (ErrSessionNotFound when absent or expired)
	Get(ctx context.Context, userID string) (*Session, error)

	// Put creates or replaces the user's session and refreshes its TTL
	Put(ctx context.Context, s *Session) error

	Delete(ctx context.Context, userID string) error
}
