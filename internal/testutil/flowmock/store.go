package flowmock

import (
	"context"
	"sync"

	domain "credfacil-backend/internal/domain/flow"
)

// Ensure compile-time compliance
var _ domain.SessionStore = (*Store)(nil)

// Store is a function-backed mock that satisfies flow.SessionStore.
type Store struct {
	GetFn    func(ctx context.Context, userID string) (*domain.Session, error)
	PutFn    func(ctx context.Context, s *domain.Session) error
	DeleteFn func(ctx context.Context, userID string) error
}

func (m *Store) Get(ctx context.Context, userID string) (*domain.Session, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}
	return nil, domain.ErrSessionNotFound
}

func (m *Store) Put(ctx context.Context, s *domain.Session) error {
	if m.PutFn != nil {
		return m.PutFn(ctx, s)
	}
	return nil
}

func (m *Store) Delete(ctx context.Context, userID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID)
	}
	return nil
}

// InMemory builds a map-backed Store for multi-step workflow tests. Values
// are copied on Put and Get so tests can't mutate stored state by accident.
func InMemory() *Store {
	var (
		mu       sync.Mutex
		sessions = map[string]domain.Session{}
	)
	return &Store{
		GetFn: func(ctx context.Context, userID string) (*domain.Session, error) {
			mu.Lock()
			defer mu.Unlock()
			s, ok := sessions[userID]
			if !ok {
				return nil, domain.ErrSessionNotFound
			}
			cp := s
			return &cp, nil
		},
		PutFn: func(ctx context.Context, s *domain.Session) error {
			mu.Lock()
			defer mu.Unlock()
			sessions[s.UserID] = *s
			return nil
		},
		DeleteFn: func(ctx context.Context, userID string) error {
			mu.Lock()
			defer mu.Unlock()
			delete(sessions, userID)
			return nil
		},
	}
}
