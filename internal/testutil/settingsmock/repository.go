package settingsmock

import (
	"context"

	domain "credfacil-backend/internal/domain/settings"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies settings.Repository.
// Fill in the function fields a test needs; unfilled Get defaults to
// "not provisioned".
type Repo struct {
	GetActiveFn func(ctx context.Context) (*domain.Settings, error)
	UpdateFn    func(ctx context.Context, settingsID string, f domain.UpdateFields) error
}

func (m *Repo) GetActive(ctx context.Context) (*domain.Settings, error) {
	if m.GetActiveFn != nil {
		return m.GetActiveFn(ctx)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Update(ctx context.Context, settingsID string, f domain.UpdateFields) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, settingsID, f)
	}
	return nil
}
