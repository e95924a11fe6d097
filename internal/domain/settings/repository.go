package settings

import "context"

type Repository interface {
	// Get the single active settings row (ErrNotFound when unprovisioned)
	GetActive(ctx context.Context) (*Settings, error)

	// Update the editable fields of the identified row; ErrNotFound when
	// settingsID does not match an existing row.
	Update(ctx context.Context, settingsID string, f UpdateFields) error
}
