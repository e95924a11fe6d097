package application

import "context"

type Repository interface {
	// Basic Case
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	Save(ctx context.Context, a *Application) error

	// All applications, newest first. Admin review only; the applicant
	// flow never lists.
	ListAll(ctx context.Context) ([]Application, error)
}
