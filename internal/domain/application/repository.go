package application

import "context"

type Repository interface {
	// Create inserts a new application (status created).
	Create(ctx context.Context, a *Application) error

	// GetByID returns entity.ErrRecordNotFound when the id does not resolve.
	GetByID(ctx context.Context, id string) (*Application, error)

	// GetByIDForUpdate is GetByID holding a row lock until the transaction ends.
	GetByIDForUpdate(ctx context.Context, id string) (*Application, error)

	// Save upserts; fails with *entity.InvalidObjectError when the application is invalid.
	Save(ctx context.Context, a *Application) error

	ListByStatus(ctx context.Context, s Status) ([]Application, error)
}
