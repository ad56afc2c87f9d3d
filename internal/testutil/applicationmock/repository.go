package applicationmock

import (
	"context"
	"errors"

	domain "github.com/ScoutDevs/Rechartering/internal/domain/application"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("applicationmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
// Writes default to no-ops; reads default to errUnimplemented.
type Repo struct {
	CreateFn           func(ctx context.Context, a *domain.Application) error
	GetByIDFn          func(ctx context.Context, id string) (*domain.Application, error)
	GetByIDForUpdateFn func(ctx context.Context, id string) (*domain.Application, error)
	SaveFn             func(ctx context.Context, a *domain.Application) error
	ListByStatusFn     func(ctx context.Context, s domain.Status) ([]domain.Application, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Application, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) ListByStatus(ctx context.Context, s domain.Status) ([]domain.Application, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, s)
	}
	return nil, errUnimplemented
}
