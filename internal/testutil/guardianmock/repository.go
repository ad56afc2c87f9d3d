package guardianmock

import (
	"context"
	"errors"

	domain "github.com/ScoutDevs/Rechartering/internal/domain/guardian"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("guardianmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIDFn func(ctx context.Context, id string) (*domain.Guardian, error)
	SaveFn    func(ctx context.Context, g *domain.Guardian) error
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Guardian, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, g *domain.Guardian) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, g)
	}
	return nil
}
