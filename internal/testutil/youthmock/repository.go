package youthmock

import (
	"context"
	"errors"

	domain "github.com/ScoutDevs/Rechartering/internal/domain/youth"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("youthmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIDFn             func(ctx context.Context, id string) (*domain.Youth, error)
	SaveFn                func(ctx context.Context, y *domain.Youth) error
	FindByDuplicateHashFn func(ctx context.Context, hash string) ([]domain.Youth, error)
	SearchFn              func(ctx context.Context, f domain.Filter) ([]domain.Youth, error)
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Youth, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, y *domain.Youth) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, y)
	}
	return nil
}

func (m *Repo) FindByDuplicateHash(ctx context.Context, hash string) ([]domain.Youth, error) {
	if m.FindByDuplicateHashFn != nil {
		return m.FindByDuplicateHashFn(ctx, hash)
	}
	return nil, errUnimplemented
}

func (m *Repo) Search(ctx context.Context, f domain.Filter) ([]domain.Youth, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, f)
	}
	return nil, errUnimplemented
}
