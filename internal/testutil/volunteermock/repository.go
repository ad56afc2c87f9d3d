package volunteermock

import (
	"context"
	"errors"

	domain "github.com/ScoutDevs/Rechartering/internal/domain/volunteer"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("volunteermock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByIDFn             func(ctx context.Context, id string) (*domain.Volunteer, error)
	SaveFn                func(ctx context.Context, v *domain.Volunteer) error
	FindByDuplicateHashFn func(ctx context.Context, hash string) ([]domain.Volunteer, error)
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Volunteer, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, v *domain.Volunteer) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, v)
	}
	return nil
}

func (m *Repo) FindByDuplicateHash(ctx context.Context, hash string) ([]domain.Volunteer, error) {
	if m.FindByDuplicateHashFn != nil {
		return m.FindByDuplicateHashFn(ctx, hash)
	}
	return nil, errUnimplemented
}
