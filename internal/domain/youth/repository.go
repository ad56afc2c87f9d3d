package youth

import "context"

// Filter narrows Search. Zero fields are ignored.
type Filter struct {
	ScoutnetID int64
	LastName   string
	UnitID     string
}

type Repository interface {
	GetByID(ctx context.Context, id string) (*Youth, error)
	Save(ctx context.Context, y *Youth) error
	FindByDuplicateHash(ctx context.Context, hash string) ([]Youth, error)
	Search(ctx context.Context, f Filter) ([]Youth, error)
}
