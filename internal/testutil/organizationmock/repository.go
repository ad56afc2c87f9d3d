package organizationmock

import (
	"context"
	"errors"

	domain "github.com/ScoutDevs/Rechartering/internal/domain/organization"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("organizationmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetDistrictFn               func(ctx context.Context, id string) (*domain.District, error)
	GetSubdistrictFn            func(ctx context.Context, id string) (*domain.Subdistrict, error)
	GetSponsoringOrganizationFn func(ctx context.Context, id string) (*domain.SponsoringOrganization, error)
	GetUnitFn                   func(ctx context.Context, id string) (*domain.Unit, error)

	SaveDistrictFn               func(ctx context.Context, d *domain.District) error
	SaveSubdistrictFn            func(ctx context.Context, s *domain.Subdistrict) error
	SaveSponsoringOrganizationFn func(ctx context.Context, s *domain.SponsoringOrganization) error
	SaveUnitFn                   func(ctx context.Context, u *domain.Unit) error

	SearchFn func(ctx context.Context, f domain.Filter) ([]domain.Organization, error)
}

// Units returns a mock whose GetUnit serves from the given map.
func Units(units map[string]*domain.Unit, notFound error) *Repo {
	return &Repo{GetUnitFn: func(_ context.Context, id string) (*domain.Unit, error) {
		if u, ok := units[id]; ok {
			cp := *u
			return &cp, nil
		}
		return nil, notFound
	}}
}

func (m *Repo) GetDistrict(ctx context.Context, id string) (*domain.District, error) {
	if m.GetDistrictFn != nil {
		return m.GetDistrictFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetSubdistrict(ctx context.Context, id string) (*domain.Subdistrict, error) {
	if m.GetSubdistrictFn != nil {
		return m.GetSubdistrictFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetSponsoringOrganization(ctx context.Context, id string) (*domain.SponsoringOrganization, error) {
	if m.GetSponsoringOrganizationFn != nil {
		return m.GetSponsoringOrganizationFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetUnit(ctx context.Context, id string) (*domain.Unit, error) {
	if m.GetUnitFn != nil {
		return m.GetUnitFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) SaveDistrict(ctx context.Context, d *domain.District) error {
	if m.SaveDistrictFn != nil {
		return m.SaveDistrictFn(ctx, d)
	}
	return nil
}

func (m *Repo) SaveSubdistrict(ctx context.Context, s *domain.Subdistrict) error {
	if m.SaveSubdistrictFn != nil {
		return m.SaveSubdistrictFn(ctx, s)
	}
	return nil
}

func (m *Repo) SaveSponsoringOrganization(ctx context.Context, s *domain.SponsoringOrganization) error {
	if m.SaveSponsoringOrganizationFn != nil {
		return m.SaveSponsoringOrganizationFn(ctx, s)
	}
	return nil
}

func (m *Repo) SaveUnit(ctx context.Context, u *domain.Unit) error {
	if m.SaveUnitFn != nil {
		return m.SaveUnitFn(ctx, u)
	}
	return nil
}

func (m *Repo) Search(ctx context.Context, f domain.Filter) ([]domain.Organization, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, f)
	}
	return nil, errUnimplemented
}
