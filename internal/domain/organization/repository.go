package organization

import "context"

// Filter narrows Search. Zero fields are ignored; Name matches as a substring.
type Filter struct {
	ParentID string
	Name     string
}

// UnitReader is the slice of the store the application workflow depends on.
type UnitReader interface {
	GetUnit(ctx context.Context, id string) (*Unit, error)
}

type Repository interface {
	UnitReader

	GetDistrict(ctx context.Context, id string) (*District, error)
	GetSubdistrict(ctx context.Context, id string) (*Subdistrict, error)
	GetSponsoringOrganization(ctx context.Context, id string) (*SponsoringOrganization, error)

	SaveDistrict(ctx context.Context, d *District) error
	SaveSubdistrict(ctx context.Context, s *Subdistrict) error
	SaveSponsoringOrganization(ctx context.Context, s *SponsoringOrganization) error
	SaveUnit(ctx context.Context, u *Unit) error

	// Search looks across all four tables.
	Search(ctx context.Context, f Filter) ([]Organization, error)
}
