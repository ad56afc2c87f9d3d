package mysql

import (
	"context"

	"github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/pkg/id"
	"gorm.io/gorm"
)

type OrganizationRepository struct{ db *gorm.DB }

func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

func (r *OrganizationRepository) GetDistrict(ctx context.Context, id string) (*organization.District, error) {
	return first[organization.District](r.db.WithContext(ctx), id)
}

func (r *OrganizationRepository) GetSubdistrict(ctx context.Context, id string) (*organization.Subdistrict, error) {
	return first[organization.Subdistrict](r.db.WithContext(ctx), id)
}

func (r *OrganizationRepository) GetSponsoringOrganization(ctx context.Context, id string) (*organization.SponsoringOrganization, error) {
	return first[organization.SponsoringOrganization](r.db.WithContext(ctx), id)
}

func (r *OrganizationRepository) GetUnit(ctx context.Context, id string) (*organization.Unit, error) {
	return first[organization.Unit](r.db.WithContext(ctx), id)
}

func (r *OrganizationRepository) SaveDistrict(ctx context.Context, d *organization.District) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *OrganizationRepository) SaveSubdistrict(ctx context.Context, s *organization.Subdistrict) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *OrganizationRepository) SaveSponsoringOrganization(ctx context.Context, s *organization.SponsoringOrganization) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *OrganizationRepository) SaveUnit(ctx context.Context, u *organization.Unit) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// Search walks the hierarchy tables. A parent id selects the one table whose rows
// hang off that kind of parent.
func (r *OrganizationRepository) Search(ctx context.Context, f organization.Filter) ([]organization.Organization, error) {
	db := r.db.WithContext(ctx)
	named := func(q *gorm.DB) *gorm.DB {
		if f.Name != "" {
			q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+f.Name+"%")
		}
		return q.Order("name, id")
	}

	var out []organization.Organization
	parent := id.Prefix(f.ParentID)

	if f.ParentID == "" {
		var ds []organization.District
		if err := named(db.Model(&organization.District{})).Find(&ds).Error; err != nil {
			return nil, err
		}
		for i := range ds {
			out = append(out, &ds[i])
		}
	}
	if f.ParentID == "" || parent == id.PrefixDistrict {
		var ss []organization.Subdistrict
		q := db.Model(&organization.Subdistrict{})
		if f.ParentID != "" {
			q = q.Where("district_id = ?", f.ParentID)
		}
		if err := named(q).Find(&ss).Error; err != nil {
			return nil, err
		}
		for i := range ss {
			out = append(out, &ss[i])
		}
	}
	if f.ParentID == "" || parent == id.PrefixSubdistrict {
		var sp []organization.SponsoringOrganization
		q := db.Model(&organization.SponsoringOrganization{})
		if f.ParentID != "" {
			q = q.Where("subdistrict_id = ?", f.ParentID)
		}
		if err := named(q).Find(&sp).Error; err != nil {
			return nil, err
		}
		for i := range sp {
			out = append(out, &sp[i])
		}
	}
	if f.ParentID == "" || parent == id.PrefixSponsoringOrganization {
		var us []organization.Unit
		q := db.Model(&organization.Unit{})
		if f.ParentID != "" {
			q = q.Where("sponsoring_organization_id = ?", f.ParentID)
		}
		if err := named(q).Find(&us).Error; err != nil {
			return nil, err
		}
		for i := range us {
			out = append(out, &us[i])
		}
	}
	return out, nil
}
