package organization

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	domainOrg "github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/ScoutDevs/Rechartering/internal/domain/uow"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/metrics"
	"github.com/ScoutDevs/Rechartering/pkg/id"
)

// writeRoles maintain the council hierarchy.
var writeRoles = []security.Role{security.RoleCouncilAdmin, security.RoleCouncilEmployee}

// UnitCache fronts unit lookups. Writes made in a transaction invalidate it.
type UnitCache interface {
	domainOrg.UnitReader
	InvalidateUnit(ctx context.Context, id string)
}

type Usecase struct {
	uow     uow.UnitOfWork
	units   UnitCache
	metrics *metrics.Metrics
	logger  *slog.Logger
}

type Option func(*Usecase)

func WithLogger(l *slog.Logger) Option { return func(u *Usecase) { u.logger = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(u *Usecase) { u.metrics = m } }

func WithUnitCache(c UnitCache) Option { return func(u *Usecase) { u.units = c } }

func NewUsecase(tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{uow: tx, logger: slog.Default()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Get dispatches on the id prefix. An id of no known organization kind is not found.
func (u *Usecase) Get(ctx context.Context, actor security.Actor, orgID string) (domainOrg.Organization, error) {
	if err := security.Require(actor, "get organization", security.AnyStaff...); err != nil {
		return nil, err
	}
	if id.HasPrefix(orgID, id.PrefixUnit) && u.units != nil {
		return nilIfErr(u.units.GetUnit(ctx, orgID))
	}
	var out domainOrg.Organization
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		switch id.Prefix(orgID) {
		case id.PrefixDistrict:
			out, err = nilIfErr(r.Organizations.GetDistrict(ctx, orgID))
		case id.PrefixSubdistrict:
			out, err = nilIfErr(r.Organizations.GetSubdistrict(ctx, orgID))
		case id.PrefixSponsoringOrganization:
			out, err = nilIfErr(r.Organizations.GetSponsoringOrganization(ctx, orgID))
		case id.PrefixUnit:
			out, err = nilIfErr(r.Organizations.GetUnit(ctx, orgID))
		default:
			err = entity.ErrRecordNotFound
		}
		return err
	})
	return out, err
}

// nilIfErr keeps a typed nil pointer out of the Organization interface.
func nilIfErr[T domainOrg.Organization](o T, err error) (domainOrg.Organization, error) {
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (u *Usecase) Search(ctx context.Context, actor security.Actor, f domainOrg.Filter) ([]domainOrg.Organization, error) {
	if err := security.Require(actor, "search organizations", security.AnyStaff...); err != nil {
		return nil, err
	}
	f.Name = strings.TrimSpace(f.Name)
	var out []domainOrg.Organization
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		list, err := r.Organizations.Search(ctx, f)
		out = list
		return err
	})
	return out, err
}

func (u *Usecase) SaveDistrict(ctx context.Context, actor security.Actor, d *domainOrg.District) (*domainOrg.District, error) {
	if err := security.Require(actor, "save district", writeRoles...); err != nil {
		return nil, err
	}
	if d.ID == "" {
		d.ID = id.New(id.PrefixDistrict)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error { return r.Organizations.SaveDistrict(ctx, d) })
	return saved(ctx, u.logger, actor, d, err)
}

func (u *Usecase) SaveSubdistrict(ctx context.Context, actor security.Actor, s *domainOrg.Subdistrict) (*domainOrg.Subdistrict, error) {
	if err := security.Require(actor, "save subdistrict", writeRoles...); err != nil {
		return nil, err
	}
	if s.ID == "" {
		s.ID = id.New(id.PrefixSubdistrict)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Organizations.GetDistrict(ctx, s.DistrictID); err != nil {
			return err
		}
		return r.Organizations.SaveSubdistrict(ctx, s)
	})
	return saved(ctx, u.logger, actor, s, err)
}

func (u *Usecase) SaveSponsoringOrganization(ctx context.Context, actor security.Actor, s *domainOrg.SponsoringOrganization) (*domainOrg.SponsoringOrganization, error) {
	if err := security.Require(actor, "save sponsoring organization", writeRoles...); err != nil {
		return nil, err
	}
	if s.ID == "" {
		s.ID = id.New(id.PrefixSponsoringOrganization)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Organizations.GetSubdistrict(ctx, s.SubdistrictID); err != nil {
			return err
		}
		return r.Organizations.SaveSponsoringOrganization(ctx, s)
	})
	return saved(ctx, u.logger, actor, s, err)
}

func (u *Usecase) SaveUnit(ctx context.Context, actor security.Actor, unit *domainOrg.Unit) (*domainOrg.Unit, error) {
	if err := security.Require(actor, "save unit", writeRoles...); err != nil {
		return nil, err
	}
	if unit.ID == "" {
		unit.ID = id.New(id.PrefixUnit)
	}
	if err := unit.Validate(); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Organizations.GetSponsoringOrganization(ctx, unit.SponsoringOrganizationID); err != nil {
			return err
		}
		return r.Organizations.SaveUnit(ctx, unit)
	})
	if err == nil && u.units != nil {
		u.units.InvalidateUnit(ctx, unit.ID)
	}
	return saved(ctx, u.logger, actor, unit, err)
}

func saved[T domainOrg.Organization](ctx context.Context, l *slog.Logger, actor security.Actor, o T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	l.InfoContext(ctx, "organization saved", "organization_id", o.OrgID(), "kind", o.OrgKind(), "user_id", actor.UserID)
	return o, nil
}
