package organization

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	domainOrg "github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/ScoutDevs/Rechartering/internal/domain/uow"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/logger"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/metrics"
	"github.com/ScoutDevs/Rechartering/internal/testutil/organizationmock"
	"github.com/ScoutDevs/Rechartering/internal/testutil/uowmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	employee  = security.Actor{UserID: "usr-1", Roles: []security.Role{security.RoleCouncilEmployee}}
	unitAdmin = security.Actor{UserID: "usr-2", Roles: []security.Role{security.RoleUnitAdmin}}
	guardian  = security.Actor{UserID: "usr-3", GuardianID: "gdn-1", Roles: []security.Role{security.RoleGuardian}}
)

// store is an in-memory organization repository keyed by id.
type store struct {
	districts    map[string]domainOrg.District
	subdistricts map[string]domainOrg.Subdistrict
	sporgs       map[string]domainOrg.SponsoringOrganization
	units        map[string]domainOrg.Unit
}

func newStore() *store {
	return &store{
		districts:    map[string]domainOrg.District{},
		subdistricts: map[string]domainOrg.Subdistrict{},
		sporgs:       map[string]domainOrg.SponsoringOrganization{},
		units:        map[string]domainOrg.Unit{},
	}
}

func lookup[T any](m map[string]T, id string) (*T, error) {
	v, ok := m[id]
	if !ok {
		return nil, entity.ErrRecordNotFound
	}
	return &v, nil
}

func (s *store) repo() *organizationmock.Repo {
	return &organizationmock.Repo{
		GetDistrictFn: func(_ context.Context, id string) (*domainOrg.District, error) { return lookup(s.districts, id) },
		GetSubdistrictFn: func(_ context.Context, id string) (*domainOrg.Subdistrict, error) {
			return lookup(s.subdistricts, id)
		},
		GetSponsoringOrganizationFn: func(_ context.Context, id string) (*domainOrg.SponsoringOrganization, error) {
			return lookup(s.sporgs, id)
		},
		GetUnitFn:                    func(_ context.Context, id string) (*domainOrg.Unit, error) { return lookup(s.units, id) },
		SaveDistrictFn:               func(_ context.Context, d *domainOrg.District) error { s.districts[d.ID] = *d; return nil },
		SaveSubdistrictFn:            func(_ context.Context, v *domainOrg.Subdistrict) error { s.subdistricts[v.ID] = *v; return nil },
		SaveSponsoringOrganizationFn: func(_ context.Context, v *domainOrg.SponsoringOrganization) error { s.sporgs[v.ID] = *v; return nil },
		SaveUnitFn:                   func(_ context.Context, u *domainOrg.Unit) error { s.units[u.ID] = *u; return nil },
		SearchFn: func(_ context.Context, f domainOrg.Filter) ([]domainOrg.Organization, error) {
			var out []domainOrg.Organization
			for _, d := range s.districts {
				d := d
				if strings.Contains(strings.ToLower(d.Name), strings.ToLower(f.Name)) {
					out = append(out, &d)
				}
			}
			return out, nil
		},
	}
}

func newUsecase(s *store, opts ...Option) *Usecase {
	opts = append([]Option{WithLogger(logger.Discard())}, opts...)
	return NewUsecase(uowmock.Passthrough(uow.Repos{Organizations: s.repo()}), opts...)
}

func seed(s *store) {
	s.districts["dst-1"] = domainOrg.District{ID: "dst-1", Number: "12", Name: "Timpanogos"}
	s.subdistricts["sbd-1"] = domainOrg.Subdistrict{ID: "sbd-1", DistrictID: "dst-1", Number: "12-3", Name: "Orem Stake"}
	s.sporgs["spo-1"] = domainOrg.SponsoringOrganization{ID: "spo-1", SubdistrictID: "sbd-1", Name: "Orem 4th Ward"}
	s.units["unt-1"] = domainOrg.Unit{ID: "unt-1", SponsoringOrganizationID: "spo-1", Type: domainOrg.UnitTypeTroop, Number: 1455}
}

func TestUsecase_GetDispatchesOnPrefix(t *testing.T) {
	s := newStore()
	seed(s)
	uc := newUsecase(s)
	ctx := context.Background()

	tests := []struct {
		id   string
		kind domainOrg.Kind
	}{
		{"dst-1", domainOrg.KindDistrict},
		{"sbd-1", domainOrg.KindSubdistrict},
		{"spo-1", domainOrg.KindSponsoringOrganization},
		{"unt-1", domainOrg.KindUnit},
	}
	for _, tt := range tests {
		o, err := uc.Get(ctx, guardian, tt.id)
		require.NoError(t, err, tt.id)
		assert.Equal(t, tt.kind, o.OrgKind())
		assert.Equal(t, tt.id, o.OrgID())
	}

	for _, missing := range []string{"dst-404", "yth-1", "nonsense"} {
		o, err := uc.Get(ctx, guardian, missing)
		assert.True(t, errors.Is(err, entity.ErrRecordNotFound), missing)
		assert.Nil(t, o, missing)
	}

	_, err := uc.Get(ctx, security.Actor{}, "dst-1")
	assert.True(t, errors.Is(err, security.ErrInsufficientPermission))
}

type fakeCache struct {
	units       map[string]*domainOrg.Unit
	invalidated []string
}

func (c *fakeCache) GetUnit(_ context.Context, id string) (*domainOrg.Unit, error) {
	if u, ok := c.units[id]; ok {
		return u, nil
	}
	return nil, entity.ErrRecordNotFound
}

func (c *fakeCache) InvalidateUnit(_ context.Context, id string) {
	c.invalidated = append(c.invalidated, id)
}

func TestUsecase_UnitsGoThroughCache(t *testing.T) {
	s := newStore()
	seed(s)
	cache := &fakeCache{units: map[string]*domainOrg.Unit{"unt-9": {ID: "unt-9", Name: "cached"}}}
	uc := newUsecase(s, WithUnitCache(cache))
	ctx := context.Background()

	o, err := uc.Get(ctx, employee, "unt-9")
	require.NoError(t, err)
	assert.Equal(t, "cached", o.(*domainOrg.Unit).Name)

	_, err = uc.SaveUnit(ctx, employee, &domainOrg.Unit{ID: "unt-1", SponsoringOrganizationID: "spo-1", Type: domainOrg.UnitTypePack, Number: 7})
	require.NoError(t, err)
	assert.Equal(t, []string{"unt-1"}, cache.invalidated)
	assert.Equal(t, domainOrg.UnitTypePack, s.units["unt-1"].Type)
}

func TestUsecase_SaveGeneratesIDAndChecksParent(t *testing.T) {
	s := newStore()
	seed(s)
	uc := newUsecase(s)
	ctx := context.Background()

	d, err := uc.SaveDistrict(ctx, employee, &domainOrg.District{Number: "14", Name: "Mountain"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(d.ID, "dst-"))
	assert.Contains(t, s.districts, d.ID)

	_, err = uc.SaveSubdistrict(ctx, employee, &domainOrg.Subdistrict{DistrictID: "dst-404", Number: "1", Name: "X"})
	assert.True(t, errors.Is(err, entity.ErrRecordNotFound))

	_, err = uc.SaveUnit(ctx, employee, &domainOrg.Unit{SponsoringOrganizationID: "spo-1", Type: "Den", Number: 1})
	require.True(t, errors.Is(err, entity.ErrInvalidObject))
	assert.Contains(t, entity.Violations(err), `invalid unit type "Den"; valid types: Pack, Troop, Team, Crew, Ship, Post`)

	_, err = uc.SaveDistrict(ctx, unitAdmin, &domainOrg.District{Number: "15", Name: "Y"})
	assert.True(t, errors.Is(err, security.ErrInsufficientPermission))
}

func TestUsecase_Search(t *testing.T) {
	s := newStore()
	seed(s)
	got, err := newUsecase(s).Search(context.Background(), unitAdmin, domainOrg.Filter{Name: "  timp "})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "dst-1", got[0].OrgID())
}

const council = "District No\tDistrict Name\tSub District #\tStake/Sub District Name\tUnit No\tWard/Sponsoring Org\n" +
	"12\tTimpanogos\t3\tOrem Stake\t1455\tOrem 4th Ward\n" +
	"12\tTimpanogos\t3\tOrem Stake\t1456\tOrem 5th Ward\n" +
	"12\tTimpanogos\t\tOrem Stake\t1457\tOrem 6th Ward\n" +
	"13\tCanyon\t1\tLehi Stake\t200\tLehi 1st Ward\n"

func TestUsecase_Import(t *testing.T) {
	s := newStore()
	m := metrics.New(prometheus.NewRegistry())
	uc := newUsecase(s, WithMetrics(m))
	ctx := context.Background()

	sum, err := uc.Import(ctx, employee, strings.NewReader(council))
	require.NoError(t, err)
	assert.Equal(t, &ImportSummary{Records: 3, Districts: 2, Subdistricts: 2, SponsoringOrganizations: 3}, sum)
	assert.Len(t, s.districts, 2)
	assert.Len(t, s.sporgs, 3)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ImportedRecords))

	// a second run updates in place
	_, err = uc.Import(ctx, employee, strings.NewReader(council))
	require.NoError(t, err)
	assert.Len(t, s.districts, 2)
	assert.Len(t, s.subdistricts, 2)
	assert.Len(t, s.sporgs, 3)
}

func TestUsecase_ImportFailures(t *testing.T) {
	s := newStore()
	m := metrics.New(prometheus.NewRegistry())
	ctx := context.Background()

	_, err := newUsecase(s).Import(ctx, unitAdmin, strings.NewReader(council))
	assert.True(t, errors.Is(err, security.ErrInsufficientPermission))

	_, err = newUsecase(s).Import(ctx, employee, strings.NewReader("District No\n12\n"))
	assert.True(t, errors.Is(err, domainOrg.ErrInvalidImportFile))

	boom := errors.New("db down")
	repo := s.repo()
	repo.SaveSponsoringOrganizationFn = func(context.Context, *domainOrg.SponsoringOrganization) error { return boom }
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{Organizations: repo}), WithLogger(logger.Discard()), WithMetrics(m))
	_, err = uc.Import(ctx, employee, strings.NewReader(council))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ImportedRecords))
}
