package youth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"github.com/ScoutDevs/Rechartering/internal/domain/guardian"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/ScoutDevs/Rechartering/internal/domain/uow"
	domainYouth "github.com/ScoutDevs/Rechartering/internal/domain/youth"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/logger"
	"github.com/ScoutDevs/Rechartering/internal/testutil/guardianmock"
	"github.com/ScoutDevs/Rechartering/internal/testutil/uowmock"
	"github.com/ScoutDevs/Rechartering/internal/testutil/youthmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	today = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	dob   = time.Date(2002, 1, 15, 0, 0, 0, 0, time.UTC)

	guardianOne = security.Actor{UserID: "usr-1", GuardianID: "gdn-1", Roles: []security.Role{security.RoleGuardian}}
	guardianTwo = security.Actor{UserID: "usr-2", GuardianID: "gdn-2", Roles: []security.Role{security.RoleGuardian}}
	unitAdmin   = security.Actor{UserID: "usr-3", Roles: []security.Role{security.RoleUnitAdmin}}
	employee    = security.Actor{UserID: "usr-4", Roles: []security.Role{security.RoleCouncilEmployee}}
)

func approved() *domainYouth.Youth {
	d := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	return &domainYouth.Youth{
		ID: "yth-1", FirstName: "Matthew", LastName: "Reece", DateOfBirth: dob, Units: []string{"unt-1"},
		GuardianApprovalGuardianID: "gdn-1", GuardianApprovalSignature: "sig", GuardianApprovalDate: &d,
	}
}

func TestRevokeGuardianApproval(t *testing.T) {
	tests := []struct {
		name     string
		actor    security.Actor
		guardian *guardian.Guardian
		wantErr  error
	}{
		{"granting guardian", guardianOne, &guardian.Guardian{ID: "gdn-1"}, nil},
		{"other guardian", guardianTwo, &guardian.Guardian{ID: "gdn-2"}, entity.ErrInvalidAction},
		{"no guardian record", guardianTwo, nil, entity.ErrInvalidAction},
		{"not a guardian", unitAdmin, &guardian.Guardian{ID: "gdn-1"}, security.ErrInsufficientPermission},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y := approved()
			_, err := RevokeGuardianApproval(tt.actor, tt.guardian, y)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				assert.True(t, y.HasGuardianApproval(), "approval must stay on file")
				return
			}
			require.NoError(t, err)
			assert.Empty(t, y.GuardianApprovalGuardianID)
			assert.Empty(t, y.GuardianApprovalSignature)
			assert.Nil(t, y.GuardianApprovalDate)
		})
	}
}

func TestRevokeGuardianApproval_Message(t *testing.T) {
	_, err := RevokeGuardianApproval(guardianTwo, &guardian.Guardian{ID: "gdn-2"}, approved())
	assert.EqualError(t, err, "only the guardian who granted approval can revoke it")
}

func TestGrantGuardianApproval(t *testing.T) {
	y := approved()
	y.ClearApproval()

	_, err := GrantGuardianApproval(unitAdmin, y, GuardianApprovalInput{Signature: "sig"}, today)
	require.True(t, errors.Is(err, security.ErrInsufficientPermission))
	assert.False(t, y.HasGuardianApproval())

	_, err = GrantGuardianApproval(guardianTwo, y, GuardianApprovalInput{Signature: "sig2"}, today)
	require.NoError(t, err)
	assert.Equal(t, "gdn-2", y.GuardianApprovalGuardianID)
	assert.Equal(t, today, *y.GuardianApprovalDate)

	_, err = GrantGuardianApproval(guardianTwo, y, GuardianApprovalInput{Signature: ""}, today)
	assert.True(t, errors.Is(err, entity.ErrInvalidObject))
}

type youthStore map[string]domainYouth.Youth

func newUsecase(ys youthStore, guardians map[string]*guardian.Guardian) *Usecase {
	repos := uow.Repos{
		Youth: &youthmock.Repo{
			GetByIDFn: func(_ context.Context, id string) (*domainYouth.Youth, error) {
				y, ok := ys[id]
				if !ok {
					return nil, entity.ErrRecordNotFound
				}
				return &y, nil
			},
			SaveFn: func(_ context.Context, y *domainYouth.Youth) error {
				if err := y.Validate(); err != nil {
					return err
				}
				ys[y.ID] = *y
				return nil
			},
			FindByDuplicateHashFn: func(_ context.Context, hash string) ([]domainYouth.Youth, error) {
				var out []domainYouth.Youth
				for _, y := range ys {
					if y.DuplicateHash == hash {
						out = append(out, y)
					}
				}
				return out, nil
			},
			SearchFn: func(_ context.Context, f domainYouth.Filter) ([]domainYouth.Youth, error) {
				var out []domainYouth.Youth
				for _, y := range ys {
					if f.ScoutnetID == 0 || y.ScoutnetID == f.ScoutnetID {
						out = append(out, y)
					}
				}
				return out, nil
			},
		},
		Guardians: &guardianmock.Repo{GetByIDFn: func(_ context.Context, id string) (*guardian.Guardian, error) {
			g, ok := guardians[id]
			if !ok {
				return nil, entity.ErrRecordNotFound
			}
			return g, nil
		}},
	}
	return NewUsecase(uowmock.Passthrough(repos), WithLogger(logger.Discard()), WithNow(func() time.Time { return today }))
}

func TestUsecase_FindDuplicateYouth(t *testing.T) {
	ys := youthStore{}
	uc := newUsecase(ys, nil)
	ctx := context.Background()

	_, err := uc.Set(ctx, unitAdmin, SetInput{ID: "yth-1", FirstName: "Matthew", LastName: "Reece", DateOfBirth: dob, Units: []string{"unt-1"}})
	require.NoError(t, err)
	_, err = uc.Set(ctx, unitAdmin, SetInput{ID: "yth-2", FirstName: "matthew", LastName: "REECE", DateOfBirth: dob, Units: []string{"unt-2"}})
	require.NoError(t, err)

	got, err := uc.FindDuplicateYouth(ctx, guardianOne, DuplicateInput{FirstName: "Matthew", LastName: "Reece", DateOfBirth: dob})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	for _, in := range []DuplicateInput{
		{FirstName: "Mark", LastName: "Reece", DateOfBirth: dob},
		{FirstName: "Matthew", LastName: "Reeves", DateOfBirth: dob},
		{FirstName: "Matthew", LastName: "Reece", DateOfBirth: dob.AddDate(0, 0, 1)},
	} {
		got, err := uc.FindDuplicateYouth(ctx, guardianOne, in)
		require.NoError(t, err)
		assert.Empty(t, got, "%+v", in)
	}

	_, err = uc.FindDuplicateYouth(ctx, security.Actor{}, DuplicateInput{})
	assert.True(t, errors.Is(err, security.ErrInsufficientPermission))
}

func TestUsecase_SetKeepsApprovalOnFile(t *testing.T) {
	ys := youthStore{"yth-1": *approved()}
	uc := newUsecase(ys, nil)

	y, err := uc.Set(context.Background(), unitAdmin, SetInput{ID: "yth-1", FirstName: "Matt", LastName: "Reece", DateOfBirth: dob, Units: []string{"unt-1", "unt-1"}})
	require.NoError(t, err)
	assert.Equal(t, "gdn-1", y.GuardianApprovalGuardianID)
	assert.Equal(t, []string{"unt-1"}, []string(y.Units))
	assert.Equal(t, domainYouth.DuplicateHash("Matt", "Reece", dob), ys["yth-1"].DuplicateHash)
}

func TestUsecase_SetCreatesID(t *testing.T) {
	ys := youthStore{}
	y, err := newUsecase(ys, nil).Set(context.Background(), unitAdmin, SetInput{FirstName: "A", LastName: "B", DateOfBirth: dob, Units: []string{"unt-1"}})
	require.NoError(t, err)
	assert.Contains(t, ys, y.ID)
}

func TestUsecase_Update(t *testing.T) {
	ys := youthStore{"yth-1": *approved()}
	uc := newUsecase(ys, nil)
	ctx := context.Background()

	name := "Matt"
	sn := int64(42)
	y, err := uc.Update(ctx, employee, "yth-1", UpdateInput{FirstName: &name, ScoutnetID: &sn})
	require.NoError(t, err)
	assert.Equal(t, "Matt", y.FirstName)
	assert.Equal(t, "Reece", y.LastName)
	assert.Equal(t, int64(42), ys["yth-1"].ScoutnetID)

	empty := ""
	_, err = uc.Update(ctx, employee, "yth-1", UpdateInput{LastName: &empty})
	assert.True(t, errors.Is(err, entity.ErrInvalidObject))
	assert.Equal(t, "Reece", ys["yth-1"].LastName)

	_, err = uc.Update(ctx, employee, "yth-404", UpdateInput{})
	assert.True(t, errors.Is(err, entity.ErrRecordNotFound))
}

func TestUsecase_SearchRoles(t *testing.T) {
	ys := youthStore{"yth-1": *approved()}
	uc := newUsecase(ys, nil)

	_, err := uc.Search(context.Background(), unitAdmin, domainYouth.Filter{})
	assert.True(t, errors.Is(err, security.ErrInsufficientPermission))

	got, err := uc.Search(context.Background(), employee, domainYouth.Filter{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUsecase_GrantAndRevoke(t *testing.T) {
	y := approved()
	y.ClearApproval()
	ys := youthStore{"yth-1": *y}
	guardians := map[string]*guardian.Guardian{
		"gdn-1": {ID: "gdn-1"},
		"gdn-2": {ID: "gdn-2"},
	}
	uc := newUsecase(ys, guardians)
	ctx := context.Background()

	_, err := uc.GrantGuardianApproval(ctx, guardianOne, "yth-1", GuardianApprovalInput{Signature: "sig"})
	require.NoError(t, err)
	assert.Equal(t, "gdn-1", ys["yth-1"].GuardianApprovalGuardianID)

	_, err = uc.RevokeGuardianApproval(ctx, guardianTwo, "yth-1")
	require.True(t, errors.Is(err, entity.ErrInvalidAction))
	assert.Equal(t, "gdn-1", ys["yth-1"].GuardianApprovalGuardianID)

	_, err = uc.RevokeGuardianApproval(ctx, guardianOne, "yth-1")
	require.NoError(t, err)
	stored := ys["yth-1"]
	assert.False(t, stored.HasGuardianApproval())
	assert.Nil(t, stored.GuardianApprovalDate)
}
