package youth

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/ScoutDevs/Rechartering/internal/domain/uow"
	domainYouth "github.com/ScoutDevs/Rechartering/internal/domain/youth"
	"github.com/ScoutDevs/Rechartering/pkg/id"
)

// searchRoles may list youth across units.
var searchRoles = []security.Role{security.RoleCouncilAdmin, security.RoleCouncilEmployee}

type Usecase struct {
	uow    uow.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Usecase)

func WithLogger(l *slog.Logger) Option { return func(u *Usecase) { u.logger = l } }

func WithNow(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func NewUsecase(tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{uow: tx, logger: slog.Default(), now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) today() time.Time {
	y, m, d := u.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (u *Usecase) Get(ctx context.Context, actor security.Actor, youthID string) (*domainYouth.Youth, error) {
	if err := security.Require(actor, "get youth", security.AnyStaff...); err != nil {
		return nil, err
	}
	var out *domainYouth.Youth
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		y, err := r.Youth.GetByID(ctx, youthID)
		out = y
		return err
	})
	return out, err
}

// Set is a record-level create or replace.
func (u *Usecase) Set(ctx context.Context, actor security.Actor, in SetInput) (*domainYouth.Youth, error) {
	if err := security.Require(actor, "set youth", security.AnyStaff...); err != nil {
		return nil, err
	}
	y := &domainYouth.Youth{
		ID:            in.ID,
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		DateOfBirth:   in.DateOfBirth.UTC(),
		ScoutnetID:    in.ScoutnetID,
		ApplicationID: in.ApplicationID,
	}
	if y.ID == "" {
		y.ID = id.New(id.PrefixYouth)
	}
	for _, unitID := range in.Units {
		y.AddUnit(unitID)
	}
	if err := y.Validate(); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if existing, err := r.Youth.GetByID(ctx, y.ID); err == nil {
			// approval on file belongs to the guardian, not the record editor
			y.GuardianApprovalGuardianID = existing.GuardianApprovalGuardianID
			y.GuardianApprovalSignature = existing.GuardianApprovalSignature
			y.GuardianApprovalDate = existing.GuardianApprovalDate
			y.CreatedAt = existing.CreatedAt
		}
		return r.Youth.Save(ctx, y)
	})
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "youth saved", "youth_id", y.ID, "user_id", actor.UserID)
	return y, nil
}

// Update is a field-level modify of an existing record.
func (u *Usecase) Update(ctx context.Context, actor security.Actor, youthID string, in UpdateInput) (*domainYouth.Youth, error) {
	if err := security.Require(actor, "update youth", security.AnyStaff...); err != nil {
		return nil, err
	}
	var out *domainYouth.Youth
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		y, err := r.Youth.GetByID(ctx, youthID)
		if err != nil {
			return err
		}
		if in.FirstName != nil {
			y.FirstName = strings.TrimSpace(*in.FirstName)
		}
		if in.LastName != nil {
			y.LastName = strings.TrimSpace(*in.LastName)
		}
		if in.DateOfBirth != nil {
			y.DateOfBirth = in.DateOfBirth.UTC()
		}
		if in.ScoutnetID != nil {
			y.ScoutnetID = *in.ScoutnetID
		}
		if in.Units != nil {
			y.Units = nil
			for _, unitID := range in.Units {
				y.AddUnit(unitID)
			}
		}
		if err := y.Validate(); err != nil {
			return err
		}
		out = y
		return r.Youth.Save(ctx, y)
	})
	return out, err
}

func (u *Usecase) Search(ctx context.Context, actor security.Actor, f domainYouth.Filter) ([]domainYouth.Youth, error) {
	if err := security.Require(actor, "search youth", searchRoles...); err != nil {
		return nil, err
	}
	var out []domainYouth.Youth
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		list, err := r.Youth.Search(ctx, f)
		out = list
		return err
	})
	return out, err
}

// FindDuplicateYouth lists records that share the duplicate hash of the described
// child, so a returning scout can be matched instead of re-entered.
func (u *Usecase) FindDuplicateYouth(ctx context.Context, actor security.Actor, in DuplicateInput) ([]domainYouth.Youth, error) {
	if err := security.Require(actor, "find duplicate youth", security.AnyStaff...); err != nil {
		return nil, err
	}
	probe := domainYouth.Youth{FirstName: in.FirstName, LastName: in.LastName, DateOfBirth: in.DateOfBirth.UTC()}
	probe.PrepareForValidate()

	var out []domainYouth.Youth
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		list, err := r.Youth.FindByDuplicateHash(ctx, probe.DuplicateHash)
		out = list
		return err
	})
	return out, err
}

func (u *Usecase) GrantGuardianApproval(ctx context.Context, actor security.Actor, youthID string, in GuardianApprovalInput) (*domainYouth.Youth, error) {
	if err := security.Require(actor, "grant guardian approval", security.RoleGuardian); err != nil {
		return nil, err
	}
	var out *domainYouth.Youth
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		y, err := r.Youth.GetByID(ctx, youthID)
		if err != nil {
			return err
		}
		if _, err := GrantGuardianApproval(actor, y, in, u.today()); err != nil {
			return err
		}
		out = y
		return r.Youth.Save(ctx, y)
	})
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "guardian approval granted", "youth_id", youthID, "guardian_id", out.GuardianApprovalGuardianID)
	return out, nil
}

// RevokeGuardianApproval revokes on behalf of the acting user's guardian record.
func (u *Usecase) RevokeGuardianApproval(ctx context.Context, actor security.Actor, youthID string) (*domainYouth.Youth, error) {
	if err := security.Require(actor, "revoke guardian approval", security.RoleGuardian); err != nil {
		return nil, err
	}
	if actor.GuardianID == "" {
		return nil, entity.InvalidAction("only the guardian who granted approval can revoke it")
	}
	var out *domainYouth.Youth
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		g, err := r.Guardians.GetByID(ctx, actor.GuardianID)
		if err != nil {
			return err
		}
		y, err := r.Youth.GetByID(ctx, youthID)
		if err != nil {
			return err
		}
		if _, err := RevokeGuardianApproval(actor, g, y); err != nil {
			return err
		}
		out = y
		return r.Youth.Save(ctx, y)
	})
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "guardian approval revoked", "youth_id", youthID, "guardian_id", actor.GuardianID)
	return out, nil
}
