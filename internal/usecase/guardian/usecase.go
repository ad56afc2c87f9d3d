package guardian

import (
	"context"
	"log/slog"
	"strings"

	domainGuardian "github.com/ScoutDevs/Rechartering/internal/domain/guardian"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/ScoutDevs/Rechartering/internal/domain/uow"
	"github.com/ScoutDevs/Rechartering/pkg/id"
)

// SetInput replaces a guardian record. An empty ID creates one.
type SetInput struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	YouthIDs  []string `json:"youth_ids"`
}

type Usecase struct {
	uow    uow.UnitOfWork
	logger *slog.Logger
}

type Option func(*Usecase)

func WithLogger(l *slog.Logger) Option { return func(u *Usecase) { u.logger = l } }

func NewUsecase(tx uow.UnitOfWork, opts ...Option) *Usecase {
	u := &Usecase{uow: tx, logger: slog.Default()}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Get lets staff read any guardian and a guardian read their own record.
func (u *Usecase) Get(ctx context.Context, actor security.Actor, guardianID string) (*domainGuardian.Guardian, error) {
	if actor.GuardianID != guardianID || !actor.Has(security.RoleGuardian) {
		if err := security.Require(actor, "get guardian", security.Staff...); err != nil {
			return nil, err
		}
	}
	var out *domainGuardian.Guardian
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		g, err := r.Guardians.GetByID(ctx, guardianID)
		out = g
		return err
	})
	return out, err
}

// Set stores the guardian after checking that every listed youth exists.
func (u *Usecase) Set(ctx context.Context, actor security.Actor, in SetInput) (*domainGuardian.Guardian, error) {
	if err := security.Require(actor, "set guardian", security.Staff...); err != nil {
		return nil, err
	}
	g := &domainGuardian.Guardian{
		ID:        in.ID,
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		YouthIDs:  in.YouthIDs,
	}
	if g.ID == "" {
		g.ID = id.New(id.PrefixGuardian)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		for _, youthID := range g.YouthIDs {
			if _, err := r.Youth.GetByID(ctx, youthID); err != nil {
				return err
			}
		}
		if existing, err := r.Guardians.GetByID(ctx, g.ID); err == nil {
			g.CreatedAt = existing.CreatedAt
		}
		return r.Guardians.Save(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "guardian saved", "guardian_id", g.ID, "youth", len(g.YouthIDs), "user_id", actor.UserID)
	return g, nil
}
