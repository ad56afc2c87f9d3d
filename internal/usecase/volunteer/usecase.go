package volunteer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/ScoutDevs/Rechartering/internal/domain/uow"
	domainVolunteer "github.com/ScoutDevs/Rechartering/internal/domain/volunteer"
	"github.com/ScoutDevs/Rechartering/pkg/id"
)

// SetInput replaces a volunteer record. An empty ID creates one.
type SetInput struct {
	ID                string     `json:"id"`
	UserID            string     `json:"user_id"`
	UnitID            string     `json:"unit_id"`
	ScoutnetID        int64      `json:"scoutnet_id"`
	ApplicationID     string     `json:"application_id"`
	YPTCompletionDate *time.Time `json:"ypt_completion_date"`
	FirstName         string     `json:"first_name"`
	LastName          string     `json:"last_name"`
	SSN               string     `json:"ssn"`
}

// DuplicateInput identifies a volunteer by SSN alone.
type DuplicateInput struct {
	SSN string `json:"ssn"`
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

func (u *Usecase) Get(ctx context.Context, actor security.Actor, volunteerID string) (*domainVolunteer.Volunteer, error) {
	if err := security.Require(actor, "get volunteer", security.Staff...); err != nil {
		return nil, err
	}
	var out *domainVolunteer.Volunteer
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		v, err := r.Volunteers.GetByID(ctx, volunteerID)
		out = v
		return err
	})
	return out, err
}

func (u *Usecase) Set(ctx context.Context, actor security.Actor, in SetInput) (*domainVolunteer.Volunteer, error) {
	if err := security.Require(actor, "set volunteer", security.Staff...); err != nil {
		return nil, err
	}
	v := &domainVolunteer.Volunteer{
		ID:                in.ID,
		UserID:            in.UserID,
		UnitID:            in.UnitID,
		ScoutnetID:        in.ScoutnetID,
		ApplicationID:     in.ApplicationID,
		YPTCompletionDate: in.YPTCompletionDate,
		FirstName:         strings.TrimSpace(in.FirstName),
		LastName:          strings.TrimSpace(in.LastName),
		SSN:               strings.TrimSpace(in.SSN),
	}
	if v.ID == "" {
		v.ID = id.New(id.PrefixVolunteer)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Organizations.GetUnit(ctx, v.UnitID); err != nil {
			return err
		}
		if existing, err := r.Volunteers.GetByID(ctx, v.ID); err == nil {
			v.CreatedAt = existing.CreatedAt
		}
		return r.Volunteers.Save(ctx, v)
	})
	if err != nil {
		return nil, err
	}
	u.logger.InfoContext(ctx, "volunteer saved", "volunteer_id", v.ID, "unit_id", v.UnitID, "user_id", actor.UserID)
	return v, nil
}

// FindDuplicateVolunteers lists volunteers on file with the same SSN.
func (u *Usecase) FindDuplicateVolunteers(ctx context.Context, actor security.Actor, in DuplicateInput) ([]domainVolunteer.Volunteer, error) {
	if err := security.Require(actor, "find duplicate volunteers", security.Staff...); err != nil {
		return nil, err
	}
	hash := domainVolunteer.DuplicateHash(in.SSN)
	var out []domainVolunteer.Volunteer
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		list, err := r.Volunteers.FindByDuplicateHash(ctx, hash)
		out = list
		return err
	})
	return out, err
}
