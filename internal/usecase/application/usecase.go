package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainApplication "github.com/ScoutDevs/Rechartering/internal/domain/application"
	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/ScoutDevs/Rechartering/internal/domain/uow"
	"github.com/ScoutDevs/Rechartering/internal/infrastructure/metrics"
	"github.com/ScoutDevs/Rechartering/pkg/id"
)

// Usecase is the request-facing side of the workflow: load the application,
// run one engine transition, persist what it returns in the same transaction.
type Usecase struct {
	uow     uow.UnitOfWork
	units   organization.UnitReader
	metrics *metrics.Metrics
	logger  *slog.Logger
	clock   func() time.Time
}

type Option func(*Usecase)

func WithLogger(l *slog.Logger) Option { return func(u *Usecase) { u.logger = l } }

func WithMetrics(m *metrics.Metrics) Option { return func(u *Usecase) { u.metrics = m } }

func WithNow(now func() time.Time) Option { return func(u *Usecase) { u.clock = now } }

// NewUsecase takes the unit reader separately so unit lookups can go through a
// cache instead of the transaction.
func NewUsecase(tx uow.UnitOfWork, units organization.UnitReader, opts ...Option) *Usecase {
	u := &Usecase{uow: tx, units: units, logger: slog.Default(), clock: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) engine(r uow.Repos) *Engine {
	units := u.units
	if units == nil {
		units = r.Organizations
	}
	return NewEngine(units, r.Youth, WithClock(u.clock))
}

// Create is application intake: a new application in status created.
func (u *Usecase) Create(ctx context.Context, actor security.Actor, in CreateInput) (*domainApplication.Application, error) {
	if err := security.Require(actor, "create application", security.AnyStaff...); err != nil {
		return nil, err
	}
	app := &domainApplication.Application{
		ID:          id.New(id.PrefixApplication),
		Status:      domainApplication.StatusCreated,
		UnitID:      in.UnitID,
		YouthID:     in.YouthID,
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		DateOfBirth: in.DateOfBirth.UTC(),
	}
	if err := app.Validate(); err != nil {
		return nil, err
	}
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Organizations.GetUnit(ctx, app.UnitID); err != nil {
			return err
		}
		if app.YouthID != "" {
			if _, err := r.Youth.GetByID(ctx, app.YouthID); err != nil {
				return err
			}
		}
		return r.Applications.Create(ctx, app)
	})
	if err != nil {
		return nil, err
	}
	u.metrics.IncrementApplicationsCreated()
	u.logger.InfoContext(ctx, "application created", "application_id", app.ID, "unit_id", app.UnitID, "user_id", actor.UserID)
	return app, nil
}

func (u *Usecase) Get(ctx context.Context, actor security.Actor, applicationID string) (*domainApplication.Application, error) {
	if err := security.Require(actor, "get application", security.AnyStaff...); err != nil {
		return nil, err
	}
	var out *domainApplication.Application
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByID(ctx, applicationID)
		out = a
		return err
	})
	return out, err
}

// GetApplicationsByStatus is the council work queue.
func (u *Usecase) GetApplicationsByStatus(ctx context.Context, actor security.Actor, status domainApplication.Status) ([]domainApplication.Application, error) {
	if err := security.Require(actor, "get applications by status", security.RoleCouncilEmployee); err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, &entity.InvalidObjectError{Kind: "status filter", Violations: []string{fmt.Sprintf("invalid status %q", status)}}
	}
	var out []domainApplication.Application
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		list, err := r.Applications.ListByStatus(ctx, status)
		out = list
		return err
	})
	return out, err
}

func (u *Usecase) run(ctx context.Context, actor security.Actor, applicationID string, ev domainApplication.Event, fn func(e *Engine, app *domainApplication.Application) (*Result, error)) (*Result, error) {
	start := time.Now()
	if err := security.Require(actor, string(ev), domainApplication.RolesFor(ev)...); err != nil {
		u.metrics.ObserveTransition(string(ev), outcomeOf(err), start)
		return nil, err
	}
	var res *Result
	err := u.uow.WithinApplicationTx(ctx, applicationID, func(r uow.Repos, app *domainApplication.Application) error {
		out, err := fn(u.engine(r), app)
		if err != nil {
			return err
		}
		if err := r.Applications.Save(ctx, out.Application); err != nil {
			return err
		}
		if out.Youth != nil {
			if err := r.Youth.Save(ctx, out.Youth); err != nil {
				return err
			}
		}
		res = out
		return nil
	})

	outcome := outcomeOf(err)
	u.metrics.ObserveTransition(string(ev), outcome, start)
	if err != nil {
		u.logger.WarnContext(ctx, "application transition failed",
			"application_id", applicationID, "event", ev, "outcome", outcome, "user_id", actor.UserID, "error", err)
		return nil, err
	}
	u.logger.InfoContext(ctx, "application transition",
		"application_id", applicationID, "event", ev, "status", res.Application.Status, "user_id", actor.UserID)
	return res, nil
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, security.ErrInsufficientPermission):
		return "insufficient_permission"
	case errors.Is(err, entity.ErrInvalidAction):
		return "invalid_action"
	case errors.Is(err, entity.ErrInvalidObject):
		return "invalid_object"
	case errors.Is(err, entity.ErrRecordNotFound):
		return "not_found"
	default:
		return "error"
	}
}

func (u *Usecase) Submit(ctx context.Context, actor security.Actor, applicationID string) (*Result, error) {
	return u.run(ctx, actor, applicationID, domainApplication.EventSubmit, func(e *Engine, app *domainApplication.Application) (*Result, error) {
		a, err := e.SubmitApplication(ctx, actor, app)
		return &Result{Application: a}, err
	})
}

func (u *Usecase) GuardianApprove(ctx context.Context, actor security.Actor, applicationID string, in GuardianApprovalInput) (*Result, error) {
	return u.run(ctx, actor, applicationID, domainApplication.EventGuardianApprove, func(e *Engine, app *domainApplication.Application) (*Result, error) {
		a, y, err := e.SubmitGuardianApproval(ctx, actor, app, in)
		return &Result{Application: a, Youth: y}, err
	})
}

func (u *Usecase) GuardianReject(ctx context.Context, actor security.Actor, applicationID string, in RejectionInput) (*Result, error) {
	return u.run(ctx, actor, applicationID, domainApplication.EventGuardianReject, func(e *Engine, app *domainApplication.Application) (*Result, error) {
		a, err := e.SubmitGuardianRejection(ctx, actor, app, in)
		return &Result{Application: a}, err
	})
}

func (u *Usecase) UnitApprove(ctx context.Context, actor security.Actor, applicationID string, in UnitApprovalInput) (*Result, error) {
	return u.run(ctx, actor, applicationID, domainApplication.EventUnitApprove, func(e *Engine, app *domainApplication.Application) (*Result, error) {
		a, err := e.SubmitUnitApproval(ctx, actor, app, in)
		return &Result{Application: a}, err
	})
}

func (u *Usecase) UnitReject(ctx context.Context, actor security.Actor, applicationID string, in RejectionInput) (*Result, error) {
	return u.run(ctx, actor, applicationID, domainApplication.EventUnitReject, func(e *Engine, app *domainApplication.Application) (*Result, error) {
		a, err := e.SubmitUnitRejection(ctx, actor, app, in)
		return &Result{Application: a}, err
	})
}

func (u *Usecase) PayFees(ctx context.Context, actor security.Actor, applicationID string, in FeePaymentInput) (*Result, error) {
	return u.run(ctx, actor, applicationID, domainApplication.EventPayFees, func(e *Engine, app *domainApplication.Application) (*Result, error) {
		a, err := e.PayFees(ctx, actor, app, in)
		return &Result{Application: a}, err
	})
}

func (u *Usecase) Record(ctx context.Context, actor security.Actor, applicationID string, in RecordingInput) (*Result, error) {
	return u.run(ctx, actor, applicationID, domainApplication.EventRecord, func(e *Engine, app *domainApplication.Application) (*Result, error) {
		a, y, err := e.MarkAsRecorded(ctx, actor, app, in)
		return &Result{Application: a, Youth: y}, err
	})
}
