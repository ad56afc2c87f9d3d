package application

import (
	"context"
	"fmt"
	"time"

	domainApplication "github.com/ScoutDevs/Rechartering/internal/domain/application"
	"github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"github.com/ScoutDevs/Rechartering/internal/domain/youth"
	"github.com/ScoutDevs/Rechartering/pkg/id"
)

// YouthReader is what the engine needs from the youth store.
type YouthReader interface {
	GetByID(ctx context.Context, id string) (*youth.Youth, error)
}

// Engine applies workflow transitions to an already loaded application. It never
// persists: callers save the returned entities. Every transition checks the role,
// then the current status, then performs lookups, and only then writes fields.
// A validation failure still returns the mutated entities, which must not be saved.
type Engine struct {
	units  organization.UnitReader
	youths YouthReader
	now    func() time.Time
}

type EngineOption func(*Engine)

// WithClock replaces the source of "today" for defaulted dates.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

func NewEngine(units organization.UnitReader, youths YouthReader, opts ...EngineOption) *Engine {
	e := &Engine{units: units, youths: youths, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) today() time.Time {
	y, m, d := e.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (e *Engine) dateOrToday(t *time.Time) *time.Time {
	if t != nil && !t.IsZero() {
		v := *t
		return &v
	}
	v := e.today()
	return &v
}

// guard runs the role and status checks shared by every transition.
func guard(actor security.Actor, app *domainApplication.Application, ev domainApplication.Event) error {
	if err := security.Require(actor, string(ev), domainApplication.RolesFor(ev)...); err != nil {
		return err
	}
	return app.CanFire(ev)
}

// SubmitApplication moves a created application into guardian approval. When the
// application names an existing youth, the youth's registry id is copied and an
// approval already on file is applied straight away.
func (e *Engine) SubmitApplication(ctx context.Context, actor security.Actor, app *domainApplication.Application) (*domainApplication.Application, error) {
	if err := guard(actor, app, domainApplication.EventSubmit); err != nil {
		return app, err
	}

	var y *youth.Youth
	if app.YouthID != "" {
		var err error
		if y, err = e.youths.GetByID(ctx, app.YouthID); err != nil {
			return app, fmt.Errorf("load youth %s: %w", app.YouthID, err)
		}
	}

	if err := app.Fire(domainApplication.EventSubmit, domainApplication.StatusGuardianApproval); err != nil {
		return app, err
	}
	if y != nil {
		app.ScoutnetID = y.ScoutnetID
		if y.HasGuardianApproval() {
			// the approval on file stands in for the guardian; no role needed here
			date := *y.GuardianApprovalDate
			e.applyGuardianApproval(app, GuardianApprovalInput{
				GuardianID: y.GuardianApprovalGuardianID,
				Signature:  y.GuardianApprovalSignature,
				Date:       &date,
			})
			if err := app.Fire(domainApplication.EventGuardianApprove, domainApplication.StatusUnitApproval); err != nil {
				return app, err
			}
		}
	}
	return app, app.Validate()
}

func (e *Engine) applyGuardianApproval(app *domainApplication.Application, in GuardianApprovalInput) {
	app.GuardianApprovalGuardianID = in.GuardianID
	app.GuardianApprovalSignature = in.Signature
	app.GuardianApprovalDate = e.dateOrToday(in.Date)
}

// SubmitGuardianApproval records the guardian's consent and, when the application
// names a youth, puts the same approval on file for future applications.
func (e *Engine) SubmitGuardianApproval(ctx context.Context, actor security.Actor, app *domainApplication.Application, in GuardianApprovalInput) (*domainApplication.Application, *youth.Youth, error) {
	if err := guard(actor, app, domainApplication.EventGuardianApprove); err != nil {
		return app, nil, err
	}

	var y *youth.Youth
	if app.YouthID != "" {
		var err error
		if y, err = e.youths.GetByID(ctx, app.YouthID); err != nil {
			return app, nil, fmt.Errorf("load youth %s: %w", app.YouthID, err)
		}
	}

	if in.GuardianID == "" {
		in.GuardianID = actor.GuardianID
	}
	e.applyGuardianApproval(app, in)
	if err := app.Fire(domainApplication.EventGuardianApprove, domainApplication.StatusUnitApproval); err != nil {
		return app, nil, err
	}
	if err := app.Validate(); err != nil {
		return app, y, err
	}

	if y != nil {
		y.PutApprovalOnFile(app.GuardianApprovalGuardianID, app.GuardianApprovalSignature, *app.GuardianApprovalDate)
		if err := y.Validate(); err != nil {
			return app, y, err
		}
	}
	return app, y, nil
}

func (e *Engine) reject(actor security.Actor, app *domainApplication.Application, ev domainApplication.Event, in RejectionInput, defaultReason string) (*domainApplication.Application, error) {
	if err := guard(actor, app, ev); err != nil {
		return app, err
	}
	app.RejectionReason = in.Reason
	if app.RejectionReason == "" {
		app.RejectionReason = defaultReason
	}
	app.RejectionDate = e.dateOrToday(in.Date)
	if err := app.Fire(ev, domainApplication.StatusRejected); err != nil {
		return app, err
	}
	return app, app.Validate()
}

func (e *Engine) SubmitGuardianRejection(_ context.Context, actor security.Actor, app *domainApplication.Application, in RejectionInput) (*domainApplication.Application, error) {
	return e.reject(actor, app, domainApplication.EventGuardianReject, in, DefaultGuardianRejectionReason)
}

// SubmitUnitApproval records the unit's sign-off. LDS units have fees paid
// nationally and skip straight to ready_to_record.
func (e *Engine) SubmitUnitApproval(ctx context.Context, actor security.Actor, app *domainApplication.Application, in UnitApprovalInput) (*domainApplication.Application, error) {
	if err := guard(actor, app, domainApplication.EventUnitApprove); err != nil {
		return app, err
	}
	unit, err := e.units.GetUnit(ctx, app.UnitID)
	if err != nil {
		return app, fmt.Errorf("load unit %s: %w", app.UnitID, err)
	}

	if in.UserID == "" {
		in.UserID = actor.UserID
	}
	app.UnitApprovalUserID = in.UserID
	app.UnitApprovalSignature = in.Signature
	app.UnitApprovalDate = e.dateOrToday(in.Date)

	next := domainApplication.StatusFeePending
	if unit.LDSUnit {
		next = domainApplication.StatusReadyToRecord
	}
	if err := app.Fire(domainApplication.EventUnitApprove, next); err != nil {
		return app, err
	}
	return app, app.Validate()
}

func (e *Engine) SubmitUnitRejection(_ context.Context, actor security.Actor, app *domainApplication.Application, in RejectionInput) (*domainApplication.Application, error) {
	return e.reject(actor, app, domainApplication.EventUnitReject, in, DefaultUnitRejectionReason)
}

func (e *Engine) PayFees(_ context.Context, actor security.Actor, app *domainApplication.Application, in FeePaymentInput) (*domainApplication.Application, error) {
	if err := guard(actor, app, domainApplication.EventPayFees); err != nil {
		return app, err
	}
	if in.UserID == "" {
		in.UserID = actor.UserID
	}
	app.FeePaymentUserID = in.UserID
	app.FeePaymentReceipt = in.Receipt
	app.FeePaymentDate = e.dateOrToday(in.Date)
	if err := app.Fire(domainApplication.EventPayFees, domainApplication.StatusReadyToRecord); err != nil {
		return app, err
	}
	return app, app.Validate()
}

// MarkAsRecorded completes the application once ScoutNet has it, and makes sure a
// youth record exists that lists the application's unit.
func (e *Engine) MarkAsRecorded(ctx context.Context, actor security.Actor, app *domainApplication.Application, in RecordingInput) (*domainApplication.Application, *youth.Youth, error) {
	if err := guard(actor, app, domainApplication.EventRecord); err != nil {
		return app, nil, err
	}

	var y *youth.Youth
	if app.YouthID != "" {
		var err error
		if y, err = e.youths.GetByID(ctx, app.YouthID); err != nil {
			return app, nil, fmt.Errorf("load youth %s: %w", app.YouthID, err)
		}
	} else {
		y = &youth.Youth{
			ID:            id.New(id.PrefixYouth),
			FirstName:     app.FirstName,
			LastName:      app.LastName,
			DateOfBirth:   app.DateOfBirth,
			ApplicationID: app.ID,
		}
		if app.HasGuardianApproval() {
			y.PutApprovalOnFile(app.GuardianApprovalGuardianID, app.GuardianApprovalSignature, *app.GuardianApprovalDate)
		}
		app.YouthID = y.ID
	}

	app.ScoutnetID = in.ScoutnetID
	app.RecordedDate = e.dateOrToday(in.Date)
	if err := app.Fire(domainApplication.EventRecord, domainApplication.StatusComplete); err != nil {
		return app, y, err
	}

	y.AddUnit(app.UnitID)
	if in.ScoutnetID != 0 {
		y.ScoutnetID = in.ScoutnetID
	}

	if err := app.Validate(); err != nil {
		return app, y, err
	}
	return app, y, y.Validate()
}
