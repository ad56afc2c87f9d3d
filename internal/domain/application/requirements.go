package application

import (
	"fmt"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
)

// Field names match the JSON/column names of Application.
type Field string

const (
	FieldID                         Field = "id"
	FieldStatus                     Field = "status"
	FieldUnitID                     Field = "unit_id"
	FieldFirstName                  Field = "first_name"
	FieldLastName                   Field = "last_name"
	FieldDateOfBirth                Field = "date_of_birth"
	FieldGuardianApprovalGuardianID Field = "guardian_approval_guardian_id"
	FieldGuardianApprovalSignature  Field = "guardian_approval_signature"
	FieldGuardianApprovalDate       Field = "guardian_approval_date"
	FieldUnitApprovalUserID         Field = "unit_approval_user_id"
	FieldUnitApprovalSignature      Field = "unit_approval_signature"
	FieldUnitApprovalDate           Field = "unit_approval_date"
	FieldRecordedDate               Field = "recorded_date"
	FieldRejectionDate              Field = "rejection_date"
	FieldRejectionReason            Field = "rejection_reason"
)

var (
	baseFields = []Field{FieldID, FieldStatus, FieldUnitID, FieldFirstName, FieldLastName, FieldDateOfBirth}

	guardianApprovalFields = []Field{FieldGuardianApprovalGuardianID, FieldGuardianApprovalSignature, FieldGuardianApprovalDate}
	unitApprovalFields     = []Field{FieldUnitApprovalUserID, FieldUnitApprovalSignature, FieldUnitApprovalDate}
	rejectionFields        = []Field{FieldRejectionDate, FieldRejectionReason}
)

// RequiredFields returns the fields that must be set for an application in status s.
// Requirements accumulate as the status advances; fee payment is never required
// because LDS units skip it.
func RequiredFields(s Status) []Field {
	out := append([]Field{}, baseFields...)
	switch s {
	case StatusUnitApproval:
		out = append(out, guardianApprovalFields...)
	case StatusFeePending, StatusReadyToRecord:
		out = append(out, guardianApprovalFields...)
		out = append(out, unitApprovalFields...)
	case StatusComplete:
		out = append(out, guardianApprovalFields...)
		out = append(out, unitApprovalFields...)
		out = append(out, FieldRecordedDate)
	case StatusRejected:
		out = append(out, rejectionFields...)
	}
	return out
}

// Validate checks the application against the requirements of its current status.
func (a *Application) Validate() error {
	c := entity.NewChecker("youth application")
	if a.Status != "" && !a.Status.Valid() {
		c.Addf("invalid status %q", a.Status)
	}
	for _, f := range RequiredFields(a.Status) {
		a.check(c, f)
	}
	return c.Err()
}

func (a *Application) check(c *entity.Checker, f Field) {
	name := string(f)
	switch f {
	case FieldID:
		c.String(name, a.ID)
	case FieldStatus:
		c.String(name, string(a.Status))
	case FieldUnitID:
		c.String(name, a.UnitID)
	case FieldFirstName:
		c.String(name, a.FirstName)
	case FieldLastName:
		c.String(name, a.LastName)
	case FieldDateOfBirth:
		c.Date(name, a.DateOfBirth)
	case FieldGuardianApprovalGuardianID:
		c.String(name, a.GuardianApprovalGuardianID)
	case FieldGuardianApprovalSignature:
		c.String(name, a.GuardianApprovalSignature)
	case FieldGuardianApprovalDate:
		c.Time(name, a.GuardianApprovalDate)
	case FieldUnitApprovalUserID:
		c.String(name, a.UnitApprovalUserID)
	case FieldUnitApprovalSignature:
		c.String(name, a.UnitApprovalSignature)
	case FieldUnitApprovalDate:
		c.Time(name, a.UnitApprovalDate)
	case FieldRecordedDate:
		c.Time(name, a.RecordedDate)
	case FieldRejectionDate:
		c.Time(name, a.RejectionDate)
	case FieldRejectionReason:
		c.String(name, a.RejectionReason)
	default:
		panic(fmt.Sprintf("application: no check for field %q", f))
	}
}
