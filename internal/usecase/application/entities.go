package application

import (
	"time"

	domainApplication "github.com/ScoutDevs/Rechartering/internal/domain/application"
	"github.com/ScoutDevs/Rechartering/internal/domain/youth"
)

const (
	DefaultGuardianRejectionReason = "Guardian approval NOT granted"
	DefaultUnitRejectionReason     = "Unit approval NOT granted"
)

// CreateInput starts a new application in status created.
type CreateInput struct {
	UnitID      string    `json:"unit_id"`
	YouthID     string    `json:"youth_id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
}

// GuardianApprovalInput. GuardianID defaults to the acting guardian, Date to today.
type GuardianApprovalInput struct {
	GuardianID string     `json:"guardian_approval_guardian_id"`
	Signature  string     `json:"guardian_approval_signature"`
	Date       *time.Time `json:"guardian_approval_date"`
}

// RejectionInput is shared by guardian and unit rejection. Empty fields get defaults.
type RejectionInput struct {
	Reason string     `json:"rejection_reason"`
	Date   *time.Time `json:"rejection_date"`
}

// UnitApprovalInput. UserID defaults to the acting user, Date to today.
type UnitApprovalInput struct {
	UserID    string     `json:"unit_approval_user_id"`
	Signature string     `json:"unit_approval_signature"`
	Date      *time.Time `json:"unit_approval_date"`
}

// FeePaymentInput. UserID defaults to the acting user, Date to today.
type FeePaymentInput struct {
	UserID  string     `json:"fee_payment_user_id"`
	Receipt string     `json:"fee_payment_receipt"`
	Date    *time.Time `json:"fee_payment_date"`
}

// RecordingInput carries the registry id assigned by ScoutNet.
type RecordingInput struct {
	ScoutnetID int64      `json:"scoutnet_id"`
	Date       *time.Time `json:"recorded_date"`
}

// Result is what a transition hands back for persistence. Youth is nil when the
// transition did not touch one.
type Result struct {
	Application *domainApplication.Application `json:"application"`
	Youth       *youth.Youth                   `json:"youth,omitempty"`
}
