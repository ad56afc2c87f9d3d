package application

import (
	"time"

	"gorm.io/gorm"
)

type Status string

const (
	StatusCreated          Status = "created"
	StatusGuardianApproval Status = "guardian_approval"
	StatusUnitApproval     Status = "unit_approval"
	StatusFeePending       Status = "fee_pending"
	StatusReadyToRecord    Status = "ready_to_record"
	StatusComplete         Status = "complete"
	StatusRejected         Status = "rejected"
)

// Statuses lists every status in workflow order.
func Statuses() []Status {
	return []Status{
		StatusCreated,
		StatusGuardianApproval,
		StatusUnitApproval,
		StatusFeePending,
		StatusReadyToRecord,
		StatusComplete,
		StatusRejected,
	}
}

func (s Status) Valid() bool {
	for _, v := range Statuses() {
		if v == s {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves s.
func (s Status) Terminal() bool { return s == StatusComplete || s == StatusRejected }

// Application is one youth-registration submission. Table: youth_applications.
type Application struct {
	ID          string    `gorm:"column:id;primaryKey;size:191" json:"id"`
	Status      Status    `gorm:"column:status;size:32;not null;index:idx_youth_applications_status" json:"status"`
	UnitID      string    `gorm:"column:unit_id;size:191;not null;index" json:"unit_id"`
	YouthID     string    `gorm:"column:youth_id;size:191;index" json:"youth_id,omitempty"`
	ScoutnetID  int64     `gorm:"column:scoutnet_id" json:"scoutnet_id,omitempty"`
	FirstName   string    `gorm:"column:first_name;size:128" json:"first_name"`
	LastName    string    `gorm:"column:last_name;size:128" json:"last_name"`
	DateOfBirth time.Time `gorm:"column:date_of_birth;type:date" json:"date_of_birth"`

	GuardianApprovalGuardianID string     `gorm:"column:guardian_approval_guardian_id;size:191" json:"guardian_approval_guardian_id,omitempty"`
	GuardianApprovalSignature  string     `gorm:"column:guardian_approval_signature;type:text" json:"guardian_approval_signature,omitempty"`
	GuardianApprovalDate       *time.Time `gorm:"column:guardian_approval_date;type:date" json:"guardian_approval_date,omitempty"`

	UnitApprovalUserID    string     `gorm:"column:unit_approval_user_id;size:191" json:"unit_approval_user_id,omitempty"`
	UnitApprovalSignature string     `gorm:"column:unit_approval_signature;type:text" json:"unit_approval_signature,omitempty"`
	UnitApprovalDate      *time.Time `gorm:"column:unit_approval_date;type:date" json:"unit_approval_date,omitempty"`

	FeePaymentUserID  string     `gorm:"column:fee_payment_user_id;size:191" json:"fee_payment_user_id,omitempty"`
	FeePaymentReceipt string     `gorm:"column:fee_payment_receipt;size:191" json:"fee_payment_receipt,omitempty"`
	FeePaymentDate    *time.Time `gorm:"column:fee_payment_date;type:date" json:"fee_payment_date,omitempty"`

	RecordedDate *time.Time `gorm:"column:recorded_date;type:date" json:"recorded_date,omitempty"`

	RejectionReason string     `gorm:"column:rejection_reason;type:text" json:"rejection_reason,omitempty"`
	RejectionDate   *time.Time `gorm:"column:rejection_date;type:date" json:"rejection_date,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "youth_applications" }

// BeforeSave refuses to persist an application that is invalid for its status.
func (a *Application) BeforeSave(*gorm.DB) error { return a.Validate() }

// HasGuardianApproval reports whether all guardian approval fields are set.
func (a *Application) HasGuardianApproval() bool {
	return a.GuardianApprovalGuardianID != "" && a.GuardianApprovalSignature != "" && a.GuardianApprovalDate != nil
}
