package youth

import "time"

// SetInput replaces a youth record in its entirety. An empty ID creates one.
type SetInput struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	Units         []string  `json:"units"`
	ScoutnetID    int64     `json:"scoutnet_id"`
	ApplicationID string    `json:"application_id"`
}

// UpdateInput modifies only the fields that are set.
type UpdateInput struct {
	FirstName   *string    `json:"first_name"`
	LastName    *string    `json:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Units       []string   `json:"units"`
	ScoutnetID  *int64     `json:"scoutnet_id"`
}

// DuplicateInput describes a child that may already be on file.
type DuplicateInput struct {
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
