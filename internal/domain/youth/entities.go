package youth

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strings"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Youth struct {
	ID            string                      `gorm:"column:id;primaryKey;size:191" json:"id"`
	FirstName     string                      `gorm:"column:first_name;size:128" json:"first_name"`
	LastName      string                      `gorm:"column:last_name;size:128;index" json:"last_name"`
	DateOfBirth   time.Time                   `gorm:"column:date_of_birth;type:date" json:"date_of_birth"`
	Units         datatypes.JSONSlice[string] `gorm:"column:units" json:"units"`
	ScoutnetID    int64                       `gorm:"column:scoutnet_id;index" json:"scoutnet_id,omitempty"`
	ApplicationID string                      `gorm:"column:application_id;size:191" json:"application_id,omitempty"`
	DuplicateHash string                      `gorm:"column:duplicate_hash;size:64;index" json:"duplicate_hash"`

	GuardianApprovalGuardianID string     `gorm:"column:guardian_approval_guardian_id;size:191" json:"guardian_approval_guardian_id,omitempty"`
	GuardianApprovalSignature  string     `gorm:"column:guardian_approval_signature;type:text" json:"guardian_approval_signature,omitempty"`
	GuardianApprovalDate       *time.Time `gorm:"column:guardian_approval_date;type:date" json:"guardian_approval_date,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Youth) TableName() string { return "youth" }

// DuplicateHash identifies the same child across records: sha256 over the
// lower-cased first and last name plus the ISO date of birth.
func DuplicateHash(first, last string, dob time.Time) string {
	key := strings.ToLower(strings.TrimSpace(first)) + "|" +
		strings.ToLower(strings.TrimSpace(last)) + "|" +
		dob.Format(dateLayout)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// PrepareForValidate recomputes the derived fields. Input never sets DuplicateHash.
func (y *Youth) PrepareForValidate() {
	y.DuplicateHash = DuplicateHash(y.FirstName, y.LastName, y.DateOfBirth)
}

func (y *Youth) Validate() error {
	y.PrepareForValidate()
	c := entity.NewChecker("youth")
	c.String("id", y.ID)
	c.String("duplicate_hash", y.DuplicateHash)
	c.List("units", len(y.Units))
	c.String("first_name", y.FirstName)
	c.String("last_name", y.LastName)
	c.Date("date_of_birth", y.DateOfBirth)

	set := 0
	for _, ok := range []bool{y.GuardianApprovalGuardianID != "", y.GuardianApprovalSignature != "", y.GuardianApprovalDate != nil} {
		if ok {
			set++
		}
	}
	if set > 0 && set < 3 {
		c.Addf("guardian approval must have guardian id, signature and date together")
	}
	return c.Err()
}

func (y *Youth) BeforeSave(*gorm.DB) error { return y.Validate() }

func (y *Youth) HasGuardianApproval() bool {
	return y.GuardianApprovalGuardianID != "" && y.GuardianApprovalSignature != "" && y.GuardianApprovalDate != nil
}

// PutApprovalOnFile records a guardian's standing approval.
func (y *Youth) PutApprovalOnFile(guardianID, signature string, date time.Time) {
	y.GuardianApprovalGuardianID = guardianID
	y.GuardianApprovalSignature = signature
	y.GuardianApprovalDate = &date
}

func (y *Youth) ClearApproval() {
	y.GuardianApprovalGuardianID = ""
	y.GuardianApprovalSignature = ""
	y.GuardianApprovalDate = nil
}

// AddUnit appends unitID unless the youth is already a member.
func (y *Youth) AddUnit(unitID string) {
	if !slices.Contains(y.Units, unitID) {
		y.Units = append(y.Units, unitID)
	}
}
