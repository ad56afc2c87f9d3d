package volunteer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
	"unicode"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"gorm.io/gorm"
)

type Volunteer struct {
	ID                string     `gorm:"column:id;primaryKey;size:191" json:"id"`
	UserID            string     `gorm:"column:user_id;size:191" json:"user_id,omitempty"`
	DuplicateHash     string     `gorm:"column:duplicate_hash;size:64;index" json:"-"`
	UnitID            string     `gorm:"column:unit_id;size:191;index" json:"unit_id"`
	ScoutnetID        int64      `gorm:"column:scoutnet_id" json:"scoutnet_id,omitempty"`
	ApplicationID     string     `gorm:"column:application_id;size:191" json:"application_id,omitempty"`
	YPTCompletionDate *time.Time `gorm:"column:ypt_completion_date;type:date" json:"ypt_completion_date"`
	FirstName         string     `gorm:"column:first_name;size:128" json:"first_name"`
	LastName          string     `gorm:"column:last_name;size:128" json:"last_name"`
	SSN               string     `gorm:"column:ssn;size:16" json:"-"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Volunteer) TableName() string { return "volunteers" }

// DuplicateHash is sha256 over the digits of the SSN, so formatting does not matter.
func DuplicateHash(ssn string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, ssn)
	sum := sha256.Sum256([]byte(digits))
	return hex.EncodeToString(sum[:])
}

func (v *Volunteer) PrepareForValidate() { v.DuplicateHash = DuplicateHash(v.SSN) }

func (v *Volunteer) Validate() error {
	v.PrepareForValidate()
	c := entity.NewChecker("volunteer")
	c.String("id", v.ID)
	c.String("duplicate_hash", v.DuplicateHash)
	c.String("unit_id", v.UnitID)
	c.Time("ypt_completion_date", v.YPTCompletionDate)
	c.String("first_name", v.FirstName)
	c.String("last_name", v.LastName)
	c.String("ssn", v.SSN)
	return c.Err()
}

func (v *Volunteer) BeforeSave(*gorm.DB) error { return v.Validate() }

type Repository interface {
	GetByID(ctx context.Context, id string) (*Volunteer, error)
	Save(ctx context.Context, v *Volunteer) error
	FindByDuplicateHash(ctx context.Context, hash string) ([]Volunteer, error)
}
