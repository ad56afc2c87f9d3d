package user

import (
	"context"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/security"
	"gorm.io/datatypes"
)

// User is anyone with an account. Only used to resolve the acting user's roles.
type User struct {
	ID         string                      `gorm:"column:id;primaryKey;size:191" json:"id"`
	Username   string                      `gorm:"column:username;size:128;uniqueIndex" json:"username"`
	GuardianID string                      `gorm:"column:guardian_id;size:191" json:"guardian_id,omitempty"`
	Roles      datatypes.JSONSlice[string] `gorm:"column:roles" json:"roles"`
	CreatedAt  time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

// Actor converts the stored account into the caller passed to every operation.
func (u *User) Actor() security.Actor {
	return security.Actor{UserID: u.ID, GuardianID: u.GuardianID, Roles: security.ParseRoles(u.Roles)}
}

type Repository interface {
	GetByID(ctx context.Context, id string) (*User, error)
	Save(ctx context.Context, u *User) error
}
