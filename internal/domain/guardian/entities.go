package guardian

import (
	"context"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Guardian is a parent or guardian of one or more youth.
type Guardian struct {
	ID        string                      `gorm:"column:id;primaryKey;size:191" json:"id"`
	FirstName string                      `gorm:"column:first_name;size:128" json:"first_name"`
	LastName  string                      `gorm:"column:last_name;size:128" json:"last_name"`
	YouthIDs  datatypes.JSONSlice[string] `gorm:"column:youth_ids" json:"youth_ids"`
	CreatedAt time.Time                   `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time                   `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Guardian) TableName() string { return "guardians" }

func (g *Guardian) Validate() error {
	c := entity.NewChecker("guardian")
	c.String("id", g.ID)
	c.String("first_name", g.FirstName)
	c.String("last_name", g.LastName)
	c.List("youth_ids", len(g.YouthIDs))
	return c.Err()
}

func (g *Guardian) BeforeSave(*gorm.DB) error { return g.Validate() }

type Repository interface {
	GetByID(ctx context.Context, id string) (*Guardian, error)
	Save(ctx context.Context, g *Guardian) error
}
