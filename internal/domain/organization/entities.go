package organization

import (
	"strings"
	"time"

	"github.com/ScoutDevs/Rechartering/internal/domain/entity"
	"gorm.io/gorm"
)

type Kind string

const (
	KindDistrict               Kind = "district"
	KindSubdistrict            Kind = "subdistrict"
	KindSponsoringOrganization Kind = "sponsoring_organization"
	KindUnit                   Kind = "unit"
)

// Organization is any node of the council hierarchy.
type Organization interface {
	OrgID() string
	OrgKind() Kind
	Validate() error
}

type District struct {
	ID        string    `gorm:"column:id;primaryKey;size:191" json:"id"`
	Number    string    `gorm:"column:number;size:32;index" json:"number"`
	Name      string    `gorm:"column:name;size:191;index" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (District) TableName() string            { return "districts" }
func (d *District) OrgID() string             { return d.ID }
func (*District) OrgKind() Kind               { return KindDistrict }
func (d *District) BeforeSave(*gorm.DB) error { return d.Validate() }

func (d *District) Validate() error {
	c := entity.NewChecker("district")
	c.String("id", d.ID)
	c.String("number", d.Number)
	c.String("name", d.Name)
	return c.Err()
}

type Subdistrict struct {
	ID         string    `gorm:"column:id;primaryKey;size:191" json:"id"`
	DistrictID string    `gorm:"column:district_id;size:191;index" json:"district_id"`
	Number     string    `gorm:"column:number;size:64" json:"number"`
	Name       string    `gorm:"column:name;size:191;index" json:"name"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Subdistrict) TableName() string            { return "subdistricts" }
func (s *Subdistrict) OrgID() string             { return s.ID }
func (*Subdistrict) OrgKind() Kind               { return KindSubdistrict }
func (s *Subdistrict) BeforeSave(*gorm.DB) error { return s.Validate() }

func (s *Subdistrict) Validate() error {
	c := entity.NewChecker("subdistrict")
	c.String("id", s.ID)
	c.String("district_id", s.DistrictID)
	c.String("number", s.Number)
	c.String("name", s.Name)
	return c.Err()
}

type SponsoringOrganization struct {
	ID            string    `gorm:"column:id;primaryKey;size:191" json:"id"`
	SubdistrictID string    `gorm:"column:subdistrict_id;size:191;index" json:"subdistrict_id"`
	Number        string    `gorm:"column:number;size:64" json:"number,omitempty"`
	Name          string    `gorm:"column:name;size:191;index" json:"name"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SponsoringOrganization) TableName() string            { return "sponsoring_organizations" }
func (s *SponsoringOrganization) OrgID() string             { return s.ID }
func (*SponsoringOrganization) OrgKind() Kind               { return KindSponsoringOrganization }
func (s *SponsoringOrganization) BeforeSave(*gorm.DB) error { return s.Validate() }

func (s *SponsoringOrganization) Validate() error {
	c := entity.NewChecker("sponsoring organization")
	c.String("id", s.ID)
	c.String("subdistrict_id", s.SubdistrictID)
	c.String("name", s.Name)
	return c.Err()
}

type UnitType string

const (
	UnitTypePack  UnitType = "Pack"
	UnitTypeTroop UnitType = "Troop"
	UnitTypeTeam  UnitType = "Team"
	UnitTypeCrew  UnitType = "Crew"
	UnitTypeShip  UnitType = "Ship"
	UnitTypePost  UnitType = "Post"
)

func UnitTypes() []UnitType {
	return []UnitType{UnitTypePack, UnitTypeTroop, UnitTypeTeam, UnitTypeCrew, UnitTypeShip, UnitTypePost}
}

func (t UnitType) Valid() bool {
	for _, v := range UnitTypes() {
		if v == t {
			return true
		}
	}
	return false
}

type Unit struct {
	ID                       string    `gorm:"column:id;primaryKey;size:191" json:"id"`
	SponsoringOrganizationID string    `gorm:"column:sponsoring_organization_id;size:191;index" json:"sponsoring_organization_id"`
	Type                     UnitType  `gorm:"column:type;size:16" json:"type"`
	Number                   int64     `gorm:"column:number" json:"number"`
	Name                     string    `gorm:"column:name;size:191;index" json:"name,omitempty"`
	LDSUnit                  bool      `gorm:"column:lds_unit" json:"lds_unit"`
	CreatedAt                time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Unit) TableName() string            { return "units" }
func (u *Unit) OrgID() string             { return u.ID }
func (*Unit) OrgKind() Kind               { return KindUnit }
func (u *Unit) BeforeSave(*gorm.DB) error { return u.Validate() }

func (u *Unit) Validate() error {
	c := entity.NewChecker("unit")
	c.String("id", u.ID)
	c.String("sponsoring_organization_id", u.SponsoringOrganizationID)
	c.String("type", string(u.Type))
	c.Int("number", u.Number)
	if u.Type != "" && !u.Type.Valid() {
		names := make([]string, 0, len(UnitTypes()))
		for _, t := range UnitTypes() {
			names = append(names, string(t))
		}
		c.Addf("invalid unit type %q; valid types: %s", u.Type, strings.Join(names, ", "))
	}
	return c.Err()
}
