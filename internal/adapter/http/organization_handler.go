package http

import (
	"net/http"

	"github.com/ScoutDevs/Rechartering/internal/adapter/middleware"
	domainOrg "github.com/ScoutDevs/Rechartering/internal/domain/organization"
	"github.com/ScoutDevs/Rechartering/internal/usecase/organization"
	"github.com/labstack/echo/v4"
)

type OrganizationHandler struct{ uc *organization.Usecase }

func NewOrganizationHandler(uc *organization.Usecase) *OrganizationHandler {
	return &OrganizationHandler{uc: uc}
}

type districtReq struct {
	ID     string `json:"id"     validate:"omitempty,entityid=dst"`
	Number string `json:"number" validate:"required"`
	Name   string `json:"name"   validate:"required"`
}

type subdistrictReq struct {
	ID         string `json:"id"          validate:"omitempty,entityid=sbd"`
	DistrictID string `json:"district_id" validate:"required,entityid=dst"`
	Number     string `json:"number"      validate:"required"`
	Name       string `json:"name"        validate:"required"`
}

type sponsoringOrganizationReq struct {
	ID            string `json:"id"             validate:"omitempty,entityid=spo"`
	SubdistrictID string `json:"subdistrict_id" validate:"required,entityid=sbd"`
	Number        string `json:"number"`
	Name          string `json:"name"           validate:"required"`
}

type unitReq struct {
	ID                       string `json:"id"                         validate:"omitempty,entityid=unt"`
	SponsoringOrganizationID string `json:"sponsoring_organization_id" validate:"required,entityid=spo"`
	Type                     string `json:"type"                       validate:"required"`
	Number                   int64  `json:"number"                     validate:"required,gt=0"`
	Name                     string `json:"name"`
	LDSUnit                  bool   `json:"lds_unit"`
}

func (h *OrganizationHandler) Get(c echo.Context) error {
	o, err := h.uc.Get(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

// Search: GET /organizations?parent_id=&name=
func (h *OrganizationHandler) Search(c echo.Context) error {
	list, err := h.uc.Search(c.Request().Context(), middleware.ActorFrom(c), domainOrg.Filter{
		ParentID: c.QueryParam("parent_id"),
		Name:     c.QueryParam("name"),
	})
	if err != nil {
		return writeError(c, err)
	}
	if list == nil {
		list = []domainOrg.Organization{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *OrganizationHandler) SaveDistrict(c echo.Context) error {
	var req districtReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	d, err := h.uc.SaveDistrict(c.Request().Context(), middleware.ActorFrom(c), &domainOrg.District{
		ID: req.ID, Number: req.Number, Name: req.Name,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *OrganizationHandler) SaveSubdistrict(c echo.Context) error {
	var req subdistrictReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	s, err := h.uc.SaveSubdistrict(c.Request().Context(), middleware.ActorFrom(c), &domainOrg.Subdistrict{
		ID: req.ID, DistrictID: req.DistrictID, Number: req.Number, Name: req.Name,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *OrganizationHandler) SaveSponsoringOrganization(c echo.Context) error {
	var req sponsoringOrganizationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	s, err := h.uc.SaveSponsoringOrganization(c.Request().Context(), middleware.ActorFrom(c), &domainOrg.SponsoringOrganization{
		ID: req.ID, SubdistrictID: req.SubdistrictID, Number: req.Number, Name: req.Name,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

// SaveUnit leaves the unit type check to the entity so the response lists the
// valid types.
func (h *OrganizationHandler) SaveUnit(c echo.Context) error {
	var req unitReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	u, err := h.uc.SaveUnit(c.Request().Context(), middleware.ActorFrom(c), &domainOrg.Unit{
		ID:                       req.ID,
		SponsoringOrganizationID: req.SponsoringOrganizationID,
		Type:                     domainOrg.UnitType(req.Type),
		Number:                   req.Number,
		Name:                     req.Name,
		LDSUnit:                  req.LDSUnit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// Import takes the council TSV export as the raw request body.
func (h *OrganizationHandler) Import(c echo.Context) error {
	sum, err := h.uc.Import(c.Request().Context(), middleware.ActorFrom(c), c.Request().Body)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, sum)
}
