package http

import (
	"net/http"

	"github.com/ScoutDevs/Rechartering/internal/adapter/middleware"
	domainVolunteer "github.com/ScoutDevs/Rechartering/internal/domain/volunteer"
	"github.com/ScoutDevs/Rechartering/internal/usecase/guardian"
	"github.com/ScoutDevs/Rechartering/internal/usecase/volunteer"
	"github.com/labstack/echo/v4"
)

type GuardianHandler struct{ uc *guardian.Usecase }

func NewGuardianHandler(uc *guardian.Usecase) *GuardianHandler { return &GuardianHandler{uc: uc} }

type setGuardianReq struct {
	ID        string   `json:"id"         validate:"omitempty,entityid=gdn"`
	FirstName string   `json:"first_name" validate:"required"`
	LastName  string   `json:"last_name"  validate:"required"`
	YouthIDs  []string `json:"youth_ids"  validate:"required,min=1,dive,entityid=yth"`
}

func (h *GuardianHandler) Set(c echo.Context) error {
	var req setGuardianReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	g, err := h.uc.Set(c.Request().Context(), middleware.ActorFrom(c), guardian.SetInput(req))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GuardianHandler) Get(c echo.Context) error {
	g, err := h.uc.Get(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

type VolunteerHandler struct{ uc *volunteer.Usecase }

func NewVolunteerHandler(uc *volunteer.Usecase) *VolunteerHandler { return &VolunteerHandler{uc: uc} }

type setVolunteerReq struct {
	ID                string `json:"id"                  validate:"omitempty,entityid=vol"`
	UserID            string `json:"user_id"             validate:"omitempty,entityid=usr"`
	UnitID            string `json:"unit_id"             validate:"required,entityid=unt"`
	ScoutnetID        int64  `json:"scoutnet_id"`
	ApplicationID     string `json:"application_id"`
	YPTCompletionDate string `json:"ypt_completion_date" validate:"required,isodate"`
	FirstName         string `json:"first_name"          validate:"required"`
	LastName          string `json:"last_name"           validate:"required"`
	SSN               string `json:"ssn"                 validate:"required"`
}

type duplicateVolunteerReq struct {
	SSN string `json:"ssn" validate:"required"`
}

func (h *VolunteerHandler) Set(c echo.Context) error {
	var req setVolunteerReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	v, err := h.uc.Set(c.Request().Context(), middleware.ActorFrom(c), volunteer.SetInput{
		ID:                req.ID,
		UserID:            req.UserID,
		UnitID:            req.UnitID,
		ScoutnetID:        req.ScoutnetID,
		ApplicationID:     req.ApplicationID,
		YPTCompletionDate: parseDate(req.YPTCompletionDate),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		SSN:               req.SSN,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VolunteerHandler) Get(c echo.Context) error {
	v, err := h.uc.Get(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VolunteerHandler) FindDuplicates(c echo.Context) error {
	var req duplicateVolunteerReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	list, err := h.uc.FindDuplicateVolunteers(c.Request().Context(), middleware.ActorFrom(c), volunteer.DuplicateInput(req))
	if err != nil {
		return writeError(c, err)
	}
	if list == nil {
		list = []domainVolunteer.Volunteer{}
	}
	return c.JSON(http.StatusOK, list)
}
