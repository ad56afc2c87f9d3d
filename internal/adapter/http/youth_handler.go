package http

import (
	"net/http"
	"strconv"

	"github.com/ScoutDevs/Rechartering/internal/adapter/middleware"
	domainYouth "github.com/ScoutDevs/Rechartering/internal/domain/youth"
	"github.com/ScoutDevs/Rechartering/internal/usecase/youth"
	"github.com/labstack/echo/v4"
)

type YouthHandler struct{ uc *youth.Usecase }

func NewYouthHandler(uc *youth.Usecase) *YouthHandler { return &YouthHandler{uc: uc} }

type setYouthReq struct {
	ID            string   `json:"id"             validate:"omitempty,entityid=yth"`
	FirstName     string   `json:"first_name"     validate:"required"`
	LastName      string   `json:"last_name"      validate:"required"`
	DateOfBirth   string   `json:"date_of_birth"  validate:"required,isodate"`
	Units         []string `json:"units"          validate:"required,min=1,dive,entityid=unt"`
	ScoutnetID    int64    `json:"scoutnet_id"`
	ApplicationID string   `json:"application_id" validate:"omitempty,entityid=yap"`
}

type updateYouthReq struct {
	FirstName   *string  `json:"first_name"`
	LastName    *string  `json:"last_name"`
	DateOfBirth *string  `json:"date_of_birth" validate:"omitempty,isodate"`
	Units       []string `json:"units"         validate:"omitempty,dive,entityid=unt"`
	ScoutnetID  *int64   `json:"scoutnet_id"`
}

type duplicateYouthReq struct {
	FirstName   string `json:"first_name"    validate:"required"`
	LastName    string `json:"last_name"     validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,isodate"`
}

func (h *YouthHandler) Set(c echo.Context) error {
	var req setYouthReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	y, err := h.uc.Set(c.Request().Context(), middleware.ActorFrom(c), youth.SetInput{
		ID:            req.ID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   mustDate(req.DateOfBirth),
		Units:         req.Units,
		ScoutnetID:    req.ScoutnetID,
		ApplicationID: req.ApplicationID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, y)
}

func (h *YouthHandler) Get(c echo.Context) error {
	y, err := h.uc.Get(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, y)
}

func (h *YouthHandler) Update(c echo.Context) error {
	var req updateYouthReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	in := youth.UpdateInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Units:      req.Units,
		ScoutnetID: req.ScoutnetID,
	}
	if req.DateOfBirth != nil {
		in.DateOfBirth = parseDate(*req.DateOfBirth)
	}
	y, err := h.uc.Update(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, y)
}

// Search: GET /youth?scoutnet_id=&last_name=&unit_id=
func (h *YouthHandler) Search(c echo.Context) error {
	f := domainYouth.Filter{
		LastName: c.QueryParam("last_name"),
		UnitID:   c.QueryParam("unit_id"),
	}
	if raw := c.QueryParam("scoutnet_id"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "scoutnet_id must be an integer"})
		}
		f.ScoutnetID = n
	}
	list, err := h.uc.Search(c.Request().Context(), middleware.ActorFrom(c), f)
	if err != nil {
		return writeError(c, err)
	}
	if list == nil {
		list = []domainYouth.Youth{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *YouthHandler) FindDuplicates(c echo.Context) error {
	var req duplicateYouthReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	list, err := h.uc.FindDuplicateYouth(c.Request().Context(), middleware.ActorFrom(c), youth.DuplicateInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: mustDate(req.DateOfBirth),
	})
	if err != nil {
		return writeError(c, err)
	}
	if list == nil {
		list = []domainYouth.Youth{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *YouthHandler) GrantGuardianApproval(c echo.Context) error {
	var req guardianApprovalReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	y, err := h.uc.GrantGuardianApproval(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), youth.GuardianApprovalInput{
		GuardianID: req.GuardianID,
		Signature:  req.Signature,
		Date:       parseDate(req.Date),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, y)
}

func (h *YouthHandler) RevokeGuardianApproval(c echo.Context) error {
	y, err := h.uc.RevokeGuardianApproval(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, y)
}
