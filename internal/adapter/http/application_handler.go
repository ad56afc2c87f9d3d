package http

import (
	"net/http"

	"github.com/ScoutDevs/Rechartering/internal/adapter/middleware"
	domainApplication "github.com/ScoutDevs/Rechartering/internal/domain/application"
	"github.com/ScoutDevs/Rechartering/internal/usecase/application"
	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	UnitID      string `json:"unit_id"       validate:"required,entityid=unt"`
	YouthID     string `json:"youth_id"      validate:"omitempty,entityid=yth"`
	FirstName   string `json:"first_name"    validate:"required"`
	LastName    string `json:"last_name"     validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"required,isodate"`
}

type guardianApprovalReq struct {
	GuardianID string `json:"guardian_approval_guardian_id" validate:"omitempty,entityid=gdn"`
	Signature  string `json:"guardian_approval_signature"`
	Date       string `json:"guardian_approval_date"        validate:"omitempty,isodate"`
}

type rejectionReq struct {
	Reason string `json:"rejection_reason"`
	Date   string `json:"rejection_date"   validate:"omitempty,isodate"`
}

type unitApprovalReq struct {
	UserID    string `json:"unit_approval_user_id"   validate:"omitempty,entityid=usr"`
	Signature string `json:"unit_approval_signature"`
	Date      string `json:"unit_approval_date"      validate:"omitempty,isodate"`
}

type feePaymentReq struct {
	UserID  string `json:"fee_payment_user_id" validate:"omitempty,entityid=usr"`
	Receipt string `json:"fee_payment_receipt"`
	Date    string `json:"fee_payment_date"    validate:"omitempty,isodate"`
}

type recordingReq struct {
	ScoutnetID int64  `json:"scoutnet_id"   validate:"required,gt=0"`
	Date       string `json:"recorded_date" validate:"omitempty,isodate"`
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req createApplicationReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	app, err := h.uc.Create(c.Request().Context(), middleware.ActorFrom(c), application.CreateInput{
		UnitID:      req.UnitID,
		YouthID:     req.YouthID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: mustDate(req.DateOfBirth),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	app, err := h.uc.Get(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, app)
}

// ListByStatus serves the council work queue: GET /youth-applications?status=.
func (h *ApplicationHandler) ListByStatus(c echo.Context) error {
	status := domainApplication.Status(c.QueryParam("status"))
	list, err := h.uc.GetApplicationsByStatus(c.Request().Context(), middleware.ActorFrom(c), status)
	if err != nil {
		return writeError(c, err)
	}
	if list == nil {
		list = []domainApplication.Application{}
	}
	return c.JSON(http.StatusOK, list)
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	res, err := h.uc.Submit(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	return h.transitioned(c, res, err)
}

func (h *ApplicationHandler) GuardianApprove(c echo.Context) error {
	var req guardianApprovalReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.GuardianApprove(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), application.GuardianApprovalInput{
		GuardianID: req.GuardianID,
		Signature:  req.Signature,
		Date:       parseDate(req.Date),
	})
	return h.transitioned(c, res, err)
}

func (h *ApplicationHandler) GuardianReject(c echo.Context) error {
	var req rejectionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.GuardianReject(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), application.RejectionInput{
		Reason: req.Reason,
		Date:   parseDate(req.Date),
	})
	return h.transitioned(c, res, err)
}

func (h *ApplicationHandler) UnitApprove(c echo.Context) error {
	var req unitApprovalReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.UnitApprove(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), application.UnitApprovalInput{
		UserID:    req.UserID,
		Signature: req.Signature,
		Date:      parseDate(req.Date),
	})
	return h.transitioned(c, res, err)
}

func (h *ApplicationHandler) UnitReject(c echo.Context) error {
	var req rejectionReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.UnitReject(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), application.RejectionInput{
		Reason: req.Reason,
		Date:   parseDate(req.Date),
	})
	return h.transitioned(c, res, err)
}

func (h *ApplicationHandler) PayFees(c echo.Context) error {
	var req feePaymentReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.PayFees(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), application.FeePaymentInput{
		UserID:  req.UserID,
		Receipt: req.Receipt,
		Date:    parseDate(req.Date),
	})
	return h.transitioned(c, res, err)
}

func (h *ApplicationHandler) Record(c echo.Context) error {
	var req recordingReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	res, err := h.uc.Record(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), application.RecordingInput{
		ScoutnetID: req.ScoutnetID,
		Date:       parseDate(req.Date),
	})
	return h.transitioned(c, res, err)
}

func (h *ApplicationHandler) transitioned(c echo.Context, res *application.Result, err error) error {
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
