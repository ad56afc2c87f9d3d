package http

import "github.com/labstack/echo/v4"

type Handlers struct {
	Health        *Handler
	Applications  *ApplicationHandler
	Youth         *YouthHandler
	Organizations *OrganizationHandler
	Guardians     *GuardianHandler
	Volunteers    *VolunteerHandler
}

// Register mounts every route. mw wraps all routes except /health, typically the
// current-user resolver followed by idempotency.
func Register(e *echo.Echo, h Handlers, mw ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)

	api := e.Group("", mw...)

	apps := api.Group("/youth-applications")
	apps.POST("", h.Applications.Create)
	apps.GET("", h.Applications.ListByStatus)
	apps.GET("/:id", h.Applications.Get)
	apps.POST("/:id/submit", h.Applications.Submit)
	apps.POST("/:id/guardian-approval", h.Applications.GuardianApprove)
	apps.POST("/:id/guardian-rejection", h.Applications.GuardianReject)
	apps.POST("/:id/unit-approval", h.Applications.UnitApprove)
	apps.POST("/:id/unit-rejection", h.Applications.UnitReject)
	apps.POST("/:id/fee-payment", h.Applications.PayFees)
	apps.POST("/:id/recording", h.Applications.Record)

	youth := api.Group("/youth")
	youth.POST("", h.Youth.Set)
	youth.GET("", h.Youth.Search)
	youth.POST("/duplicates", h.Youth.FindDuplicates)
	youth.GET("/:id", h.Youth.Get)
	youth.PUT("/:id", h.Youth.Update)
	youth.PUT("/:id/guardian-approval", h.Youth.GrantGuardianApproval)
	youth.DELETE("/:id/guardian-approval", h.Youth.RevokeGuardianApproval)

	api.GET("/organizations", h.Organizations.Search)
	api.GET("/organizations/:id", h.Organizations.Get)
	api.POST("/organizations/import", h.Organizations.Import)
	api.POST("/districts", h.Organizations.SaveDistrict)
	api.POST("/subdistricts", h.Organizations.SaveSubdistrict)
	api.POST("/sponsoring-organizations", h.Organizations.SaveSponsoringOrganization)
	api.POST("/units", h.Organizations.SaveUnit)

	api.POST("/guardians", h.Guardians.Set)
	api.GET("/guardians/:id", h.Guardians.Get)
	api.POST("/volunteers", h.Volunteers.Set)
	api.POST("/volunteers/duplicates", h.Volunteers.FindDuplicates)
	api.GET("/volunteers/:id", h.Volunteers.Get)
}
