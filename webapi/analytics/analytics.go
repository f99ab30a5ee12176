// Package analytics exposes the dashboard aggregate endpoint.
package analytics

import (
	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/middleware"
	analyticssvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/analytics"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes mounts /analytics endpoints.
func Routes(app *fiber.App, svc *analyticssvc.Service, cfg config.Jwt) {
	app.Get("/analytics/dashboard", middleware.JwtProtected(cfg), Dashboard(svc))
}

// Dashboard returns KPIs, the monthly revenue series and the per-client
// revenue breakdown in one payload.
func Dashboard(svc *analyticssvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		dashboard, err := svc.Dashboard(c.Context(), userID)
		if err != nil {
			return common.ServiceError(c, "Couldn't load dashboard", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Dashboard", dashboard)
	}
}
