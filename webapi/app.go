package webapi

import (
	"log/slog"
	"time"

	"github.com/Hitchiker-V/Skydo-Mock/infra/pdf"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	analyticssvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/analytics"
	authsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/auth"
	clientsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/client"
	invoicesvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/invoice"
	paymentsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/payment"
	usersvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/user"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/analytics"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/auth"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/clients"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/common"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/documents"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/invoices"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/mockpayments"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/users"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/webhooks"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Deps carries everything the HTTP layer needs.
type Deps struct {
	Auth      *authsvc.Service
	Users     *usersvc.Service
	Clients   *clientsvc.Service
	Invoices  *invoicesvc.Service
	Payments  *paymentsvc.Service
	Analytics *analyticssvc.Service
	PDF       *pdf.Generator
	Jwt       config.Jwt
	Logger    *slog.Logger
}

// NewApp builds the Fiber app and mounts every route group.
func NewApp(deps Deps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemDetailsJSON(c, status, "Internal Server Error", err)
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        50,
		Expiration: 1 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Skydo mock API is up! 🚀")
	})

	auth.Routes(app, deps.Auth)
	clients.Routes(app, deps.Clients, deps.Jwt)
	invoices.Routes(app, deps.Invoices, deps.Jwt)
	mockpayments.Routes(app, deps.Payments, deps.Users, deps.Jwt)
	webhooks.Routes(app, deps.Payments)
	users.Routes(app, deps.Users, deps.Jwt)
	analytics.Routes(app, deps.Analytics, deps.Jwt)
	documents.Routes(app, deps.Invoices, deps.Users, deps.PDF, deps.Jwt)

	return app
}
