// Package mockpayments exposes the sandbox payment provider: onboarding,
// payment triggering from the public page and bulk settlement processing.
package mockpayments

import (
	"fmt"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/middleware"
	paymentsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/payment"
	usersvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/user"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes mounts /mock/payments endpoints. Trigger-payment is public: it is
// called from the unauthenticated payment page.
func Routes(app *fiber.App, payments *paymentsvc.Service, users *usersvc.Service, cfg config.Jwt) {
	guard := middleware.JwtProtected(cfg)
	app.Post("/mock/payments/onboard", guard, Onboard(users))
	app.Post("/mock/payments/trigger-payment", TriggerPayment(payments))
	app.Post("/mock/payments/process-settlements", guard, ProcessSettlements(payments))
}

// TriggerInput is the request body for simulating a payment outcome.
type TriggerInput struct {
	PaymentLinkID string `json:"payment_link_id" validate:"required"`
	Status        string `json:"status" validate:"required,oneof=success failed"`
	SenderName    string `json:"sender_name" validate:"max=100"`
}

// Onboard flags the caller as onboarded to the mock provider.
func Onboard(users *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		u, err := users.Onboard(c.Context(), userID)
		if err != nil {
			return common.ServiceError(c, "Couldn't onboard user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			"User successfully onboarded to mock payments", u)
	}
}

// TriggerPayment simulates the payer's bank: a success runs the webhook
// flow, a failure marks the invoice failed.
func TriggerPayment(payments *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[TriggerInput](c)
		if input == nil {
			return err
		}
		tx, err := payments.TriggerPayment(c.Context(),
			input.PaymentLinkID, input.Status, input.SenderName)
		if err != nil {
			return common.ServiceError(c, "Couldn't trigger payment", err)
		}
		if tx == nil {
			return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment recorded", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment processed successfully", tx)
	}
}

// ProcessSettlements flips every PROCESSING transaction of the caller to
// SETTLED, simulating the local NEFT/IMPS payout leg.
func ProcessSettlements(payments *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		count, err := payments.ProcessSettlements(c.Context(), userID)
		if err != nil {
			return common.ServiceError(c, "Couldn't process settlements", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK,
			fmt.Sprintf("Successfully settled %d transactions via NEFT/IMPS mock service.", count),
			fiber.Map{"settled_count": count})
	}
}
