// Package webhooks simulates the collection layer: the endpoint a
// banking-as-a-service provider would call when funds arrive in a virtual
// account.
package webhooks

import (
	paymentsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/payment"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Routes mounts /webhooks endpoints.
func Routes(app *fiber.App, payments *paymentsvc.Service) {
	app.Post("/webhooks/payment-received", PaymentReceived(payments))
}

// PaymentReceivedInput mimics a real bank webhook payload. Reference is the
// payment-link id used for reconciliation.
type PaymentReceivedInput struct {
	SenderName string          `json:"sender_name" validate:"required,max=100"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
	Currency   string          `json:"currency" validate:"required,len=3"`
	Reference  string          `json:"reference" validate:"required"`
}

// PaymentReceived reconciles incoming funds, locks the FX rate and records
// the settlement transaction.
func PaymentReceived(payments *paymentsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[PaymentReceivedInput](c)
		if input == nil {
			return err
		}
		tx, err := payments.HandlePaymentReceived(c.Context(), paymentsvc.ReceivedPayload{
			SenderName: input.SenderName,
			Amount:     input.Amount,
			Currency:   input.Currency,
			Reference:  input.Reference,
		})
		if err != nil {
			return common.ServiceError(c, "Couldn't process payment", err)
		}
		if tx == nil {
			return common.SuccessResponseJSON(c, fiber.StatusOK,
				"Invoice already paid. Ignoring duplicate webhook.", nil)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Payment processed successfully.", tx)
	}
}
