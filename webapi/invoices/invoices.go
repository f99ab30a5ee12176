// Package invoices exposes invoice endpoints, including the public
// payment-link lookup and the per-invoice settlement record.
package invoices

import (
	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/middleware"
	invoicesvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/invoice"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Routes mounts /invoices endpoints. The public payment-link lookup is
// deliberately unauthenticated and keyed by the opaque link id, never the
// numeric invoice id.
func Routes(app *fiber.App, svc *invoicesvc.Service, cfg config.Jwt) {
	guard := middleware.JwtProtected(cfg)
	app.Get("/invoices/public/:paymentLinkId", GetPublic(svc))
	app.Post("/invoices/", guard, Create(svc))
	app.Get("/invoices/", guard, List(svc))
	app.Get("/invoices/:id", guard, Get(svc))
	app.Get("/invoices/:id/transaction", guard, GetTransaction(svc))
}

// ItemInput is one line item of a new invoice.
type ItemInput struct {
	Description string          `json:"description" validate:"required,max=200"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInput is the request body for creating an invoice. No total is
// accepted from the client; the server derives it.
type CreateInput struct {
	ClientID int64       `json:"client_id" validate:"required"`
	DueDate  string      `json:"due_date" validate:"required,datetime=2006-01-02"`
	Currency string      `json:"currency" validate:"required,oneof=USD EUR GBP"`
	Items    []ItemInput `json:"items" validate:"required,min=1,dive"`
}

func Create(svc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[CreateInput](c)
		if input == nil {
			return err
		}
		items := make([]domain.InvoiceItem, 0, len(input.Items))
		for _, it := range input.Items {
			if it.UnitPrice.IsNegative() {
				return common.ProblemDetailsJSON(c, fiber.StatusBadRequest,
					"Validation failed", "unit_price must be non-negative")
			}
			items = append(items, domain.InvoiceItem{
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}
		inv, err := svc.Create(c.Context(), ownerID, invoicesvc.CreateInput{
			ClientID: input.ClientID,
			DueDate:  input.DueDate,
			Currency: input.Currency,
			Items:    items,
		})
		if err != nil {
			return common.ServiceError(c, "Couldn't create invoice", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Invoice created", inv)
	}
}

func List(svc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		invoices, err := svc.List(c.Context(), ownerID)
		if err != nil {
			return common.ServiceError(c, "Couldn't list invoices", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoices", invoices)
	}
}

func Get(svc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid invoice id", err)
		}
		inv, err := svc.Get(c.Context(), ownerID, int64(id))
		if err != nil {
			return common.ServiceError(c, "Invoice not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoice", inv)
	}
}

// GetTransaction returns the settlement record for a paid invoice. A 404
// means no settlement exists yet; clients treat that as expected absence.
func GetTransaction(svc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid invoice id", err)
		}
		tx, err := svc.GetTransaction(c.Context(), ownerID, int64(id))
		if err != nil {
			return common.ServiceError(c, "Transaction not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction", tx)
	}
}

// GetPublic serves the unauthenticated payment page lookup. The payload
// omits nothing the payer needs but is keyed by the opaque link id only.
func GetPublic(svc *invoicesvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		inv, err := svc.GetPublic(c.Context(), c.Params("paymentLinkId"))
		if err != nil {
			return common.ServiceError(c, "Invoice not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Invoice", inv)
	}
}
