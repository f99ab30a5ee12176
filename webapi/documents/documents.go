// Package documents streams generated PDFs: the invoice itself and, once
// paid, its FIRA.
package documents

import (
	"errors"
	"fmt"

	"github.com/Hitchiker-V/Skydo-Mock/infra/pdf"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/middleware"
	invoicesvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/invoice"
	usersvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/user"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes mounts /documents endpoints.
func Routes(app *fiber.App, invoices *invoicesvc.Service, users *usersvc.Service, gen *pdf.Generator, cfg config.Jwt) {
	guard := middleware.JwtProtected(cfg)
	app.Get("/documents/invoices/:id/download", guard, DownloadInvoice(invoices, users, gen))
	app.Get("/documents/invoices/:id/fira", guard, DownloadFIRA(invoices, users, gen))
}

func sendPDF(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(body)
}

// DownloadInvoice streams the invoice PDF.
func DownloadInvoice(invoices *invoicesvc.Service, users *usersvc.Service, gen *pdf.Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid invoice id", err)
		}
		inv, err := invoices.Get(c.Context(), ownerID, int64(id))
		if err != nil {
			return common.ServiceError(c, "Invoice not found", err)
		}
		business, err := users.Get(c.Context(), ownerID)
		if err != nil {
			return common.ServiceError(c, "User not found", err)
		}
		body, err := gen.Invoice(inv, business)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusInternalServerError, "Couldn't render invoice", err)
		}
		return sendPDF(c, fmt.Sprintf("invoice_%d.pdf", inv.ID), body)
	}
}

// DownloadFIRA streams the FIRA document. Only paid invoices with a
// settlement transaction have one.
func DownloadFIRA(invoices *invoicesvc.Service, users *usersvc.Service, gen *pdf.Generator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid invoice id", err)
		}
		inv, err := invoices.Get(c.Context(), ownerID, int64(id))
		if err != nil {
			return common.ServiceError(c, "Invoice not found", err)
		}
		if !inv.Paid() {
			return common.ServiceError(c, "FIRA is only available for paid invoices", domain.ErrInvoiceNotPaid)
		}
		tx, err := invoices.GetTransaction(c.Context(), ownerID, inv.ID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return common.ProblemDetailsJSON(c, fiber.StatusNotFound,
					"No settlement data for invoice", "transaction not recorded yet")
			}
			return common.ServiceError(c, "Couldn't load transaction", err)
		}
		business, err := users.Get(c.Context(), ownerID)
		if err != nil {
			return common.ServiceError(c, "User not found", err)
		}
		body, err := gen.FIRA(inv, tx, business)
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusInternalServerError, "Couldn't render FIRA", err)
		}
		return sendPDF(c, fmt.Sprintf("fira_%d.pdf", inv.ID), body)
	}
}
