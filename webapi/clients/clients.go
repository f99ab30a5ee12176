// Package clients exposes client CRUD endpoints.
package clients

import (
	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/middleware"
	clientsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/client"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes mounts owner-scoped /clients endpoints.
func Routes(app *fiber.App, svc *clientsvc.Service, cfg config.Jwt) {
	guard := middleware.JwtProtected(cfg)
	app.Post("/clients/", guard, Create(svc))
	app.Get("/clients/", guard, List(svc))
	app.Get("/clients/:id", guard, Get(svc))
	app.Put("/clients/:id", guard, Update(svc))
	app.Delete("/clients/:id", guard, Delete(svc))
}

// ClientInput is the request body for creating or updating a client.
type ClientInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=100"`
	Address string `json:"address" validate:"max=500"`
}

func Create(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[ClientInput](c)
		if input == nil {
			return err
		}
		created, err := svc.Create(c.Context(), ownerID, domain.Client{
			Name:    input.Name,
			Email:   input.Email,
			Address: input.Address,
		})
		if err != nil {
			return common.ServiceError(c, "Couldn't create client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Client created", created)
	}
}

func List(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		clients, err := svc.List(c.Context(), ownerID)
		if err != nil {
			return common.ServiceError(c, "Couldn't list clients", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Clients", clients)
	}
}

func Get(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid client id", err)
		}
		client, err := svc.Get(c.Context(), ownerID, int64(id))
		if err != nil {
			return common.ServiceError(c, "Client not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client", client)
	}
}

func Update(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid client id", err)
		}
		input, err := common.BindAndValidate[ClientInput](c)
		if input == nil {
			return err
		}
		updated, err := svc.Update(c.Context(), ownerID, int64(id), domain.Client{
			Name:    input.Name,
			Email:   input.Email,
			Address: input.Address,
		})
		if err != nil {
			return common.ServiceError(c, "Couldn't update client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client updated", updated)
	}
}

func Delete(svc *clientsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		id, err := c.ParamsInt("id")
		if err != nil {
			return common.ProblemDetailsJSON(c, fiber.StatusBadRequest, "Invalid client id", err)
		}
		if err := svc.Delete(c.Context(), ownerID, int64(id)); err != nil {
			return common.ServiceError(c, "Couldn't delete client", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Client deleted", nil)
	}
}
