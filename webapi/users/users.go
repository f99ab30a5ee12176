// Package users exposes the current-user endpoints: profile and virtual
// accounts.
package users

import (
	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/middleware"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/repository"
	usersvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/user"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes mounts /users/me endpoints.
func Routes(app *fiber.App, svc *usersvc.Service, cfg config.Jwt) {
	guard := middleware.JwtProtected(cfg)
	app.Get("/users/me", guard, Me(svc))
	app.Put("/users/me/profile", guard, UpdateProfile(svc))
	app.Get("/users/me/virtual-accounts", guard, ListVirtualAccounts(svc))
	app.Post("/users/me/virtual-accounts", guard, RequestVirtualAccount(svc))
}

// ProfileInput is the request body for the business-profile update.
type ProfileInput struct {
	BusinessName    string `json:"business_name" validate:"required,max=100"`
	GSTIN           string `json:"gstin" validate:"max=15"`
	BusinessAddress string `json:"business_address" validate:"max=500"`
}

// VirtualAccountInput is the request body for provisioning a new account.
type VirtualAccountInput struct {
	Currency string `json:"currency" validate:"required,len=3"`
}

func Me(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		u, err := svc.Get(c.Context(), userID)
		if err != nil {
			return common.ServiceError(c, "User not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Current user", u)
	}
}

func UpdateProfile(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[ProfileInput](c)
		if input == nil {
			return err
		}
		u, err := svc.UpdateProfile(c.Context(), userID, repository.ProfileUpdate{
			BusinessName:    input.BusinessName,
			GSTIN:           input.GSTIN,
			BusinessAddress: input.BusinessAddress,
		})
		if err != nil {
			return common.ServiceError(c, "Couldn't update profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile updated", u)
	}
}

func ListVirtualAccounts(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		accounts, err := svc.ListVirtualAccounts(c.Context(), userID)
		if err != nil {
			return common.ServiceError(c, "Couldn't list virtual accounts", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Virtual accounts", accounts)
	}
}

func RequestVirtualAccount(svc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := middleware.CurrentUserID(c)
		if err != nil {
			return common.ServiceError(c, "Unauthorized", err)
		}
		input, err := common.BindAndValidate[VirtualAccountInput](c)
		if input == nil {
			return err
		}
		va, err := svc.RequestVirtualAccount(c.Context(), userID, input.Currency)
		if err != nil {
			return common.ServiceError(c, "Couldn't provision virtual account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Virtual account provisioned", va)
	}
}
