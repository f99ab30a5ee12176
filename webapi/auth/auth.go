// Package auth exposes registration and login endpoints.
package auth

import (
	authsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/auth"
	"github.com/Hitchiker-V/Skydo-Mock/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes mounts /auth endpoints.
func Routes(app *fiber.App, svc *authsvc.Service) {
	app.Post("/auth/register", Register(svc))
	app.Post("/auth/login", Login(svc))
}

// RegisterInput is the request body for creating an operator account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginInput is the request body for obtaining a bearer token.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new operator account.
func Register(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err
		}
		u, err := svc.Register(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.ServiceError(c, "Couldn't register user", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "User registered", u)
	}
}

// Login authenticates and returns a bearer token.
func Login(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err
		}
		token, err := svc.Login(c.Context(), input.Email, input.Password)
		if err != nil {
			return common.ServiceError(c, "Invalid email or password", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login",
			fiber.Map{"access_token": token, "token_type": "bearer"})
	}
}
