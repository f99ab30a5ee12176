package webapi

import (
	"testing"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type AuthE2ESuite struct {
	E2ESuite
}

func (s *AuthE2ESuite) TestRegisterProvisionsDefaultUSDAccount() {
	token := s.registerAndLogin("fresh@example.com")

	resp := s.makeRequest("GET", "/users/me/virtual-accounts", "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var accounts []domain.VirtualAccount
	s.decodeData(resp, &accounts)
	s.Require().Len(accounts, 1)
	s.Equal("USD", accounts[0].Currency)
	s.NotEmpty(accounts[0].AccountNumber)
	s.NotEmpty(accounts[0].BankName)
}

func (s *AuthE2ESuite) TestRegisterDuplicateEmail() {
	s.registerAndLogin("dup@example.com")

	resp := s.makeRequest("POST", "/auth/register",
		`{"email":"dup@example.com","password":"password123"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthE2ESuite) TestLoginWrongPassword() {
	s.registerAndLogin("user@example.com")

	resp := s.makeRequest("POST", "/auth/login",
		`{"email":"user@example.com","password":"wrongpassword"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AuthE2ESuite) TestProtectedRouteWithoutToken() {
	resp := s.makeRequest("GET", "/clients/", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthE2ESuite) TestProtectedRouteWithGarbageToken() {
	resp := s.makeRequest("GET", "/clients/", "", "not-a-jwt")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AuthE2ESuite) TestUsersMeAndProfileUpdate() {
	token := s.registerAndLogin("owner@example.com")

	resp := s.makeRequest("GET", "/users/me", "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var me domain.User
	s.decodeData(resp, &me)
	s.Equal("owner@example.com", me.Email)
	s.False(me.IsPaymentOnboarded)

	resp = s.makeRequest("PUT", "/users/me/profile",
		`{"business_name":"Acme Exports","gstin":"29ABCDE1234F1Z5","business_address":"Bengaluru"}`, token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var updated domain.User
	s.decodeData(resp, &updated)
	s.Equal("Acme Exports", updated.BusinessName)
	s.Equal("29ABCDE1234F1Z5", updated.GSTIN)
}

func (s *AuthE2ESuite) TestOnboard() {
	token := s.registerAndLogin("onboard@example.com")

	resp := s.makeRequest("POST", "/mock/payments/onboard", "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var u domain.User
	s.decodeData(resp, &u)
	s.True(u.IsPaymentOnboarded)
}

func TestAuthE2ESuite(t *testing.T) {
	suite.Run(t, new(AuthE2ESuite))
}
