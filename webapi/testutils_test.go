package webapi

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/Hitchiker-V/Skydo-Mock/infra"
	"github.com/Hitchiker-V/Skydo-Mock/infra/pdf"
	infrarepo "github.com/Hitchiker-V/Skydo-Mock/infra/repository"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/fx"
	analyticssvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/analytics"
	authsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/auth"
	clientsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/client"
	invoicesvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/invoice"
	paymentsvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/payment"
	usersvc "github.com/Hitchiker-V/Skydo-Mock/pkg/service/user"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbCounter int64

// E2ESuite runs the full HTTP stack against an in-memory sqlite database.
type E2ESuite struct {
	suite.Suite
	app *fiber.App
	db  *gorm.DB
}

func (s *E2ESuite) SetupTest() {
	dsn := fmt.Sprintf("file:e2e%d?mode=memory&cache=shared", atomic.AddInt64(&dbCounter, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	s.Require().NoError(err)
	sqlDB, err := db.DB()
	s.Require().NoError(err)
	// One connection keeps the shared in-memory database alive.
	sqlDB.SetMaxOpenConns(1)
	s.Require().NoError(infra.Migrate(db))
	s.db = db

	jwtCfg := config.Jwt{Secret: "e2e-test-secret", Expiry: time.Hour}
	log := slog.Default()
	engine := fx.NewEngine(fx.FixedRateSource{Fixed: decimal.RequireFromString("83.50")})

	userRepo := infrarepo.NewUserRepository(db)
	clientRepo := infrarepo.NewClientRepository(db)
	invoiceRepo := infrarepo.NewInvoiceRepository(db)
	txRepo := infrarepo.NewTransactionRepository(db)
	vaRepo := infrarepo.NewVirtualAccountRepository(db)
	analyticsRepo := infrarepo.NewAnalyticsRepository(db)

	s.app = NewApp(Deps{
		Auth:      authsvc.New(userRepo, vaRepo, jwtCfg, log),
		Users:     usersvc.New(userRepo, vaRepo, log),
		Clients:   clientsvc.New(clientRepo, log),
		Invoices:  invoicesvc.New(invoiceRepo, clientRepo, txRepo, log),
		Payments:  paymentsvc.New(invoiceRepo, txRepo, engine, log),
		Analytics: analyticssvc.New(analyticsRepo, txRepo, log),
		PDF:       pdf.NewGenerator(),
		Jwt:       jwtCfg,
		Logger:    log,
	})
}

func (s *E2ESuite) makeRequest(method, path, body, token string) *http.Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, path, reader)
	s.Require().NoError(err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// decodeData unmarshals the data field of a response envelope into out.
func (s *E2ESuite) decodeData(resp *http.Response, out any) {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	s.Require().NoError(json.Unmarshal(env.Data, out))
}

// registerAndLogin creates a user and returns a bearer token.
func (s *E2ESuite) registerAndLogin(email string) string {
	body := fmt.Sprintf(`{"email":%q,"password":"password123"}`, email)
	resp := s.makeRequest("POST", "/auth/register", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	resp = s.makeRequest("POST", "/auth/login", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	var data struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	s.decodeData(resp, &data)
	s.Require().NotEmpty(data.AccessToken)
	s.Require().Equal("bearer", data.TokenType)
	return data.AccessToken
}

// createClient makes a client and returns its id.
func (s *E2ESuite) createClient(token, name string) int64 {
	body := fmt.Sprintf(`{"name":%q,"email":"billing@acme.test","address":"1 Main St"}`, name)
	resp := s.makeRequest("POST", "/clients/", body, token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var data struct {
		ID int64 `json:"id"`
	}
	s.decodeData(resp, &data)
	return data.ID
}

// createInvoice makes a simple one-line invoice and returns id and link.
func (s *E2ESuite) createInvoice(token string, clientID int64, currency string) (int64, string) {
	body := fmt.Sprintf(`{
		"client_id": %d,
		"due_date": "2027-01-31",
		"currency": %q,
		"items": [{"description": "Consulting", "quantity": 10, "unit_price": "150"}]
	}`, clientID, currency)
	resp := s.makeRequest("POST", "/invoices/", body, token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var data struct {
		ID            int64  `json:"id"`
		PaymentLinkID string `json:"payment_link_id"`
	}
	s.decodeData(resp, &data)
	s.Require().NotEmpty(data.PaymentLinkID)
	return data.ID, data.PaymentLinkID
}

// payInvoice triggers a successful mock payment on the public link.
func (s *E2ESuite) payInvoice(link string) {
	body := fmt.Sprintf(`{"payment_link_id":%q,"status":"success","sender_name":"Acme Corp"}`, link)
	resp := s.makeRequest("POST", "/mock/payments/trigger-payment", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
}
