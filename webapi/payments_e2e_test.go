package webapi

import (
	"fmt"
	"testing"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type PaymentsE2ESuite struct {
	E2ESuite
}

func (s *PaymentsE2ESuite) getInvoice(token string, id int64) domain.Invoice {
	resp := s.makeRequest("GET", fmt.Sprintf("/invoices/%d", id), "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var inv domain.Invoice
	s.decodeData(resp, &inv)
	return inv
}

func (s *PaymentsE2ESuite) TestSuccessfulPaymentLocksFxBreakdown() {
	token := s.registerAndLogin("pay@example.com")
	clientID := s.createClient(token, "Acme Corp")
	id, link := s.createInvoice(token, clientID, "USD") // 10 x 150 = 1500

	s.payInvoice(link)

	inv := s.getInvoice(token, id)
	s.Equal(domain.InvoicePaid, inv.Status)

	resp := s.makeRequest("GET", fmt.Sprintf("/invoices/%d/transaction", id), "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var tx domain.Transaction
	s.decodeData(resp, &tx)

	// Fixed 83.50 rate: gross (1500-29)*83.50, GST 18% of the fee in INR.
	s.Equal("Acme Corp", tx.SenderName)
	s.Equal("1500", tx.PrincipalAmount.String())
	s.Equal("USD", tx.Currency)
	s.Equal("83.5", tx.FxRate.String())
	s.Equal("29", tx.FlatFeeUSD.String())
	s.Equal("435.87", tx.GstOnFeeINR.String())
	s.Equal("122392.63", tx.NetPayoutINR.String())
	s.Equal(domain.TransactionSucceeded, tx.Status)
	s.Equal(domain.SettlementProcessing, tx.Settlement)
}

func (s *PaymentsE2ESuite) TestDuplicatePaymentIsIgnored() {
	token := s.registerAndLogin("dup-pay@example.com")
	clientID := s.createClient(token, "Acme Corp")
	id, link := s.createInvoice(token, clientID, "USD")

	s.payInvoice(link)
	s.payInvoice(link) // second trigger must not create another transaction

	inv := s.getInvoice(token, id)
	s.Equal(domain.InvoicePaid, inv.Status)

	resp := s.makeRequest("GET", fmt.Sprintf("/invoices/%d/transaction", id), "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func (s *PaymentsE2ESuite) TestFailedPaymentLeavesInvoicePayable() {
	token := s.registerAndLogin("fail-pay@example.com")
	clientID := s.createClient(token, "Acme Corp")
	id, link := s.createInvoice(token, clientID, "USD")

	body := fmt.Sprintf(`{"payment_link_id":%q,"status":"failed"}`, link)
	resp := s.makeRequest("POST", "/mock/payments/trigger-payment", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	inv := s.getInvoice(token, id)
	s.Equal(domain.InvoiceFailed, inv.Status)

	// No transaction was recorded; a retry can still succeed.
	resp = s.makeRequest("GET", fmt.Sprintf("/invoices/%d/transaction", id), "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)

	s.payInvoice(link)
	s.Equal(domain.InvoicePaid, s.getInvoice(token, id).Status)
}

func (s *PaymentsE2ESuite) TestTriggerUnknownLink() {
	resp := s.makeRequest("POST", "/mock/payments/trigger-payment",
		`{"payment_link_id":"no-such-link","status":"success"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *PaymentsE2ESuite) TestWebhookPaymentReceived() {
	token := s.registerAndLogin("hook@example.com")
	clientID := s.createClient(token, "Acme Corp")
	id, link := s.createInvoice(token, clientID, "EUR")

	body := fmt.Sprintf(`{"sender_name":"Euro Payer","amount":"2000","currency":"EUR","reference":%q}`, link)
	resp := s.makeRequest("POST", "/webhooks/payment-received", body, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	inv := s.getInvoice(token, id)
	s.Equal(domain.InvoicePaid, inv.Status)

	// The principal reflects what the payer actually sent, which may
	// differ from the invoice total.
	resp = s.makeRequest("GET", fmt.Sprintf("/invoices/%d/transaction", id), "", token)
	defer resp.Body.Close() //nolint:errcheck
	var tx domain.Transaction
	s.decodeData(resp, &tx)
	s.Equal("2000", tx.PrincipalAmount.String())
	s.Equal("EUR", tx.Currency)
}

func (s *PaymentsE2ESuite) TestProcessSettlements() {
	token := s.registerAndLogin("settle@example.com")
	clientID := s.createClient(token, "Acme Corp")
	id, link := s.createInvoice(token, clientID, "USD")
	s.payInvoice(link)

	resp := s.makeRequest("POST", "/mock/payments/process-settlements", "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var data struct {
		SettledCount int64 `json:"settled_count"`
	}
	s.decodeData(resp, &data)
	s.EqualValues(1, data.SettledCount)

	resp = s.makeRequest("GET", fmt.Sprintf("/invoices/%d/transaction", id), "", token)
	defer resp.Body.Close() //nolint:errcheck
	var tx domain.Transaction
	s.decodeData(resp, &tx)
	s.Equal(domain.SettlementSettled, tx.Settlement)

	// A second run finds nothing left to settle.
	resp = s.makeRequest("POST", "/mock/payments/process-settlements", "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.decodeData(resp, &data)
	s.EqualValues(0, data.SettledCount)
}

func TestPaymentsE2ESuite(t *testing.T) {
	suite.Run(t, new(PaymentsE2ESuite))
}
