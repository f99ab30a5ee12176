package webapi

import (
	"fmt"
	"io"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type DocumentsE2ESuite struct {
	E2ESuite
}

func (s *DocumentsE2ESuite) TestInvoicePDFDownload() {
	token := s.registerAndLogin("pdf@example.com")
	clientID := s.createClient(token, "Acme Corp")
	id, _ := s.createInvoice(token, clientID, "USD")

	resp := s.makeRequest("GET", fmt.Sprintf("/documents/invoices/%d/download", id), "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("application/pdf", resp.Header.Get("Content-Type"))
	s.Contains(resp.Header.Get("Content-Disposition"), fmt.Sprintf("invoice_%d.pdf", id))

	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.NotEmpty(body)
	s.Equal("%PDF", string(body[:4]))
}

func (s *DocumentsE2ESuite) TestFIRARequiresPaidInvoice() {
	token := s.registerAndLogin("fira@example.com")
	clientID := s.createClient(token, "Acme Corp")
	id, link := s.createInvoice(token, clientID, "USD")

	resp := s.makeRequest("GET", fmt.Sprintf("/documents/invoices/%d/fira", id), "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	s.payInvoice(link)

	resp = s.makeRequest("GET", fmt.Sprintf("/documents/invoices/%d/fira", id), "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("application/pdf", resp.Header.Get("Content-Type"))
}

func (s *DocumentsE2ESuite) TestDownloadUnknownInvoice() {
	token := s.registerAndLogin("missing@example.com")

	resp := s.makeRequest("GET", "/documents/invoices/9999/download", "", token)
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func TestDocumentsE2ESuite(t *testing.T) {
	suite.Run(t, new(DocumentsE2ESuite))
}
