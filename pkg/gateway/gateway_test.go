package gateway

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.Handler) (*Gateway, *Session) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session, err := NewSession(&MemoryTokenStore{})
	require.NoError(t, err)
	gw := New(config.Console{
		BaseURL:     server.URL,
		HTTPTimeout: 5 * time.Second,
	}, session, slog.Default())
	return gw, session
}

func ok(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  200,
		"message": "ok",
		"data":    data,
	})
}

func problem(w http.ResponseWriter, status int, title string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"title":  title,
		"status": status,
	})
}

func TestGateway_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	gw, session := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		ok(w, []any{})
	}))
	require.NoError(t, session.SetToken("tok-123"))

	_, err := gw.ListClients(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestGateway_NoTokenFailsBeforeAnyRequest(t *testing.T) {
	requests := 0
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		ok(w, []any{})
	}))

	_, err := gw.ListClients(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
	assert.Zero(t, requests)
}

func TestGateway_PublicCallNeedsNoToken(t *testing.T) {
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		ok(w, map[string]any{
			"id": 3, "status": "unpaid", "currency": "EUR",
			"total_amount": "500", "payment_link_id": "link-1",
		})
	}))

	inv, err := gw.GetPublicInvoice(context.Background(), "link-1")
	require.NoError(t, err)
	assert.Equal(t, domain.InvoiceUnpaid, inv.Status)
	assert.Equal(t, "500", inv.TotalAmount.String())
}

func TestGateway_TransactionNotFoundIsNotAnError(t *testing.T) {
	gw, session := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		problem(w, http.StatusNotFound, "Transaction not found")
	}))
	require.NoError(t, session.SetToken("tok"))

	tx, err := gw.GetInvoiceTransaction(context.Background(), 5)
	assert.NoError(t, err)
	assert.Nil(t, tx)
}

func TestGateway_NonNotFoundErrorsSurface(t *testing.T) {
	gw, session := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		problem(w, http.StatusInternalServerError, "Something broke")
	}))
	require.NoError(t, session.SetToken("tok"))

	_, err := gw.GetInvoiceTransaction(context.Background(), 5)
	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 500, apiErr.Status)
	assert.Equal(t, "Something broke", apiErr.Title)
}

func TestGateway_MalformedResponseFailsFast(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>gateway timeout</html>`},
		{"missing data", `{"status":200,"message":"ok"}`},
		{"wrong shape", `{"status":200,"message":"ok","data":{"id":0}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, session := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			require.NoError(t, session.SetToken("tok"))

			_, err := gw.GetInvoice(context.Background(), 1)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestGateway_LoginStoresToken(t *testing.T) {
	gw, session := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		ok(w, map[string]string{"access_token": "fresh-token", "token_type": "bearer"})
	}))

	err := gw.Login(context.Background(), Credentials{Email: "a@b.co", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", session.Token())
	assert.True(t, session.Authenticated())

	require.NoError(t, gw.Logout())
	assert.False(t, session.Authenticated())
}

func TestGateway_LoginRejectsBadInputLocally(t *testing.T) {
	requests := 0
	gw, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	err := gw.Login(context.Background(), Credentials{Email: "not-an-email", Password: "secret1"})
	assert.Error(t, err)
	assert.Zero(t, requests)
}

func TestGateway_DownloadFailureRaisesTypedError(t *testing.T) {
	gw, session := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		problem(w, http.StatusBadRequest, "FIRA is only available for paid invoices")
	}))
	require.NoError(t, session.SetToken("tok"))

	_, err := gw.DownloadFIRA(context.Background(), 1)
	assert.ErrorIs(t, err, ErrDownloadFailed)
}

func TestGateway_DownloadReturnsRawBytes(t *testing.T) {
	gw, session := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	}))
	require.NoError(t, session.SetToken("tok"))

	body, err := gw.DownloadInvoicePDF(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7 fake", string(body))
}

func TestGateway_ProcessSettlementsUnwrapsCount(t *testing.T) {
	gw, session := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ok(w, map[string]int{"settled_count": 4})
	}))
	require.NoError(t, session.SetToken("tok"))

	count, err := gw.ProcessSettlements(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 4, count)
}

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "console", "token")
	store := NewFileTokenStore(path)

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("persisted"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "persisted", token)

	// A fresh session picks the persisted token up.
	session, err := NewSession(store)
	require.NoError(t, err)
	assert.Equal(t, "persisted", session.Token())

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}
