// Package gateway wraps every backend operation the console issues. A
// Gateway is built around an explicit Session: authenticated calls fail
// with domain.ErrNotAuthenticated before any request leaves the process
// when no credential is present, and decoded responses are validated
// before a view ever sees them.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Hitchiker-V/Skydo-Mock/pkg/config"
	"github.com/Hitchiker-V/Skydo-Mock/pkg/domain"
	"github.com/go-playground/validator/v10"
)

// Gateway issues typed calls against the backend.
type Gateway struct {
	baseURL  string
	client   *http.Client
	session  *Session
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates a Gateway from the console config.
func New(cfg config.Console, session *Session, logger *slog.Logger) *Gateway {
	return &Gateway{
		baseURL:  cfg.BaseURL,
		client:   &http.Client{Timeout: cfg.HTTPTimeout},
		session:  session,
		validate: validator.New(),
		logger:   logger,
	}
}

// Session exposes the credential holder, e.g. for login checks.
func (g *Gateway) Session() *Session { return g.session }

func (g *Gateway) newRequest(ctx context.Context, method, path string, body any, authed bool) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(buf)
	}
	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token := g.session.Token()
		if token == "" {
			return nil, domain.ErrNotAuthenticated
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// do issues the request and decodes the response envelope's data field into
// out. out may be nil when the caller only cares about success.
func (g *Gateway) do(ctx context.Context, method, path string, body, out any, authed bool) error {
	req, err := g.newRequest(ctx, method, path, body, authed)
	if err != nil {
		return err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return g.problem(resp.StatusCode, raw)
	}
	if out == nil {
		return nil
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if env.Data == nil {
		return fmt.Errorf("%w: missing data field", ErrMalformedResponse)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := g.check(out); err != nil {
		return err
	}
	return nil
}

// check validates a decoded schema. Slices are validated element-wise since
// validator.Struct only accepts structs.
func (g *Gateway) check(out any) error {
	var err error
	switch v := out.(type) {
	case *[]clientSchema:
		err = checkSlice(g.validate, *v)
	case *[]invoiceSchema:
		err = checkSlice(g.validate, *v)
	case *[]virtualAccountSchema:
		err = checkSlice(g.validate, *v)
	default:
		err = g.validate.Struct(out)
	}
	if err != nil {
		g.logger.Error("gateway: response failed schema validation", "error", err)
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

func checkSlice[T any](v *validator.Validate, items []T) error {
	for i := range items {
		if err := v.Struct(items[i]); err != nil {
			return err
		}
	}
	return nil
}

// problem maps a non-2xx body onto an APIError. The backend emits RFC 9457
// problem documents, but any body shape degrades gracefully.
func (g *Gateway) problem(status int, raw []byte) error {
	var p struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(raw, &p)
	if p.Title == "" {
		p.Title = http.StatusText(status)
	}
	return &APIError{Status: status, Title: p.Title, Detail: p.Detail}
}

func (g *Gateway) get(ctx context.Context, path string, out any, authed bool) error {
	return g.do(ctx, http.MethodGet, path, nil, out, authed)
}

func (g *Gateway) post(ctx context.Context, path string, body, out any, authed bool) error {
	return g.do(ctx, http.MethodPost, path, body, out, authed)
}

// download fetches a binary document. Non-2xx answers surface as
// ErrDownloadFailed.
func (g *Gateway) download(ctx context.Context, path string) ([]byte, error) {
	req, err := g.newRequest(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close() //nolint:errcheck
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrDownloadFailed, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
