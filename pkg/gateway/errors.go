package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedResponse means the backend answered 2xx but the body did
	// not match the expected schema.
	ErrMalformedResponse = errors.New("malformed response from server")

	// ErrDownloadFailed means a document endpoint answered non-2xx.
	ErrDownloadFailed = errors.New("document download failed")
)

// APIError is a non-2xx answer from the backend, carrying the RFC 9457
// problem fields the server returns.
type APIError struct {
	Status int
	Title  string
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (%d): %s", e.Title, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s (%d)", e.Title, e.Status)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
