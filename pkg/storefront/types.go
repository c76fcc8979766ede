package storefront

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrUpstream wraps every non-2xx answer from the storefront API.
var ErrUpstream = errors.New("storefront API error")

// Config configures a Client.
type Config struct {
	BaseURL     string
	AccessToken string
	Timeout     time.Duration

	// RatePerSec and Burst throttle outgoing requests. Zero disables throttling.
	RatePerSec float64
	Burst      int

	// OAuth enables the client-credentials flow instead of a static token.
	OAuth *OAuthConfig
}

// OAuthConfig holds client-credentials settings.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	Scopes       []string
}

// Pagination is the pagination block of a list response.
type Pagination struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
}

// RawPage is a list response with items left undecoded. Pagination is nil
// when the response carried none (a bare array or an envelope without it).
type RawPage struct {
	Items      []json.RawMessage
	Pagination *Pagination
}

// StatusError carries the HTTP status of a failed call.
type StatusError struct {
	Resource   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s returned %d: %s", ErrUpstream, e.Resource, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrUpstream }
