package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const maxErrorBody = 512

// Client is the HTTP wrapper for the storefront REST API list endpoints.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// NewClient creates a new storefront client. With OAuth configured, requests
// carry client-credentials tokens; otherwise the static access token is sent.
func NewClient(ctx context.Context, cfg Config) *Client {
	httpClient := &http.Client{Timeout: cfg.Timeout}
	if cfg.OAuth != nil && cfg.OAuth.ClientID != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.OAuth.ClientID,
			ClientSecret: cfg.OAuth.ClientSecret,
			TokenURL:     cfg.OAuth.TokenURL,
			Scopes:       cfg.OAuth.Scopes,
		}
		httpClient = cc.Client(ctx)
		httpClient.Timeout = cfg.Timeout
	}

	var limiter *rate.Limiter
	if cfg.RatePerSec > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), burst)
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
		limiter:     limiter,
	}
}

// FetchPage calls GET /api/{resource}?{query}. Both an {"items", "pagination"}
// envelope and a bare JSON array are accepted; a response without pagination
// is the only page.
func (c *Client) FetchPage(ctx context.Context, resource string, query url.Values) (RawPage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return RawPage{}, fmt.Errorf("storefront rate limiter: %w", err)
		}
	}

	endpoint := fmt.Sprintf("%s/api/%s", c.baseURL, strings.TrimLeft(resource, "/"))
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return RawPage{}, fmt.Errorf("failed to build list %s request: %w", resource, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.accessToken))
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return RawPage{}, fmt.Errorf("failed to call storefront list %s API: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return RawPage{}, &StatusError{Resource: resource, StatusCode: resp.StatusCode, Body: string(raw)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return RawPage{}, fmt.Errorf("failed to read storefront list %s response: %w", resource, err)
	}
	page, err := decodePage(body)
	if err != nil {
		return RawPage{}, fmt.Errorf("failed to decode storefront list %s response: %w", resource, err)
	}
	return page, nil
}

func decodePage(body []byte) (RawPage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return RawPage{}, err
		}
		return RawPage{Items: items}, nil
	}

	var envelope struct {
		Items      []json.RawMessage `json:"items"`
		Pagination *Pagination       `json:"pagination"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return RawPage{}, err
	}
	if envelope.Pagination == nil {
		return RawPage{Items: envelope.Items}, nil
	}

	p := *envelope.Pagination
	if p.Page < 1 {
		p.Page = 1
	}
	if p.TotalPages < 1 {
		p.TotalPages = 1
	}
	if p.Total == 0 && p.TotalPages == 1 {
		p.Total = len(envelope.Items)
	}
	return RawPage{Items: envelope.Items, Pagination: &p}, nil
}
