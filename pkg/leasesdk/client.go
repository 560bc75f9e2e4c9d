package leasesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to a Leasehold service. The zero token makes unauthenticated
// calls; use WithToken for a session-bound copy.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token  string
	header http.Header
}

// NewClient creates a client with a 10 second timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// WithToken returns a copy of the client that sends token as a bearer.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// do sends a JSON request and decodes a JSON response when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, in, out any, expected int) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expected {
		return parseErrorResponse(resp, raw)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Livez checks the liveness endpoint.
func (c *Client) Livez(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	return &out, c.do(ctx, http.MethodGet, "/livez", nil, &out, http.StatusOK)
}

// GetJWKS fetches the public keys that verify session tokens.
func (c *Client) GetJWKS(ctx context.Context) (*JWKSResponse, error) {
	var out JWKSResponse
	return &out, c.do(ctx, http.MethodGet, "/.well-known/jwks.json", nil, &out, http.StatusOK)
}

// Bootstrap creates the first admin account using the operator token.
func (c *Client) Bootstrap(ctx context.Context, token string, req BootstrapRequest) (*AccountResponse, error) {
	cp := *c
	cp.header = http.Header{"X-Bootstrap-Token": {token}}

	var out AccountResponse
	return &out, cp.do(ctx, http.MethodPost, "/v1/bootstrap", req, &out, http.StatusCreated)
}

// RegisterLandlord creates a landlord account.
func (c *Client) RegisterLandlord(ctx context.Context, req RegisterLandlordRequest) (*AccountResponse, error) {
	var out AccountResponse
	return &out, c.do(ctx, http.MethodPost, "/v1/landlords", req, &out, http.StatusCreated)
}

// DeleteLandlord removes a landlord with every property it owns. Admin only.
func (c *Client) DeleteLandlord(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/landlords/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// Login exchanges a username or email and password for a session.
func (c *Client) Login(ctx context.Context, login, password string) (*SessionResponse, error) {
	var out SessionResponse
	req := LoginRequest{Login: login, Password: password}
	return &out, c.do(ctx, http.MethodPost, "/v1/sessions", req, &out, http.StatusOK)
}

// CreateProperty registers a property owned by the caller.
func (c *Client) CreateProperty(ctx context.Context, req PropertyRequest) (*PropertyResponse, error) {
	var out PropertyResponse
	return &out, c.do(ctx, http.MethodPost, "/v1/properties", req, &out, http.StatusCreated)
}

// GetProperty reads a property the caller may see.
func (c *Client) GetProperty(ctx context.Context, id string) (*PropertyResponse, error) {
	var out PropertyResponse
	return &out, c.do(ctx, http.MethodGet, "/v1/properties/"+url.PathEscape(id), nil, &out, http.StatusOK)
}

// ListProperties lists the caller's own properties.
func (c *Client) ListProperties(ctx context.Context) (*ListPropertiesResponse, error) {
	var out ListPropertiesResponse
	return &out, c.do(ctx, http.MethodGet, "/v1/properties", nil, &out, http.StatusOK)
}

// UpdateProperty replaces a property's name, address and unit number.
func (c *Client) UpdateProperty(ctx context.Context, id string, req PropertyRequest) (*PropertyResponse, error) {
	var out PropertyResponse
	return &out, c.do(ctx, http.MethodPut, "/v1/properties/"+url.PathEscape(id), req, &out, http.StatusOK)
}

// DeleteProperty removes a property with its invitations and tenant.
func (c *Client) DeleteProperty(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/properties/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// IssueInvitation mints an invitation link for a vacant property.
func (c *Client) IssueInvitation(ctx context.Context, propertyID string, req IssueInvitationRequest) (*InvitationResponse, error) {
	var out InvitationResponse
	path := "/v1/properties/" + url.PathEscape(propertyID) + "/invitations"
	return &out, c.do(ctx, http.MethodPost, path, req, &out, http.StatusCreated)
}

// ListInvitations lists outstanding invitations for a property.
func (c *Client) ListInvitations(ctx context.Context, propertyID string) (*ListInvitationsResponse, error) {
	var out ListInvitationsResponse
	path := "/v1/properties/" + url.PathEscape(propertyID) + "/invitations"
	return &out, c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
}

// GetInvitation checks an invitation link without consuming it.
func (c *Client) GetInvitation(ctx context.Context, token string) (*InvitationStatusResponse, error) {
	var out InvitationStatusResponse
	return &out, c.do(ctx, http.MethodGet, "/v1/invitations/"+url.PathEscape(token), nil, &out, http.StatusOK)
}

// AcceptInvitation registers a tenant through an invitation link.
func (c *Client) AcceptInvitation(ctx context.Context, token string, req AcceptInvitationRequest) (*AcceptInvitationResponse, error) {
	var out AcceptInvitationResponse
	path := "/v1/invitations/" + url.PathEscape(token) + "/accept"
	return &out, c.do(ctx, http.MethodPost, path, req, &out, http.StatusCreated)
}

// RevokeInvitation cancels an outstanding invitation.
func (c *Client) RevokeInvitation(ctx context.Context, token string) error {
	path := "/v1/invitations/" + url.PathEscape(token) + "/revoke"
	return c.do(ctx, http.MethodPost, path, nil, nil, http.StatusNoContent)
}

// GetTenancy returns the caller's own tenancy.
func (c *Client) GetTenancy(ctx context.Context) (*TenancyResponse, error) {
	var out TenancyResponse
	return &out, c.do(ctx, http.MethodGet, "/v1/tenancy", nil, &out, http.StatusOK)
}

// GetPropertyTenant returns the tenancy on a property the caller owns.
func (c *Client) GetPropertyTenant(ctx context.Context, propertyID string) (*TenancyResponse, error) {
	var out TenancyResponse
	path := "/v1/properties/" + url.PathEscape(propertyID) + "/tenant"
	return &out, c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
}

// RemoveTenant ends the tenancy on a property at once and frees it. The
// ended tenancy stays in the landlord's history.
func (c *Client) RemoveTenant(ctx context.Context, propertyID string) error {
	path := "/v1/properties/" + url.PathEscape(propertyID) + "/tenant"
	return c.do(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent)
}

// ListTenancies lists the caller's current tenancies, or the ended ones when
// ended is set.
func (c *Client) ListTenancies(ctx context.Context, ended bool) (*ListTenanciesResponse, error) {
	var out ListTenanciesResponse
	path := "/v1/tenancies"
	if ended {
		path += "?state=ended"
	}
	return &out, c.do(ctx, http.MethodGet, path, nil, &out, http.StatusOK)
}

// TerminateTenancy records the caller's request to end a tenancy. The
// tenancy ends once both the landlord and the tenant have asked.
func (c *Client) TerminateTenancy(ctx context.Context, bindingID string) (*TenancyResponse, error) {
	var out TenancyResponse
	path := "/v1/tenancies/" + url.PathEscape(bindingID) + "/terminate"
	return &out, c.do(ctx, http.MethodPost, path, nil, &out, http.StatusOK)
}

// Authorize asks the access gate for a decision on behalf of the caller.
func (c *Client) Authorize(ctx context.Context, req AuthorizeRequest) (*AuthorizeResponse, error) {
	var out AuthorizeResponse
	return &out, c.do(ctx, http.MethodPost, "/v1/authorize", req, &out, http.StatusOK)
}
