package leasesdk

import (
	"time"

	"github.com/aussiebroadwan/leasehold/pkg/jwtx"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	// Error is the machine readable code, e.g. "already_used"
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`

	// Details maps form field names to messages for validation errors
	Details map[string]string `json:"details,omitempty"`
}

// ============================================================================
// Accounts and sessions
// ============================================================================

// RegisterLandlordRequest creates a landlord account.
type RegisterLandlordRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone,omitempty"`
	Gender          string `json:"gender"`
}

// BootstrapRequest creates the first admin account.
type BootstrapRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest authenticates with a username or email.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// SessionResponse carries a signed session token.
type SessionResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	AccountID   string `json:"account_id"`
	Role        string `json:"role"`
}

// ============================================================================
// Properties
// ============================================================================

// PropertyRequest creates or updates a property.
type PropertyRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	UnitNumber string `json:"unit_number,omitempty"`
}

// PropertyResponse is the owner's view of a property.
type PropertyResponse struct {
	ID         string    `json:"id"`
	LandlordID string    `json:"landlord_id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	UnitNumber string    `json:"unit_number,omitempty"`
	Occupied   bool      `json:"occupied"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ListPropertiesResponse lists the caller's properties, newest first.
type ListPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

// ============================================================================
// Invitations
// ============================================================================

// IssueInvitationRequest optionally names the invited tenant's email.
type IssueInvitationRequest struct {
	InvitedEmail string `json:"invited_email,omitempty"`
}

// InvitationResponse describes an issued invitation.
type InvitationResponse struct {
	Token        string     `json:"token"`
	URL          string     `json:"url"`
	PropertyID   string     `json:"property_id"`
	InvitedEmail string     `json:"invited_email,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    time.Time  `json:"expires_at"`
	UsedAt       *time.Time `json:"used_at,omitempty"`
	RevokedAt    *time.Time `json:"revoked_at,omitempty"`
}

// ListInvitationsResponse lists outstanding invitations for a property.
type ListInvitationsResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}

// InvitationStatusResponse is the public view of a valid invitation link.
type InvitationStatusResponse struct {
	Status       string    `json:"status"`
	PropertyID   string    `json:"property_id"`
	InvitedEmail string    `json:"invited_email,omitempty"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// AcceptInvitationRequest is the tenant registration form. MoveInDate is a
// calendar date, YYYY-MM-DD.
type AcceptInvitationRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone,omitempty"`
	Gender          string `json:"gender"`
	MoveInDate      string `json:"move_in_date"`
}

// BindingResponse describes a tenant bound to a property.
type BindingResponse struct {
	ID                 string     `json:"id"`
	TenantID           string     `json:"tenant_id"`
	LandlordID         string     `json:"landlord_id"`
	PropertyID         string     `json:"property_id"`
	MoveInDate         string     `json:"move_in_date"`
	InvitationToken    string     `json:"invitation_token,omitempty"`
	Status             string     `json:"status"`
	LandlordTerminated bool       `json:"landlord_terminated"`
	TenantTerminated   bool       `json:"tenant_terminated"`
	TerminatedAt       *time.Time `json:"terminated_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

// AcceptInvitationResponse is returned after a successful redemption. The
// session fields are empty when signing failed; the tenancy still stands and
// the tenant logs in with the new password.
type AcceptInvitationResponse struct {
	AccountID   string          `json:"account_id"`
	Binding     BindingResponse `json:"binding"`
	AccessToken string          `json:"access_token,omitempty"`
	TokenType   string          `json:"token_type,omitempty"`
	ExpiresIn   int             `json:"expires_in,omitempty"`
}

// TenancyResponse is a binding together with the bound parties.
type TenancyResponse struct {
	Binding  BindingResponse  `json:"binding"`
	Tenant   AccountResponse  `json:"tenant"`
	Property PropertyResponse `json:"property"`
}

// ListTenanciesResponse lists a landlord's current or ended tenancies.
type ListTenanciesResponse struct {
	Tenancies []TenancyResponse `json:"tenancies"`
}

// ============================================================================
// Authorization
// ============================================================================

// AuthorizeRequest asks whether the caller may perform action on a resource.
type AuthorizeRequest struct {
	Action       string `json:"action"`
	ResourceKind string `json:"resource_kind"`
	ResourceID   string `json:"resource_id"`
}

// AuthorizeResponse is the gate's decision.
type AuthorizeResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string            `json:"status"`
	Uptime  string            `json:"uptime,omitempty"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// JWKSResponse is the public key set sessions are verified with.
type JWKSResponse jwtx.JWKS
