package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/service"
	"github.com/aussiebroadwan/leasehold/pkg/httpx"
	"github.com/aussiebroadwan/leasehold/pkg/idx"
	"github.com/aussiebroadwan/leasehold/pkg/leasesdk"
)

// subject returns the caller set by httpx.AuthnMiddleware.
func subject(r *http.Request) access.Subject {
	ctx := r.Context()
	return access.Subject{
		AccountID: httpx.UserIDFromContext(ctx),
		Role:      domain.Role(httpx.RoleFromContext(ctx)),
	}
}

func toAccount(a domain.Account) leasesdk.AccountResponse {
	return leasesdk.AccountResponse{
		ID:        a.ID,
		Role:      a.Role.String(),
		Username:  a.Username,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Phone:     a.Phone,
		Gender:    string(a.Gender),
		CreatedAt: a.CreatedAt,
	}
}

func toProperty(p domain.Property) leasesdk.PropertyResponse {
	return leasesdk.PropertyResponse{
		ID:         p.ID,
		LandlordID: p.LandlordID,
		Name:       p.Name,
		Address:    p.Address,
		UnitNumber: p.UnitNumber,
		Occupied:   p.Occupied,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toInvitation(inv domain.Invitation, link string, now time.Time) leasesdk.InvitationResponse {
	return leasesdk.InvitationResponse{
		Token:        inv.Token,
		URL:          link,
		PropertyID:   inv.PropertyID,
		InvitedEmail: inv.InvitedEmail,
		Status:       string(inv.Status(now)),
		CreatedAt:    inv.CreatedAt,
		ExpiresAt:    inv.ExpiresAt,
		UsedAt:       inv.UsedAt,
		RevokedAt:    inv.RevokedAt,
	}
}

func toBinding(b domain.Binding) leasesdk.BindingResponse {
	return leasesdk.BindingResponse{
		ID:                 b.ID,
		TenantID:           b.TenantID,
		LandlordID:         b.LandlordID,
		PropertyID:         b.PropertyID,
		MoveInDate:         b.MoveInDate.Format(domain.DateLayout),
		InvitationToken:    b.InvitationToken,
		Status:             string(b.Status),
		LandlordTerminated: b.LandlordTerminated,
		TenantTerminated:   b.TenantTerminated,
		TerminatedAt:       b.TerminatedAt,
		CreatedAt:          b.CreatedAt,
	}
}

func toTenancy(t domain.Tenancy) leasesdk.TenancyResponse {
	return leasesdk.TenancyResponse{
		Binding:  toBinding(t.Binding),
		Tenant:   toAccount(t.Tenant),
		Property: toProperty(t.Property),
	}
}

func toSession(s service.Session) leasesdk.SessionResponse {
	return leasesdk.SessionResponse{
		AccessToken: s.AccessToken,
		TokenType:   s.TokenType,
		ExpiresIn:   int(s.ExpiresIn.Seconds()),
		AccountID:   s.AccountID,
		Role:        s.Role.String(),
	}
}

func fromRegistration(
	username, email, password, confirm, first, last, phone, gender string,
) domain.Registration {
	return domain.Registration{
		Username:        username,
		Email:           email,
		Password:        password,
		PasswordConfirm: confirm,
		FirstName:       first,
		LastName:        last,
		Phone:           phone,
		Gender:          domain.Gender(gender),
	}
}

// pathID returns the {id} wildcard. IDs that are not ULIDs cannot name a
// stored row, so they are answered with not_found without a store round trip.
func pathID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.PathValue("id")
	if !idx.Valid(id) {
		writeServiceError(w, r, domain.ErrNotFound)
		return "", false
	}
	return id, true
}
