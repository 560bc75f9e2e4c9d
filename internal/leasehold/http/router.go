package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/leasehold/internal/leasehold/access"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/domain"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/service"
	"github.com/aussiebroadwan/leasehold/internal/leasehold/store"
	"github.com/aussiebroadwan/leasehold/pkg/cryptox"
	"github.com/aussiebroadwan/leasehold/pkg/httpx"
	"github.com/aussiebroadwan/leasehold/pkg/jwtx"
	"github.com/aussiebroadwan/leasehold/pkg/slogx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/aussiebroadwan/leasehold/api/leasehold" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	roleLandlord = domain.RoleLandlord.String()
	roleAdmin    = domain.RoleAdmin.String()
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	keys         *jwtx.KeySet
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	Gate              *access.Gate
	Gatherer          prometheus.Gatherer // defaults to prometheus.DefaultGatherer
	IdentityService   *service.IdentityService
	SessionService    *service.SessionService
	BootstrapService  *service.BootstrapService
	PropertyService   *service.PropertyService
	InvitationService *service.InvitationService
	TenancyService    *service.TenancyService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger, slogx.WithPathRedactor(redactInvitationPath)),
	}

	return r
}

// redactInvitationPath swaps the token in /v1/invitations/{token}/... for
// its fingerprint, since holding the token is enough to claim the property.
func redactInvitationPath(p string) string {
	const prefix = "/v1/invitations/"
	rest, ok := strings.CutPrefix(p, prefix)
	if !ok || rest == "" {
		return p
	}
	tok, tail, hasTail := strings.Cut(rest, "/")
	out := prefix + "fp:" + cryptox.TokenFingerprint(tok)
	if hasTail {
		out += "/" + tail
	}
	return out
}

func (r *Router) ApplyRoutes() {
	r.registerAccounts()
	r.registerProperties()
	r.registerInvitations()
	r.registerTenancy()
	r.registerAuthorize()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Leasehold Tenancy Service API
//	@version		0.1.0
//	@description	Landlords register properties and invite tenants with single-use links. A tenant redeeming a link gets an account bound to the property.
//	@description
//	@description				Sessions are EdDSA-signed JWTs and can be verified using the JWKS endpoint.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/leasehold
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// authed wraps h with session verification, an optional role check and a
// per-user rate limit.
func (r *Router) authed(h http.HandlerFunc, limit httpx.RateLimitConfig, roles ...string) http.Handler {
	mws := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	if len(roles) > 0 {
		mws = append(mws, httpx.RequireRole(roles...))
	}
	mws = append(mws, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, mws...)
}

func (r *Router) registerAccounts() {
	h := &AccountsHandler{
		IdentityService: r.IdentityService,
		SessionService:  r.SessionService,
	}

	// POST /v1/landlords - public signup, strict by IP
	r.Mux.Handle("POST /v1/landlords",
		httpx.Chain(http.HandlerFunc(h.HandleRegisterLandlord),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /v1/sessions - strict by IP against brute force
	r.Mux.Handle("POST /v1/sessions",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/accounts/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/landlords/{id}", r.authed(h.HandleDeleteLandlord, httpx.ModerateLimit, roleAdmin))
}

func (r *Router) registerProperties() {
	h := &PropertiesHandler{PropertyService: r.PropertyService}

	r.Mux.Handle("POST /v1/properties", r.authed(h.HandleCreate, httpx.ModerateLimit, roleLandlord, roleAdmin))
	r.Mux.Handle("GET /v1/properties", r.authed(h.HandleList, httpx.LenientLimit, roleLandlord, roleAdmin))
	r.Mux.Handle("GET /v1/properties/{id}", r.authed(h.HandleGet, httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/properties/{id}", r.authed(h.HandleUpdate, httpx.ModerateLimit, roleLandlord, roleAdmin))
	r.Mux.Handle("DELETE /v1/properties/{id}", r.authed(h.HandleDelete, httpx.ModerateLimit, roleLandlord, roleAdmin))
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}

	// POST /v1/properties/{id}/invitations - budgeted per landlord and property
	r.Mux.Handle("POST /v1/properties/{id}/invitations",
		httpx.Chain(http.HandlerFunc(h.HandleIssue),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole(roleLandlord, roleAdmin),
			httpx.RateLimitByUserAndPath(httpx.ModerateLimit, "id"),
		),
	)
	r.Mux.Handle("GET /v1/properties/{id}/invitations",
		r.authed(h.HandleList, httpx.LenientLimit, roleLandlord, roleAdmin))
	r.Mux.Handle("POST /v1/invitations/{token}/revoke",
		r.authed(h.HandleRevoke, httpx.ModerateLimit, roleLandlord, roleAdmin))

	// GET /v1/invitations/{token} - public link preview
	r.Mux.Handle("GET /v1/invitations/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleValidate),
			httpx.RateLimitByIP(httpx.ModerateLimit),
		),
	)

	// POST /v1/invitations/{token}/accept - public signup, strict by IP
	r.Mux.Handle("POST /v1/invitations/{token}/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerTenancy() {
	h := &TenancyHandler{TenancyService: r.TenancyService}

	r.Mux.Handle("GET /v1/tenancy", r.authed(h.HandleGetOwn, httpx.LenientLimit))
	r.Mux.Handle("GET /v1/properties/{id}/tenant", r.authed(h.HandleGetForProperty, httpx.LenientLimit))
	r.Mux.Handle("DELETE /v1/properties/{id}/tenant",
		r.authed(h.HandleRemove, httpx.ModerateLimit, roleLandlord, roleAdmin))
	r.Mux.Handle("GET /v1/tenancies", r.authed(h.HandleList, httpx.LenientLimit, roleLandlord, roleAdmin))
	r.Mux.Handle("POST /v1/tenancies/{id}/terminate", r.authed(h.HandleTerminate, httpx.ModerateLimit))
}

func (r *Router) registerAuthorize() {
	h := &AuthorizeHandler{Gate: r.Gate}

	// POST /v1/authorize - other services poll this, so lenient per user
	r.Mux.Handle("POST /v1/authorize", r.authed(h.ServeHTTP, httpx.LenientLimit))
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(h,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	r.Mux.Handle("GET /.well-known/jwks.json",
		httpx.Chain(JWKSHandler(r.keys),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	gatherer := r.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Mux.Handle("GET /metrics",
		httpx.Chain(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
