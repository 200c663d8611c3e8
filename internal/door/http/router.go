package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/vcdoor/internal/door/domain"
	"github.com/aussiebroadwan/vcdoor/internal/door/metrics"
	"github.com/aussiebroadwan/vcdoor/internal/door/service"
	"github.com/aussiebroadwan/vcdoor/internal/door/store"
	"github.com/aussiebroadwan/vcdoor/pkg/httpx"
	"github.com/aussiebroadwan/vcdoor/pkg/jwtx"
	"github.com/aussiebroadwan/vcdoor/pkg/slogx"

	_ "github.com/aussiebroadwan/vcdoor/api/door" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
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
	metrics      *metrics.Metrics

	store            store.Store
	TokenService     *service.TokenService
	UserService      *service.UserService
	KeyService       *service.KeyService
	DoorService      *service.DoorService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	keys *jwtx.KeySet,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		keys:         keys,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		metrics:      m,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerToken()
	r.registerUsers()
	r.registerKeys()
	r.registerDoors()
	r.registerShares()
	r.registerAdmin()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			vcdoor Door Key Service API
//	@version		0.1.0
//	@description	Issues visual cryptography shares that open doors. A user share overlaid on a door share reveals the door secret.
//	@description
//	@description				Access tokens are EdDSA signed JWTs and can be verified using the JWKS endpoint.
//	@description				Door readers authenticate with their door secret instead of a token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/vcdoor
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
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// handle registers h under pattern with request metrics labelled by the
// pattern's path and the given middlewares applied inside them.
func (r *Router) handle(pattern string, h http.Handler, mws ...httpx.Middleware) {
	route := pattern
	if _, path, ok := strings.Cut(pattern, " "); ok {
		route = path
	}
	chain := append([]httpx.Middleware{r.metrics.Instrument(route)}, mws...)
	r.Mux.Handle(pattern, httpx.Chain(h, chain...))
}

// secured chains bearer authentication, the scope check and a per-user
// rate limit.
func (r *Router) secured(l httpx.Limit, scopes ...string) []httpx.Middleware {
	return []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAnyScope(scopes...),
		httpx.RateLimitByUser(l),
	}
}

// securedAll is secured but demands every listed scope.
func (r *Router) securedAll(l httpx.Limit, scopes ...string) []httpx.Middleware {
	return []httpx.Middleware{
		httpx.AuthnMiddleware(r.verifier),
		httpx.RequireAllScopes(scopes...),
		httpx.RateLimitByUser(l),
	}
}

func (r *Router) registerToken() {
	h := &TokenHandler{TokenService: r.TokenService}

	// Rate limited by IP + login to slow password guessing
	r.handle("POST /v1/token", h,
		httpx.RateLimitByIPAndField(httpx.StrictLimit, "username"),
	)
}

func (r *Router) registerUsers() {
	h := &UserHandler{UserService: r.UserService}

	r.handle("POST /v1/users", http.HandlerFunc(h.Register),
		httpx.RateLimitByIP(httpx.StrictLimit),
	)
	r.handle("GET /v1/users/validate-email", http.HandlerFunc(h.ValidateEmail),
		httpx.RateLimitByIP(httpx.StrictLimit),
	)
	r.handle("GET /v1/users/me", http.HandlerFunc(h.Me),
		r.secured(httpx.PublicLimit, domain.ScopeKeysRead)...,
	)
	r.handle("DELETE /v1/users/me", http.HandlerFunc(h.DeleteMe),
		r.secured(httpx.ModerateLimit, domain.ScopeKeysWrite)...,
	)
}

func (r *Router) registerKeys() {
	h := &KeyHandler{KeyService: r.KeyService}

	r.handle("GET /v1/users/me/keys", http.HandlerFunc(h.List),
		r.secured(httpx.PublicLimit, domain.ScopeKeysRead)...,
	)
	r.handle("POST /v1/users/me/keys", http.HandlerFunc(h.Request),
		r.secured(httpx.ModerateLimit, domain.ScopeKeysWrite)...,
	)
	r.handle("POST /v1/users/me/keys/{id}/reissue", http.HandlerFunc(h.Reissue),
		r.secured(httpx.ModerateLimit, domain.ScopeKeysWrite)...,
	)
	r.handle("DELETE /v1/users/me/keys/{id}", http.HandlerFunc(h.Delete),
		r.secured(httpx.ModerateLimit, domain.ScopeKeysWrite)...,
	)
}

func (r *Router) registerDoors() {
	h := &DoorHandler{DoorService: r.DoorService}

	r.handle("POST /v1/doors", http.HandlerFunc(h.Create),
		r.secured(httpx.ModerateLimit, domain.ScopeAdminWrite)...,
	)
	r.handle("DELETE /v1/doors/{name}", http.HandlerFunc(h.Delete),
		r.secured(httpx.ModerateLimit, domain.ScopeAdminWrite)...,
	)

	// Door reader endpoints authenticate with the door secret in the body
	r.handle("POST /v1/doors/sync", http.HandlerFunc(h.Sync),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)
	r.handle("POST /v1/doors/verify", http.HandlerFunc(h.Verify),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
	r.handle("DELETE /v1/doors", http.HandlerFunc(h.DeleteBySecret),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)
}

func (r *Router) registerShares() {
	h := &KeyHandler{KeyService: r.KeyService}

	r.handle("POST /v1/shares/identify", http.HandlerFunc(h.Identify),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{
		UserService: r.UserService,
		DoorService: r.DoorService,
		KeyService:  r.KeyService,
	}

	r.handle("GET /v1/admin/users", http.HandlerFunc(h.Users),
		r.secured(httpx.PublicLimit, domain.ScopeAdminRead)...,
	)
	r.handle("GET /v1/admin/doors", http.HandlerFunc(h.Doors),
		r.secured(httpx.PublicLimit, domain.ScopeAdminRead)...,
	)
	r.handle("GET /v1/admin/shares", http.HandlerFunc(h.Shares),
		r.secured(httpx.PublicLimit, domain.ScopeAdminRead)...,
	)
	r.handle("PUT /v1/admin/shares/{id}/validate", http.HandlerFunc(h.Validate),
		r.securedAll(httpx.ModerateLimit, domain.ScopeAdminRead, domain.ScopeAdminWrite)...,
	)
	r.handle("PUT /v1/admin/shares/{id}/blacklist", http.HandlerFunc(h.Blacklist),
		r.securedAll(httpx.ModerateLimit, domain.ScopeAdminRead, domain.ScopeAdminWrite)...,
	)
}

func (r *Router) registerSystem() {
	r.handle("GET /.well-known/jwks.json", JWKSHandler(r.keys),
		httpx.RateLimitByIP(httpx.PublicLimit),
	)
	r.handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.keys))
	r.Mux.Handle("GET /metrics", r.metrics.Handler())
}

func (r *Router) registerBootstrap() {
	h := &BootstrapHandler{BootstrapService: r.BootstrapService}

	r.handle("POST /v1/bootstrap", h,
		httpx.RateLimitByIP(httpx.StrictLimit),
	)
}
