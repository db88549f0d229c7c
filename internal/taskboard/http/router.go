package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"

	_ "github.com/aussiebroadwan/taskboard/api/taskboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Options tune the HTTP surface.
type Options struct {
	CORSOrigins  []string
	CookieTTL    time.Duration
	SecureCookie bool
	Dev          bool // show internal error text in 500 responses

	// Zero values fall back to httpx.StrictLimit and httpx.APILimit.
	StrictLimit httpx.RateLimitConfig
	APILimit    httpx.RateLimitConfig
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	signer       jwtx.Signer
	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store  store.Store
	cookie sessionCookie
	errs   errorWriter

	// Shared by every /api route so they draw from one bucket per key.
	apiLimit  httpx.Middleware
	userLimit httpx.Middleware
	strict    httpx.RateLimitConfig

	AuthService      *service.AuthService
	UserService      *service.UserService
	AdminService     *service.AdminService
	TaskService      *service.TaskService
	MyTaskService    *service.MyTaskService
	DashboardService *service.DashboardService
	BootstrapService *service.BootstrapService
}

func NewRouter(
	signer jwtx.Signer,
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	opts Options,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		signer:       signer,
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
		cookie:       sessionCookie{TTL: opts.CookieTTL, Secure: opts.SecureCookie},
		errs:         errorWriter{Dev: opts.Dev},
		strict:       orDefaultLimit(opts.StrictLimit, httpx.StrictLimit),
	}
	api := orDefaultLimit(opts.APILimit, httpx.APILimit)
	r.apiLimit = httpx.RateLimitByIP(api)
	r.userLimit = httpx.RateLimitByUser(api)
	if r.cookie.TTL <= 0 {
		r.cookie.TTL = jwtx.DefaultSessionTTL
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.Recover(),
		httpx.CORS(opts.CORSOrigins),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerTasks()
	r.registerBootstrap()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
	r.Mux.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		httpx.WriteText(w, http.StatusNotFound, msgRouteNotFound)
	})
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Taskboard API
//	@version		0.1.0
//	@description	Personal task management: users keep prioritised, scheduled tasks and get a dashboard of pending work. Admins manage every user and task.
//	@description
//	@description				Tokens are JWTs, sent as a Bearer header or the "token" cookie.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/taskboard
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
//	@description				JWT session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// public wraps an unauthenticated /api handler.
func (r *Router) public(h http.Handler, mws ...httpx.Middleware) http.Handler {
	return httpx.Chain(h, append([]httpx.Middleware{r.apiLimit}, mws...)...)
}

// authed wraps a handler that needs a live user, optionally of a given role.
func (r *Router) authed(h http.HandlerFunc, roles ...domain.Role) http.Handler {
	mws := []httpx.Middleware{
		r.apiLimit,
		httpx.AuthnMiddleware(r.verifier),  // verify JWT (iss/exp)
		requireUser(r.AuthService, r.errs), // load user, reject stale tokens
		r.userLimit,
	}
	if len(roles) > 0 {
		names := make([]string, len(roles))
		for i, role := range roles {
			names[i] = string(role)
		}
		mws = append(mws, httpx.RequireAnyRole(names...))
	}
	return httpx.Chain(h, mws...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService, cookie: r.cookie, errs: r.errs}

	// Signup and login - strict rate limit, login additionally keyed by email
	r.Mux.Handle("POST /api/v1/auth/signup",
		r.public(http.HandlerFunc(h.HandleSignUp),
			httpx.RateLimitByIP(r.strict),
		),
	)
	r.Mux.Handle("POST /api/v1/auth/login",
		r.public(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIPAndJSONField(r.strict, "email"),
		),
	)
	r.Mux.Handle("POST /api/v1/auth/logout", r.public(http.HandlerFunc(h.HandleLogout)))
}

func (r *Router) registerUsers() {
	me := &MeHandler{AuthService: r.AuthService, cookie: r.cookie, errs: r.errs}
	r.Mux.Handle("GET /api/v1/users/me", r.authed(me.HandleMe))
	r.Mux.Handle("PATCH /api/v1/users/updatepassword", r.authed(me.HandleUpdatePassword))

	h := &UsersHandler{UserService: r.UserService, AdminService: r.AdminService, errs: r.errs}
	r.Mux.Handle("GET /api/v1/users", r.authed(h.HandleList, domain.RoleAdmin))
	r.Mux.Handle("POST /api/v1/users", r.authed(h.HandleCreate, domain.RoleAdmin))
	r.Mux.Handle("GET /api/v1/users/{id}", r.authed(h.HandleGet, domain.RoleAdmin))
	r.Mux.Handle("PATCH /api/v1/users/{id}", r.authed(h.HandleUpdate, domain.RoleAdmin))
	r.Mux.Handle("DELETE /api/v1/users/{id}", r.authed(h.HandleDelete, domain.RoleAdmin))
	r.Mux.Handle("POST /api/v1/admins", r.authed(h.HandleCreateAdmin, domain.RoleAdmin))
}

func (r *Router) registerTasks() {
	mine := &MyTasksHandler{
		MyTaskService:    r.MyTaskService,
		DashboardService: r.DashboardService,
		errs:             r.errs,
	}
	r.Mux.Handle("GET /api/v1/tasks/me", r.authed(mine.HandleList))
	r.Mux.Handle("POST /api/v1/tasks/me", r.authed(mine.HandleCreate))
	r.Mux.Handle("PATCH /api/v1/tasks/me/{taskId}", r.authed(mine.HandleUpdate))
	r.Mux.Handle("DELETE /api/v1/tasks/me/{taskId}", r.authed(mine.HandleDelete))
	r.Mux.Handle("POST /api/v1/tasks/delete-selected", r.authed(mine.HandleDeleteSelected))
	r.Mux.Handle("GET /api/v1/tasks/dashboard", r.authed(mine.HandleDashboard))

	h := &TasksHandler{TaskService: r.TaskService, errs: r.errs}
	r.Mux.Handle("GET /api/v1/tasks", r.authed(h.HandleList, domain.RoleAdmin))
	r.Mux.Handle("POST /api/v1/tasks", r.authed(h.HandleCreate, domain.RoleAdmin))
	r.Mux.Handle("GET /api/v1/tasks/{id}", r.authed(h.HandleGet, domain.RoleAdmin))
	r.Mux.Handle("PATCH /api/v1/tasks/{id}", r.authed(h.HandleUpdate, domain.RoleAdmin))
	r.Mux.Handle("DELETE /api/v1/tasks/{id}", r.authed(h.HandleDelete, domain.RoleAdmin))
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - strict rate limit by IP (one-time setup endpoint)
	h := &BootstrapHandler{BootstrapService: r.BootstrapService, errs: r.errs}
	r.Mux.Handle("POST /api/v1/bootstrap",
		r.public(h, httpx.RateLimitByIP(r.strict)),
	)
}

func (r *Router) registerSystem() {
	// Probes are polled by orchestrators and stay outside the API rate limit.
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store, r.signer))
}

func orDefaultLimit(c, def httpx.RateLimitConfig) httpx.RateLimitConfig {
	if c.RequestsPerWindow <= 0 || c.Window <= 0 || c.Burst <= 0 {
		return def
	}
	return c
}
