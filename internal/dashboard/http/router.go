package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/nextnukkad/team-dashboard/internal/dashboard/service"
	"github.com/nextnukkad/team-dashboard/internal/dashboard/store"
	"github.com/nextnukkad/team-dashboard/pkg/httpx"
	"github.com/nextnukkad/team-dashboard/pkg/slogx"

	_ "github.com/nextnukkad/team-dashboard/api/dashboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	SignupService     *service.SignupService
	ResetService      *service.ResetService
	SessionService    *service.SessionService
	ModerationService *service.ModerationService
	NotifyService     *service.NotifyService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerDashboard()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Next Nukkad Team Dashboard API
//	@version		0.1.0
//	@description	Internal dashboard service for the Next Nukkad operations team:
//	@description	domain-restricted team signup with OTP and invite keys, login and
//	@description	password reset, moderation screens over the consumer app's data,
//	@description	and push notification fan-out.
//
//	@contact.name				Next Nukkad Team
//	@contact.url				https://github.com/nextnukkad/team-dashboard
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// OTP issuance and login are the brute-forceable endpoints, so
	// they sit behind the strict per-IP limit.
	r.Mux.Handle("POST /v1/auth/signup/otp",
		httpx.Chain(&SignupOTPHandler{SignupService: r.SignupService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/signup/complete",
		httpx.Chain(&SignupCompleteHandler{SignupService: r.SignupService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(&LoginHandler{SessionService: r.SessionService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/reset/otp",
		httpx.Chain(&ResetOTPHandler{ResetService: r.ResetService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
	r.Mux.Handle("POST /v1/auth/reset/complete",
		httpx.Chain(&ResetCompleteHandler{ResetService: r.ResetService},
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/auth/member",
		httpx.Chain(&MemberHandler{},
			RequireMember(r.SessionService),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerDashboard() {
	member := RequireMember(r.SessionService)

	r.Mux.Handle("GET /v1/dashboard/users",
		httpx.Chain(&UsersListHandler{ModerationService: r.ModerationService},
			member,
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/dashboard/users/{id}/status",
		httpx.Chain(&UserStatusHandler{ModerationService: r.ModerationService},
			member,
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/dashboard/transactions",
		httpx.Chain(&TransactionsHandler{ModerationService: r.ModerationService},
			member,
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/dashboard/reports",
		httpx.Chain(&ReportsHandler{ModerationService: r.ModerationService},
			member,
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /v1/dashboard/activity",
		httpx.Chain(&ActivityHandler{ModerationService: r.ModerationService},
			member,
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/dashboard/notifications/send",
		httpx.Chain(&NotificationSendHandler{NotifyService: r.NotifyService},
			member,
			httpx.RateLimitByMember(httpx.ModerateLimit),
		),
	)
	r.Mux.Handle("GET /v1/dashboard/notifications",
		httpx.Chain(&NotificationListHandler{NotifyService: r.NotifyService},
			member,
			httpx.RateLimitByMember(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
