package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/cors"

	"github.com/sweetfm/backoffice/internal/backoffice/service"
	"github.com/sweetfm/backoffice/internal/backoffice/store"
	"github.com/sweetfm/backoffice/pkg/httpx"
	"github.com/sweetfm/backoffice/pkg/jwtx"
	"github.com/sweetfm/backoffice/pkg/slogx"

	_ "github.com/sweetfm/backoffice/api/backoffice" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	AuthService         *service.AuthService
	BootstrapService    *service.BootstrapService
	InviteService       *service.InviteService
	DirectoryService    *service.DirectoryService
	ScheduleService     *service.ScheduleService
	LeaveService        *service.LeaveService
	AnnouncementService *service.AnnouncementService
	InvoiceService      *service.InvoiceService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	allowedOrigins []string,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerInvites()
	r.registerClients()
	r.registerEmployees()
	r.registerSchedule()
	r.registerLeave()
	r.registerAnnouncements()
	r.registerInvoices()
	r.registerSystem()
	r.registerBootstrap()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Sweet FM Back-Office API
//	@version		0.1.0
//	@description	Station back-office for Sweet FM: staff accounts and invitations, the advertiser and employee
//	@description	directory, the broadcast schedule, leave requests, announcements, and invoicing.
//	@description
//	@description				Session tokens are Ed25519-signed JWTs issued by the login and bootstrap endpoints.
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

// secured wraps a handler with authentication and a per-user rate limit.
// Pass roles to additionally restrict who may call it; with no roles any
// authenticated account is allowed.
func (r *Router) secured(h http.Handler, limit httpx.RateLimitConfig, roles ...string) http.Handler {
	middlewares := []httpx.Middleware{httpx.AuthnMiddleware(r.verifier)}
	if len(roles) > 0 {
		middlewares = append(middlewares, httpx.RequireRole(roles...))
	}
	middlewares = append(middlewares, httpx.RateLimitByUser(limit))
	return httpx.Chain(h, middlewares...)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /auth/login - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /v1/auth/me",
		r.secured(http.HandlerFunc(h.HandleMe), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/auth/password",
		r.secured(http.HandlerFunc(h.HandleChangePassword), httpx.ModerateLimit))

	// TOTP verify/disable get a strict limit to stop code brute force.
	r.Mux.Handle("POST /v1/auth/totp/enroll",
		r.secured(http.HandlerFunc(h.HandleTOTPEnroll), httpx.ModerateLimit))
	r.Mux.Handle("POST /v1/auth/totp/activate",
		r.secured(http.HandlerFunc(h.HandleTOTPActivate), httpx.StrictLimit))
	r.Mux.Handle("DELETE /v1/auth/totp",
		r.secured(http.HandlerFunc(h.HandleTOTPDisable), httpx.StrictLimit))
}

func (r *Router) registerUsers() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.Handle("GET /v1/users",
		r.secured(http.HandlerFunc(h.HandleListUsers), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("DELETE /v1/users/{id}",
		r.secured(http.HandlerFunc(h.HandleDeleteUser), httpx.ModerateLimit, "admin"))
}

func (r *Router) registerInvites() {
	h := &InvitesHandler{
		InviteService: r.InviteService,
		AuthService:   r.AuthService,
	}

	r.Mux.Handle("POST /v1/invitations",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("GET /v1/invitations",
		r.secured(http.HandlerFunc(h.HandleList), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("POST /v1/invitations/{id}/resend",
		r.secured(http.HandlerFunc(h.HandleResend), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("DELETE /v1/invitations/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, "admin", "manager"))

	// Public endpoints for the invite link: lookup is lenient (the accept page
	// calls it to render), accept is strict (account creation).
	r.Mux.Handle("GET /v1/invitations/lookup/{token}",
		httpx.Chain(http.HandlerFunc(h.HandleLookup),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("POST /v1/invitations/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerClients() {
	h := &ClientsHandler{DirectoryService: r.DirectoryService}

	r.Mux.Handle("POST /v1/clients",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("GET /v1/clients",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit, "admin", "manager"))
	r.Mux.Handle("GET /v1/clients/{id}",
		r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit, "admin", "manager"))
	r.Mux.Handle("PUT /v1/clients/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("PUT /v1/clients/{id}/status",
		r.secured(http.HandlerFunc(h.HandleUpdateStatus), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("DELETE /v1/clients/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, "admin"))
}

func (r *Router) registerEmployees() {
	h := &EmployeesHandler{DirectoryService: r.DirectoryService}

	r.Mux.Handle("POST /v1/employees",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("GET /v1/employees",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit, "admin", "manager"))
	r.Mux.Handle("GET /v1/employees/{id}",
		r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit, "admin", "manager"))
	r.Mux.Handle("PUT /v1/employees/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdate), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("PUT /v1/employees/{id}/status",
		r.secured(http.HandlerFunc(h.HandleUpdateStatus), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("DELETE /v1/employees/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, "admin"))
}

func (r *Router) registerSchedule() {
	h := &ScheduleHandler{
		ScheduleService:  r.ScheduleService,
		DirectoryService: r.DirectoryService,
	}

	// The programme itself is readable by any authenticated account.
	r.Mux.Handle("GET /v1/schedule/week",
		r.secured(http.HandlerFunc(h.HandleWeekGrid), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/shows",
		r.secured(http.HandlerFunc(h.HandleListShows), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/adslots",
		r.secured(http.HandlerFunc(h.HandleListAdSlots), httpx.LenientLimit))

	r.Mux.Handle("POST /v1/shows",
		r.secured(http.HandlerFunc(h.HandleCreateShow), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("PUT /v1/shows/{id}",
		r.secured(http.HandlerFunc(h.HandleUpdateShow), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("PUT /v1/shows/{id}/status",
		r.secured(http.HandlerFunc(h.HandleUpdateShowStatus), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("DELETE /v1/shows/{id}",
		r.secured(http.HandlerFunc(h.HandleDeleteShow), httpx.ModerateLimit, "admin", "manager"))

	r.Mux.Handle("POST /v1/adslots",
		r.secured(http.HandlerFunc(h.HandleCreateAdSlot), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("PUT /v1/adslots/{id}/status",
		r.secured(http.HandlerFunc(h.HandleUpdateAdSlotStatus), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("DELETE /v1/adslots/{id}",
		r.secured(http.HandlerFunc(h.HandleDeleteAdSlot), httpx.ModerateLimit, "admin", "manager"))
}

func (r *Router) registerLeave() {
	h := &LeaveHandler{
		LeaveService:     r.LeaveService,
		DirectoryService: r.DirectoryService,
	}

	// Staff file and list their own requests; the handler scopes
	// non-management callers to their own record. Review is management only.
	r.Mux.Handle("POST /v1/leave",
		r.secured(http.HandlerFunc(h.HandleSubmit), httpx.ModerateLimit))
	r.Mux.Handle("GET /v1/leave",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("PUT /v1/leave/{id}/review",
		r.secured(http.HandlerFunc(h.HandleReview), httpx.ModerateLimit, "admin", "manager"))
}

func (r *Router) registerAnnouncements() {
	h := &AnnouncementsHandler{AnnouncementService: r.AnnouncementService}

	r.Mux.Handle("GET /v1/announcements",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/announcements/all",
		r.secured(http.HandlerFunc(h.HandleListAll), httpx.LenientLimit, "admin", "manager"))
	r.Mux.Handle("POST /v1/announcements",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("DELETE /v1/announcements/{id}",
		r.secured(http.HandlerFunc(h.HandleDelete), httpx.ModerateLimit, "admin", "manager"))
}

func (r *Router) registerInvoices() {
	h := &InvoicesHandler{
		InvoiceService:   r.InvoiceService,
		DirectoryService: r.DirectoryService,
	}

	r.Mux.Handle("POST /v1/invoices",
		r.secured(http.HandlerFunc(h.HandleCreate), httpx.ModerateLimit, "admin", "manager"))
	// Listing is handler-scoped: management sees everything, a client
	// account sees its own invoices.
	r.Mux.Handle("GET /v1/invoices",
		r.secured(http.HandlerFunc(h.HandleList), httpx.LenientLimit))
	r.Mux.Handle("GET /v1/invoices/{id}",
		r.secured(http.HandlerFunc(h.HandleGet), httpx.LenientLimit, "admin", "manager"))
	r.Mux.Handle("POST /v1/invoices/{id}/send",
		r.secured(http.HandlerFunc(h.HandleSend), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("POST /v1/invoices/{id}/cancel",
		r.secured(http.HandlerFunc(h.HandleCancel), httpx.ModerateLimit, "admin", "manager"))
	r.Mux.Handle("POST /v1/invoices/{id}/payments",
		r.secured(http.HandlerFunc(h.HandleRecordPayment), httpx.ModerateLimit, "admin", "manager"))
}

func (r *Router) registerBootstrap() {
	// POST /bootstrap - very strict rate limit by IP (one-time setup endpoint)
	bootstrapHandler := &BootstrapHandler{
		BootstrapService: r.BootstrapService,
		AuthService:      r.AuthService,
	}
	r.Mux.Handle("POST /v1/bootstrap",
		httpx.Chain(bootstrapHandler,
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
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
