package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"github.com/limbo/vital/internal/metrics"
	"github.com/limbo/vital/internal/service"
	"github.com/limbo/vital/pkg/httputil"
)

const (
	SessionCookieName = "vital_session"
	shutdownTimeout   = 10 * time.Second
)

type Server struct {
	mx               *chi.Mux
	authService      service.AuthServiceI
	tasksService     service.TasksServiceI
	pointsService    service.PointsServiceI
	profileService   service.ProfileServiceI
	symptomsService  service.SymptomsServiceI
	remindersService service.RemindersServiceI
	chatService      service.ChatServiceI
	tokenService     SessionTokenI
	db               HealthChecker
	opts             Options
	authLimiter      *IPRateLimiter
}

type ServicesList struct {
	AuthService      service.AuthServiceI
	TasksService     service.TasksServiceI
	PointsService    service.PointsServiceI
	ProfileService   service.ProfileServiceI
	SymptomsService  service.SymptomsServiceI
	RemindersService service.RemindersServiceI
	ChatService      service.ChatServiceI
	TokenService     SessionTokenI
	DB               HealthChecker
}

// Options tune the HTTP surface. Zero values are usable.
type Options struct {
	SessionTTL        time.Duration
	CookieSecure      bool
	CORSOrigins       []string
	MetricsUser       string
	MetricsPass       string
	AuthRatePerMinute int
	AuthRateBurst     int
}

func New(servicesOptions *ServicesList, opts Options) *Server {
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 7 * 24 * time.Hour
	}
	if opts.AuthRatePerMinute <= 0 {
		opts.AuthRatePerMinute = 10
	}
	if opts.AuthRateBurst <= 0 {
		opts.AuthRateBurst = 5
	}
	s := &Server{
		mx:               chi.NewMux(),
		authService:      servicesOptions.AuthService,
		tasksService:     servicesOptions.TasksService,
		pointsService:    servicesOptions.PointsService,
		profileService:   servicesOptions.ProfileService,
		symptomsService:  servicesOptions.SymptomsService,
		remindersService: servicesOptions.RemindersService,
		chatService:      servicesOptions.ChatService,
		tokenService:     servicesOptions.TokenService,
		db:               servicesOptions.DB,
		opts:             opts,
		authLimiter:      NewIPRateLimiter(opts.AuthRatePerMinute, opts.AuthRateBurst),
	}
	s.MountRoutes()
	return s
}

func (s *Server) MountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, metrics.InstrumentHandler)

	s.mx.Get("/health", s.Health)
	s.mx.With(s.MetricsAuthMiddleware).Handle("/metrics", metrics.Handler())

	s.mx.Route("/api", func(r chi.Router) {
		r.Use(s.SessionMiddleware, s.LoggerExtensionMiddleware)

		r.Route("/auth", func(r chi.Router) {
			r.With(s.authLimiter.Middleware).Post("/nonce", s.IssueNonce)
			r.With(s.authLimiter.Middleware).Post("/verify", s.Verify)
			r.Get("/me", s.Me)
			r.Post("/logout", s.Logout)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.RequireSessionMiddleware)

			r.Patch("/users/profile", s.UpdateProfile)

			r.Get("/tasks", s.ListTasks)
			r.Post("/tasks/generate", s.GenerateTasks)
			r.Patch("/tasks/{id}", s.UpdateTask)

			r.Post("/symptoms", s.CreateSymptom)
			r.Get("/symptoms", s.ListSymptoms)

			r.Post("/reminders", s.CreateReminder)
			r.Get("/reminders", s.ListReminders)
			r.Patch("/reminders/{id}/toggle", s.ToggleReminder)

			r.Post("/chat", s.Chat)
			r.Post("/chat/image", s.AnalyzeImage)

			r.Get("/points", s.GetPoints)
			r.Post("/points/referral", s.ApplyReferral)
		})
	})
}

// Handler is the router wrapped with CORS. Credentials are allowed since the
// session travels in a cookie.
func (s *Server) Handler() http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(s.opts.CORSOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowCredentials(),
	)(s.mx)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, address string) error {
	server := &http.Server{
		Addr:              address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("address", address))
		serveErr <- server.ListenAndServe()
	}()
	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	slog.Info("shutting down server")
	return server.Shutdown(shutdownCtx)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	if s.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.Ping(ctx); err != nil {
			logger.Error("health check failed", slog.String("error", err.Error()))
			httputil.WriteJSONResponse(w, http.StatusServiceUnavailable, map[string]any{"status": "unavailable"})
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

// MetricsAuthMiddleware guards /metrics with basic auth when credentials are
// configured.
func (s *Server) MetricsAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.MetricsUser == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(user), []byte(s.opts.MetricsUser)) != 1 ||
			subtle.ConstantTimeCompare([]byte(pass), []byte(s.opts.MetricsPass)) != 1 {
			w.Header().Set("WWW-Authenticate", `Basic realm="metrics"`)
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// PruneRateLimiters forgets idle clients of the auth rate limiter.
func (s *Server) PruneRateLimiters() int {
	return s.authLimiter.Prune()
}
