package adapthttp

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fitstats/internal/app"
	"fitstats/internal/domain"
	"fitstats/internal/metrics"
)

// Services are the application services the HTTP adapter drives.
type Services struct {
	Stats     *app.StatisticsService
	Weight    *app.WeightService
	Water     *app.WaterService
	Workouts  *app.WorkoutService
	Nutrition *app.NutritionService
	Steps     *app.StepsService
	Profile   *app.ProfileService
	Auth      *app.AuthService
}

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	svc Services

	overviewDays    int
	weightTrendDays int

	oidcConfig OIDCConfig
	metrics    *metrics.Manager
	gatherer   prometheus.Gatherer

	disableAuth bool
	localUser   *domain.User
}

// Option configures a Server.
type Option func(*Server)

// WithDefaultDays sets the day counts used when a request omits or garbles
// the days parameter.
func WithDefaultDays(overview, weightTrend int) Option {
	return func(s *Server) {
		s.overviewDays = overview
		s.weightTrendDays = weightTrend
	}
}

// WithOIDC enables the SSO endpoints.
func WithOIDC(cfg OIDCConfig) Option {
	return func(s *Server) { s.oidcConfig = cfg }
}

// WithMetrics records request metrics on m and serves g at /metrics.
func WithMetrics(m *metrics.Manager, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// WithoutAuth skips authentication and attributes every request to user.
func WithoutAuth(user *domain.User) Option {
	return func(s *Server) {
		s.disableAuth = true
		s.localUser = user
	}
}

// New creates a Server wired to the given application services.
func New(svc Services, opts ...Option) *Server {
	s := &Server{svc: svc, overviewDays: 7, weightTrendDays: 30}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	public := http.NewServeMux()
	public.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})
	public.HandleFunc("/auth/login", s.handleLogin)
	public.HandleFunc("/auth/logout", s.handleLogout)
	public.HandleFunc("/auth/setup", s.handleSetupUser)
	public.HandleFunc("/auth/config", s.handleConfig)
	public.HandleFunc("/auth/sso/login", s.handleSSOLogin)
	public.HandleFunc("/auth/sso/callback", s.handleSSOCallback)

	api := http.NewServeMux()
	api.HandleFunc("/statistics/overview", s.handleOverview)
	api.HandleFunc("/statistics/weekly-comparison", s.handleWeeklyComparison)

	api.HandleFunc("/weight", s.handleWeight)
	api.HandleFunc("/weight/stats", s.handleWeightStats)
	api.HandleFunc("/weight/undo-last", s.handleWeightUndoLast)
	api.HandleFunc("/weight/{id}", s.handleWeightByID)

	api.HandleFunc("/water", s.handleWater)
	api.HandleFunc("/water/today", s.handleWaterToday)
	api.HandleFunc("/water/undo-last", s.handleWaterUndoLast)
	api.HandleFunc("/water/{id}", s.handleWaterByID)

	api.HandleFunc("/workouts/logs", s.handleWorkoutLogs)
	api.HandleFunc("/workouts/logs/today", s.handleWorkoutLogsToday)

	api.HandleFunc("/nutrition", s.handleNutrition)
	api.HandleFunc("/nutrition/today", s.handleNutritionToday)
	api.HandleFunc("/nutrition/{id}", s.handleNutritionByID)

	api.HandleFunc("/steps", s.handleSteps)
	api.HandleFunc("/steps/today", s.handleStepsToday)

	api.HandleFunc("/profile", s.handleProfile)

	public.Handle("/", s.authMiddleware(api))

	root := http.NewServeMux()
	root.Handle("/api/", http.StripPrefix("/api", withNoCache(public)))
	if s.gatherer != nil {
		root.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	var h http.Handler = root
	h = s.panicRecovery(h)
	if s.metrics != nil {
		h = s.requestMetrics(h)
	}
	return s.loggingMiddleware(h)
}
