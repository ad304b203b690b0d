package main

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"net/http/pprof"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/coffai/pos/internal/billing"
	"github.com/coffai/pos/internal/common"
	"github.com/coffai/pos/internal/config"
	"github.com/coffai/pos/internal/discount"
	"github.com/coffai/pos/internal/events"
	"github.com/coffai/pos/internal/health"
	"github.com/coffai/pos/internal/menu"
	"github.com/coffai/pos/internal/obs"
	"github.com/coffai/pos/internal/order"
	"github.com/coffai/pos/internal/ratelimit"
	"github.com/coffai/pos/internal/security"
	"github.com/coffai/pos/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logFormat := envOrDefault("OBS_LOG_FORMAT", "json")
	logLevel := envOrDefault("OBS_LOG_LEVEL", "info")
	logger := obs.NewLogger(logFormat, logLevel).With().Str("env", cfg.AppEnv).Logger()

	metricsNamespace := envOrDefault("OBS_METRICS_NAMESPACE", "coffai")
	metricsEnabled := envBool("OBS_ENABLE_PROMETHEUS", true)
	obs.MustRegisterDomainMetrics(metricsNamespace, nil)

	tracingEnabled := envBool("OBS_ENABLE_TRACING", false)
	if tracingEnabled {
		sampling := envFloat("OBS_TRACING_SAMPLING_RATIO", 1.0)
		shutdown, err := obs.InitTracer(context.Background(), obs.TracingConfig{
			ServiceName:   "coffai-pos",
			Endpoint:      envOrDefault("OBS_OTLP_ENDPOINT", ""),
			Exporter:      envOrDefault("OBS_TRACING_EXPORTER", "otlp"),
			SamplingRatio: sampling,
			Environment:   cfg.AppEnv,
		})
		if err != nil {
			logger.Error().Err(err).Msg("initialise tracing")
			tracingEnabled = false
		} else {
			defer func() {
				ctx := context.Background()
				if err := shutdown(ctx); err != nil {
					logger.Error().Err(err).Msg("shutdown tracer")
				}
			}()
		}
	}

	options := menu.NewStore()
	rules := discount.NewStore()
	carts := order.NewStore()
	bills := billing.NewStore()

	if cfg.CatalogSeedEnabled {
		catalog := seed.Default()
		if cfg.CatalogSeedPath != "" {
			catalog, err = seed.FromFile(cfg.CatalogSeedPath)
			if err != nil {
				logger.Fatal().Err(err).Str("path", cfg.CatalogSeedPath).Msg("load catalog seed")
			}
		}
		if err := seed.Apply(catalog, options, rules, nil); err != nil {
			logger.Fatal().Err(err).Msg("apply catalog seed")
		}
		logger.Info().
			Int("coffees", len(catalog.Coffees)).
			Int("milks", len(catalog.Milks)).
			Int("addons", len(catalog.AddOns)).
			Int("discounts", len(catalog.Discounts)).
			Msg("catalog seeded")
	}

	bus := &events.Bus{
		Store: events.NewMemoryStore(cfg.EventLogLimit),
		Notifiers: []events.Notifier{
			events.LogNotifier{Logger: logger},
			events.MetricsNotifier{Counter: obs.DomainEventTotal},
		},
	}

	validate := validator.New()

	menuSvc, err := menu.NewService(menu.ServiceConfig{Store: options, Validate: validate})
	if err != nil {
		logger.Fatal().Err(err).Msg("construct menu service")
	}
	menuHandler := menu.NewHandler(menu.HandlerConfig{Service: menuSvc})

	discountSvc, err := discount.NewService(discount.ServiceConfig{Store: rules, Validate: validate})
	if err != nil {
		logger.Fatal().Err(err).Msg("construct discount service")
	}
	discountHandler := &discount.Handler{Svc: discountSvc}

	cartSvc := &order.Service{Store: carts, Menu: options, Rules: rules, Events: bus}
	cartHandler := &order.Handler{Svc: cartSvc}

	billingSvc := &billing.Service{Carts: carts, Rules: rules, Bills: bills, Events: bus}
	billingHandler := &billing.Handler{Svc: billingSvc}

	idem := &common.Idem{TTL: cfg.IdempotencyTTL}

	rl := ratelimit.Handler{
		Limiter: ratelimit.NewMemoryLimiter(),
		Config: ratelimit.Config{
			Key:    clientKey,
			Window: cfg.RateLimitWindow,
			Max:    cfg.RateLimitMax,
		},
		OnError: func(err error) {
			logger.Error().Err(err).Msg("rate limit check")
		},
	}

	var httpMetrics *obs.HTTPMetrics
	if metricsEnabled {
		buckets := obs.ParseBucketsCSV(envOrDefault("OBS_METRICS_BUCKETS_MS", ""))
		httpMetrics = obs.NewHTTPMetrics(metricsNamespace, buckets, nil)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(obs.RoutePatternMiddleware)
	if tracingEnabled {
		r.Use(obs.TracingMiddleware)
	}
	if metricsEnabled && httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(cfg),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Idempotency-Key"},
		ExposedHeaders:   []string{"X-Total-Count"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(security.Headers{Enable: cfg.SecurityHeaders}.Middleware)
	r.Use(security.BodyLimit{Max: cfg.BodyLimitBytes}.Middleware)

	if metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}
	pprofEnabled := envBool("OBS_ENABLE_PPROF", false)
	if pprofEnabled {
		user := envOrDefault("SECURE_PPROF_BASIC_AUTH_USER", "")
		pass := envOrDefault("SECURE_PPROF_BASIC_AUTH_PASS", "")
		r.Mount("/debug/pprof", protectPprof(newPprofMux(), user, pass))
	}

	healthHandler := health.Handler{
		Checker:        readinessChecker{options: options, carts: carts},
		CatalogTimeout: envDurationMillis("HEALTH_READY_CATALOG_TIMEOUT_MS", 200),
		SessionTimeout: envDurationMillis("HEALTH_READY_SESSION_TIMEOUT_MS", 200),
	}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Route("/menu/{kind}", func(m chi.Router) {
			m.Get("/", menuHandler.List)
			m.With(rl.Middleware).Post("/", menuHandler.Create)
			m.With(rl.Middleware).Delete("/{id}", menuHandler.Delete)
		})

		v.Route("/discounts", func(d chi.Router) {
			d.Get("/", discountHandler.List)
			d.Group(func(g chi.Router) {
				g.Use(rl.Middleware)
				g.Post("/", discountHandler.Create)
				g.Patch("/{id}", discountHandler.Update)
				g.Delete("/{id}", discountHandler.Delete)
			})
		})

		v.Route("/carts", func(c chi.Router) {
			c.Get("/{id}", cartHandler.Get)
			c.Group(func(g chi.Router) {
				g.Use(rl.Middleware)
				g.Post("/", cartHandler.Create)
				g.Post("/{id}/items", cartHandler.AddItem)
				g.Patch("/{id}/items/{itemId}", cartHandler.UpdateItem)
				g.Delete("/{id}/items/{itemId}", cartHandler.RemoveItem)
				g.Post("/{id}/clear", cartHandler.Clear)
				g.With(idem.Middleware).Post("/{id}/checkout", billingHandler.Checkout)
			})
		})

		v.Get("/bills", billingHandler.List)
		v.Get("/bills/{id}", billingHandler.Get)
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-shutdownCtx.Done()
		health.SetReady(false)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown")
		}
	}()

	health.SetReady(true)
	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server exited unexpectedly")
	}
	logger.Info().Msg("server stopped")
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}

func clientKey(r *http.Request) string {
	host := r.RemoteAddr
	if idx := strings.LastIndex(host, ":"); idx > 0 {
		host = host[:idx]
	}
	return host
}

type readinessChecker struct {
	options *menu.Store
	carts   *order.Store
}

func (c readinessChecker) PingCatalog(_ context.Context, _ time.Duration) error {
	if c.options == nil {
		return errors.New("catalog not configured")
	}
	c.options.Len()
	return nil
}

func (c readinessChecker) PingSessions(_ context.Context, _ time.Duration) error {
	if c.carts == nil {
		return errors.New("sessions not configured")
	}
	c.carts.Len()
	return nil
}

func envOrDefault(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		trimmed := strings.TrimSpace(val)
		if trimmed != "" {
			return trimmed
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		switch strings.ToLower(strings.TrimSpace(val)) {
		case "1", "t", "true", "yes", "on":
			return true
		case "0", "f", "false", "no", "off":
			return false
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(val), 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return parsed
		}
	}
	return fallback
}

func envDurationMillis(key string, fallback int) time.Duration {
	return time.Duration(envInt(key, fallback)) * time.Millisecond
}

func newPprofMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)
	mux.Handle("/allocs", pprof.Handler("allocs"))
	mux.Handle("/block", pprof.Handler("block"))
	mux.Handle("/goroutine", pprof.Handler("goroutine"))
	mux.Handle("/heap", pprof.Handler("heap"))
	mux.Handle("/mutex", pprof.Handler("mutex"))
	mux.Handle("/threadcreate", pprof.Handler("threadcreate"))
	return mux
}

func protectPprof(handler http.Handler, user, pass string) http.Handler {
	user = strings.TrimSpace(user)
	pass = strings.TrimSpace(pass)
	if user == "" {
		return handler
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, p, ok := r.BasicAuth()
		if !ok || subtle.ConstantTimeCompare([]byte(u), []byte(user)) != 1 || subtle.ConstantTimeCompare([]byte(p), []byte(pass)) != 1 {
			w.Header().Set("WWW-Authenticate", "Basic realm=restricted")
			http.Error(w, "unauthorised", http.StatusUnauthorized)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
