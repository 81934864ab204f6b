// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/audit"
	"github.com/dangerclosesec/orgmembers/internal/auth"
	"github.com/dangerclosesec/orgmembers/internal/cache"
	"github.com/dangerclosesec/orgmembers/internal/config"
	"github.com/dangerclosesec/orgmembers/internal/database"
	"github.com/dangerclosesec/orgmembers/internal/email"
	"github.com/dangerclosesec/orgmembers/internal/handler"
	"github.com/dangerclosesec/orgmembers/internal/identity"
	"github.com/dangerclosesec/orgmembers/internal/middleware"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/dangerclosesec/orgmembers/internal/service"
	"github.com/dangerclosesec/orgmembers/internal/telemetry"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     logLevel(cfg.LogLevel),
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.Open(ctx, cfg.DSN(), database.LogLevel(cfg.LogLevel))
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize repositories
	repos := service.Repositories{
		Users:         repository.NewUserRepository(db),
		Organizations: repository.NewOrganizationRepository(db),
		Memberships:   repository.NewMembershipRepository(db),
		JoinRequests:  repository.NewJoinRequestRepository(db),
		Invitations:   repository.NewInvitationRepository(db),
		Catalog:       repository.NewCatalogRepository(db),
		AuditLogs:     repository.NewAuditLogRepository(db),
		Stats:         repository.NewStatsRepository(db),
	}
	auditLog := audit.NewRepositoryLogger(repos.AuditLogs)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.Provider(cfg.Email.Provider))
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)
	operator := auth.NewOperatorCredential(cfg.Operator.Email, cfg.Operator.PasswordHash, passwordHasher)
	if operator == nil {
		logger.Info("operator credential disabled")
	}

	var provider identity.Provider
	switch cfg.Identity.Provider {
	case "supabase":
		provider = identity.NewSupabase(cfg.Identity.SupabaseURL, cfg.Identity.SupabaseServiceKey)
	default:
		provider = identity.NewLocal(repository.NewAccountRepository(db), passwordHasher, tokenManager, emailService)
	}
	logger.Info("identity provider configured", "provider", cfg.Identity.Provider)

	// Initialize cache and rate limiter
	var (
		backend cache.Backend
		limiter middleware.Limiter
	)
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return fmt.Errorf("parsing redis url: %w", err)
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		backend = cache.NewRedisCache(rdb, "orgmembers:")
		if cfg.Redis.RateLimitPerMinute > 0 {
			limiter = middleware.NewRedisLimiter(rdb, cfg.Redis.RateLimitPerMinute)
		}
	} else {
		memory := cache.NewInMemoryCache(time.Minute)
		memory.StartCleanup(ctx)
		backend = memory
		if cfg.Redis.RateLimitPerMinute > 0 {
			local := middleware.NewLocalLimiter(cfg.Redis.RateLimitPerMinute)
			go pruneLimiter(ctx, local)
			limiter = local
		}
	}
	cacheService := service.NewCacheService(backend, service.CacheConfig{TTL: cfg.CatalogTTL})
	defer cacheService.Close()

	// Initialize services
	observer := telemetry.SagaObserver{}
	registrationService := service.NewRegistrationService(repos, provider, emailService, auditLog, observer, cfg)
	invitationService := service.NewInvitationService(repos, provider, emailService, auditLog, observer, cfg)
	joinRequestService := service.NewJoinRequestService(repos, provider, auditLog, observer, cfg)
	catalogService := service.NewCatalogService(repos, cacheService)
	adminService := service.NewAdminService(repos, auditLog)
	authService := service.NewAuthService(repos, provider, cfg)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.RequestMeta)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.SiteURL},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	handler.MountAPI(r, handler.RouterConfig{
		Registration: handler.NewRegistrationHandler(registrationService),
		Invitations:  handler.NewInvitationHandler(invitationService),
		Requests:     handler.NewJoinRequestHandler(joinRequestService),
		Catalog:      handler.NewCatalogHandler(catalogService),
		Admin:        handler.NewAdminHandler(adminService),
		Auth:         handler.NewAuthHandler(authService),
		Provider:     provider,
		Users:        repos.Users,
		Operator:     operator,
		Limiter:      limiter,
	})

	// Create servers
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsMux := http.NewServeMux()
	metricsMux.Handle("/metrics", telemetry.Handler())
	metricsSrv := &http.Server{
		Addr:              ":" + cfg.Server.MetricsPort,
		Handler:           metricsMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 2)

	// Start servers
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()
	go func() {
		logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
		if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("metrics server: %w", err)
		}
	}()

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("shutdown started")

		// Give outstanding requests a deadline for completion
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		metricsSrv.Shutdown(shutdownCtx)

		// Gracefully shutdown the server
		if err := srv.Shutdown(shutdownCtx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// pruneLimiter drops idle rate limit buckets until ctx is done.
func pruneLimiter(ctx context.Context, l *middleware.LocalLimiter) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Prune(10 * time.Minute)
		}
	}
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"Internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
