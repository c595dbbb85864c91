// Command server runs the on-duty pharmacy directory API.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pharmagarde/pharmagarde/handler"
	"github.com/pharmagarde/pharmagarde/modules/account"
	"github.com/pharmagarde/pharmagarde/modules/pharmacy"
	"github.com/pharmagarde/pharmagarde/pkg/apperror"
	"github.com/pharmagarde/pharmagarde/pkg/config"
	"github.com/pharmagarde/pharmagarde/pkg/httpserver"
	"github.com/pharmagarde/pharmagarde/pkg/logger"
	"github.com/pharmagarde/pharmagarde/pkg/metrics"
	"github.com/pharmagarde/pharmagarde/pkg/mongo"
	"github.com/pharmagarde/pharmagarde/pkg/ratelimiter"
	"github.com/pharmagarde/pharmagarde/pkg/redis"
	"github.com/pharmagarde/pharmagarde/pkg/requestid"
	"github.com/pharmagarde/pharmagarde/pkg/retry"
)

type appConfig struct {
	Env           string `env:"APP_ENV" envDefault:"development"`
	LogLevel      string `env:"LOG_LEVEL"`
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	BcryptCost    int    `env:"BCRYPT_COST" envDefault:"10"`

	HTTP    httpserver.Config
	Mongo   mongo.Config
	Redis   redis.Config
	Retry   retry.Config
	Limiter ratelimiter.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "pharmagarde"),
		logger.WithContextExtractors(requestid.LogExtractor),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	m := metrics.New()
	var checks []httpserver.Check

	userStorage, pharmacyStore, check, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()
	if check != nil {
		checks = append(checks, check)
	}

	limiterStore, check, closeLimiter, err := openLimiterStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeLimiter()
	if check != nil {
		checks = append(checks, check)
	}
	limiter, err := ratelimiter.New(limiterStore, cfg.Limiter)
	if err != nil {
		return err
	}

	accounts := account.NewService(userStorage,
		account.WithBcryptCost(cfg.BcryptCost),
		account.WithLimiter(limiter),
		account.WithLogger(log),
	)
	if err := seedAdmin(ctx, accounts, cfg, log); err != nil {
		return err
	}

	retrier := retry.New(
		retry.WithPolicy(cfg.Retry.Policy()),
		retry.WithRetryIf(apperror.Retryable),
		retry.WithOnRetry(m.OnRetry("pharmacy")),
		retry.WithLogger(log),
	)
	pharmacies := pharmacy.NewService(pharmacyStore, accounts,
		pharmacy.WithRetrier(retrier),
		pharmacy.WithLogger(log),
	)

	handlerOpts := []handler.Option{
		handler.WithLogger(log),
		handler.WithErrorObserver(func(k apperror.Kind) { m.ObserveError(k.String()) }),
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(log, checks...))
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Mount("/api", pharmacy.Router(pharmacies, accounts, handlerOpts...))

	return httpserver.New(cfg.HTTP, log).Run(ctx, r)
}

func openStorage(ctx context.Context, cfg appConfig, log *slog.Logger) (account.Storage, pharmacy.Store, httpserver.Check, func(), error) {
	if cfg.Mongo.ConnectionURL == "" {
		log.Warn("MONGODB_URL is empty, using in-memory storage")
		return account.NewMemoryStorage(), pharmacy.NewMemoryStore(), nil, func() {}, nil
	}

	db, err := mongo.NewWithDatabase(ctx, cfg.Mongo, retry.WithLogger(log))
	if err != nil {
		return nil, nil, nil, nil, err
	}
	disconnect := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(ctx); err != nil {
			log.Error("failed to disconnect from mongodb", logger.Error(err))
		}
	}

	users, err := account.NewMongoStorage(ctx, db)
	if err != nil {
		disconnect()
		return nil, nil, nil, nil, err
	}
	store, err := pharmacy.NewMongoStore(ctx, db)
	if err != nil {
		disconnect()
		return nil, nil, nil, nil, err
	}
	return users, store, mongo.Healthcheck(db.Client()), disconnect, nil
}

func openLimiterStore(ctx context.Context, cfg appConfig, log *slog.Logger) (ratelimiter.Store, httpserver.Check, func(), error) {
	if cfg.Redis.ConnectionURL == "" {
		store := ratelimiter.NewMemoryStore()
		return store, nil, store.Close, nil
	}
	client, err := redis.Connect(ctx, cfg.Redis, retry.WithLogger(log))
	if err != nil {
		return nil, nil, nil, err
	}
	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", logger.Error(err))
		}
	}
	return ratelimiter.NewRedisStore(client), redis.Healthcheck(client), closeClient, nil
}

// seedAdmin creates the administrator account named in the environment.
func seedAdmin(ctx context.Context, accounts *account.Service, cfg appConfig, log *slog.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}
	_, err := accounts.SignUp(ctx, cfg.AdminEmail, cfg.AdminPassword, account.RoleAdmin)
	if err == nil {
		log.Info("admin account created", slog.String("email", cfg.AdminEmail))
		return nil
	}
	if apperror.Classify(err).Kind == apperror.KindEmailAlreadyInUse {
		return nil
	}
	return err
}
