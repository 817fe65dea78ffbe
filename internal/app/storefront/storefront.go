// Package storefront собирает приложение витрины: хранилище, кеш, шину
// событий, почту, сервисы и HTTP-сервер.
package storefront

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/discount-storefront/internal/cache"
	"github.com/magabrotheeeer/discount-storefront/internal/config"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/jwt"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/discount-storefront/internal/lib/smtp"
	authservice "github.com/magabrotheeeer/discount-storefront/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/discount-storefront/internal/services/catalog"
	orderservice "github.com/magabrotheeeer/discount-storefront/internal/services/order"
	statsservice "github.com/magabrotheeeer/discount-storefront/internal/services/stats"
	"github.com/magabrotheeeer/discount-storefront/internal/storage"
)

// App держит HTTP-сервер и подключение к базе.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *storage.Storage
}

// New подключает зависимости и собирает приложение. Redis, RabbitMQ и SMTP
// опциональны: без них витрина работает с заглушками.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := storage.New(ctx, cfg.Mongo.MongoURL, cfg.Mongo.DBName)
	if err != nil {
		return nil, err
	}

	var catalogCache catalogservice.Cache = cache.NoopCache{}
	if cfg.Redis.AddressRedis != "" {
		redisCache, err := cache.InitServer(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		catalogCache = redisCache
	}

	var publisher orderservice.EventPublisher
	if cfg.RabbitMQ.RabbitURL != "" {
		rabbitPublisher, err := rabbitmq.Connect(cfg.RabbitMQ.RabbitURL, cfg.RabbitMQ.RabbitExchange)
		if err != nil {
			return nil, err
		}
		publisher = rabbitPublisher
	}

	var mailer authservice.Mailer = smtp.NewLogMailer(logger)
	if cfg.SMTP.SMTPHost != "" {
		transport := smtp.NewTransport(cfg.SMTP.SMTPHost, cfg.SMTP.SMTPPort, cfg.SMTP.SMTPUser, cfg.SMTP.SMTPPass, logger)
		mailer = smtp.NewMailer(transport, logger)
	}

	jwtMaker := jwt.NewMaker(cfg.JWTToken.JWTSecretKey, cfg.JWTToken.TokenTTL)

	authSvc := authservice.NewAuthService(db, mailer, jwtMaker, cfg.AdminEmail, logger)
	catalogSvc := catalogservice.NewCatalogService(db, catalogCache, logger)
	orderSvc := orderservice.NewOrderService(db, db, publisher, logger)
	statsSvc := statsservice.NewStatsService(db)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, authSvc, catalogSvc, orderSvc, statsSvc, db)

	srv := &http.Server{
		Addr:         cfg.HTTPServer.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.TimeoutHTTP,
		WriteTimeout: cfg.HTTPServer.TimeoutHTTP,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
	}, nil
}

// Run запускает HTTP-сервер и ждет завершения контекста для graceful shutdown.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.Close(timeoutCtx); closeErr != nil {
			a.logger.Error("failed to close storage", slog.Any("err", closeErr))
		}
		return err
	}
}
