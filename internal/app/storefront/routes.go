// Package storefront предоставляет маршруты приложения витрины.
package storefront

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	adminorderlist "github.com/magabrotheeeer/discount-storefront/internal/http/handlers/admin/orderlist"
	adminorderupdate "github.com/magabrotheeeer/discount-storefront/internal/http/handlers/admin/orderupdate"
	"github.com/magabrotheeeer/discount-storefront/internal/http/handlers/admin/productcreate"
	"github.com/magabrotheeeer/discount-storefront/internal/http/handlers/admin/productdelete"
	"github.com/magabrotheeeer/discount-storefront/internal/http/handlers/admin/productupdate"
	adminstats "github.com/magabrotheeeer/discount-storefront/internal/http/handlers/admin/stats"
	"github.com/magabrotheeeer/discount-storefront/internal/http/handlers/admin/userlist"
	"github.com/magabrotheeeer/discount-storefront/internal/http/handlers/auth/forgotpassword"
	"github.com/magabrotheeeer/discount-storefront/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/discount-storefront/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/discount-storefront/internal/http/handlers/auth/resetpassword"
	"github.com/magabrotheeeer/discount-storefront/internal/http/handlers/health"
	ordercreate "github.com/magabrotheeeer/discount-storefront/internal/http/handlers/order/create"
	orderlist "github.com/magabrotheeeer/discount-storefront/internal/http/handlers/order/list"
	productlist "github.com/magabrotheeeer/discount-storefront/internal/http/handlers/product/list"
	productread "github.com/magabrotheeeer/discount-storefront/internal/http/handlers/product/read"
	profileread "github.com/magabrotheeeer/discount-storefront/internal/http/handlers/profile/read"
	profileupdate "github.com/magabrotheeeer/discount-storefront/internal/http/handlers/profile/update"
	"github.com/magabrotheeeer/discount-storefront/internal/http/handlers/seed"
	"github.com/magabrotheeeer/discount-storefront/internal/http/middlewarectx"
	authservice "github.com/magabrotheeeer/discount-storefront/internal/services/auth"
	catalogservice "github.com/magabrotheeeer/discount-storefront/internal/services/catalog"
	orderservice "github.com/magabrotheeeer/discount-storefront/internal/services/order"
	statsservice "github.com/magabrotheeeer/discount-storefront/internal/services/stats"
	"github.com/magabrotheeeer/discount-storefront/internal/storage"
)

// RegisterRoutes регистрирует все маршруты приложения. Таблица статична:
// открытые конечные точки, группа с JWT и админская группа поверх нее.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authSvc *authservice.AuthService,
	catalogSvc *catalogservice.CatalogService,
	orderSvc *orderservice.OrderService,
	statsSvc *statsservice.StatsService,
	db *storage.Storage,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New().ServeHTTP)
		r.Get("/products", productlist.New(logger, catalogSvc).ServeHTTP)
		r.Get("/products/{id}", productread.New(logger, catalogSvc).ServeHTTP)
		r.Post("/auth/register", register.New(logger, authSvc).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authSvc).ServeHTTP)
		r.Post("/auth/forgot-password", forgotpassword.New(logger, authSvc).ServeHTTP)
		r.Post("/auth/reset-password", resetpassword.New(logger, authSvc).ServeHTTP)
		r.Post("/seed", seed.New(logger, catalogSvc).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authSvc, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Get("/profile", profileread.New(logger, authSvc).ServeHTTP)
			r.Put("/profile", profileupdate.New(logger, authSvc).ServeHTTP)
			r.Get("/orders", orderlist.New(logger, orderSvc).ServeHTTP)
			r.Post("/orders", ordercreate.New(logger, orderSvc).ServeHTTP)

			// Админская группа
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.AdminMiddleware(logger))
				r.Post("/admin/products", productcreate.New(logger, catalogSvc).ServeHTTP)
				r.Put("/admin/products/{id}", productupdate.New(logger, catalogSvc).ServeHTTP)
				r.Delete("/admin/products/{id}", productdelete.New(logger, catalogSvc).ServeHTTP)
				r.Get("/admin/orders", adminorderlist.New(logger, orderSvc).ServeHTTP)
				r.Put("/admin/orders/{id}", adminorderupdate.New(logger, orderSvc).ServeHTTP)
				r.Get("/admin/users", userlist.New(logger, db).ServeHTTP)
				r.Get("/admin/stats", adminstats.New(logger, statsSvc).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
