package routes

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/kinsha-retail/kinsha_shop/internal/auth"
	"github.com/kinsha-retail/kinsha_shop/internal/cart"
	"github.com/kinsha-retail/kinsha_shop/internal/catalog"
	"github.com/kinsha-retail/kinsha_shop/internal/config"
	"github.com/kinsha-retail/kinsha_shop/internal/identity"
	"github.com/kinsha-retail/kinsha_shop/internal/media"
	"github.com/kinsha-retail/kinsha_shop/internal/middleware"
	"github.com/kinsha-retail/kinsha_shop/internal/notification"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Media  media.Storage
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes. Route paths stay at
// the root level because deployed storefront and admin clients call them that
// way.
func Setup(app *fiber.App, d Deps) error {
	// The in-memory fallbacks are for dev and tests only.
	if !d.Cfg.IsDev() && d.DB == nil {
		return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
	}
	if d.Media == nil {
		return fmt.Errorf("media storage is required")
	}

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Audit(d.Logger))
	if d.Cache != nil {
		app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}

	RegisterHealthRoutes(app, d)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Shop API is running")
	})

	var identityRepo identity.Repository
	if d.DB != nil {
		identityRepo = identity.NewPostgresRepository(d.DB)
	} else {
		identityRepo = identity.NewMemoryRepository()
	}
	var catalogRepo catalog.Repository
	if d.DB != nil {
		catalogRepo = catalog.NewPostgresRepository(d.DB)
	} else {
		catalogRepo = catalog.NewMemoryRepository()
	}

	identitySvc := identity.NewService(identityRepo, d.Cfg.BcryptCost)
	signer := auth.NewSigner([]byte(d.Cfg.JWTSecret), d.Cfg.TokenTTL)
	authSvc := auth.NewService(identitySvc, signer)
	notifier := notification.NewLoggerNotifier(d.Logger)
	authHandler := auth.NewHandler(authSvc, notifier)

	cartHandler := cart.NewHandler(cart.NewService(identityRepo))
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo, d.Media, d.Logger))
	mediaHandler := media.NewHandler(d.Media)

	rateLimiter := middleware.AuthRateLimit(d.Cache, 5)
	RegisterAuthRoutes(app, authHandler, rateLimiter)
	RegisterCatalogRoutes(app, catalogHandler)
	RegisterMediaRoutes(app, mediaHandler, d.Media)

	gate := middleware.AuthToken(signer)
	RegisterCartRoutes(app, cartHandler, gate)

	return nil
}
