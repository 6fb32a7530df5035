// @title                       Contacts API
// @version                     1.0
// @description                 API REST de contactos, direcciones y catálogo de productos.
// @BasePath                    /
// @securityDefinitions.apikey  ApiToken
// @in                          header
// @name                        X-API-TOKEN
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/contacts-api/docs"
	"github.com/jhoicas/contacts-api/internal/application/auth"
	"github.com/jhoicas/contacts-api/internal/application/ports"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
	"github.com/jhoicas/contacts-api/internal/infrastructure/memory"
	"github.com/jhoicas/contacts-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/contacts-api/internal/interfaces/http"
	"github.com/jhoicas/contacts-api/pkg/config"
	"github.com/jhoicas/contacts-api/pkg/logger"
	"github.com/jhoicas/contacts-api/pkg/password"
	"github.com/jhoicas/contacts-api/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	if err := cfg.Validate(); err != nil {
		panic("configuración inválida: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("storage", cfg.Storage.Driver).
		Msg("iniciando aplicación")

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("aplicación finalizada con error")
	}
	log.Info().Msg("aplicación detenida")
}

// run arma y sirve la aplicación; los defer (cierre del pool) corren también ante errores de arranque.
func run(cfg *config.Config, log *logger.Logger) error {
	ctx := context.Background()

	var (
		txRunner ports.TxRunner
		health   func(context.Context) error
	)
	switch cfg.Storage.Driver {
	case config.StorageMemory:
		txRunner = memory.NewStore()
		log.Warn().Msg("almacén en memoria: los datos se pierden al reiniciar")
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		defer pool.Close()
		if cfg.DB.AutoMigrate {
			if err := postgres.Migrate(ctx, pool, log.Component("migrate")); err != nil {
				return fmt.Errorf("migraciones: %w", err)
			}
		}
		txRunner = postgres.NewTxRunner(pool)
		health = pool.Ping
	}

	issuer, err := token.NewIssuer(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer)
	if err != nil {
		return fmt.Errorf("emisor de tokens: %w", err)
	}
	hasher := password.Bcrypt{}

	authUC := auth.NewAuthUseCase(txRunner, issuer, hasher, cfg.Auth.TokenTTL)
	userUC := usecase.NewUserUseCase(txRunner, hasher)
	contactUC := usecase.NewContactUseCase(txRunner)
	addressUC := usecase.NewAddressUseCase(txRunner)
	categoryUC := usecase.NewCategoryUseCase(txRunner)
	productUC := usecase.NewProductUseCase(txRunner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler(log.Component("http")),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins(cfg.HTTP.AllowedOrigins),
		AllowHeaders: "Origin, Content-Type, Accept, " + cfg.Auth.TokenHeader,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
	}))
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.HTTP.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerFile,
			Path:     "docs",
			Title:    "Contacts API",
		}))
	} else {
		log.Warn().Str("file", cfg.HTTP.SwaggerFile).Msg("swagger.json no encontrado, /docs deshabilitado")
	}
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		c.Type("json")
		return c.SendString(docs.SwaggerInfo.ReadDoc())
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ContactUC:   contactUC,
		AddressUC:   addressUC,
		CategoryUC:  categoryUC,
		ProductUC:   productUC,
		TokenHeader: cfg.Auth.TokenHeader,
		Health:      health,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return fmt.Errorf("apagado del servidor: %w", err)
	}
	return nil
}

func allowedOrigins(list string) string {
	if list == "" {
		return "*"
	}
	return list
}
