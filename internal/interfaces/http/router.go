package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/contacts-api/internal/application/auth"
	"github.com/jhoicas/contacts-api/internal/application/dto"
	"github.com/jhoicas/contacts-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ContactUC   *usecase.ContactUseCase
	AddressUC   *usecase.AddressUseCase
	CategoryUC  *usecase.CategoryUseCase
	ProductUC   *usecase.ProductUseCase
	TokenHeader string
	// Health comprueba el almacén para /health; nil = siempre disponible.
	Health func(ctx context.Context) error
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if deps.Health != nil {
			if err := deps.Health(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.WebResponse{Errors: "almacén no disponible"})
			}
		}
		return c.JSON(dto.WebResponse{Messages: "ok"})
	})

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)

	// Rutas protegidas: middleware por ruta; /docs y rutas inexistentes no pasan por auth.
	protected := authenticated{app: app, mw: AuthMiddleware(deps.AuthUC, deps.TokenHeader)}
	protected.Delete("/auth/logout", authHandler.Logout)

	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users/current", userHandler.Get)
	protected.Patch("/users/current", userHandler.Update)

	// Contacts y sus direcciones
	contactHandler := NewContactHandler(deps.ContactUC)
	protected.Post("/contacts", contactHandler.Create)
	protected.Get("/contacts", contactHandler.Search)
	protected.Get("/contacts/:contactId", contactHandler.Get)
	protected.Put("/contacts/:contactId", contactHandler.Update)
	protected.Delete("/contacts/:contactId", contactHandler.Delete)

	addressHandler := NewAddressHandler(deps.AddressUC)
	protected.Post("/contacts/:contactId/addresses", addressHandler.Create)
	protected.Get("/contacts/:contactId/addresses", addressHandler.List)
	protected.Get("/contacts/:contactId/addresses/:addressId", addressHandler.Get)
	protected.Put("/contacts/:contactId/addresses/:addressId", addressHandler.Update)
	protected.Delete("/contacts/:contactId/addresses/:addressId", addressHandler.Delete)

	// Catálogo
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.ProductUC)
	protected.Post("/categories", categoryHandler.Create)
	protected.Get("/categories", categoryHandler.List)
	protected.Get("/categories/:categoryId", categoryHandler.Get)
	protected.Put("/categories/:categoryId", categoryHandler.Update)
	protected.Delete("/categories/:categoryId", categoryHandler.Delete)
	protected.Get("/categories/:categoryId/products", categoryHandler.ListProducts)

	productHandler := NewProductHandler(deps.ProductUC)
	protected.Post("/products", productHandler.Create)
	protected.Get("/products", productHandler.Search)
	protected.Get("/products/:productId", productHandler.Get)
	protected.Put("/products/:productId", productHandler.Update)
	protected.Delete("/products/:productId", productHandler.Delete)
}

type authenticated struct {
	app *fiber.App
	mw  fiber.Handler
}

func (a authenticated) Get(path string, h fiber.Handler)    { a.app.Get(path, a.mw, h) }
func (a authenticated) Post(path string, h fiber.Handler)   { a.app.Post(path, a.mw, h) }
func (a authenticated) Put(path string, h fiber.Handler)    { a.app.Put(path, a.mw, h) }
func (a authenticated) Patch(path string, h fiber.Handler)  { a.app.Patch(path, a.mw, h) }
func (a authenticated) Delete(path string, h fiber.Handler) { a.app.Delete(path, a.mw, h) }
