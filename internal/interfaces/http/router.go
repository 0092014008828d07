package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/auth"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/dto"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/home"
	"github.com/jhoicas/Inmobiliaria-api/internal/domain/entity"
	"github.com/jhoicas/Inmobiliaria-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	HomeUC        *home.HomeUseCase
	SheetUC       *home.SheetUseCase
	UploadUC      *home.ImageUploadUseCase
	Users         UserFinder
	JWTSecret     string
	AuthRateLimit int // peticiones por minuto e IP en /auth; 0 = sin límite
	ServiceName   string
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	guard := NewGuard(deps.JWTSecret, deps.Users, deps.Log.Named("guard"))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.ServiceName})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Auth (público, con rate limit por IP)
	authGroup := app.Group("/auth")
	if deps.AuthRateLimit > 0 {
		authGroup.Use(limiter.New(limiter.Config{
			Max:        deps.AuthRateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Code: "RATE_LIMITED", Message: "demasiadas peticiones"})
			},
		}))
	}
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup/:userType", authHandler.Signup)
	authGroup.Post("/signin", authHandler.Signin)
	authGroup.Post("/key", authHandler.GenerateProductKey)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Post("/logout", authHandler.Logout)

	// Homes: lectura pública, escritura por rol; el dueño se verifica en el handler.
	homes := app.Group("/home")
	homeHandler := NewHomeHandler(deps.HomeUC, deps.SheetUC, deps.UploadUC)
	realtor := guard.RequireRoles(entity.RoleRealtor)
	buyer := guard.RequireRoles(entity.RoleBuyer)

	homes.Get("/", homeHandler.List)
	homes.Post("/", realtor, homeHandler.Create)
	homes.Post("/images/upload-url", realtor, homeHandler.UploadURL)
	homes.Post("/inquire/:id", buyer, homeHandler.Inquire)
	homes.Get("/:id", homeHandler.GetByID)
	homes.Put("/:id", realtor, homeHandler.Update)
	homes.Delete("/:id", realtor, homeHandler.Delete)
	homes.Get("/:id/messages", realtor, homeHandler.Messages)
	homes.Get("/:id/sheet", homeHandler.Sheet)
}
