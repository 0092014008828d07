package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Inmobiliaria-api/internal/application/auth"
	"github.com/jhoicas/Inmobiliaria-api/internal/application/home"
	"github.com/jhoicas/Inmobiliaria-api/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/Inmobiliaria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Inmobiliaria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Inmobiliaria-api/internal/infrastructure/storage"
	"github.com/jhoicas/Inmobiliaria-api/internal/infrastructure/telemetry"
	httpRouter "github.com/jhoicas/Inmobiliaria-api/internal/interfaces/http"
	"github.com/jhoicas/Inmobiliaria-api/pkg/config"
	"github.com/jhoicas/Inmobiliaria-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.App.Name, cfg.App.Env, cfg.Telemetry.OTLPEndpoint)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar OpenTelemetry")
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Error().Err(err).Msg("apagado de OpenTelemetry")
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if cfg.DB.AutoMigrate {
		if err := postgres.ApplySchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	homeRepo := postgres.NewHomeRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Eventos: NATS si está configurado; si no, se descartan.
	var publisher home.EventPublisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		natsPub, err := events.NewNatsPublisher(cfg.NATS.URL, cfg.App.Name, log.Named("nats"))
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a NATS")
		}
		defer natsPub.Close()
		publisher = natsPub
	}

	// Almacenamiento de imágenes: sin bucket la subida responde 503.
	var presigner home.ImagePresigner
	if cfg.S3.Enabled() {
		s3Presigner, err := storage.NewS3Presigner(ctx, cfg.S3)
		if err != nil {
			log.Fatal().Err(err).Msg("cliente S3")
		}
		presigner = s3Presigner
	}

	authUC, err := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.ProductKey.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("caso de uso de auth")
	}
	homeUC := home.NewHomeUseCase(homeRepo, messageRepo, txRunner, publisher, log.Named("home"))
	sheetUC := home.NewSheetUseCase(homeRepo, infrapdf.NewListingSheetGenerator("es"), cfg.HTTP.PublicBaseURL)
	uploadUC := home.NewImageUploadUseCase(presigner)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.Tracing())
	app.Use(httpRouter.Metrics())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inmobiliaria API",
		}))
	} else {
		log.Warn().Str("file", swaggerFile).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		HomeUC:        homeUC,
		SheetUC:       sheetUC,
		UploadUC:      uploadUC,
		Users:         userRepo,
		JWTSecret:     cfg.JWT.Secret,
		AuthRateLimit: cfg.HTTP.AuthRateLimit,
		ServiceName:   cfg.App.Name,
		Log:           log,
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
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
