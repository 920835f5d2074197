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

	_ "github.com/Matthzin/ambisis-teste/docs"
	"github.com/Matthzin/ambisis-teste/internal/application/ports"
	"github.com/Matthzin/ambisis-teste/internal/application/usecase"
	"github.com/Matthzin/ambisis-teste/internal/infrastructure/postgres"
	"github.com/Matthzin/ambisis-teste/internal/infrastructure/rabbitmq"
	httpRouter "github.com/Matthzin/ambisis-teste/internal/interfaces/http"
	"github.com/Matthzin/ambisis-teste/pkg/config"
	"github.com/Matthzin/ambisis-teste/pkg/logger"
)

// @title        Cadastro de Licenças Ambientais
// @version      1.0
// @description  API de cadastro de empresas e suas licenças ambientais.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	// Publicador de eventos: RabbitMQ quando configurado, no-op caso contrário.
	var pub ports.EventPublisher = ports.NopPublisher{}
	if cfg.Broker.Enabled() {
		rabbitPub, err := rabbitmq.NewPublisher(cfg.Broker.URI, cfg.Broker.Queue)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão com o RabbitMQ")
		}
		defer func() { _ = rabbitPub.Close() }()
		pub = rabbitPub
	}

	companyRepo := postgres.NewCompanyRepository(pool)
	licenseRepo := postgres.NewLicenseRepository(pool)
	companyUC := usecase.NewCompanyUseCase(companyRepo, pub, cfg.Rules)
	licenseUC := usecase.NewLicenseUseCase(licenseRepo, companyRepo, pub, cfg.Rules)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())
	app.Use(httpRouter.Metrics())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Cadastro de Licenças Ambientais",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", httpRouter.MetricsHandler())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC: companyUC,
		LicenseUC: licenseUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
