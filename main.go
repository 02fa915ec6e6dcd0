package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/waveforge/waveforge/internal/pkg/cache"
	"github.com/waveforge/waveforge/internal/pkg/database"
	"github.com/waveforge/waveforge/internal/pkg/env"
	"github.com/waveforge/waveforge/internal/pkg/jobqueue"
	"github.com/waveforge/waveforge/internal/pkg/payments"
	"github.com/waveforge/waveforge/internal/pkg/router"
	"github.com/waveforge/waveforge/internal/pkg/storage"
)

func main() {
	app := NewApplication()

	manager := jobqueue.GetManager()
	manager.Start()

	// graceful shutdown drains the job queue before the listener dies
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		manager.Stop()
		_ = app.Shutdown()
	}()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "8080")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	payments.Setup()
	if err := storage.Setup(); err != nil {
		log.Printf("object storage unavailable: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 104857600, // 100 MiB for installer uploads
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	// SWAGGER / OPENAPI
	openAPICfg := swagger.Config{
		BasePath: "/docs/api/",
		FilePath: "./public/docs/v1/openapi.yml",
		Path:     "v1",
	}
	app.Use(swagger.New(openAPICfg))

	// ROUTER
	router.InstallRouter(app)

	return app
}
