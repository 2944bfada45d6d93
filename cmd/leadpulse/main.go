package main

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberredis "github.com/gofiber/storage/redis"

	"github.com/leadpulse/LeadPulse/internal/pkg/cache"
	"github.com/leadpulse/LeadPulse/internal/pkg/database"
	"github.com/leadpulse/LeadPulse/internal/pkg/env"
	"github.com/leadpulse/LeadPulse/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	app := fiber.New(fiber.Config{
		AppName:   "LeadPulse Billing",
		BodyLimit: 1 << 20, // webhook payloads are small; 1 MiB is generous
	})

	// recovery and logging
	app.Use(recover.New(), logger.New())

	// rate limiting backed by redis so limits survive restarts and apply
	// across instances
	cachePort, _ := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: 1 * time.Minute,
		Storage: fiberredis.New(fiberredis.Config{
			Host: env.GetEnv("CACHE_HOST", "localhost"),
			Port: cachePort,
		}),
	}))

	// ROUTER
	router.InstallRouter(app)

	return app
}
