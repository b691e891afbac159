package main

import (
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/stripeboard/stripeboard/app/controllers"
	apiv1 "github.com/stripeboard/stripeboard/internal/api/v1"
	"github.com/stripeboard/stripeboard/internal/pkg/analytics"
	"github.com/stripeboard/stripeboard/internal/pkg/catalog"
	"github.com/stripeboard/stripeboard/internal/pkg/config"
	"github.com/stripeboard/stripeboard/internal/pkg/products"
	"github.com/stripeboard/stripeboard/internal/pkg/router"
	"github.com/stripeboard/stripeboard/internal/pkg/stripe"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	app, err := NewApplication(cfg)
	if err != nil {
		if errors.Is(err, config.ErrCredentialMissing) || errors.Is(err, config.ErrCredentialMalformed) {
			log.Fatalf("configuration error: %v (set STRIPE_SECRET_KEY in the environment or a .env file)", err)
		}
		log.Fatalf("startup error: %v", err)
	}

	log.Printf("Starting Stripe revenue dashboard on http://%s/", cfg.App.Address())
	log.Fatal(app.Listen(cfg.App.Address()))
}

// NewApplication builds the Fiber app with all views and services wired.
func NewApplication(cfg *config.Config) (*fiber.App, error) {
	client, err := stripe.NewClient(cfg.Stripe)
	if err != nil {
		return nil, err
	}

	controllers.Initialize(
		catalog.NewService(client, cfg.App.BaseURL),
		products.NewService(client),
		analytics.NewService(client),
		cfg.App.IsDev(),
	)

	basePath, err := findBasePath()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		Views: html.New(basePath+"views", ".html"),
	})

	app.Use(recover.New(), logger.New())

	if cfg.Metrics.Enabled() {
		app.Get("/metrics", basicauth.New(basicauth.Config{
			Users: map[string]string{
				cfg.Metrics.User: cfg.Metrics.Password,
			},
		}), monitor.New())
	} else {
		log.Println("metrics endpoint disabled, set METRICS_PASSWORD to enable /metrics")
	}

	app.Static("/", basePath+"public/assets")

	router.InstallRouter(app,
		router.NewHttpRouter(),
		router.NewApiRouter(apiv1.NewAPIServer(client)),
	)

	return app, nil
}

// findBasePath locates the project root so the binary works from the repo
// root and from cmd/stripeboard.
func findBasePath() (string, error) {
	basePaths := []string{
		"./",
		"../../",
		"../../../",
	}

	for _, path := range basePaths {
		if _, err := os.Stat(path + "views"); !os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", errors.New("could not find the views directory from the working directory")
}
