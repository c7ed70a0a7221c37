package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go-stock-manager/internal/config"
	"go-stock-manager/internal/handler"
	"go-stock-manager/internal/logging"
	"go-stock-manager/internal/repository"
	"go-stock-manager/internal/service"
	"go-stock-manager/internal/ws"
	"go-stock-manager/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		logrus.Debug(".env file not found")
	}

	// 2. Secrets are mandatory; without them nothing below can run.
	cfg, err := config.Load(os.Getenv("SECRETS_FILE"))
	if err != nil {
		switch {
		case errors.Is(err, config.ErrSecretsFileMissing):
			logrus.Fatal("Missing secrets file. Create .streamlit/secrets.toml (or set SECRETS_FILE) with SUPABASE_URL and SUPABASE_KEY.")
		case errors.Is(err, config.ErrSecretMissing):
			logrus.Fatal("The secrets are missing SUPABASE_URL or SUPABASE_KEY.")
		default:
			logrus.Fatalf("Invalid configuration: %v", err)
		}
	}
	log := logging.Setup(cfg.LogLevel, cfg.LogFormat)

	// 3. Setup Database (one handle for the whole process)
	db, err := database.Connect(database.Options{
		Endpoint: cfg.StoreURL,
		Key:      cfg.StoreKey,
		Log:      log,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Info("Database connection established")

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub(log)
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	tables := repository.Tables{Products: cfg.ProductsTable, Categories: cfg.CategoriesTable}
	categoryRepo := repository.NewCategoryRepo(db, tables)
	productRepo := repository.NewProductRepo(db, tables)
	issueRepo := repository.NewIssueRepo(db)

	categoryService := service.NewCategoryService(categoryRepo, wsHub)
	productService := service.NewProductService(productRepo, categoryRepo, wsHub)
	issueService := service.NewIssueService(productRepo, issueRepo, wsHub, log, cfg.GuardedIssues())
	viewService := service.NewViewService(productRepo, log)

	sessions := session.New(session.Config{Expiration: cfg.SessionTTL})

	categoryHandler := handler.NewCategoryHandler(categoryService)
	productHandler := handler.NewProductHandler(productService)
	issueHandler := handler.NewIssueHandler(issueService, sessions)
	viewHandler := handler.NewViewHandler(viewService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Stock Manager v1.0",
	})

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// 7. Routes, one group per panel
	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api.Get("/categories", categoryHandler.GetCategories)
	api.Post("/categories", categoryHandler.CreateCategory)

	api.Get("/products", productHandler.GetProducts)
	api.Get("/products/form", productHandler.GetProductForm)
	api.Post("/products", productHandler.CreateProduct)

	api.Get("/issue", issueHandler.GetIssue)
	api.Post("/issue/select", issueHandler.SelectProduct)
	api.Post("/issue/submit", issueHandler.SubmitAmount)
	api.Post("/issue/reset", issueHandler.Reset)
	api.Get("/issues", issueHandler.GetJournal)

	api.Get("/view", viewHandler.GetView)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info("Server exited")
}
