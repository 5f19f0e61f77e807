package server

import (
	"MyStorage/database"
	"MyStorage/internal/config"
	"MyStorage/internal/handlers"
	"MyStorage/internal/helpers"
	"MyStorage/internal/repository"
	"MyStorage/internal/routers"
	"crypto/rand"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"
)

const tokenTTL = 24 * time.Hour

// NewDemoApp builds the in-process backend used by --demo: an in-memory
// database, a temporary upload directory and the seeded demo account.
func NewDemoApp(cfg *config.Configuration, log *logrus.Logger) (*fiber.App, func(), error) {
	db, err := database.SetupDemoDatabase()
	if err != nil {
		return nil, nil, fmt.Errorf("demo database: %w", err)
	}
	uploadDir, err := os.MkdirTemp("", "mystorage-uploads-")
	if err != nil {
		database.CloseDatabase(db, log)
		return nil, nil, err
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		database.CloseDatabase(db, log)
		_ = os.RemoveAll(uploadDir)
		return nil, nil, err
	}

	accounts := repository.NewAccountRepository(db)
	boxes := repository.NewBoxRepository(db)
	items := repository.NewItemRepository(db)
	if err := Seed(accounts, boxes, items); err != nil {
		database.CloseDatabase(db, log)
		_ = os.RemoveAll(uploadDir)
		return nil, nil, fmt.Errorf("seed demo data: %w", err)
	}

	maxBytes := cfg.Upload.MaxUploadBytes()
	app := fiber.New(fiber.Config{
		AppName:      "MyStorage demo",
		BodyLimit:    int(maxBytes) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})
	requestLog := log.WriterLevel(logrus.DebugLevel)
	app.Use(logger.New(logger.Config{Output: requestLog, DisableColors: true}))

	tokens := handlers.NewTokenIssuer(secret, tokenTTL, time.Now)
	routers.SetupRoutes(app, routers.Handlers{
		Auth:        handlers.NewAuthHandler(accounts, tokens, log),
		Box:         handlers.NewBoxHandler(boxes, items, accounts, log),
		Item:        handlers.NewItemHandler(items, boxes),
		Upload:      handlers.NewUploadHandler(uploadDir, maxBytes, log),
		RequireAuth: handlers.RequireAuth(tokens, accounts),
	}, uploadDir)

	log.WithFields(logrus.Fields{
		"uploads": uploadDir,
		"account": DemoEmail,
	}).Info("demo backend ready")

	cleanup := func() {
		_ = requestLog.Close()
		database.CloseDatabase(db, log)
		if err := helpers.DeleteFile(uploadDir, true); err != nil {
			log.WithFields(logrus.Fields{"error": err.Error()}).Warn("could not remove demo uploads")
		}
	}
	return app, cleanup, nil
}

// NewHTTPClient returns the client the API layer talks through. In demo mode
// requests never leave the process.
func NewHTTPClient(cfg *config.Configuration, log *logrus.Logger) (*http.Client, func(), error) {
	if !cfg.API.Demo {
		return &http.Client{}, func() {}, nil
	}
	app, cleanup, err := NewDemoApp(cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return &http.Client{Transport: NewTransport(app)}, cleanup, nil
}
