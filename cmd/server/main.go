package main

//go:generate swag init -g cmd/server/main.go -d ../..

import (
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/dssvels/invoicer/config"
	_ "github.com/dssvels/invoicer/docs"
	"github.com/dssvels/invoicer/handlers"
	"github.com/dssvels/invoicer/invoice"
)

//go:embed static/*
var staticFiles embed.FS

// @title           Invoice Generator API
// @version         1.0.0
// @description     Browser front end for building invoice lines, emitting PDF/CSV invoices, and managing the invoice sequence configuration.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.basic  BasicAuth

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found")
	}

	// Configure structured logging
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Wire the shared config store and emitter for handlers
	store := config.Open(os.Getenv("CONFIG_PATH"))
	if _, err := store.Load(); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	outputDir := os.Getenv("OUTPUT_DIR")
	if outputDir == "" {
		outputDir = "invoices"
	}
	handlers.Store = store
	handlers.Emitter = &invoice.Emitter{
		Store:     store,
		Renderer:  &invoice.Renderer{LogoPath: os.Getenv("LOGO_PATH")},
		OutputDir: outputDir,
	}

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// API routes with basic auth
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(handlers.BasicAuth)

		// Invoice lines
		r.Get("/lines", handlers.ListLines)
		r.Post("/lines", handlers.AddLine)
		r.Delete("/lines", handlers.ClearLines)
		r.Delete("/lines/{index}", handlers.DeleteLine)
		r.Post("/lines/import", handlers.ImportLines)
		r.Post("/lines/testdata", handlers.LoadTestData)

		// Configuration
		r.Get("/config", handlers.GetConfig)
		r.Put("/config", handlers.UpdateConfig)

		// Emission
		r.Post("/invoices", handlers.CreateInvoice)
	})
	r.Get("/healthz", handlers.Healthz)

	// Serve the browser form
	staticFS, _ := fs.Sub(staticFiles, "static")
	r.Handle("/*", http.FileServer(http.FS(staticFS)))

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := fmt.Sprintf(":%s", port)
	slog.Info("server starting", "address", addr, "output_dir", outputDir)
	if err := http.ListenAndServe(addr, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
