package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/flag-watch/classify"
	"github.com/danielhkuo/flag-watch/cliparse"
	"github.com/danielhkuo/flag-watch/db"
	"github.com/danielhkuo/flag-watch/extract"
	"github.com/danielhkuo/flag-watch/middleware"
	"github.com/danielhkuo/flag-watch/reconcile"
	"github.com/danielhkuo/flag-watch/router"
	"github.com/danielhkuo/flag-watch/store"
)

func main() {
	var err error

	// Load .env if present (env vars already set take precedence)
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to the database
	driver := "sqlite"
	if cfg.DatabaseType == "postgres" {
		driver = "postgres"
	}
	dbConn, err := sql.Open(driver, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()
	if driver == "sqlite" {
		// SQLite handles one writer; keep everything on a single connection
		dbConn.SetMaxOpenConns(1)
	}

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// Wire the core
	st := store.New(dbConn)
	engine := reconcile.NewEngine(st)
	classifier := classify.New(
		extract.NewAnthropicExtractor(cfg.AnthropicAPIKey),
		extract.PatternExtractor{},
	)

	// Reconcile once at startup so the first read after downtime is fresh
	if err := engine.Sweep(time.Now()); err != nil {
		slog.Error("startup sweep failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(st, engine, classifier)

	// Create server. Status endpoints are read cross-origin by embedded widgets.
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
