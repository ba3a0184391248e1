package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/betboard/apiclient"
	"github.com/danielhkuo/betboard/cliparse"
	"github.com/danielhkuo/betboard/db"
	"github.com/danielhkuo/betboard/middleware"
	"github.com/danielhkuo/betboard/router"
)

func main() {
	var err error

	setupLogger()

	// Parse configuration
	cliparse.LoadEnvFile(".env")
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the local state store
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("State store ready", "type", cfg.DatabaseType)

	store := db.NewTokenStore(dbConn)
	installID, err := store.InstallID()
	if err != nil {
		slog.Error("failed to load install id", "error", err)
		os.Exit(1)
	}

	api := apiclient.NewClient(cfg.APIBaseURL, installID)

	// Create router
	mux, err := router.NewRouter(api, store, cfg)
	if err != nil {
		slog.Error("router setup failed", "error", err)
		os.Exit(1)
	}

	// Loopback only: the UI holds the user's bearer token
	server := http.Server{
		Handler: middleware.SameOrigin(mux),
		Addr:    "127.0.0.1:" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		server.Close()
	}()

	slog.Info("Listening", "url", "http://"+server.Addr, "api", cfg.APIBaseURL)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// setupLogger logs human-readable text on a terminal and JSON otherwise.
// LOG_LEVEL=debug turns on per-request API logging.
func setupLogger() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if os.Getenv("LOG_LEVEL") == "debug" {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
