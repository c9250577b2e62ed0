/*
main.go - Application entry point

PURPOSE:

	Initializes and starts the shift engine server: configuration, store
	selection, dependency wiring, graceful shutdown.

CONFIGURATION (environment):

	PORT          HTTP server port               (default 8080)
	SHIFT_FILE    path to the shift record file  (default shifts.txt)
	RATE_FILE     path to the driver rate table  (default rates.txt)
	STORE         "flatfile" or "sqlite"         (default flatfile)
	SQLITE_PATH   database path when STORE=sqlite (default shifts.db,
	              ":memory:" for in-memory)

GRACEFUL SHUTDOWN:

	On SIGINT/SIGTERM: stop accepting connections, wait up to 30s for active
	requests, close the store, exit.

SEE ALSO:
  - api/server.go: Router configuration
  - store/flatfile, store/sqlite: Store backends
*/
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/warp/shift-engine/api"
	"github.com/warp/shift-engine/payroll"
	"github.com/warp/shift-engine/shift"
	"github.com/warp/shift-engine/store/flatfile"
	"github.com/warp/shift-engine/store/sqlite"
)

type config struct {
	Port       int    `env:"PORT" envDefault:"8080"`
	ShiftFile  string `env:"SHIFT_FILE" envDefault:"shifts.txt"`
	RateFile   string `env:"RATE_FILE" envDefault:"rates.txt"`
	Store      string `env:"STORE" envDefault:"flatfile"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"shifts.db"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse configuration: %v", err)
	}

	rules := shift.DefaultConfig()

	// Select store backend
	var store shift.Store
	switch cfg.Store {
	case "flatfile":
		store = flatfile.New(cfg.ShiftFile, rules)
	case "sqlite":
		s, err := sqlite.New(cfg.SQLitePath, rules)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer s.Close()
		store = s
	default:
		log.Fatalf("Unknown STORE %q (want flatfile or sqlite)", cfg.Store)
	}

	engine := payroll.NewEngine(store, payroll.NewRateFile(cfg.RateFile), rules)
	router := api.NewRouter(api.NewHandler(store, engine))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Shift engine listening on http://localhost:%d (store=%s)", cfg.Port, cfg.Store)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
