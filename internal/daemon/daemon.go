package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/sprachlog/sprachlog/internal/api"
	"github.com/sprachlog/sprachlog/internal/app"
	"github.com/sprachlog/sprachlog/internal/app/tracker"
	"github.com/sprachlog/sprachlog/internal/domain"
	"github.com/sprachlog/sprachlog/internal/health"
	_ "github.com/sprachlog/sprachlog/internal/infra/metrics" // Register Prometheus metrics
	"github.com/sprachlog/sprachlog/internal/infra/sqlite"
)

// Daemon is the sprachlog runtime. It wires the store, the tracker
// service and the HTTP API.
type Daemon struct {
	Config  Config
	DB      *sqlite.DB
	Tracker *tracker.Service
	Server  *api.Server
	Health  *health.Checker
	cancel  context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New(version string) (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg, version)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config, version string) (*Daemon, error) {
	db, err := sqlite.Open(sprachlogHome())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	plan, err := loadPlan()
	if err != nil {
		db.Close()
		return nil, err
	}

	svc, err := tracker.New(db, plan, cfg.Notifications)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init tracker: %w", err)
	}

	checker := health.NewChecker(db, sprachlogHome())

	srv := api.NewServer(svc, version)
	srv.SetHealth(checker)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	return &Daemon{
		Config:  cfg,
		DB:      db,
		Tracker: svc,
		Server:  srv,
		Health:  checker,
	}, nil
}

// loadPlan reads ~/.sprachlog/Planfile when present, otherwise the
// built-in weekly plan applies.
func loadPlan() (domain.Plan, error) {
	path := filepath.Join(sprachlogHome(), "Planfile")
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return app.DefaultPlan(), nil
	}
	if err != nil {
		return domain.Plan{}, fmt.Errorf("open Planfile: %w", err)
	}
	defer f.Close()

	plan, err := app.ParsePlanfile(f)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("parse Planfile: %w", err)
	}
	return *plan, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	// Health checker runs for the life of the server
	go d.Health.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		log.Printf("[daemon] shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[daemon] shutdown: %v", err)
		}
		_ = d.DB.Close()
	}()

	fmt.Printf("sprachlog serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
