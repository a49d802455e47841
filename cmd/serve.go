package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "courierdispatch/internal/adapters/in/http"
	"courierdispatch/internal/adapters/out/postgres"

	"github.com/spf13/cobra"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the dispatch jobs",
	RunE:  serve,
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", true, "migrate the schema before serving")
}

func serve(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := newLogger(cfg.Log.Level)

	db, err := openDatabase(cfg.DB, logger)
	if err != nil {
		return err
	}
	if autoMigrate {
		if err = postgres.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	app, err := NewCompositionRoot(cfg, db, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	router, err := httpadapter.NewRouter(app.CreateHTTPServer(), app.CreateRouterConfig())
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	addr := net.JoinHostPort("0.0.0.0", cfg.HTTP.Port)
	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		serverErr <- router.Start(addr)
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return router.Shutdown(shutdownCtx)
}
