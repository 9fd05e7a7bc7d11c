// @title Medication Management API
// @version 1.0
// @description Seguimiento de medicación para care recipients: schedules, tomas y dashboard diario.
// @BasePath /
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jwtauth "medication-management/internal/adapters/auth/jwt"
	"medication-management/internal/adapters/auth/remote"
	pg "medication-management/internal/adapters/storage/postgres"
	"medication-management/internal/config"
	"medication-management/internal/domain/dashboard"
	"medication-management/internal/platform/logger"
	"medication-management/internal/platform/metrics"
	"medication-management/internal/ports/auth"
	"medication-management/internal/router"

	"github.com/spf13/cobra"
)

const appName = "medtracker"

func main() {
	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Medication management API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var migrate bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "Apply pending migrations before serving (Postgres only)")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded Postgres migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DBDSN == "" {
				return errors.New("DB_DSN is required to run migrations")
			}
			log := newLogger(cfg)

			ctx := cmd.Context()
			db, err := pg.Open(ctx, pg.Options{DSN: cfg.DBDSN, MaxOpenConns: cfg.DBMaxOpenConns})
			if err != nil {
				return err
			}
			defer db.Close()

			applied, err := pg.Migrate(ctx, db)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Info("migrations applied", map[string]any{"count": len(applied), "versions": applied})
			return nil
		},
	}
}

func newLogger(cfg *config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    appName,
	})
}

func runServer(ctx context.Context, migrate bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger(cfg)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	mode, err := dashboard.ParseMatching(cfg.DashboardTakenMatching)
	if err != nil {
		return err
	}

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(ctx, pg.Options{DSN: cfg.DBDSN, MaxOpenConns: cfg.DBMaxOpenConns})
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer db.Close()
		log.Info("connected to database", nil)

		if migrate {
			applied, err := pg.Migrate(ctx, db)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			log.Info("migrations applied", map[string]any{"count": len(applied)})
		}
	} else {
		log.Warn("DB_DSN not set, using in-memory store", nil)
	}

	jwtMgr, err := jwtauth.NewManager(jwtauth.Config{Secret: cfg.JWTSecret, TTL: cfg.JWTTTL, Issuer: appName})
	if err != nil {
		return err
	}

	var verifier auth.AuthVerifier
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		verifier = jwtMgr
	case config.AuthModeRemote:
		v, err := remote.NewVerifier(remote.Config{BaseURL: cfg.AuthRemoteURL, APIKey: cfg.AuthRemoteAPIKey})
		if err != nil {
			return err
		}
		verifier = v
	case config.AuthModeDev:
		log.Warn("AUTH_MODE=dev: requests authenticate with the X-Debug-User-ID header", nil)
	}

	handler, err := router.NewRouter(router.Options{
		AuthVerifier:  verifier,
		TokenIssuer:   jwtMgr,
		DB:            db,
		Logger:        log,
		Metrics:       metrics.New(),
		Clock:         func() time.Time { return time.Now().In(loc) },
		TakenMatching: mode,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":      srv.Addr,
			"env":       cfg.AppEnv,
			"auth_mode": cfg.AuthMode,
			"timezone":  loc.String(),
			"matching":  string(mode),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-quit:
	}

	log.Info("shutting down server", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	log.Info("server stopped", nil)
	return nil
}
