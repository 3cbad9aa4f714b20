package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"family-site-go/internal/app"
	"family-site-go/internal/config"
	"family-site-go/internal/db"
	"family-site-go/internal/domain/auth"
	"family-site-go/pkg/logger"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 5 * time.Second

func main() {
	log := logger.NewFromEnv()

	root := &cli.Command{
		Name:  "family-site",
		Usage: "Family website API: recipes, family entries and admin moderation",
		Commands: []*cli.Command{
			serveCommand(log),
			migrateCommand(log),
			hashPasswordCommand(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServer(ctx, log)
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		log.Critical("app: exited with error", "err", err)
		os.Exit(1)
	}
}

func serveCommand(log logger.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runServer(ctx, log)
		},
	}
}

func migrateCommand(log logger.Logger) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations and exit",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(log)
			if err != nil {
				return err
			}
			dbConn, err := db.Open(cfg.DB, log)
			if err != nil {
				return err
			}
			defer db.Close(dbConn)

			if err := db.Migrate(ctx, dbConn, cfg.DB.Driver); err != nil {
				return err
			}
			log.Info("db: migrations applied", "driver", cfg.DB.Driver)
			return nil
		},
	}
}

func hashPasswordCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash-password",
		Usage:     "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		ArgsUsage: "<password>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			password := cmd.Args().First()
			if password == "" {
				return errors.New("hash-password: password argument is required")
			}
			hash, err := auth.HashPassword(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.Root().Writer, hash)
			return nil
		},
	}
}

func runServer(ctx context.Context, log logger.Logger) error {
	log.Info("app: starting")

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(log)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	application, err := app.New(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	srv := application.HTTPServer()
	log.Info("http: listening", "addr", srv.Addr, "env", cfg.Env)

	serverErrCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("app: shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			log.Critical("http: server failed", "addr", srv.Addr, "err", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("http: graceful shutdown failed", "err", err)
		runErr = errors.Join(runErr, err)
	}

	if err := application.Close(shutdownCtx); err != nil {
		log.Error("app: close failed", "err", err)
		runErr = errors.Join(runErr, err)
	}

	if runErr == nil {
		log.Info("app: stopped")
	}
	return runErr
}
