package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"logistics/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

type app struct {
	config cmd.Config
	logger *slog.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "app",
		Short:         "Order event history service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return a.init()
		},
	}

	root.AddCommand(a.serveCommand(), a.migrateCommand(), a.seedCommand())
	return root
}

func (a *app) init() error {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		return err
	}
	a.config = config
	a.logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: config.LogLevel}))
	return nil
}

func (a *app) serveCommand() *cobra.Command {
	var seedFile string

	command := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and run scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, seedFile)
		},
	}

	command.Flags().StringVarP(&seedFile, "seed", "f", "", "YAML seed file applied before the server starts")

	return command
}

func (a *app) serve(ctx context.Context, seedFile string) error {
	storage, err := cmd.OpenStorage(a.config, a.logger)
	if err != nil {
		return err
	}
	defer storage.Close()

	if seedFile != "" {
		if _, err = storage.SeedFile(ctx, seedFile, a.logger); err != nil {
			return err
		}
	}

	root := cmd.NewCompositionRoot(a.config, storage.UoWFactory, a.logger)

	e, err := root.CreateRouter()
	if err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server started", "port", a.config.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", a.config.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func (a *app) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(c *cobra.Command, _ []string) error {
			storage, err := cmd.OpenStorage(a.config, a.logger)
			if err != nil {
				return err
			}
			defer storage.Close()

			return storage.Migrate(c.Context(), a.logger)
		},
	}
}

func (a *app) seedCommand() *cobra.Command {
	var file string

	command := &cobra.Command{
		Use:   "seed",
		Short: "Insert organizations, persons, memberships and orders from a YAML file",
		RunE: func(c *cobra.Command, _ []string) error {
			storage, err := cmd.OpenStorage(a.config, a.logger)
			if err != nil {
				return err
			}
			defer storage.Close()

			if err = storage.RequirePersistent(); err != nil {
				return err
			}

			_, err = storage.SeedFile(c.Context(), file, a.logger)
			return err
		},
	}

	command.Flags().StringVarP(&file, "file", "f", "", "YAML seed file")
	_ = command.MarkFlagRequired("file")

	return command
}
