package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/usvsched/internal/attempts"
	"github.com/example/usvsched/internal/booking"
	"github.com/example/usvsched/internal/browser"
	"github.com/example/usvsched/internal/config"
	"github.com/example/usvsched/internal/creds"
	"github.com/example/usvsched/internal/db"
	"github.com/example/usvsched/internal/migrate"
	"github.com/example/usvsched/internal/status"
)

func newRunCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Watch every location and retry until a slot is booked",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			c, err := creds.Load(cfg.CredentialsPath, cfg.CredEncKey)
			if err != nil {
				return err
			}

			driver, err := browser.Start(cfg.Headless, cfg.PageTimeout)
			if err != nil {
				return err
			}
			defer func() { _ = driver.Stop() }()

			var attemptLog booking.AttemptLog
			if cfg.DatabaseURL != "" {
				d, err := db.Open(ctx, cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer d.Close()
				if err := d.Ping(ctx); err != nil {
					return fmt.Errorf("db ping: %w", err)
				}
				if migrateUp {
					if err := migrate.Up(ctx, d); err != nil {
						return err
					}
				}
				attemptLog = attempts.NewRepo(d)
			}

			tracker := status.NewTracker()
			if cfg.StatusAddr != "" {
				routes := status.Routes(tracker, logger)
				go func() {
					if err := status.Start(ctx, cfg.StatusAddr, routes); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logger.Error("status server", "err", err)
					}
				}()
				logger.Info("status server listening", "addr", cfg.StatusAddr)
			}

			orch := newOrchestrator(cfg, c, driver, attemptLog, tracker, logger)
			rec, err := orch.Run(ctx)
			if err != nil {
				return err
			}
			logger.Info("appointment booked, exiting",
				"location", rec.Location.Label, "date", rec.Slot.Date, "time", rec.Slot.Time)
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")
	return cmd
}

func newOrchestrator(cfg config.Config, c creds.Credentials, sessions booking.SessionFactory,
	attemptLog booking.AttemptLog, tracker booking.Tracker, logger *slog.Logger) *booking.Orchestrator {

	policy := booking.FixedDelays{Cycle: cfg.RetryInterval, Location: cfg.LocationInterval}
	return &booking.Orchestrator{
		Sessions: sessions,
		Auth:     booking.Authenticator{BaseURL: cfg.BaseURL, Timeout: cfg.PageTimeout, Log: logger},
		Nav:      booking.Navigator{BaseURL: cfg.BaseURL, Log: logger},
		Sweeper: booking.LocationSweeper{
			Scanner: booking.AvailabilityScanner{Log: logger},
			Policy:  policy,
			Timeout: cfg.PageTimeout,
			Log:     logger,
		},
		Policy:   policy,
		Username: c.Username,
		Password: c.Password,
		Attempts: attemptLog,
		Tracker:  tracker,
		Log:      logger,
	}
}
