package cmd

import (
	"context"
	"fmt"
	"log/slog"
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
)

// once runs a single cycle, for use under an external scheduler (cron,
// systemd timer) instead of the built-in retry loop.
func newOnceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "once",
		Short: "Run a single attempt cycle and exit",
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
				if err := migrate.Up(ctx, d); err != nil {
					return err
				}
				attemptLog = attempts.NewRepo(d)
			}

			orch := newOrchestrator(cfg, c, driver, attemptLog, nil, logger)
			rec := orch.RunCycle(ctx)
			switch rec.Outcome {
			case booking.OutcomeBooked:
				fmt.Fprintf(os.Stdout, "booked %s %s at %s\n", rec.Slot.Date, rec.Slot.Time, rec.Location.Label)
				return nil
			case booking.OutcomeNoAvailability:
				return fmt.Errorf("no availability at any location")
			default:
				return fmt.Errorf("cycle failed: %s", rec.Err)
			}
		},
	}
}
