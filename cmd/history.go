package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/usvsched/internal/attempts"
	"github.com/example/usvsched/internal/config"
	"github.com/example/usvsched/internal/db"
	"github.com/example/usvsched/internal/migrate"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	c := &cobra.Command{
		Use:   "history",
		Short: "List recent cycle attempts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is required")
			}

			ctx := context.Background()
			d, err := db.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer d.Close()

			if err := migrate.Up(ctx, d); err != nil {
				return err
			}

			rows, err := attempts.NewRepo(d).Recent(ctx, limit)
			if err != nil {
				return err
			}
			for _, a := range rows {
				line := fmt.Sprintf("%s  %-15s", a.CreatedAt.Format(time.RFC3339), a.Outcome)
				if a.Location != "" {
					line += "  " + a.Location
				}
				if a.SlotDate != "" {
					line += fmt.Sprintf("  %s %s", a.SlotDate, a.SlotTime)
				}
				if a.Error != nil {
					line += "  " + *a.Error
				}
				fmt.Fprintln(os.Stdout, line)
			}
			return nil
		},
	}

	c.Flags().IntVar(&limit, "limit", 20, "max attempts to list")
	return c
}
