// Command outgo is a local expense tracker. It records expenses for the
// current period, shows per-category totals, and archives the period
// into an immutable history on demand. All data stays on this machine.
package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"outgo/internal/adapter/storage/file"
	"outgo/internal/adapter/storage/memory"
	"outgo/internal/adapter/storage/redis"
	"outgo/internal/adapter/storage/sqlite"
	"outgo/internal/domain"
	"outgo/internal/infrastructure/config"
	"outgo/internal/infrastructure/logger"
	"outgo/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load configuration:", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := newRootCmd(cfg, log).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "outgo",
		Short:         "Track expenses for the current period",
		Long:          "A local expense tracker: record expenses, view category totals, and archive the current period into history.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newAddCmd(cfg, log),
		newListCmd(cfg, log),
		newTotalsCmd(cfg, log),
		newArchiveCmd(cfg, log),
		newHistoryCmd(cfg, log),
		newCurrencyCmd(cfg, log),
		newExportCmd(cfg, log),
	)
	return root
}

// openTracker builds the configured storage adapter, constructs the
// tracker over it and runs the startup load. The returned closer
// releases adapter resources.
func openTracker(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*store.Tracker, func(), error) {
	var (
		adapter store.Storage
		closer  = func() {}
	)

	switch cfg.StorageBackend {
	case config.BackendFile:
		dir, err := cfg.ResolveDataDir()
		if err != nil {
			return nil, nil, err
		}
		adapter, err = file.New(dir)
		if err != nil {
			return nil, nil, err
		}
	case config.BackendSQLite:
		path, err := cfg.SQLitePath()
		if err != nil {
			return nil, nil, err
		}
		s, err := sqlite.New(path)
		if err != nil {
			return nil, nil, err
		}
		adapter = s
		closer = func() { s.Close() }
	case config.BackendRedis:
		s, err := redis.New(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		adapter = s
		closer = func() { s.Close() }
	case config.BackendMemory:
		adapter = memory.New()
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}

	tracker := store.New(adapter, log)
	if err := tracker.Load(ctx); err != nil {
		closer()
		return nil, nil, err
	}
	return tracker, closer, nil
}

func newAddCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	var (
		amount   float64
		category string
		note     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Input validation lives here, not in the store.
			if amount <= 0 {
				return fmt.Errorf("amount must be positive, got %v", amount)
			}
			if strings.TrimSpace(category) == "" {
				return fmt.Errorf("category must not be empty")
			}

			tracker, closer, err := openTracker(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closer()

			e, err := tracker.Add(cmd.Context(), store.AddInput{
				Amount:   amount,
				Category: category,
				Note:     note,
			})
			if err != nil {
				// The expense is in memory regardless; warn and report it.
				log.Warn().Err(err).Msg("expense recorded but not persisted")
			}

			symbol := tracker.Currency().Symbol()
			fmt.Fprintf(cmd.OutOrStdout(), "added %s%.2f to %s (%s)\n", symbol, e.Amount, e.Category, e.ID)
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "expense amount")
	cmd.Flags().StringVar(&category, "category", "", "expense category")
	cmd.Flags().StringVar(&note, "note", "", "optional note")
	_ = cmd.MarkFlagRequired("amount")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newListCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expenses in the current period, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, closer, err := openTracker(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closer()

			expenses := tracker.Expenses()
			if len(expenses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no expenses in the current period")
				return nil
			}

			symbol := tracker.Currency().Symbol()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range expenses {
				fmt.Fprintf(w, "%s\t%s\t%s%.2f\t%s\t%s\n",
					displayDate(e.Date), e.Category, symbol, e.Amount, e.Note, e.ID)
			}
			return w.Flush()
		},
	}
}

func newTotalsCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "totals",
		Short: "Show per-category totals for the current period",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, closer, err := openTracker(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closer()

			totals := tracker.CategoryTotals()
			if len(totals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no expenses in the current period")
				return nil
			}

			categories := make([]string, 0, len(totals))
			for c := range totals {
				categories = append(categories, c)
			}
			sort.Strings(categories)

			symbol := tracker.Currency().Symbol()
			var grand float64
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%s%.2f\n", c, symbol, totals[c])
				grand += totals[c]
			}
			fmt.Fprintf(w, "total\t%s%.2f\n", symbol, grand)
			return w.Flush()
		},
	}
}

func newArchiveCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "Freeze the current period into history and start a new one",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, closer, err := openTracker(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closer()

			snap, err := tracker.ArchivePeriod(cmd.Context())
			if snap == nil && err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to archive")
				return nil
			}
			if snap != nil {
				symbol := tracker.Currency().Symbol()
				fmt.Fprintf(cmd.OutOrStdout(), "archived %d expenses, total %s%.2f (snapshot %s)\n",
					len(snap.Expenses), symbol, snap.Total, snap.ID)
			}
			return err
		},
	}
}

func newHistoryCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List archived periods, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, closer, err := openTracker(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closer()

			history := tracker.History()
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no history yet; archive the current period to create a snapshot")
				return nil
			}

			symbol := tracker.Currency().Symbol()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, s := range history {
				fmt.Fprintf(w, "%s\t%d expenses\t%s%.2f\t%s\n",
					displayDate(s.Date), len(s.Expenses), symbol, s.Total, s.ID)
			}
			return w.Flush()
		},
	}
}

func newCurrencyCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "currency [CODE]",
		Short: "Show or change the display currency",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, closer, err := openTracker(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closer()

			if len(args) == 0 {
				c := tracker.Currency()
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", c, c.Symbol())
				return nil
			}

			code := domain.Currency(strings.ToUpper(args[0]))
			if !code.Supported() {
				return fmt.Errorf("unsupported currency %q, choose one of %v", args[0], domain.Currencies())
			}
			if err := tracker.SetCurrency(cmd.Context(), code); err != nil {
				log.Warn().Err(err).Msg("currency changed but not persisted")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "currency set to %s (%s)\n", code, code.Symbol())
			return nil
		},
	}
}

// displayDate trims an RFC 3339 timestamp down to its date for listing.
func displayDate(ts string) string {
	if t, err := time.Parse(time.RFC3339, ts); err == nil {
		return t.Format("2006-01-02")
	}
	return ts
}
