package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"outgo/internal/domain"
	"outgo/internal/infrastructure/config"
)

func newExportCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the current period to a CSV file",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, closer, err := openTracker(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closer()

			expenses := tracker.Expenses()
			if len(expenses) == 0 {
				return fmt.Errorf("no expenses to export")
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create %s: %w", out, err)
			}
			if err := writeCSV(f, expenses); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d expenses to %s\n", len(expenses), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "expenses.csv", "output file")
	return cmd
}

// writeCSV writes one row per expense, amounts unformatted.
func writeCSV(w io.Writer, expenses []domain.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ID", "Date", "Category", "Amount", "Note"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range expenses {
		row := []string{
			e.ID,
			e.Date,
			e.Category,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			e.Note,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
