package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/payoff"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare snowball vs avalanche payoff strategies",
		Long: `Run both payoff strategies on identical inputs and show what
choosing avalanche saves in interest and time.`,
		RunE: runCompare,
	}

	cmd.Flags().Float64("extra", 0, "Extra monthly payment in dollars")

	return cmd
}

func runCompare(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	extra, _ := cmd.Flags().GetFloat64("extra")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	debts, err := store.ListDebts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list debts: %w", err)
	}
	if len(debts) == 0 {
		slog.Info(cli.FormatWarning("No debts tracked - add one with 'pennyflow debt add'"))
		return nil
	}

	comparison, err := payoff.Compare(debts, parseDollarsToCents(extra), startOfNextMonth(time.Now()))
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Strategy comparison"))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "STRATEGY\tMONTHS\tTOTAL INTEREST")
	_, _ = fmt.Fprintf(w, "snowball\t%d\t%s\n",
		comparison.Snowball.Months, dollars(comparison.Snowball.TotalInterestCents))
	_, _ = fmt.Fprintf(w, "avalanche\t%d\t%s\n",
		comparison.Avalanche.Months, dollars(comparison.Avalanche.TotalInterestCents))
	_ = w.Flush()

	if comparison.InterestSavedCents > 0 {
		slog.Info(cli.FormatSuccess(fmt.Sprintf(
			"Avalanche saves %s in interest", dollars(comparison.InterestSavedCents))))
	} else {
		slog.Info("Both strategies cost the same in interest for these debts")
	}
	if comparison.MonthsSaved > 0 {
		slog.Info(fmt.Sprintf("Avalanche finishes %d months sooner", comparison.MonthsSaved))
	}

	return nil
}
