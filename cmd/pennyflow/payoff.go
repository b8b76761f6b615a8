package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/payoff"
	"github.com/spf13/cobra"
)

func payoffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payoff",
		Short: "Simulate a debt-payoff schedule",
		Long: `Simulate month-by-month debt payoff for all tracked debts.

The snowball strategy pays smallest balances first; avalanche pays
highest interest rates first. Extra payment is applied to the top
priority debt each month after every debt's minimum is covered.`,
		RunE: runPayoff,
	}

	cmd.Flags().String("strategy", "snowball", "Payoff strategy: snowball or avalanche")
	cmd.Flags().Float64("extra", 0, "Extra monthly payment in dollars")
	cmd.Flags().Bool("months", false, "Print the full month-by-month table")

	return cmd
}

func runPayoff(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	strategyName, _ := cmd.Flags().GetString("strategy")
	extra, _ := cmd.Flags().GetFloat64("extra")
	showMonths, _ := cmd.Flags().GetBool("months")

	strategy, err := model.ParseStrategy(strategyName)
	if err != nil {
		return err
	}

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

	plan, err := payoff.Simulate(debts, parseDollarsToCents(extra), strategy, startOfNextMonth(time.Now()))
	if err != nil {
		return err
	}

	printPlanSummary(plan)
	if showMonths {
		printSchedule(plan)
	}

	return nil
}

func printPlanSummary(plan *model.PayoffPlan) {
	slog.Info(cli.FormatTitle(fmt.Sprintf("Payoff plan (%s)", plan.Strategy)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "PRIORITY\tNAME\tBALANCE\tRATE")
	for i, d := range plan.Debts {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%.2f%%\n",
			i+1, d.Name, dollars(d.BalanceCents), d.InterestRate)
	}
	_ = w.Flush()

	if !plan.PaidOff {
		slog.Info(cli.FormatError(
			"This plan does not pay off the debt within 50 years - payments do not keep up with interest"))
	}

	slog.Info(fmt.Sprintf("Months to payoff:    %d", plan.Months))
	slog.Info(fmt.Sprintf("Total interest paid: %s", dollars(plan.TotalInterestCents)))
	if len(plan.Schedule) > 0 && plan.PaidOff {
		last := plan.Schedule[len(plan.Schedule)-1]
		slog.Info(cli.FormatSuccess(fmt.Sprintf("Debt free: %s", last.Date.Format("January 2006"))))
	}
}

func printSchedule(plan *model.PayoffPlan) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "MONTH\tDATE\tPAID\tINTEREST\tREMAINING")

	for _, m := range plan.Schedule {
		var paid int64
		for _, p := range m.Payments {
			paid += p.TotalPaidCents
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			m.MonthIndex,
			m.Date.Format("2006-01"),
			dollars(paid),
			dollars(m.InterestCents),
			dollars(m.RemainingBalanceCents),
		)
	}

	_ = w.Flush()
}

// startOfNextMonth returns the first day of the month after t. Simulated
// schedules begin on a clean month boundary.
func startOfNextMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}
