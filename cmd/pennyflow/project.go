package main

import (
	"fmt"
	"log/slog"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/payoff"
	"github.com/spf13/cobra"
)

func projectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project <debt-id>",
		Short: "Project payoff time for a single debt",
		Long: `Project how long a single debt takes to pay off, optionally with
an extra monthly payment. Useful for "what if I pay $50 more" questions.`,
		Args: cobra.ExactArgs(1),
		RunE: runProject,
	}

	cmd.Flags().Float64("extra", 0, "Extra monthly payment in dollars")

	return cmd
}

func runProject(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	extra, _ := cmd.Flags().GetFloat64("extra")

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	id, err := resolveDebtID(ctx, store, args[0])
	if err != nil {
		return err
	}

	debt, err := store.GetDebt(ctx, id)
	if err != nil {
		return err
	}

	extraCents := parseDollarsToCents(extra)
	baseline := payoff.Project(*debt, 0)
	projection := payoff.Project(*debt, extraCents)

	slog.Info(cli.FormatTitle(fmt.Sprintf("Projection for %q", debt.Name)))
	slog.Info(fmt.Sprintf("Balance: %s at %.2f%%", dollars(debt.BalanceCents), debt.InterestRate))

	if !projection.PaidOff {
		slog.Info(cli.FormatError(
			"This payment never pays off the debt - it does not keep up with interest"))
		return nil
	}

	slog.Info(fmt.Sprintf("Months to payoff:    %d", projection.Months))
	slog.Info(fmt.Sprintf("Total interest paid: %s", dollars(projection.TotalInterestCents)))

	if extraCents > 0 && baseline.PaidOff {
		monthsSaved := baseline.Months - projection.Months
		interestSaved := baseline.TotalInterestCents - projection.TotalInterestCents
		slog.Info(cli.FormatSuccess(fmt.Sprintf(
			"Paying %s extra saves %d months and %s in interest",
			dollars(extraCents), monthsSaved, dollars(interestSaved))))
	}

	return nil
}
