package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/spf13/cobra"
)

func debtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "debt",
		Aliases: []string{"debts"},
		Short:   "Manage tracked debts",
		Long:    `Add, list, and remove the debts used by payoff simulations.`,
	}

	cmd.AddCommand(debtAddCmd())
	cmd.AddCommand(debtListCmd())
	cmd.AddCommand(debtDeleteCmd())

	return cmd
}

func debtAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			balance, _ := cmd.Flags().GetFloat64("balance")
			rate, _ := cmd.Flags().GetFloat64("rate")
			minimum, _ := cmd.Flags().GetFloat64("minimum")
			monthly, _ := cmd.Flags().GetFloat64("payment")

			if balance < 0 {
				return fmt.Errorf("balance cannot be negative")
			}

			debt := &model.Debt{
				ID:                  uuid.New().String(),
				Name:                args[0],
				BalanceCents:        parseDollarsToCents(balance),
				InterestRate:        rate,
				MinimumPaymentCents: parseDollarsToCents(minimum),
				MonthlyPaymentCents: parseDollarsToCents(monthly),
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.CreateDebt(ctx, debt); err != nil {
				return fmt.Errorf("failed to add debt: %w", err)
			}

			slog.Info(cli.FormatSuccess(fmt.Sprintf("Added debt %q (%s at %.2f%%)",
				debt.Name, dollars(debt.BalanceCents), debt.InterestRate)))
			return nil
		},
	}

	cmd.Flags().Float64("balance", 0, "Current balance in dollars")
	cmd.Flags().Float64("rate", 0, "Annual interest rate percentage (e.g. 19.99)")
	cmd.Flags().Float64("minimum", 0, "Minimum monthly payment in dollars")
	cmd.Flags().Float64("payment", 0, "Current monthly payment in dollars")
	_ = cmd.MarkFlagRequired("balance")

	return cmd
}

func debtListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked debts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

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
				slog.Info("No debts tracked - add one with 'pennyflow debt add'")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tBALANCE\tRATE\tMINIMUM\tPAYMENT")

			var totalCents int64
			for _, d := range debts {
				totalCents += d.BalanceCents
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%.2f%%\t%s\t%s\n",
					cli.FormatSubtle(shortID(d.ID)),
					d.Name,
					dollars(d.BalanceCents),
					d.InterestRate,
					dollars(d.MinimumPaymentCents),
					dollars(d.MonthlyPaymentCents),
				)
			}
			_ = w.Flush()

			slog.Info(fmt.Sprintf("Total debt: %s", dollars(totalCents)))
			return nil
		},
	}
}

func debtDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a debt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			id, err := resolveDebtID(ctx, store, args[0])
			if err != nil {
				return err
			}

			if err := store.DeleteDebt(ctx, id); err != nil {
				return fmt.Errorf("failed to delete debt: %w", err)
			}

			slog.Info(cli.FormatSuccess("Debt deleted"))
			return nil
		},
	}
}

// shortID truncates a UUID for table display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
