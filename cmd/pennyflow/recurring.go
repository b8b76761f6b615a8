package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/model"
	"github.com/pennyflow/pennyflow/internal/recurring"
	"github.com/pennyflow/pennyflow/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func recurringCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recurring",
		Short: "Detect recurring expenses and income",
		Long: `Analyze stored transactions for recurring charge and income patterns.

Expenses are clustered by vendor and amount, classified by cadence
(weekly through annual), and normalized to monthly-equivalent amounts.
Only weekly, biweekly, and monthly expense patterns seen in the last six
months are shown; pass --all to include quarterly and annual patterns.`,
		RunE: runRecurring,
	}

	cmd.Flags().Bool("all", false, "Include quarterly/annual and stale expense patterns")
	_ = viper.BindPFlag("recurring.all", cmd.Flags().Lookup("all"))

	return cmd
}

func runRecurring(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	txns, err := store.GetTransactions(ctx, service.TransactionFilter{})
	if err != nil {
		return fmt.Errorf("failed to load transactions: %w", err)
	}

	if len(txns) == 0 {
		slog.Info(cli.FormatWarning("No transactions stored - run 'pennyflow import' first"))
		return nil
	}

	detector := recurring.NewDetector(time.Now())

	var expenses []model.RecurringPattern
	if viper.GetBool("recurring.all") {
		expenses = detector.ExpensePatterns(txns)
	} else {
		expenses = detector.Expenses(txns)
	}
	income := detector.Income(txns)

	slog.Info(cli.FormatTitle("Recurring expenses"))
	if len(expenses) == 0 {
		slog.Info("No recurring expense patterns found")
	} else {
		printPatternTable(expenses)
	}

	slog.Info(cli.FormatTitle("Recurring income"))
	if len(income) == 0 {
		slog.Info("No recurring income patterns found")
	} else {
		printPatternTable(income)
	}

	printCashFlowSummary(expenses, income)
	return nil
}

func printPatternTable(patterns []model.RecurringPattern) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DESCRIPTION\tCATEGORY\tFREQUENCY\tOCCURRENCES\tAVG AMOUNT\tMONTHLY EQUIV\tLAST SEEN")

	for _, p := range patterns {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t$%.2f\t$%.2f\t%s\n",
			p.Description,
			p.Category,
			p.Frequency,
			p.OccurrenceCount,
			p.AverageAmount,
			p.MonthlyEquivalent(),
			p.LastOccurrence.Format("2006-01-02"),
		)
	}

	_ = w.Flush()
}

func printCashFlowSummary(expenses, income []model.RecurringPattern) {
	var monthlyOut, monthlyIn float64
	for _, p := range expenses {
		monthlyOut += p.MonthlyEquivalent()
	}
	for _, p := range income {
		monthlyIn += p.MonthlyEquivalent()
	}

	slog.Info(cli.FormatTitle("Monthly cash flow"))
	slog.Info(fmt.Sprintf("Recurring income:   $%.2f", monthlyIn))
	slog.Info(fmt.Sprintf("Recurring expenses: $%.2f", monthlyOut))

	net := monthlyIn - monthlyOut
	if net >= 0 {
		slog.Info(cli.FormatSuccess(fmt.Sprintf("Net available:      $%.2f", net)))
	} else {
		slog.Info(cli.FormatError(fmt.Sprintf("Net available:      $%.2f", net)))
	}
}
