package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pennyflow/pennyflow/internal/cli"
	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/importer"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Import transactions from a bank-statement CSV",
		Long: `Import transactions from a bank-statement CSV export.

Rows are deduplicated automatically; re-importing the same statement is
safe. Malformed rows are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Show what would be imported without saving")
	_ = viper.BindPFlag("import.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	slog.Info(cli.FormatTitle("Importing transactions"))
	slog.Info("Reading statement", "file", path)

	f, err := os.Open(path)
	if err != nil {
		return common.NewUserError("could not open statement file", err)
	}
	defer func() { _ = f.Close() }()

	result, err := importer.ParseStatement(f)
	if err != nil {
		return fmt.Errorf("failed to parse statement: %w", err)
	}

	slog.Info(fmt.Sprintf("Parsed %d transactions (%d rows skipped)",
		len(result.Transactions), result.Skipped))

	if len(result.Transactions) == 0 {
		slog.Info(cli.FormatWarning("Nothing to import"))
		return nil
	}

	if viper.GetBool("import.dry_run") {
		slog.Info(cli.FormatWarning("Dry run mode - not saving to database"))
		for _, txn := range result.Transactions {
			slog.Info("Would import",
				"date", txn.Date.Format("2006-01-02"),
				"description", txn.Description,
				"amount", dollars(txn.AmountCents))
		}
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	// Save in chunks so the progress bar reflects actual work
	bar := progressbar.Default(int64(len(result.Transactions)), "saving")
	const chunkSize = 100
	for start := 0; start < len(result.Transactions); start += chunkSize {
		end := start + chunkSize
		if end > len(result.Transactions) {
			end = len(result.Transactions)
		}
		if err := store.SaveTransactions(ctx, result.Transactions[start:end]); err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
		_ = bar.Add(end - start)
	}
	_ = bar.Finish()

	total, err := store.CountTransactions(ctx)
	if err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Import complete: %d transactions stored", total)))
	return nil
}
