package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pennyflow/pennyflow/internal/config"
	"github.com/pennyflow/pennyflow/internal/service"
	"github.com/pennyflow/pennyflow/internal/storage"
	"github.com/spf13/viper"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/pennyflow/pennyflow.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// resolveDebtID resolves a full debt ID or a unique ID prefix.
func resolveDebtID(ctx context.Context, store service.Storage, idOrPrefix string) (string, error) {
	debts, err := store.ListDebts(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list debts: %w", err)
	}

	var matches []string
	for _, d := range debts {
		if d.ID == idOrPrefix {
			return d.ID, nil
		}
		if strings.HasPrefix(d.ID, idOrPrefix) {
			matches = append(matches, d.ID)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no debt matches %q", idOrPrefix)
	default:
		return "", fmt.Errorf("debt ID prefix %q is ambiguous (%d matches)", idOrPrefix, len(matches))
	}
}

// dollars formats integer cents for display.
func dollars(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}

// parseDollarsToCents converts a CLI dollar amount to cents.
func parseDollarsToCents(amount float64) int64 {
	if amount < 0 {
		return 0
	}
	return int64(amount*100 + 0.5)
}
