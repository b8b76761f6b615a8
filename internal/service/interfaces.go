// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/pennyflow/pennyflow/internal/model"
)

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// Storage defines the contract for our persistence layer.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	CountTransactions(ctx context.Context) (int, error)

	// Debt operations
	CreateDebt(ctx context.Context, debt *model.Debt) error
	GetDebt(ctx context.Context, id string) (*model.Debt, error)
	ListDebts(ctx context.Context) ([]model.Debt, error)
	UpdateDebt(ctx context.Context, debt *model.Debt) error
	DeleteDebt(ctx context.Context, id string) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
