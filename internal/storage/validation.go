package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pennyflow/pennyflow/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidDebt        = errors.New("invalid debt")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a single transaction before persistence.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if txn.Description == "" {
		return fmt.Errorf("%w: missing description", ErrInvalidTransaction)
	}
	return nil
}

// validateDebt validates a debt before persistence.
func validateDebt(debt *model.Debt) error {
	if debt == nil {
		return fmt.Errorf("%w: debt", ErrNilParameter)
	}
	if debt.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidDebt)
	}
	if debt.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidDebt)
	}
	if debt.BalanceCents < 0 {
		return fmt.Errorf("%w: balance cannot be negative", ErrInvalidDebt)
	}
	return nil
}
