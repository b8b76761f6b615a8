package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/pennyflow/pennyflow/internal/common"
	"github.com/pennyflow/pennyflow/internal/model"
)

// CreateDebt inserts a new debt.
func (s *SQLiteStorage) CreateDebt(ctx context.Context, debt *model.Debt) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDebt(debt); err != nil {
		return err
	}

	now := time.Now()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO debts (
			id, name, balance_cents, interest_rate,
			minimum_payment_cents, monthly_payment_cents, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		debt.ID,
		debt.Name,
		debt.BalanceCents,
		debt.InterestRate,
		debt.MinimumPaymentCents,
		debt.MonthlyPaymentCents,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert debt: %w", err)
	}

	debt.CreatedAt = now
	debt.UpdatedAt = now
	return nil
}

// GetDebt retrieves a debt by ID.
func (s *SQLiteStorage) GetDebt(ctx context.Context, id string) (*model.Debt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var debt model.Debt
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, balance_cents, interest_rate,
			minimum_payment_cents, monthly_payment_cents, created_at, updated_at
		FROM debts WHERE id = ?
	`, id).Scan(
		&debt.ID,
		&debt.Name,
		&debt.BalanceCents,
		&debt.InterestRate,
		&debt.MinimumPaymentCents,
		&debt.MonthlyPaymentCents,
		&debt.CreatedAt,
		&debt.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("debt %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}

	return &debt, nil
}

// ListDebts retrieves all debts ordered by balance descending.
func (s *SQLiteStorage) ListDebts(ctx context.Context) ([]model.Debt, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, balance_cents, interest_rate,
			minimum_payment_cents, monthly_payment_cents, created_at, updated_at
		FROM debts ORDER BY balance_cents DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var debts []model.Debt
	for rows.Next() {
		var debt model.Debt
		if err := rows.Scan(
			&debt.ID,
			&debt.Name,
			&debt.BalanceCents,
			&debt.InterestRate,
			&debt.MinimumPaymentCents,
			&debt.MonthlyPaymentCents,
			&debt.CreatedAt,
			&debt.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, debt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}

	return debts, nil
}

// UpdateDebt updates an existing debt.
func (s *SQLiteStorage) UpdateDebt(ctx context.Context, debt *model.Debt) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateDebt(debt); err != nil {
		return err
	}

	now := time.Now()
	result, err := s.db.ExecContext(ctx, `
		UPDATE debts SET
			name = ?, balance_cents = ?, interest_rate = ?,
			minimum_payment_cents = ?, monthly_payment_cents = ?, updated_at = ?
		WHERE id = ?
	`,
		debt.Name,
		debt.BalanceCents,
		debt.InterestRate,
		debt.MinimumPaymentCents,
		debt.MonthlyPaymentCents,
		now,
		debt.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("debt %s: %w", debt.ID, common.ErrNotFound)
	}

	debt.UpdatedAt = now
	return nil
}

// DeleteDebt removes a debt by ID.
func (s *SQLiteStorage) DeleteDebt(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, "DELETE FROM debts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete debt: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("debt %s: %w", id, common.ErrNotFound)
	}

	return nil
}
