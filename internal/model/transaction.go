// Package model defines the core domain models used throughout the application.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Transaction represents a single bank transaction from an imported statement.
// Amounts are signed integer cents: negative is money out, positive is money in.
type Transaction struct {
	Date        time.Time
	ID          string
	Description string // Raw statement description
	Category    string // Optional category label
	Hash        string
	AmountCents int64
}

// Amount returns the transaction amount in major currency units.
func (t *Transaction) Amount() float64 {
	return float64(t.AmountCents) / 100
}

// Valid reports whether the transaction carries enough data to participate
// in pattern detection. Invalid records are excluded, never rejected.
func (t *Transaction) Valid() bool {
	return !t.Date.IsZero() && t.AmountCents != 0 && t.Description != ""
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%d:%s",
		t.Date.Format("2006-01-02"),
		t.AmountCents,
		t.Description)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
