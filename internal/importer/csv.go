// Package importer reads bank-statement CSV exports into transactions.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pennyflow/pennyflow/internal/model"
)

// dateFormats lists the statement date layouts banks commonly export.
var dateFormats = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"Jan 2, 2006",
}

// Result summarizes an import run.
type Result struct {
	Transactions []model.Transaction
	Skipped      int
}

// ParseStatement reads a CSV statement and returns its transactions.
// Expected columns are date, description, amount, and an optional category;
// a header row is detected and used for column mapping, otherwise the first
// four columns are used positionally. Malformed rows are skipped, not
// fatal: a row missing its date or amount carries no usable signal.
func ParseStatement(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return &Result{}, nil
	}

	cols, start := mapColumns(records[0])

	result := &Result{}
	for _, record := range records[start:] {
		txn, ok := parseRow(record, cols)
		if !ok {
			result.Skipped++
			continue
		}
		result.Transactions = append(result.Transactions, txn)
	}

	if result.Skipped > 0 {
		slog.Debug("Skipped malformed statement rows", "count", result.Skipped)
	}

	return result, nil
}

// columns maps field positions for a statement layout.
type columns struct {
	date        int
	description int
	amount      int
	category    int
}

// mapColumns detects a header row and maps column positions. Returns the
// mapping and the index of the first data row.
func mapColumns(header []string) (columns, int) {
	cols := columns{date: 0, description: 1, amount: 2, category: 3}

	found := false
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "date", "transaction date", "posted date":
			cols.date = i
			found = true
		case "description", "memo", "payee", "name":
			cols.description = i
			found = true
		case "amount":
			cols.amount = i
			found = true
		case "category":
			cols.category = i
			found = true
		}
	}

	if found {
		return cols, 1
	}
	return cols, 0
}

// parseRow converts one CSV record into a transaction. Returns false for
// rows that cannot be used.
func parseRow(record []string, cols columns) (model.Transaction, bool) {
	if cols.date >= len(record) || cols.description >= len(record) || cols.amount >= len(record) {
		return model.Transaction{}, false
	}

	date, ok := parseDate(record[cols.date])
	if !ok {
		return model.Transaction{}, false
	}

	description := strings.TrimSpace(record[cols.description])
	if description == "" {
		return model.Transaction{}, false
	}

	cents, ok := parseAmountCents(record[cols.amount])
	if !ok || cents == 0 {
		return model.Transaction{}, false
	}

	category := ""
	if cols.category < len(record) {
		category = strings.TrimSpace(record[cols.category])
	}

	txn := model.Transaction{
		ID:          uuid.New().String(),
		Date:        date,
		Description: description,
		AmountCents: cents,
		Category:    category,
	}
	txn.Hash = txn.GenerateHash()

	return txn, true
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// parseAmountCents converts a statement amount string to signed cents.
// Handles currency symbols, thousands separators, and parenthesized
// negatives.
func parseAmountCents(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if negative {
		value = -value
	}

	return int64(math.Round(value * 100)), true
}
