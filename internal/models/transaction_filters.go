package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionFilters contains the optional criteria applied to a transaction
// listing. An absent criterion leaves that dimension unconstrained. The
// result set is the intersection of all active per-field predicates: AND
// across fields, OR within a multi-value field.
type TransactionFilters struct {
	PaymentMethods []string
	Cards          []string
	Installments   []int
	MinAmount      *decimal.Decimal
	MaxAmount      *decimal.Decimal
	DateFrom       *time.Time
	DateTo         *time.Time
}

// Active reports whether any criterion is set.
func (f *TransactionFilters) Active() bool {
	return len(f.PaymentMethods) > 0 ||
		len(f.Cards) > 0 ||
		len(f.Installments) > 0 ||
		f.MinAmount != nil ||
		f.MaxAmount != nil ||
		f.DateFrom != nil ||
		f.DateTo != nil
}

// Apply returns the matching subset in a single left-to-right pass,
// preserving source order. The input slice is never mutated.
func (f *TransactionFilters) Apply(transactions []Transaction) []Transaction {
	if !f.Active() {
		return transactions
	}

	matched := make([]Transaction, 0, len(transactions))
	for i := range transactions {
		if f.Matches(&transactions[i]) {
			matched = append(matched, transactions[i])
		}
	}
	return matched
}

// Matches evaluates every active criterion against one transaction.
func (f *TransactionFilters) Matches(t *Transaction) bool {
	if len(f.PaymentMethods) > 0 && !containsString(f.PaymentMethods, t.PaymentMethod) {
		return false
	}

	if len(f.Cards) > 0 && !containsString(f.Cards, t.Card) {
		return false
	}

	if len(f.Installments) > 0 && !containsInt(f.Installments, t.Installments) {
		return false
	}

	if f.MinAmount != nil && t.Amount.LessThan(*f.MinAmount) {
		return false
	}

	if f.MaxAmount != nil && t.Amount.GreaterThan(*f.MaxAmount) {
		return false
	}

	// Bounds are inclusive at instant granularity. A record whose createdAt
	// is missing or unparseable can never satisfy an active date criterion,
	// but passes untouched when no date criterion is requested.
	if !t.CreatedAt.InRange(f.DateFrom, f.DateTo) {
		return false
	}

	return true
}

func containsString(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func containsInt(values []int, v int) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
