package core

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Categories is the fixed set of expense categories.
var Categories = []string{"Food", "Transport", "Shopping", "Bills", "Entertainment", "Health", "Other"}

// PaymentModes is the fixed set of payment modes.
var PaymentModes = []string{"Cash", "UPI", "Card", "Net Banking", "Other"}

type (
	// Expense is one recorded spend event. Date and Time are canonical
	// strings ("2006-01-02", "15:04"); Time may be empty. ID is derived
	// from the row position in the backing store and is not stable if the
	// store is edited out-of-band.
	Expense struct {
		ID          int
		UserID      string
		Date        string
		Time        string
		Amount      decimal.Decimal
		Category    string
		PaymentMode string
		Notes       string
		CreatedAt   string
	}

	// User is an account. Email is stored trimmed and lowercased.
	User struct {
		UserID       string
		Email        string
		PasswordHash string
		CreatedAt    string
	}

	// Totals holds the daily/weekly/monthly sums for a reference instant.
	// The three sums are independent views over the same window of data,
	// not mutually exclusive buckets.
	Totals struct {
		Daily   decimal.Decimal
		Weekly  decimal.Decimal
		Monthly decimal.Decimal
	}
)

var (
	ErrUserIDRequired = errors.New("user id required")
	ErrInvalidAmount  = errors.New("amount must be positive")
)

// Validate checks the invariants the engine enforces at insertion time.
// Category and payment mode membership is the presentation layer's job;
// the engine only defends the fields it depends on.
func (e Expense) Validate() error {
	if strings.TrimSpace(e.UserID) == "" {
		return ErrUserIDRequired
	}
	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// ValidCategory reports whether s is one of the fixed categories.
func ValidCategory(s string) bool {
	return contains(Categories, s)
}

// ValidPaymentMode reports whether s is one of the fixed payment modes.
func ValidPaymentMode(s string) bool {
	return contains(PaymentModes, s)
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

// NormalizeEmail canonicalizes an email for lookup and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseAmount converts a stored cell value to a decimal amount. Unparseable
// cells count as zero rather than poisoning a whole scan.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
