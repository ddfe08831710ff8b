// Package rows defines the ports for the append-only tabular store the
// engine is built on. Rows are organized into named tabs; the first row of
// every tab is a header and cell values travel as plain strings.
package rows

import "context"

// Tab names for the two logical tables.
const (
	ExpensesTab = "Expenses"
	UsersTab    = "Users"
)

// Headers, in storage column order.
var (
	ExpensesHeader = []string{"userId", "date", "time", "amount", "category", "paymentMode", "notes", "createdAt"}
	UsersHeader    = []string{"userId", "email", "passwordHash", "createdAt"}
)

// Ports for outbound adapters.
type (
	// Reader reads every row of a tab, header first, in append order.
	Reader interface {
		ReadAll(ctx context.Context, tab string) ([][]string, error)
	}

	// Appender appends exactly one row to a tab. There is no
	// check-and-insert; concurrent appends interleave without conflict.
	Appender interface {
		AppendRow(ctx context.Context, tab string, values []string) error
	}

	// Store is a full row store.
	Store interface {
		Reader
		Appender
	}
)

// HeaderFor returns the canonical header for a known tab, or nil.
func HeaderFor(tab string) []string {
	switch tab {
	case ExpensesTab:
		return ExpensesHeader
	case UsersTab:
		return UsersHeader
	}
	return nil
}
