// Package adapters fits the SQLite repository to the row store ports so the
// engine and the mirror worker can treat it like any other tab-oriented
// backend.
package adapters

import (
	"context"
	"fmt"

	"kharcha/internal/rows"
	"kharcha/internal/storage"
)

// SQLiteStore exposes the SQLite repository through the rows.Store port.
// The synthesized header row keeps the read contract identical to the
// spreadsheet backend.
type SQLiteStore struct {
	repo *storage.Repository
}

var _ rows.Store = (*SQLiteStore)(nil)

func NewSQLiteStore(repo *storage.Repository) *SQLiteStore {
	return &SQLiteStore{repo: repo}
}

// ReadAll implements rows.Reader.
func (s *SQLiteStore) ReadAll(ctx context.Context, tab string) ([][]string, error) {
	switch tab {
	case rows.ExpensesTab:
		records, err := s.repo.ListExpenseRows(ctx)
		if err != nil {
			return nil, err
		}
		out := make([][]string, 0, len(records)+1)
		out = append(out, append([]string(nil), rows.ExpensesHeader...))
		for _, e := range records {
			out = append(out, []string{e.UserID, e.Date, e.Time, e.Amount, e.Category, e.PaymentMode, e.Notes, e.CreatedAt})
		}
		return out, nil
	case rows.UsersTab:
		records, err := s.repo.ListUserRows(ctx)
		if err != nil {
			return nil, err
		}
		out := make([][]string, 0, len(records)+1)
		out = append(out, append([]string(nil), rows.UsersHeader...))
		for _, u := range records {
			out = append(out, []string{u.UserID, u.Email, u.PasswordHash, u.CreatedAt})
		}
		return out, nil
	}
	return nil, fmt.Errorf("unknown tab %q", tab)
}

// AppendRow implements rows.Appender. Short rows are padded the same way
// reads pad them, so mirrored and directly written rows look alike.
func (s *SQLiteStore) AppendRow(ctx context.Context, tab string, values []string) error {
	switch tab {
	case rows.ExpensesTab:
		v := pad(values, len(rows.ExpensesHeader))
		return s.repo.InsertExpenseRow(ctx, storage.ExpenseRow{
			UserID:      v[0],
			Date:        v[1],
			Time:        v[2],
			Amount:      v[3],
			Category:    v[4],
			PaymentMode: v[5],
			Notes:       v[6],
			CreatedAt:   v[7],
		})
	case rows.UsersTab:
		v := pad(values, len(rows.UsersHeader))
		return s.repo.InsertUserRow(ctx, storage.UserRow{
			UserID:       v[0],
			Email:        v[1],
			PasswordHash: v[2],
			CreatedAt:    v[3],
		})
	}
	return fmt.Errorf("unknown tab %q", tab)
}

// Count reports the number of data rows in a tab, header excluded. Used by
// the mirror worker's tail backfill.
func (s *SQLiteStore) Count(ctx context.Context, tab string) (int, error) {
	switch tab {
	case rows.ExpensesTab:
		return s.repo.CountExpenseRows(ctx)
	case rows.UsersTab:
		return s.repo.CountUserRows(ctx)
	}
	return 0, fmt.Errorf("unknown tab %q", tab)
}

func pad(values []string, n int) []string {
	for len(values) < n {
		values = append(values, "")
	}
	return values
}
