package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := NewRepository(filepath.Join(t.TempDir(), "kharcha.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestExpenseRowsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertExpenseRow(ctx, ExpenseRow{
		UserID: "u1", Date: "2024-03-01", Time: "09:00", Amount: "100",
		Category: "Food", PaymentMode: "Cash", Notes: "lunch", CreatedAt: "2024-03-01T09:00:00Z",
	}))
	require.NoError(t, repo.InsertExpenseRow(ctx, ExpenseRow{
		UserID: "u1", Date: "2024-03-02", Amount: "50",
		Category: "Bills", PaymentMode: "UPI", CreatedAt: "2024-03-02T09:00:00Z",
	}))

	got, err := repo.ListExpenseRows(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "2024-03-01", got[0].Date, "insert order must be preserved")
	require.Equal(t, "2024-03-02", got[1].Date)
	require.Equal(t, "lunch", got[0].Notes)

	n, err := repo.CountExpenseRows(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestUserRowsRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertUserRow(ctx, UserRow{
		UserID: "u1", Email: "a@b.com", PasswordHash: "h", CreatedAt: "2024-01-01T00:00:00Z",
	}))

	got, err := repo.ListUserRows(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "a@b.com", got[0].Email)

	n, err := repo.CountUserRows(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "kharcha.db")
	repo, err := NewRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	// Reopening runs migrations again; must be a no-op.
	repo, err = NewRepository(dbPath)
	require.NoError(t, err)
	require.NoError(t, repo.Close())
}
