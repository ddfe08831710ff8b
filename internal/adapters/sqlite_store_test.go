package adapters

import (
	"context"
	"path/filepath"
	"testing"

	"kharcha/internal/rows"
	"kharcha/internal/storage"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	repo, err := storage.NewRepository(filepath.Join(t.TempDir(), "kharcha.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return NewSQLiteStore(repo)
}

func TestSQLiteStore_RowContract(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	all, err := store.ReadAll(ctx, rows.ExpensesTab)
	require.NoError(t, err)
	require.Equal(t, [][]string{rows.ExpensesHeader}, all, "empty tab is just the header")

	require.NoError(t, store.AppendRow(ctx, rows.ExpensesTab,
		[]string{"u1", "2024-03-01", "09:00", "100", "Food", "Cash", "", "2024-03-01T09:00:00Z"}))
	// Short row gets padded like the spreadsheet backend pads on read.
	require.NoError(t, store.AppendRow(ctx, rows.ExpensesTab, []string{"u1", "2024-03-02"}))

	all, err = store.ReadAll(ctx, rows.ExpensesTab)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, rows.ExpensesHeader, all[0])
	require.Equal(t, "100", all[1][3])
	require.Len(t, all[2], len(rows.ExpensesHeader))

	n, err := store.Count(ctx, rows.ExpensesTab)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestSQLiteStore_UsersTab(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendRow(ctx, rows.UsersTab, []string{"u1", "a@b.com", "h", "ts"}))

	all, err := store.ReadAll(ctx, rows.UsersTab)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, rows.UsersHeader, all[0])
	require.Equal(t, "a@b.com", all[1][1])
}

func TestSQLiteStore_UnknownTab(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.ReadAll(ctx, "Nope")
	require.Error(t, err)
	require.Error(t, store.AppendRow(ctx, "Nope", []string{"x"}))
	_, err = store.Count(ctx, "Nope")
	require.Error(t, err)
}
