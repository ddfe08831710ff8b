package memory

import (
	"context"
	"testing"

	"kharcha/internal/rows"
)

func TestStoreRoundTrip(t *testing.T) {
	s := New()
	ctx := context.Background()

	all, err := s.ReadAll(ctx, rows.ExpensesTab)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("fresh tab should hold only the header, got %d rows", len(all))
	}

	if err := s.AppendRow(ctx, rows.ExpensesTab, []string{"u1", "2024-01-01", "", "5", "Food", "Cash", "", "ts"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendRow(ctx, rows.ExpensesTab, []string{"u1", "2024-01-02", "", "6", "Food", "Cash", "", "ts"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	all, err = s.ReadAll(ctx, rows.ExpensesTab)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d rows, want header plus two", len(all))
	}
	if all[1][1] != "2024-01-01" || all[2][1] != "2024-01-02" {
		t.Error("append order must be preserved")
	}
	if s.Len(rows.ExpensesTab) != 2 {
		t.Errorf("Len = %d, want 2", s.Len(rows.ExpensesTab))
	}
}

func TestStoreUnknownTab(t *testing.T) {
	s := New()
	if _, err := s.ReadAll(context.Background(), "Nope"); err == nil {
		t.Error("unknown tab read should fail")
	}
	if err := s.AppendRow(context.Background(), "Nope", []string{"x"}); err == nil {
		t.Error("unknown tab append should fail")
	}
}

func TestReadAllReturnsCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	if err := s.AppendRow(ctx, rows.UsersTab, []string{"u1", "a@b.com", "h", "ts"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	first, _ := s.ReadAll(ctx, rows.UsersTab)
	first[1][0] = "mutated"

	second, _ := s.ReadAll(ctx, rows.UsersTab)
	if second[1][0] != "u1" {
		t.Error("callers must not be able to mutate stored rows")
	}
}
