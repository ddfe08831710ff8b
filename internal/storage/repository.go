// Package storage is the local SQLite replica of the row store, used by the
// mirror worker and available as a full backend in its own right.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db *sql.DB
}

// ExpenseRow mirrors one Expenses tab row, in storage column order.
type ExpenseRow struct {
	ID          int64
	UserID      string
	Date        string
	Time        string
	Amount      string
	Category    string
	PaymentMode string
	Notes       string
	CreatedAt   string
}

// UserRow mirrors one Users tab row.
type UserRow struct {
	ID           int64
	UserID       string
	Email        string
	PasswordHash string
	CreatedAt    string
}

func NewRepository(dbPath string) (*Repository, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Repository) InsertExpenseRow(ctx context.Context, e ExpenseRow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (user_id, date, time, amount, category, payment_mode, notes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.UserID, e.Date, e.Time, e.Amount, e.Category, e.PaymentMode, e.Notes, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert expense row: %w", err)
	}
	return nil
}

// ListExpenseRows returns every expense row in insert order.
func (r *Repository) ListExpenseRows(ctx context.Context) ([]ExpenseRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, date, time, amount, category, payment_mode, notes, created_at
		 FROM expenses ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list expense rows: %w", err)
	}
	defer rows.Close()

	var out []ExpenseRow
	for rows.Next() {
		var e ExpenseRow
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.Time, &e.Amount, &e.Category, &e.PaymentMode, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repository) CountExpenseRows(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM expenses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count expense rows: %w", err)
	}
	return n, nil
}

func (r *Repository) InsertUserRow(ctx context.Context, u UserRow) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (user_id, email, password_hash, created_at) VALUES (?, ?, ?, ?)`,
		u.UserID, u.Email, u.PasswordHash, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert user row: %w", err)
	}
	return nil
}

// ListUserRows returns every user row in insert order.
func (r *Repository) ListUserRows(ctx context.Context) ([]UserRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, email, password_hash, created_at FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list user rows: %w", err)
	}
	defer rows.Close()

	var out []UserRow
	for rows.Next() {
		var u UserRow
		if err := rows.Scan(&u.ID, &u.UserID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *Repository) CountUserRows(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count user rows: %w", err)
	}
	return n, nil
}
