package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"kharcha/internal/core"
	"kharcha/internal/rows"
)

// UserService manages account rows. Accounts are append-only: there is no
// update or delete, and email uniqueness is a best-effort scan before
// insert, not a storage guarantee (see Create).
type UserService struct {
	store  rows.Store
	events Publisher
}

// NewUserService creates the service. events may be nil.
func NewUserService(store rows.Store, events Publisher) *UserService {
	return &UserService{store: store, events: events}
}

// All returns every stored user. A read failure degrades to an empty list,
// same lenient policy as expense reads.
func (s *UserService) All(ctx context.Context) []core.User {
	all, err := s.store.ReadAll(ctx, rows.UsersTab)
	if err != nil {
		slog.WarnContext(ctx, "User read failed, returning empty result", "error", err)
		return nil
	}
	if len(all) < 2 {
		return nil
	}
	out := make([]core.User, 0, len(all)-1)
	for _, row := range all[1:] {
		if len(row) < len(rows.UsersHeader) {
			continue
		}
		out = append(out, core.User{
			UserID:       row[0],
			Email:        core.NormalizeEmail(row[1]),
			PasswordHash: row[2],
			CreatedAt:    row[3],
		})
	}
	return out
}

// FindByEmail looks up a user by case-insensitive, trimmed email. Absence
// is an explicit nil result, not an error.
func (s *UserService) FindByEmail(ctx context.Context, email string) *core.User {
	norm := core.NormalizeEmail(email)
	if norm == "" {
		return nil
	}
	for _, u := range s.All(ctx) {
		if u.Email == norm {
			user := u
			return &user
		}
	}
	return nil
}

// Create appends a new account row. Callers are expected to have checked
// FindByEmail first; two concurrent signups with the same email can still
// both land because the store has no atomic check-and-insert.
func (s *UserService) Create(ctx context.Context, userID, email, passwordHash string) error {
	if userID == "" {
		return core.ErrUserIDRequired
	}
	norm := core.NormalizeEmail(email)
	if norm == "" {
		return fmt.Errorf("email required")
	}

	values := []string{userID, norm, passwordHash, time.Now().UTC().Format(time.RFC3339)}
	if err := s.store.AppendRow(ctx, rows.UsersTab, values); err != nil {
		return fmt.Errorf("append user: %w", err)
	}

	s.publish(ctx, rows.UsersTab, values)

	slog.InfoContext(ctx, "User created", "user_id", userID, "email", norm)
	return nil
}

func (s *UserService) publish(ctx context.Context, tab string, values []string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishRowAppended(ctx, tab, values); err != nil {
		slog.ErrorContext(ctx, "Failed to publish row-appended event", "tab", tab, "error", err)
	}
}

// GenerateUserID returns an opaque 32-character identifier from 16
// cryptographically random bytes.
func GenerateUserID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	return hex.EncodeToString(b)
}
