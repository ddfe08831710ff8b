// Package services implements the expense query/aggregation engine and the
// user account operations on top of the row store ports.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"kharcha/internal/core"
	"kharcha/internal/rows"

	"github.com/shopspring/decimal"
)

// Publisher notifies interested parties that a row was appended. Publishing
// is best-effort; a failure never fails the originating request.
type Publisher interface {
	PublishRowAppended(ctx context.Context, tab string, values []string) error
}

// ExpenseService scans, filters and aggregates expense rows. It holds no
// state beyond its collaborators: every query re-reads the store, so results
// always reflect the latest append.
type ExpenseService struct {
	store  rows.Store
	events Publisher
}

// NewExpenseService creates the service. events may be nil.
func NewExpenseService(store rows.Store, events Publisher) *ExpenseService {
	return &ExpenseService{store: store, events: events}
}

// Query returns userID's expenses whose instant falls within the inclusive
// range [fromDate 00:00:00, toDate 23:59:59.999999], in store row order.
// Either bound may be empty, defaulting to the earliest/latest representable
// date. An empty userID yields an empty result. Rows with malformed dates
// are skipped. A store read failure degrades to an empty result; the
// warning log is the only trace of the difference.
func (s *ExpenseService) Query(ctx context.Context, userID, fromDate, toDate string) ([]core.Expense, error) {
	if userID == "" {
		return nil, nil
	}

	from := time.Time{}
	if fromDate != "" {
		t, err := parseBound(fromDate)
		if err != nil {
			return nil, fmt.Errorf("from date: %w", err)
		}
		from = t
	}
	to := core.MaxDate
	if toDate != "" {
		t, err := parseBound(toDate)
		if err != nil {
			return nil, fmt.Errorf("to date: %w", err)
		}
		to = core.DayWindow(t).End
	}

	all, err := s.store.ReadAll(ctx, rows.ExpensesTab)
	if err != nil {
		slog.WarnContext(ctx, "Expense read failed, returning empty result", "error", err)
		return nil, nil
	}
	if len(all) < 2 {
		return nil, nil
	}

	var out []core.Expense
	for i, row := range all[1:] {
		e := decodeExpense(row, i)
		if e.UserID != userID {
			continue
		}
		inst, err := core.Instant(e.Date, e.Time)
		if err != nil {
			// Data-quality issue, not a caller-facing error.
			continue
		}
		if !inst.Before(from) && !inst.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Totals computes the daily, weekly and monthly sums for the day, Monday
// week and calendar month containing ref. A single fetch covers
// min(weekStart, monthStart) through monthEnd; the three sums are
// independent in-memory refilters of that one result set.
func (s *ExpenseService) Totals(ctx context.Context, userID string, ref time.Time) (core.Totals, error) {
	if ref.IsZero() {
		ref = time.Now()
	}

	// Window math is wall-clock arithmetic. Stored instants parse as UTC,
	// so re-read ref's wall clock in UTC; otherwise a non-UTC reference
	// shifts every window boundary by the zone offset.
	ref = time.Date(ref.Year(), ref.Month(), ref.Day(), ref.Hour(), ref.Minute(), ref.Second(), 0, time.UTC)

	day := core.DayWindow(ref)
	week := core.WeekWindow(ref)
	month := core.MonthWindow(ref)

	fetchFrom := week.Start
	if month.Start.Before(fetchFrom) {
		fetchFrom = month.Start
	}

	expenses, err := s.Query(ctx, userID,
		fetchFrom.Format("2006-01-02"),
		month.End.Format("2006-01-02"))
	if err != nil {
		return core.Totals{}, err
	}

	totals := core.Totals{Daily: decimal.Zero, Weekly: decimal.Zero, Monthly: decimal.Zero}
	for _, e := range expenses {
		inst, err := core.Instant(e.Date, e.Time)
		if err != nil {
			continue
		}
		if day.Contains(inst) {
			totals.Daily = totals.Daily.Add(e.Amount)
		}
		if week.Contains(inst) {
			totals.Weekly = totals.Weekly.Add(e.Amount)
		}
		if month.Contains(inst) {
			totals.Monthly = totals.Monthly.Add(e.Amount)
		}
	}
	return totals, nil
}

// Add validates and appends exactly one expense row with a server-assigned
// UTC creation timestamp. Append failures propagate to the caller
// unmodified; there is no retry.
func (s *ExpenseService) Add(ctx context.Context, e core.Expense) error {
	if err := e.Validate(); err != nil {
		return err
	}

	values := []string{
		e.UserID,
		e.Date,
		e.Time,
		e.Amount.String(),
		e.Category,
		e.PaymentMode,
		e.Notes,
		time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.store.AppendRow(ctx, rows.ExpensesTab, values); err != nil {
		return fmt.Errorf("append expense: %w", err)
	}

	s.publish(ctx, rows.ExpensesTab, values)

	slog.InfoContext(ctx, "Expense recorded",
		"user_id", e.UserID,
		"date", e.Date,
		"amount", e.Amount.String(),
		"category", e.Category)
	return nil
}

func (s *ExpenseService) publish(ctx context.Context, tab string, values []string) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishRowAppended(ctx, tab, values); err != nil {
		// The row is already stored; mirroring catches up via backfill.
		slog.ErrorContext(ctx, "Failed to publish row-appended event", "tab", tab, "error", err)
	}
}

// decodeExpense maps a raw stored row to an Expense. Short rows are padded;
// the ID is the spreadsheet row number (data starts at row 2).
func decodeExpense(row []string, idx int) core.Expense {
	for len(row) < len(rows.ExpensesHeader) {
		row = append(row, "")
	}
	return core.Expense{
		ID:          idx + 2,
		UserID:      row[0],
		Date:        core.NormalizeDate(row[1]),
		Time:        core.NormalizeTime(row[2]),
		Amount:      core.ParseAmount(row[3]),
		Category:    row[4],
		PaymentMode: row[5],
		Notes:       row[6],
		CreatedAt:   row[7],
	}
}

func parseBound(s string) (time.Time, error) {
	if len(s) > 10 {
		s = s[:10]
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", s, err)
	}
	return t, nil
}
