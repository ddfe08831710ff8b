// Package worker mirrors primary-store appends into the local SQLite
// replica. The replica is a reporting/backup copy; the engine keeps reading
// its configured primary on every query.
package worker

import (
	"context"
	"fmt"
	"log/slog"

	"kharcha/internal/adapters"
	"kharcha/internal/amqp"
	"kharcha/internal/rows"
)

// MirrorWorker applies row-appended events to the replica and reconciles
// missed events by tail backfill. Tail backfill is sound because both sides
// are append-only: the replica is always a prefix of the primary.
type MirrorWorker struct {
	src    rows.Reader
	mirror *adapters.SQLiteStore
}

func NewMirrorWorker(src rows.Reader, mirror *adapters.SQLiteStore) *MirrorWorker {
	return &MirrorWorker{src: src, mirror: mirror}
}

// HandleRowAppended applies one event to the replica.
func (w *MirrorWorker) HandleRowAppended(ctx context.Context, msg *amqp.RowAppendedMessage) error {
	if rows.HeaderFor(msg.Tab) == nil {
		return fmt.Errorf("unknown tab %q", msg.Tab)
	}
	if err := w.mirror.AppendRow(ctx, msg.Tab, msg.Values); err != nil {
		return fmt.Errorf("mirror row to %s: %w", msg.Tab, err)
	}
	slog.InfoContext(ctx, "Mirrored row", "tab", msg.Tab)
	return nil
}

// Backfill copies rows the replica is missing, for every known tab. Used at
// startup and on a timer to recover from dropped events.
func (w *MirrorWorker) Backfill(ctx context.Context) error {
	for _, tab := range []string{rows.UsersTab, rows.ExpensesTab} {
		if err := w.backfillTab(ctx, tab); err != nil {
			return fmt.Errorf("backfill %s: %w", tab, err)
		}
	}
	return nil
}

func (w *MirrorWorker) backfillTab(ctx context.Context, tab string) error {
	all, err := w.src.ReadAll(ctx, tab)
	if err != nil {
		return fmt.Errorf("read primary: %w", err)
	}
	if len(all) < 2 {
		return nil
	}
	data := all[1:]

	have, err := w.mirror.Count(ctx, tab)
	if err != nil {
		return fmt.Errorf("count replica: %w", err)
	}
	if have >= len(data) {
		return nil
	}

	for _, row := range data[have:] {
		if err := w.mirror.AppendRow(ctx, tab, row); err != nil {
			return fmt.Errorf("append to replica: %w", err)
		}
	}
	slog.InfoContext(ctx, "Backfilled replica", "tab", tab, "rows", len(data)-have)
	return nil
}
