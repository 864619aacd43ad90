package audit

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// recordingTx stubs just enough of pgx.Tx to observe Insert's Exec call.
// The embedded interface panics on anything else, which is what we want.
type recordingTx struct {
	pgx.Tx
	err  error
	sql  string
	args []any
}

func (t *recordingTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	t.sql = sql
	t.args = args
	return pgconn.CommandTag{}, t.err
}

func TestInsertPropagatesExecError(t *testing.T) {
	want := errors.New("insert or update on table \"audit_logs\" violates foreign key constraint")
	tx := &recordingTx{err: want}

	id := int64(42)
	err := Insert(context.Background(), tx, &id, "BOOKING_CREATED", 7, map[string]any{"resourceId": 3})
	if !errors.Is(err, want) {
		t.Fatalf("Insert() = %v, want the exec error", err)
	}
}

func TestInsertEncodesMetadata(t *testing.T) {
	tx := &recordingTx{}

	id := int64(42)
	if err := Insert(context.Background(), tx, &id, "BOOKING_STATUS_CHANGED", 7, map[string]any{"to": "approved"}); err != nil {
		t.Fatalf("Insert() = %v", err)
	}
	if len(tx.args) != 4 {
		t.Fatalf("got %d args, want 4", len(tx.args))
	}
	meta, ok := tx.args[3].(*string)
	if !ok || meta == nil {
		t.Fatalf("metadata arg = %#v, want *string", tx.args[3])
	}
	if *meta != `{"to":"approved"}` {
		t.Fatalf("metadata = %q", *meta)
	}
}

func TestInsertNilMetadata(t *testing.T) {
	tx := &recordingTx{}

	if err := Insert(context.Background(), tx, nil, "BOOKING_CREATED", 7, nil); err != nil {
		t.Fatalf("Insert() = %v", err)
	}
	if meta := tx.args[3].(*string); meta != nil {
		t.Fatalf("metadata = %v, want NULL", *meta)
	}
}
