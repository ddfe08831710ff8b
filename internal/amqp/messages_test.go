package amqp

import (
	"testing"
)

func TestRowAppendedMessage_JSON(t *testing.T) {
	msg := NewRowAppendedMessage("Expenses", []string{"u1", "2024-03-01", "", "50", "Food", "Cash", "", "ts"})
	if msg.AppendedAt.IsZero() {
		t.Error("AppendedAt should be set")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := RowAppendedMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Tab != "Expenses" || len(got.Values) != 8 || got.Values[3] != "50" {
		t.Errorf("unexpected message: %+v", got)
	}
}

func TestRowAppendedMessage_BadJSON(t *testing.T) {
	if _, err := RowAppendedMessageFromJSON([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}
