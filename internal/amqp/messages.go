package amqp

import (
	"encoding/json"
	"time"
)

// RowAppendedMessage announces that one row was appended to a tab of the
// primary store. It carries the full row so the mirror can apply it without
// re-reading the primary.
type RowAppendedMessage struct {
	Tab        string    `json:"tab"`
	Values     []string  `json:"values"`
	AppendedAt time.Time `json:"appendedAt"`
}

func NewRowAppendedMessage(tab string, values []string) *RowAppendedMessage {
	return &RowAppendedMessage{
		Tab:        tab,
		Values:     values,
		AppendedAt: time.Now().UTC(),
	}
}

func (m *RowAppendedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func RowAppendedMessageFromJSON(data []byte) (*RowAppendedMessage, error) {
	var msg RowAppendedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
