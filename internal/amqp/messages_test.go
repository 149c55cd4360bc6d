package amqp

import (
	"testing"
	"time"
)

func TestCollectionChangedMessageJSON(t *testing.T) {
	msg := NewCollectionChangedMessage("Vendas", 42)
	if msg.Timestamp.IsZero() {
		t.Fatal("timestamp not set")
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := CollectionChangedMessageFromJSON(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Collection != "Vendas" || got.Rows != 42 {
		t.Fatalf("got %+v", got)
	}
	if !got.Timestamp.Truncate(time.Millisecond).Equal(msg.Timestamp.Truncate(time.Millisecond)) {
		t.Fatalf("timestamp drift: %v vs %v", got.Timestamp, msg.Timestamp)
	}
}

func TestCollectionChangedMessageFromJSONInvalid(t *testing.T) {
	if _, err := CollectionChangedMessageFromJSON([]byte("not json")); err == nil {
		t.Fatal("expected error")
	}
}
