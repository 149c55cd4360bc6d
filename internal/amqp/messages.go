package amqp

import (
	"encoding/json"
	"time"
)

// CollectionChangedMessage tells the mirror worker that a collection was
// saved. The worker re-reads the collection from the primary store, so the
// message only needs to carry the name.
type CollectionChangedMessage struct {
	Collection string    `json:"collection"`
	Rows       int       `json:"rows"`
	Timestamp  time.Time `json:"timestamp"`
}

func NewCollectionChangedMessage(collection string, rows int) *CollectionChangedMessage {
	return &CollectionChangedMessage{
		Collection: collection,
		Rows:       rows,
		Timestamp:  time.Now(),
	}
}

func (m *CollectionChangedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func CollectionChangedMessageFromJSON(data []byte) (*CollectionChangedMessage, error) {
	var msg CollectionChangedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
