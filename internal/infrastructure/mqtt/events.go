package mqtt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dastas/libris-core/internal/catalog"
)

// BookEventPublisher adapts the MQTT client to the catalogue service's
// event sink. Each successful mutation becomes one JSON message on
// libris/catalog/book/{id}/{event}.
type BookEventPublisher struct {
	client *Client
	qos    byte
}

// NewBookEventPublisher wires a connected client as a catalogue event sink.
func NewBookEventPublisher(client *Client, qos byte) *BookEventPublisher {
	return &BookEventPublisher{client: client, qos: qos}
}

// bookEventPayload is the wire format for catalogue change events.
type bookEventPayload struct {
	Event     string        `json:"event"`
	Book      *catalog.Book `json:"book"`
	Timestamp string        `json:"timestamp"`
}

// PublishBookEvent implements catalog.EventPublisher.
// Events are not retained: the catalogue state of record is the database,
// the feed only signals change.
func (p *BookEventPublisher) PublishBookEvent(event string, book *catalog.Book) error {
	payload, err := json.Marshal(bookEventPayload{
		Event:     event,
		Book:      book,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("encoding book event: %w", err)
	}

	topic := Topics{}.BookEvent(book.ID, event)
	return p.client.Publish(topic, payload, p.qos, false)
}
