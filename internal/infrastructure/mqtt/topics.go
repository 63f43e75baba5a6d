package mqtt

import "fmt"

// Topic prefixes for the Libris topic hierarchy.
//
// Catalogue topics use the scheme: libris/catalog/{resource}/{id}/{event}
const (
	// TopicPrefix is the base for all Libris topics.
	TopicPrefix = "libris"

	// TopicPrefixCatalog is the base for catalogue change topics.
	TopicPrefixCatalog = "libris/catalog"

	// TopicPrefixSystem is the base for system topics.
	TopicPrefixSystem = "libris/system"
)

// Topics provides builders for Libris MQTT topics.
// Using these helpers ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{}
//	topic := topics.BookEvent(42, "created")
//	// Returns: "libris/catalog/book/42/created"
type Topics struct{}

// BookEvent returns the topic for a catalogue change event on a book.
//
// Example: libris/catalog/book/42/updated
func (Topics) BookEvent(bookID int64, event string) string {
	return fmt.Sprintf("%s/book/%d/%s", TopicPrefixCatalog, bookID, event)
}

// CatalogEvents returns a pattern matching all catalogue change events.
// For consumers subscribing to the full change feed.
//
// Pattern: libris/catalog/book/+/+
func (Topics) CatalogEvents() string {
	return fmt.Sprintf("%s/book/+/+", TopicPrefixCatalog)
}

// SystemStatus returns the system status topic.
//
// Example: libris/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}
