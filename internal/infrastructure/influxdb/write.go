package influxdb

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// RecordBookStatus writes a circulation status point for a book.
//
// One point per status transition, tagged by book and status so the
// circulation history of any title can be queried directly. The write
// is non-blocking; data is batched and sent asynchronously.
//
//	client.RecordBookStatus(42, "borrowed")
func (c *Client) RecordBookStatus(bookID int64, status string) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"circulation",
		map[string]string{
			"book_id": strconv.FormatInt(bookID, 10),
			"status":  status,
		},
		map[string]interface{}{
			"value": 1,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// RecordCatalogSize writes the current number of catalogued books.
//
// Written after creates and deletes; charts catalogue growth over time.
func (c *Client) RecordCatalogSize(count int) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"catalog_size",
		nil,
		map[string]interface{}{
			"count": count,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for measurements that don't fit the helper methods.
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
