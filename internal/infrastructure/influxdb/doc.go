// Package influxdb provides InfluxDB connectivity for Libris Core.
//
// It wraps the official influxdb-client-go v2 library for connection
// management, point writing, and health monitoring.
//
// # Purpose
//
// This package handles time-series data storage for:
//   - Circulation status changes (book available/borrowed over time)
//   - Catalogue size tracking
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WriteBookStatus(42, "borrowed")
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are delivered via
// a callback. Connection and health check errors are returned directly.
package influxdb
