// Package mqtt provides the MQTT publishing client for Libris Core.
//
// Libris publishes catalogue change events (book created, updated,
// deleted) and its own online/offline status to an MQTT broker so that
// downstream consumers - display boards, sync services, notification
// relays - can react without polling the API.
//
// The client is publish-only: nothing in Libris consumes broker
// traffic. Connection management handles auto-reconnect with
// exponential backoff and Last Will and Testament for crash detection.
//
// MQTT is optional; when disabled in configuration the catalogue
// service simply runs without an event publisher.
package mqtt
