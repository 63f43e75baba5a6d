package influxdb

import (
	"errors"
	"testing"

	"github.com/dastas/libris-core/internal/infrastructure/config"
)

func TestConnect_Disabled(t *testing.T) {
	_, err := Connect(config.InfluxDBConfig{Enabled: false})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("error = %v, want ErrDisabled", err)
	}
}

func TestClient_ZeroValueSafety(t *testing.T) {
	// A zero client (never connected) must not panic on lifecycle calls.
	var c Client

	if c.IsConnected() {
		t.Error("zero client should not report connected")
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v, want nil", err)
	}
	c.Flush()
}
