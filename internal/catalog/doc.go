// Package catalog manages book records for Libris Core.
//
// The Service is the only caller of book storage. Every operation first
// resolves the target record (so absence surfaces as ErrBookNotFound, never
// as a denial), then consults the authz decision engine, and only then
// touches the repository. Denials become ErrForbidden; malformed input
// becomes a ValidationError naming the offending fields.
//
// Successful mutations optionally fan out to MQTT (catalogue change events
// for external consumers) and InfluxDB (circulation status time series).
// Both side channels are best-effort and never fail the operation.
package catalog
