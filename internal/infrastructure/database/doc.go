// Package database manages the SQLite connection and schema migrations
// for Libris Core.
//
// SQLite is configured for WAL mode with a single writer connection and
// foreign keys enforced. The single-writer pool serialises read-modify-
// write sequences per record, which the catalogue service relies on for
// its fetch-check-mutate flows.
//
// Migrations are embedded SQL files (see the migrations package) applied
// in version order, each in its own transaction, recorded in the
// schema_migrations table.
package database
