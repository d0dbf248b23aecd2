// Package store provides durable SQLite-backed persistence for the activity
// log. It is the sole owner of the activities table: every read and write in
// the application goes through a *Store.
//
// A Store begins life uninitialized. Initialize opens (creating if absent)
// the database file and applies the schema; until it succeeds, every data
// operation fails with ErrNotInitialized. Initialization failures reset the
// store to its uninitialized state so a later Initialize can retry.
//
// Tags are stored as a JSON array in a TEXT column. A row whose tags cannot
// be decoded surfaces as a *DecodeError for the whole read rather than
// silently yielding an empty tag list, because tag data feeds search and
// statistics downstream.
package store
