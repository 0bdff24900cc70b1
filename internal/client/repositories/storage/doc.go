// Package storage implements the local key/value area backed by the
// local_storage table of the client SQLite database.
package storage
