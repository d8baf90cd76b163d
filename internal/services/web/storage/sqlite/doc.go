// Package sqlite stores collection snapshots in SQLite.
package sqlite
