package sqlitemigrate

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyMigrationsRecordsApplied(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{
		"migrations/002_index.sql":  {Data: []byte("CREATE INDEX snapshots_expires ON snapshots(expires_at);")},
		"migrations/001_create.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE snapshots(id TEXT PRIMARY KEY, expires_at INTEGER);\n-- +migrate Down\nDROP TABLE snapshots;")},
		"migrations/README.md":      {Data: []byte("not a migration")},
	}

	applied, err := ApplyMigrations(context.Background(), db, migrations, "migrations")
	if err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	want := []string{"migrations/001_create.sql", "migrations/002_index.sql"}
	if !reflect.DeepEqual(applied, want) {
		t.Fatalf("applied = %v, want %v", applied, want)
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Fatalf("migration rows = %d, want 2", got)
	}
	if !tableExists(t, db, "snapshots") {
		t.Fatal("expected snapshots table")
	}
}

func TestApplyMigrationsSkipsAlreadyApplied(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE items(id TEXT PRIMARY KEY);")},
	}
	if _, err := ApplyMigrations(context.Background(), db, migrations, ""); err != nil {
		t.Fatalf("apply initial migrations: %v", err)
	}

	applied, err := ApplyMigrations(context.Background(), db, migrations, "")
	if err != nil {
		t.Fatalf("replay migrations: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("applied on replay = %v, want none", applied)
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("migration rows = %d, want 1", got)
	}
}

func TestApplyMigrationsToleratesExistingObjects(t *testing.T) {
	db := openInMemoryDB(t)
	if _, err := db.Exec("CREATE TABLE items(id TEXT PRIMARY KEY)"); err != nil {
		t.Fatalf("seed table: %v", err)
	}
	migrations := fstest.MapFS{
		"001_create.sql": {Data: []byte("CREATE TABLE items(id TEXT PRIMARY KEY);")},
	}
	if _, err := ApplyMigrations(context.Background(), db, migrations, "."); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 1 {
		t.Fatalf("migration rows = %d, want 1", got)
	}
}

func TestApplyMigrationsRollsBackFailure(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{
		"001_broken.sql": {Data: []byte("CREATE TABLE ok(id TEXT); NOT VALID SQL;")},
	}
	if _, err := ApplyMigrations(context.Background(), db, migrations, ""); err == nil {
		t.Fatal("expected error for invalid migration")
	}
	if got := queryInt64(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 0 {
		t.Fatalf("migration rows = %d, want 0", got)
	}
}

func TestApplyMigrationsRequiresInputs(t *testing.T) {
	if _, err := ApplyMigrations(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("expected error for nil db")
	}
	db := openInMemoryDB(t)
	if _, err := ApplyMigrations(context.Background(), db, nil, ""); err == nil {
		t.Fatal("expected error for nil fs")
	}
	if _, err := ApplyMigrations(context.Background(), db, fstest.MapFS{}, "missing"); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestExtractUpMigration(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "no markers", content: "CREATE TABLE a(id);", want: "CREATE TABLE a(id);"},
		{name: "up only", content: "-- +migrate Up\nCREATE TABLE a(id);", want: "\nCREATE TABLE a(id);"},
		{name: "up and down", content: "-- +migrate Up\nCREATE TABLE a(id);\n-- +migrate Down\nDROP TABLE a;", want: "\nCREATE TABLE a(id);\n"},
	}
	for _, tc := range tests {
		if got := ExtractUpMigration(tc.content); got != tc.want {
			t.Fatalf("%s: ExtractUpMigration() = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestIsAlreadyExistsError(t *testing.T) {
	if IsAlreadyExistsError(nil) {
		t.Fatal("nil error reported as already exists")
	}
	if !IsAlreadyExistsError(errors.New("table items already exists")) {
		t.Fatal("expected already exists match")
	}
	if !IsAlreadyExistsError(errors.New("duplicate column name: label")) {
		t.Fatal("expected duplicate column match")
	}
	if IsAlreadyExistsError(errors.New("syntax error")) {
		t.Fatal("unexpected match for syntax error")
	}
}

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// A single connection keeps the in-memory database alive across calls.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func queryInt64(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var value int64
	if err := db.QueryRow(query).Scan(&value); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return value
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var found string
	err := db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		t.Fatalf("table exists %q: %v", name, err)
	}
	return true
}
