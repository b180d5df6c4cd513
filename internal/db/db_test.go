package db_test

import (
	"context"
	"testing"
	"time"

	dbpkg "github.com/rskd/talent/internal/db"
)

func TestNew_Close_GetConn(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	// Use in-memory SQLite
	d, err := dbpkg.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	conn := d.GetConn()
	if conn == nil {
		t.Fatalf("expected non-nil sql.DB from GetConn")
	}

	// Close should not error
	if err := d.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestExec_QueryRow(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	// create table
	_, err = d.Exec(ctx, `CREATE TABLE IF NOT EXISTS items (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT);`)
	if err != nil {
		t.Fatalf("Exec create table returned error: %v", err)
	}

	// insert
	res, err := d.Exec(ctx, `INSERT INTO items (name) VALUES (?)`, "foo")
	if err != nil {
		t.Fatalf("Exec insert returned error: %v", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("LastInsertId returned error: %v", err)
	}
	if lastID == 0 {
		t.Fatalf("expected last insert id > 0")
	}

	// query
	row := d.QueryRow(ctx, `SELECT name FROM items WHERE id = ?`, lastID)
	var name string
	if err := row.Scan(&name); err != nil {
		t.Fatalf("QueryRow scan returned error: %v", err)
	}
	if name != "foo" {
		t.Fatalf("expected name 'foo' got %q", name)
	}
}

func TestQuery_MultipleRows(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(ctx, `CREATE TABLE things (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT);`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for _, n := range []string{"a", "b", "c"} {
		if _, err := d.Exec(ctx, `INSERT INTO things (name) VALUES (?)`, n); err != nil {
			t.Fatalf("insert %q: %v", n, err)
		}
	}

	rows, err := d.Query(ctx, `SELECT name FROM things ORDER BY id`)
	if err != nil {
		t.Fatalf("Query returned error: %v", err)
	}
	defer rows.Close()

	var got []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, name)
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("rows err: %v", err)
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("unexpected rows: %v", got)
	}
}

func TestBeginTx_Rollback(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(ctx, `CREATE TABLE tx_items (id INTEGER PRIMARY KEY AUTOINCREMENT, name TEXT);`); err != nil {
		t.Fatalf("create table: %v", err)
	}

	tx, err := d.BeginTx(ctx)
	if err != nil {
		t.Fatalf("BeginTx returned error: %v", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO tx_items (name) VALUES (?)`, "gone"); err != nil {
		t.Fatalf("tx insert: %v", err)
	}
	if err := tx.Rollback(); err != nil {
		t.Fatalf("rollback: %v", err)
	}

	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM tx_items`).Scan(&count); err != nil {
		t.Fatalf("count scan: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to discard insert, got %d rows", count)
	}
}

func TestNew_BadDSN(t *testing.T) {
	ctx := context.Background()
	// reserved ":"-prefixed names that are not :memory: fail the ping
	_, err := dbpkg.New(ctx, ":invalid-dsn:")
	if err == nil {
		t.Fatalf("expected error for bad DSN, got nil")
	}
}
