package database

import (
	"path/filepath"
	"testing"
)

func TestOpenSQLite_MigratesNewDB(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "data", "orcamento.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	version, err := schemaVersion(db)
	if err != nil {
		t.Fatalf("schemaVersion: %v", err)
	}
	if version != latestVersion() {
		t.Fatalf("expected version %d, got %d", latestVersion(), version)
	}

	for _, table := range []string{"briefings", "budgets", "pricing_configs"} {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&n); err != nil {
			t.Fatalf("query: %v", err)
		}
		if n != 1 {
			t.Fatalf("missing table %s", table)
		}
	}
}

func TestOpenSQLite_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idem.db")

	db1, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	db1.Close()

	db2, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer db2.Close()

	version, err := schemaVersion(db2)
	if err != nil || version != latestVersion() {
		t.Fatalf("unexpected version %d err=%v", version, err)
	}
}

func TestOpenSQLite_PartialUniqueIndex(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "uq.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`INSERT INTO briefings (id, tenant_id, client_id, status, created_at, updated_at) VALUES ('b1', 't1', 'c1', 'concluido', 'now', 'now')`); err != nil {
		t.Fatalf("insert briefing: %v", err)
	}
	insert := `INSERT INTO budgets (id, code, tenant_id, briefing_id, client_id, responsible_user_id, status, methodology_version, total, value_per_m2, details, created_at, updated_at, deleted_at)
		VALUES (?, ?, 't1', 'b1', 'c1', 'u1', 'rascunho', 'v', 1, 1, '{}', 'now', 'now', ?)`

	if _, err := db.Exec(insert, "x1", "C1", "2026-01-01T00:00:00Z"); err != nil {
		t.Fatalf("insert deleted budget: %v", err)
	}
	if _, err := db.Exec(insert, "x2", "C2", nil); err != nil {
		t.Fatalf("insert live budget: %v", err)
	}
	if _, err := db.Exec(insert, "x3", "C3", nil); err == nil {
		t.Fatalf("expected unique violation for second live budget")
	}
}
