package store

import (
	"context"
	"os"
	"testing"
)

func tempSQLiteStore(t *testing.T) *SQLite {
	t.Helper()
	dbFile, err := os.CreateTemp("", "tessera-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	s, err := OpenSQLite(dbFile.Name())
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteSaveAndLoad(t *testing.T) {
	s := tempSQLiteStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, KeyDashboard, []byte(`{"cards":[]}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Load(ctx, KeyDashboard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok || string(got) != `{"cards":[]}` {
		t.Errorf("value = %q, ok = %v", got, ok)
	}
}

func TestSQLiteLoadAbsent(t *testing.T) {
	s := tempSQLiteStore(t)
	_, ok, err := s.Load(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("absent key reported present")
	}
}

func TestSQLiteUpsert(t *testing.T) {
	s := tempSQLiteStore(t)
	ctx := context.Background()
	_ = s.Save(ctx, KeySettings, []byte("first"))
	_ = s.Save(ctx, KeySettings, []byte("second"))

	got, _, _ := s.Load(ctx, KeySettings)
	if string(got) != "second" {
		t.Errorf("value = %q, want second", got)
	}
}

func TestSQLiteClear(t *testing.T) {
	s := tempSQLiteStore(t)
	ctx := context.Background()
	_ = s.Save(ctx, KeyDashboard, []byte("{}"))
	_ = s.Save(ctx, KeySettings, []byte("{}"))

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := s.Load(ctx, KeyDashboard); ok {
		t.Error("dashboard key should be gone")
	}
	if _, ok, _ := s.Load(ctx, KeySettings); ok {
		t.Error("settings key should be gone")
	}
}
