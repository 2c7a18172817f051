package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func tempFileStore(t *testing.T) *File {
	t.Helper()
	fs, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	return fs
}

func TestFileSaveAndLoad(t *testing.T) {
	s := tempFileStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, KeyDashboard, []byte(`{"version":"0.0.3"}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := s.Load(ctx, KeyDashboard)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("key should be present")
	}
	if string(got) != `{"version":"0.0.3"}` {
		t.Errorf("value = %q", got)
	}
}

func TestFileLoadAbsent(t *testing.T) {
	s := tempFileStore(t)
	_, ok, err := s.Load(context.Background(), KeySettings)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("absent key reported present")
	}
}

func TestFileSaveReplacesWholeValue(t *testing.T) {
	s := tempFileStore(t)
	ctx := context.Background()
	_ = s.Save(ctx, KeySettings, []byte("a long first value with plenty of bytes"))
	_ = s.Save(ctx, KeySettings, []byte("short"))

	got, _, _ := s.Load(ctx, KeySettings)
	if string(got) != "short" {
		t.Errorf("value = %q, want full replacement", got)
	}
}

func TestFileClear(t *testing.T) {
	s := tempFileStore(t)
	ctx := context.Background()
	_ = s.Save(ctx, KeyDashboard, []byte("{}"))
	_ = s.Save(ctx, KeySettings, []byte("{}"))

	// A stray non-key file must survive Clear.
	stray := filepath.Join(s.Root(), "notes.txt")
	if err := os.WriteFile(stray, []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := s.Load(ctx, KeyDashboard); ok {
		t.Error("dashboard key should be gone")
	}
	if _, ok, _ := s.Load(ctx, KeySettings); ok {
		t.Error("settings key should be gone")
	}
	if _, err := os.Stat(stray); err != nil {
		t.Errorf("stray file removed: %v", err)
	}
}

func TestFileRejectsPathKeys(t *testing.T) {
	s := tempFileStore(t)
	ctx := context.Background()
	for _, key := range []string{"", "../escape", "a/b", `a\b`, "dots.."} {
		if err := s.Save(ctx, key, []byte("x")); err == nil {
			t.Errorf("Save(%q) should fail", key)
		}
		if _, _, err := s.Load(ctx, key); err == nil {
			t.Errorf("Load(%q) should fail", key)
		}
	}
}

func TestFileCancelledContext(t *testing.T) {
	s := tempFileStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.Save(ctx, KeyDashboard, []byte("{}")); err == nil {
		t.Error("Save with cancelled context should fail")
	}
	if _, _, err := s.Load(ctx, KeyDashboard); err == nil {
		t.Error("Load with cancelled context should fail")
	}
}

func TestKeyForFile(t *testing.T) {
	cases := []struct {
		path string
		key  string
		ok   bool
	}{
		{"/data/bookmarkDashboard.json", KeyDashboard, true},
		{"dashboardSettings.json", KeySettings, true},
		{"/data/.tessera-tmp-123", "", false},
		{"/data/notes.txt", "", false},
	}
	for _, tc := range cases {
		key, ok := KeyForFile(tc.path)
		if key != tc.key || ok != tc.ok {
			t.Errorf("KeyForFile(%q) = (%q, %v), want (%q, %v)", tc.path, key, ok, tc.key, tc.ok)
		}
	}
}
