package file

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s, dir
}

func TestPutAndGet(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.Put("fp1", []byte("hello")); err != nil {
		t.Fatal(err)
	}

	data, ok := s.Get("fp1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != "hello" {
		t.Errorf("unexpected payload: %s", data)
	}

	// Repeated reads keep returning the same payload.
	for i := 0; i < 3; i++ {
		data, ok = s.Get("fp1")
		if !ok || string(data) != "hello" {
			t.Fatalf("read %d: expected stable hit, got ok=%v payload=%s", i, ok, data)
		}
	}
}

func TestGetMiss(t *testing.T) {
	s, _ := newTestStore(t)

	if _, ok := s.Get("absent"); ok {
		t.Error("expected miss for absent fingerprint")
	}
}

func TestPutOverwrites(t *testing.T) {
	s, _ := newTestStore(t)

	_ = s.Put("fp1", []byte("old"))
	if err := s.Put("fp1", []byte("new")); err != nil {
		t.Fatal(err)
	}

	data, ok := s.Get("fp1")
	if !ok || string(data) != "new" {
		t.Errorf("expected overwritten payload, got ok=%v payload=%s", ok, data)
	}
}

func TestIsolation(t *testing.T) {
	s, _ := newTestStore(t)

	_ = s.Put("fp1", []byte("one"))
	_ = s.Put("fp2", []byte("two"))

	if data, _ := s.Get("fp1"); string(data) != "one" {
		t.Errorf("fp1 affected by fp2: %s", data)
	}
	if data, _ := s.Get("fp2"); string(data) != "two" {
		t.Errorf("fp2 wrong: %s", data)
	}
}

func TestSurvivesReopen(t *testing.T) {
	s, dir := newTestStore(t)
	_ = s.Put("fp1", []byte("persisted"))

	s2, err := New(dir)
	if err != nil {
		t.Fatal(err)
	}
	data, ok := s2.Get("fp1")
	if !ok || string(data) != "persisted" {
		t.Errorf("entry did not survive reopen: ok=%v payload=%s", ok, data)
	}
}

func TestCorruptEntryIsMiss(t *testing.T) {
	s, dir := newTestStore(t)

	if err := os.WriteFile(filepath.Join(dir, "fp1.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get("fp1"); ok {
		t.Error("corrupt entry should be treated as a miss")
	}
}

func TestMismatchedEntryIsMiss(t *testing.T) {
	s, dir := newTestStore(t)

	// Entry recorded under a different fingerprint, e.g. a stray rename.
	_ = s.Put("fp1", []byte("payload"))
	src := filepath.Join(dir, "fp1.json")
	dst := filepath.Join(dir, "fp2.json")
	if err := os.Rename(src, dst); err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Get("fp2"); ok {
		t.Error("entry with mismatched fingerprint should be a miss")
	}
}

func TestStats(t *testing.T) {
	s, _ := newTestStore(t)

	_ = s.Put("fp1", []byte("data"))
	s.Get("fp1") // hit
	s.Get("fp2") // miss

	stats, err := s.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if stats.Entries != 1 {
		t.Errorf("expected 1 entry, got %d", stats.Entries)
	}
	if stats.Hits != 1 {
		t.Errorf("expected 1 hit, got %d", stats.Hits)
	}
	if stats.Misses != 1 {
		t.Errorf("expected 1 miss, got %d", stats.Misses)
	}
}

func TestClear(t *testing.T) {
	s, _ := newTestStore(t)

	_ = s.Put("fp1", []byte("data"))
	_ = s.Put("fp2", []byte("data"))

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}

	stats, _ := s.Stats()
	if stats.Entries != 0 {
		t.Errorf("expected 0 entries after clear, got %d", stats.Entries)
	}
	if _, ok := s.Get("fp1"); ok {
		t.Error("expected miss after clear")
	}
}
