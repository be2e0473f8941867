package sqlite

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cache_test.db")
	s, err := New(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutAndGet(t *testing.T) {
	s := newTestStore(t)

	if err := s.Put("fp1", []byte(`{"summary":"hello"}`)); err != nil {
		t.Fatal(err)
	}

	data, ok := s.Get("fp1")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if string(data) != `{"summary":"hello"}` {
		t.Errorf("unexpected payload: %s", data)
	}

	if _, ok := s.Get("fp2"); ok {
		t.Error("expected miss for different fingerprint")
	}
}

func TestPutOverwrites(t *testing.T) {
	s := newTestStore(t)

	_ = s.Put("fp1", []byte("old"))
	if err := s.Put("fp1", []byte("new")); err != nil {
		t.Fatal(err)
	}

	data, _ := s.Get("fp1")
	if string(data) != "new" {
		t.Errorf("expected overwritten payload, got %s", data)
	}

	stats, _ := s.Stats()
	if stats.Entries != 1 {
		t.Errorf("overwrite should not add an entry, got %d", stats.Entries)
	}
}

func TestStats(t *testing.T) {
	s := newTestStore(t)

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
	s := newTestStore(t)

	_ = s.Put("fp1", []byte("data"))
	_ = s.Put("fp2", []byte("data"))

	if err := s.Clear(); err != nil {
		t.Fatal(err)
	}

	stats, _ := s.Stats()
	if stats.Entries != 0 {
		t.Errorf("expected 0 entries after clear, got %d", stats.Entries)
	}
}
