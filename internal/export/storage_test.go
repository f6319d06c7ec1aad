package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLocalStoragePutGetRanking(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"term":"person"}`)
	if err := s.PutRanking(ctx, "lov.linkeddata.es", "rk1", data); err != nil {
		t.Fatalf("PutRanking: %v", err)
	}

	got, err := s.GetRanking(ctx, "lov.linkeddata.es", "rk1")
	if err != nil {
		t.Fatalf("GetRanking: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetRanking = %q, want %q", got, data)
	}

	// Verify file path layout
	expectedPath := filepath.Join(dir, "lov.linkeddata.es", "rankings", "rk1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStoragePutGetDelta(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	data := []byte(`{"added":[]}`)
	if err := s.PutDelta(ctx, "lov.linkeddata.es", "dl1", data); err != nil {
		t.Fatalf("PutDelta: %v", err)
	}

	got, err := s.GetDelta(ctx, "lov.linkeddata.es", "dl1")
	if err != nil {
		t.Fatalf("GetDelta: %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("GetDelta = %q, want %q", got, data)
	}

	expectedPath := filepath.Join(dir, "lov.linkeddata.es", "deltas", "dl1.json")
	if _, err := os.Stat(expectedPath); err != nil {
		t.Errorf("expected file at %s: %v", expectedPath, err)
	}
}

func TestLocalStorageGetNotFound(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir)
	ctx := context.Background()

	_, err := s.GetRanking(ctx, "lov.linkeddata.es", "nonexistent")
	if err == nil {
		t.Error("expected error for nonexistent ranking")
	}
}

func TestNewStorageFromEnv(t *testing.T) {
	t.Run("default is local", func(t *testing.T) {
		t.Setenv("VOCASCOPE_STORAGE_BACKEND", "")
		t.Setenv("VOCASCOPE_STORAGE_PATH", t.TempDir())

		s, err := NewStorageFromEnv(context.Background())
		if err != nil {
			t.Fatalf("NewStorageFromEnv: %v", err)
		}
		if _, ok := s.(*LocalStorage); !ok {
			t.Errorf("expected *LocalStorage, got %T", s)
		}
		if got := backendName(s); got != "local" {
			t.Errorf("backendName = %q, want %q", got, "local")
		}
	})

	t.Run("unknown backend errors", func(t *testing.T) {
		t.Setenv("VOCASCOPE_STORAGE_BACKEND", "tape")

		if _, err := NewStorageFromEnv(context.Background()); err == nil {
			t.Error("expected error for unknown backend")
		}
	})
}
