// Package export snapshots rankings to blob storage, diffs them against
// earlier snapshots, and records each export in the audit history.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// StorageClient abstracts blob storage for rankings and deltas.
type StorageClient interface {
	PutRanking(ctx context.Context, registryID, rankingID string, data []byte) error
	GetRanking(ctx context.Context, registryID, rankingID string) ([]byte, error)
	PutDelta(ctx context.Context, registryID, deltaID string, data []byte) error
	GetDelta(ctx context.Context, registryID, deltaID string) ([]byte, error)
}

// LocalStorage implements StorageClient using the local filesystem.
// Useful for development and testing.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a LocalStorage rooted at the given directory.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

func (s *LocalStorage) path(registryID, kind, id string) string {
	return filepath.Join(s.BaseDir, registryID, kind, id+".json")
}

func (s *LocalStorage) put(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// PutRanking stores a ranking blob.
func (s *LocalStorage) PutRanking(ctx context.Context, registryID, rankingID string, data []byte) error {
	return s.put(s.path(registryID, "rankings", rankingID), data)
}

// GetRanking retrieves a ranking blob.
func (s *LocalStorage) GetRanking(ctx context.Context, registryID, rankingID string) ([]byte, error) {
	return os.ReadFile(s.path(registryID, "rankings", rankingID))
}

// PutDelta stores a delta blob.
func (s *LocalStorage) PutDelta(ctx context.Context, registryID, deltaID string, data []byte) error {
	return s.put(s.path(registryID, "deltas", deltaID), data)
}

// GetDelta retrieves a delta blob.
func (s *LocalStorage) GetDelta(ctx context.Context, registryID, deltaID string) ([]byte, error) {
	return os.ReadFile(s.path(registryID, "deltas", deltaID))
}

// NewStorageFromEnv selects a backend from VOCASCOPE_STORAGE_BACKEND:
// "local" (the default), "s3", or "gcs".
func NewStorageFromEnv(ctx context.Context) (StorageClient, error) {
	backend := os.Getenv("VOCASCOPE_STORAGE_BACKEND")
	switch backend {
	case "", "local":
		dir := os.Getenv("VOCASCOPE_STORAGE_PATH")
		if dir == "" {
			dir = "./data"
		}
		return NewLocalStorage(dir), nil
	case "s3":
		return NewS3Storage(ctx, S3Config{
			Bucket:    os.Getenv("VOCASCOPE_S3_BUCKET"),
			Region:    os.Getenv("AWS_REGION"),
			Endpoint:  os.Getenv("VOCASCOPE_S3_ENDPOINT"),
			AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		})
	case "gcs":
		return NewGCSStorage(ctx, os.Getenv("VOCASCOPE_GCS_BUCKET"))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

// backendName labels a storage client for audit rows.
func backendName(s StorageClient) string {
	switch s.(type) {
	case *LocalStorage:
		return "local"
	case *S3Storage:
		return "s3"
	case *GCSStorage:
		return "gcs"
	default:
		return "unknown"
	}
}
