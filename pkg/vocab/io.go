package vocab

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SaveRanking writes a ranking to disk as JSON.
func SaveRanking(path string, r *Ranking) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating directory for ranking: %w", err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling ranking: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing ranking: %w", err)
	}

	return nil
}

// LoadRanking reads a ranking from disk.
func LoadRanking(path string) (*Ranking, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ranking: %w", err)
	}

	var r Ranking
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshaling ranking: %w", err)
	}

	return &r, nil
}

// EncodeRanking marshals a ranking to indented JSON for storage
// backends that take raw bytes.
func EncodeRanking(r *Ranking) ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling ranking: %w", err)
	}
	return data, nil
}

// DecodeRanking unmarshals a ranking from JSON bytes.
func DecodeRanking(data []byte) (*Ranking, error) {
	var r Ranking
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("unmarshaling ranking: %w", err)
	}
	return &r, nil
}
