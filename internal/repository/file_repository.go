package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/maheshrc27/postdeck/internal/scheduler"
)

// fileRepository stores the snapshot as a single JSON document on disk.
// It is the default adapter when no database is configured.
type fileRepository struct {
	path string
}

func NewFileRepository(path string) SnapshotRepository {
	return &fileRepository{path: path}
}

func (r *fileRepository) Load(_ context.Context) (*scheduler.State, bool, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		slog.Error("reading state file", "path", r.path, "error", err)
		return nil, false, err
	}

	var state scheduler.State
	if err := json.Unmarshal(data, &state); err != nil {
		slog.Error("decoding state file", "path", r.path, "error", err)
		return nil, false, fmt.Errorf("decoding state file %s: %w", r.path, err)
	}
	return &state, true, nil
}

// Save writes to a temp file and renames it over the target so a crash
// mid-write never leaves a truncated snapshot.
func (r *fileRepository) Save(_ context.Context, state *scheduler.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding state: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return fmt.Errorf("creating temp state file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing state file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing state file: %w", err)
	}
	return nil
}
