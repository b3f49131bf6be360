package member

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/KirkDiggler/sylk/internal/models"
)

// FileConfig holds configuration for the file roster repository
type FileConfig struct {
	// Path of the JSON document holding every roster
	Path string
}

// fileRepository keeps rosters in a single JSON document on local disk
type fileRepository struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a new file-backed roster repository
func NewFile(cfg *FileConfig) (*fileRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Path == "" {
		return nil, errors.New("path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create roster directory: %w", err)
	}

	return &fileRepository{
		path: cfg.Path,
	}, nil
}

func (r *fileRepository) load() (map[string][]models.Member, error) {
	rosters := map[string][]models.Member{}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rosters, nil
		}
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	if len(data) == 0 {
		return rosters, nil
	}

	if err := json.Unmarshal(data, &rosters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster file: %w", err)
	}

	return rosters, nil
}

func (r *fileRepository) store(rosters map[string][]models.Member) error {
	data, err := json.MarshalIndent(rosters, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal roster file: %w", err)
	}

	return writeFileAtomic(r.path, data, 0o644)
}

// GetRoster retrieves a roster from disk
func (r *fileRepository) GetRoster(ctx context.Context, input *GetRosterInput) (*GetRosterOutput, error) {
	if input == nil || input.RosterID == "" {
		return nil, ErrEmptyRosterID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rosters, err := r.load()
	if err != nil {
		return nil, err
	}

	return &GetRosterOutput{Members: models.CopyMembers(rosters[input.RosterID])}, nil
}

// SaveRoster persists a roster to disk
func (r *fileRepository) SaveRoster(ctx context.Context, input *SaveRosterInput) error {
	if input == nil || input.RosterID == "" {
		return ErrEmptyRosterID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rosters, err := r.load()
	if err != nil {
		return err
	}

	rosters[input.RosterID] = models.CopyMembers(input.Members)

	return r.store(rosters)
}

// DeleteRoster removes a roster from disk
func (r *fileRepository) DeleteRoster(ctx context.Context, input *DeleteRosterInput) error {
	if input == nil || input.RosterID == "" {
		return ErrEmptyRosterID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rosters, err := r.load()
	if err != nil {
		return err
	}

	if _, ok := rosters[input.RosterID]; !ok {
		return nil
	}
	delete(rosters, input.RosterID)

	return r.store(rosters)
}

// writeFileAtomic writes to a temp file in the same directory and renames it
// over the target, so readers see either the old or the new document.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmpFile, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil

	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpPath, filename); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
