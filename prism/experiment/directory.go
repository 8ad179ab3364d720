package experiment

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	RunsDir       = "runs"
	LatestSymlink = "latest"
)

type RunDir struct {
	Path      string    // Absolute path to run directory
	ID        string    // Unique run identifier
	Timestamp time.Time // When the run was created
}

// CreateRunDirectory creates a new uniquely named directory under baseDir and points
// baseDir/latest at it
func CreateRunDirectory(baseDir string) (*RunDir, error) {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("creating runs directory: %w", err)
	}

	var (
		id      string
		absPath string
	)
	for attempt := 0; ; attempt++ {
		id = GenerateRunName()
		if attempt > 0 {
			id = fmt.Sprintf("%s-%d", id, attempt)
		}
		p, err := filepath.Abs(filepath.Join(baseDir, id))
		if err != nil {
			return nil, fmt.Errorf("getting absolute path: %w", err)
		}
		err = os.Mkdir(p, 0755)
		if err == nil {
			absPath = p
			break
		}
		if !os.IsExist(err) {
			return nil, fmt.Errorf("creating run directory: %w", err)
		}
	}

	latestPath := filepath.Join(baseDir, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		// Don't fail if symlink creation fails
		fmt.Printf("Warning: failed to create latest symlink: %v\n", err)
	}

	return &RunDir{
		Path:      absPath,
		ID:        id,
		Timestamp: time.Now().UTC(),
	}, nil
}

// GetFilePath returns the absolute path for a file in the run directory
func (r *RunDir) GetFilePath(filename string) string {
	return filepath.Join(r.Path, filename)
}

// CopyConfigFile copies the provided config file to the run directory
func (r *RunDir) CopyConfigFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	destPath := r.GetFilePath(filepath.Base(srcPath))
	if err := os.WriteFile(destPath, content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
