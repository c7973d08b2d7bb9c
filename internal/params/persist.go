package params

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
)

const (
	// snapshotFileName is the namespaced durable slot for the parameter
	// mapping, the counterpart of the dashboard's saved-state key.
	snapshotFileName = "ntndash-params.json"

	defaultFileMode = 0o644
	defaultDirMode  = 0o755
)

// FilePersister stores the parameter mapping as one JSON object in a file
// under the state directory. Writes go through a temp file and rename so a
// crash mid-write never leaves a truncated snapshot.
type FilePersister struct {
	path string
}

// NewFilePersister creates a persister rooted at stateDir, creating the
// directory if needed.
func NewFilePersister(stateDir string) (*FilePersister, error) {
	if strings.TrimSpace(stateDir) == "" {
		return nil, errors.New("params: state dir is empty")
	}
	if err := os.MkdirAll(stateDir, defaultDirMode); err != nil {
		return nil, fmt.Errorf("params: mkdir state dir: %w", err)
	}
	return &FilePersister{path: filepath.Join(stateDir, snapshotFileName)}, nil
}

// Path returns the snapshot file location.
func (p *FilePersister) Path() string { return p.path }

// Save writes the full mapping, replacing any previous snapshot.
func (p *FilePersister) Save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("params: marshal snapshot: %w", err)
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, defaultFileMode); err != nil {
		return fmt.Errorf("params: write snapshot: %w", err)
	}
	if err := os.Rename(tmp, p.path); err != nil {
		return fmt.Errorf("params: replace snapshot: %w", err)
	}
	return nil
}

// Load reads the saved mapping. A missing or unparseable file is treated as
// no saved state and returns an empty map with no error.
func (p *FilePersister) Load() (map[string]string, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("params: read snapshot: %w", err)
	}

	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		// Corrupt saved state degrades to a fresh start.
		return map[string]string{}, nil
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}
