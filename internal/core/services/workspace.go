package services

import (
	"fmt"
	"os"
	"path/filepath"
)

// Workspace is an explicit per-run output directory handle. It replaces
// implicit session-wide state: the caller creates it, passes it into the
// pipeline, and tears it down when the run's artifacts are no longer
// needed.
type Workspace struct {
	dir  string
	temp bool
}

// NewWorkspace creates (if necessary) the output directory at dir and
// returns a handle to it.
func NewWorkspace(dir string) (*Workspace, error) {
	if dir == "" {
		return nil, fmt.Errorf("workspace: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// NewTempWorkspace creates a temporary workspace that Close removes.
func NewTempWorkspace() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "ragprep-")
	if err != nil {
		return nil, fmt.Errorf("create temp workspace: %w", err)
	}
	return &Workspace{dir: dir, temp: true}, nil
}

// Dir returns the workspace directory.
func (w *Workspace) Dir() string {
	return w.dir
}

// WriteArtifact writes one artifact file into the workspace.
func (w *Workspace) WriteArtifact(name, content string) error {
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	return nil
}

// Close tears the workspace down. Persistent workspaces keep their
// artifacts; temporary ones are removed.
func (w *Workspace) Close() error {
	if !w.temp {
		return nil
	}
	return os.RemoveAll(w.dir)
}
