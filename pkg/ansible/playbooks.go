package ansible

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// PlaybookStore lists and reads playbooks from a single directory. Names
// are bare file names; anything trying to escape the directory is
// rejected.
type PlaybookStore struct {
	dir string
}

// NewPlaybookStore creates a store over dir.
func NewPlaybookStore(dir string) *PlaybookStore {
	return &PlaybookStore{dir: dir}
}

// List returns the playbook file names, sorted.
func (s *PlaybookStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading playbook folder %s: %w", s.dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yml" || ext == ".yaml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Path resolves a playbook name to its full path, rejecting names that
// would resolve outside the playbook folder.
func (s *PlaybookStore) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid playbook name %q", name)
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("playbook %s not found", name)
	}
	return path, nil
}

// Read returns the raw content of a playbook.
func (s *PlaybookStore) Read(name string) (string, error) {
	path, err := s.Path(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading playbook %s: %w", name, err)
	}
	return string(data), nil
}
