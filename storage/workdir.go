package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"relay-bot/domain"
	"strings"
	"time"
)

// WorkDir lays out local artifacts as <root>/<transferID>/<name>.
// One directory per transfer keeps concurrent transfers with the same file name apart.
type WorkDir struct {
	root string
}

type Entry struct {
	ID         domain.TransferID
	ModifiedAt time.Time
}

func NewWorkDir(root string) (*WorkDir, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	if err := os.MkdirAll(abs, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return &WorkDir{root: abs}, nil
}

func (w *WorkDir) Root() string {
	return w.root
}

// Allocate creates the transfer directory and returns the artifact that will live in it.
// The file itself is not created.
func (w *WorkDir) Allocate(id domain.TransferID, name string) (domain.LocalArtifact, error) {
	dir := filepath.Join(w.root, string(id))
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return domain.LocalArtifact{}, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	clean := SanitizeName(name)
	return domain.LocalArtifact{
		TransferID: id,
		Dir:        dir,
		Path:       filepath.Join(dir, clean),
		Name:       clean,
	}, nil
}

// Rename moves the artifact to a new name inside its transfer directory.
func (w *WorkDir) Rename(artifact domain.LocalArtifact, name string) (domain.LocalArtifact, error) {
	clean := SanitizeName(name)
	target := filepath.Join(artifact.Dir, clean)
	if target == artifact.Path {
		return artifact, nil
	}
	if err := os.Rename(artifact.Path, target); err != nil {
		return artifact, fmt.Errorf("rename %s: %w", artifact.Name, err)
	}
	artifact.Path = target
	artifact.Name = clean
	return artifact, nil
}

// Entries lists transfer directories currently on disk.
func (w *WorkDir) Entries() ([]Entry, error) {
	dirEntries, err := os.ReadDir(w.root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", w.root, err)
	}
	entries := make([]Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		info, err := e.Info()
		if err != nil {
			// Removed concurrently
			continue
		}
		entries = append(entries, Entry{ID: domain.TransferID(e.Name()), ModifiedAt: info.ModTime()})
	}
	return entries, nil
}

// Purge removes everything that belongs to a transfer.
func (w *WorkDir) Purge(id domain.TransferID) error {
	if id == "" || strings.ContainsAny(string(id), `/\`) {
		return fmt.Errorf("invalid transfer id %q", id)
	}
	return os.RemoveAll(filepath.Join(w.root, string(id)))
}

// PurgeAll empties the work directory and returns the number of removed entries.
func (w *WorkDir) PurgeAll() (int, error) {
	entries, err := w.Entries()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, e := range entries {
		if err := w.Purge(e.ID); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}

// SanitizeName reduces a caller-supplied name to a single path element.
func SanitizeName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, `\`, "/"))
	name = filepath.Base(name)
	if name == "." || name == "/" || name == ".." || name == "" {
		return domain.DefaultFileName
	}
	return name
}
