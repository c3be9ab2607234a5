// Package snapshot reads and writes the durable local snapshot: one JSON
// blob, written in full after every store mutation and read once at startup.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// File persists values as pretty-printed JSON at a fixed path. Writes go
// through a temp file and rename, so a crash mid-write never leaves a
// truncated snapshot behind.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

func (f *File) Save(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".snapshot-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

// Load unmarshals the snapshot into v. A missing file is reported via
// os.IsNotExist on the returned error so callers can fall back to seeding.
func (f *File) Load(v any) error {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse snapshot %s: %w", f.Path, err)
	}
	return nil
}

// Exists reports whether a snapshot file is present.
func (f *File) Exists() bool {
	_, err := os.Stat(f.Path)
	return err == nil
}
