// Package scratch stores the temporary files handed to external editors.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/liamg/memoryfs"
)

const fileMode = 0o600

// Name returns the temporary file name for the given prefix, time and
// extension: prefix-<epoch millis>.ext.
func Name(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%d.%s", prefix, now.UnixMilli(), ext)
}

// Dir keeps scratch files in a directory of the local file system.
// The zero value uses the system temp directory.
type Dir struct {
	Path string
	Now  func() time.Time
}

func (d *Dir) dir() string {
	if len(d.Path) == 0 {
		return os.TempDir()
	}

	return d.Path
}

func (d *Dir) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}

	return d.Now()
}

// Create writes content to a fresh file and returns its path. An existing
// file is never overwritten, and a file that could not be fully written is
// removed again.
func (d *Dir) Create(prefix, ext, content string) (string, error) {
	path := filepath.Join(d.dir(), Name(prefix, ext, d.now()))

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if err != nil {
		return "", err
	}

	if err := writeClose(file, content); err != nil {
		_ = os.Remove(path)

		return "", err
	}

	return path, nil
}

var writeClose = func(file *os.File, content string) error {
	_, err := file.WriteString(content)
	if cerr := file.Close(); err == nil {
		err = cerr
	}

	return err
}

// Read returns the content of a scratch file.
func (d *Dir) Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Remove deletes a scratch file.
func (d *Dir) Remove(path string) error {
	return os.Remove(path)
}

// Mem keeps scratch files in memory. Paths are only meaningful to the same
// Mem value, so it is useful with editors that are not real processes.
type Mem struct {
	FS  *memoryfs.FS
	Now func() time.Time
}

// NewMem returns an empty in-memory store.
func NewMem() *Mem {
	return &Mem{FS: memoryfs.New(), Now: time.Now}
}

// Create writes content to a fresh in-memory file and returns its path.
func (m *Mem) Create(prefix, ext, content string) (string, error) {
	path := Name(prefix, ext, m.Now())

	if err := m.FS.WriteFile(path, []byte(content), fileMode); err != nil {
		return "", err
	}

	return path, nil
}

// Read returns the content of an in-memory file.
func (m *Mem) Read(path string) (string, error) {
	data, err := m.FS.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Write replaces the content of an in-memory file.
func (m *Mem) Write(path, content string) error {
	return m.FS.WriteFile(path, []byte(content), fileMode)
}

// Remove deletes an in-memory file.
func (m *Mem) Remove(path string) error {
	return m.FS.Remove(path)
}

// Exists reports whether path is present.
func (m *Mem) Exists(path string) bool {
	_, err := m.FS.Stat(path)

	return err == nil
}
