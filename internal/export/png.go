// Package export names and writes whiteboard images.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	filePrefix = "whiteboard-"
	fileExt    = ".png"
)

// FileName is the download name for an export made at t, dated in UTC:
// whiteboard-2024-06-01.png.
func FileName(t time.Time) string {
	return filePrefix + t.UTC().Format(time.DateOnly) + fileExt
}

// DirSaver writes exports into a directory, replacing an existing file of
// the same name.
type DirSaver struct {
	Dir string
}

func (d DirSaver) Save(name string, data []byte) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(d.Dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
