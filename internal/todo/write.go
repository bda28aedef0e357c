package todo

import (
	"os"
	"path/filepath"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
)

// Write serialises doc back to its Path. It writes to a temporary file in
// the same directory and renames over the destination, so a crash mid-write
// never corrupts the file git is about to read (DESIGN.md Open Question
// decision: write-then-rename).
func Write(doc *Document) error {
	if doc.IsNoop() {
		return writeAtomic(doc.Path, []byte(action.Noop.String()+"\n"))
	}

	var buf []byte
	for _, l := range doc.lines {
		buf = append(buf, []byte(l.ToLine()+"\n")...)
	}
	return writeAtomic(doc.Path, buf)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".rebase-todo-*")
	if err != nil {
		return &ReadError{File: path, Cause: err}
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &ReadError{File: path, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &ReadError{File: path, Cause: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return &ReadError{File: path, Cause: err}
	}
	return nil
}
