package todo

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/MitMaro/git-interactive-rebase-tool-sub003/internal/action"
)

// ParseError is a parse failure for a single todo line, per spec.md §4.10.
type ParseError struct {
	// Line is the offending raw line (InvalidLine) or token (InvalidAction).
	Line      string
	IsAction  bool
}

func (e *ParseError) Error() string {
	if e.IsAction {
		return fmt.Sprintf("invalid action: %q", e.Line)
	}
	return fmt.Sprintf("invalid line: %q", e.Line)
}

// InvalidAction builds the ParseError variant for an unrecognized action
// token.
func InvalidAction(token string) *ParseError { return &ParseError{Line: token, IsAction: true} }

// InvalidLine builds the ParseError variant for a malformed line.
func InvalidLine(line string) *ParseError { return &ParseError{Line: line} }

// ReadError wraps a read, parse or write failure with the offending file path,
// mirroring the teacher's FileError shape (internal/app/errors.go).
type ReadError struct {
	File  string
	Cause error
}

func (e *ReadError) Error() string { return fmt.Sprintf("read %s: %v", e.File, e.Cause) }
func (e *ReadError) Unwrap() error { return e.Cause }

// Read loads and parses the todo file at path. commentChar prefixes lines
// to skip. An empty file yields an empty, non-noop Document (caller checks
// Len()==0 for the "empty rebase" boundary behaviour in spec.md §8).
func Read(path, commentChar string, undoLimit int) (*Document, error) {
	if commentChar == "" {
		commentChar = "#"
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{File: path, Cause: err}
	}
	defer f.Close()

	var lines []Line
	noop := false

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, commentChar) {
			continue
		}
		if len(lines) == 0 && strings.EqualFold(trimmed, "noop") {
			noop = true
			lines = []Line{NewBareLine(action.Noop)}
			break
		}
		line, perr := parseLine(trimmed)
		if perr != nil {
			return nil, &ReadError{File: path, Cause: perr}
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ReadError{File: path, Cause: err}
	}

	doc := New(path, commentChar, undoLimit)
	doc.Load(lines)
	doc.isNoop = noop
	return doc, nil
}

// parseLine tokenizes one non-comment, non-empty line by whitespace.
func parseLine(line string) (Line, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Line{}, InvalidLine(line)
	}

	a, ok := action.Parse(tokens[0])
	if !ok {
		return Line{}, InvalidAction(tokens[0])
	}
	rest := tokens[1:]

	switch {
	case a == action.Break || a == action.Noop:
		if len(rest) != 0 {
			return Line{}, InvalidLine(line)
		}
		return NewBareLine(a), nil

	case a == action.Fixup:
		var mod action.Modifier
		if len(rest) > 0 {
			switch rest[0] {
			case "-C":
				mod = action.KeepMessage
				rest = rest[1:]
			case "-c":
				mod = action.KeepMessageEditor
				rest = rest[1:]
			}
		}
		if len(rest) == 0 {
			return Line{}, InvalidLine(line)
		}
		hash := rest[0]
		content := strings.TrimSpace(strings.Join(rest[1:], " "))
		return Line{Action: a, Hash: hash, Content: content, Modifier: mod}, nil

	case a.CommitBearing():
		if len(rest) == 0 {
			return Line{}, InvalidLine(line)
		}
		hash := rest[0]
		content := strings.TrimSpace(strings.Join(rest[1:], " "))
		return NewCommitLine(a, hash, content), nil

	case a.ContentBearing():
		content := strings.TrimSpace(strings.Join(rest, " "))
		if content == "" {
			return Line{}, InvalidLine(line)
		}
		return NewContentLine(a, content), nil

	default:
		return Line{}, InvalidAction(tokens[0])
	}
}
