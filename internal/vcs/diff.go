package vcs

import (
	"strconv"
	"strings"
)

// parseDiff parses unified `git diff` output into FileStatus records,
// adapted from the teacher's internal/integration/git/diff.go parseDiff
// (same line-prefix dispatch), generalized to populate Delta/DiffLine
// instead of FileDiff/DiffHunk.
func parseDiff(output string) []FileStatus {
	var files []FileStatus
	if output == "" {
		return files
	}

	lines := strings.Split(output, "\n")
	var cur *FileStatus
	var hunk *Delta
	oldLine, newLine := 0, 0

	flushHunk := func() {
		if cur != nil && hunk != nil {
			cur.Deltas = append(cur.Deltas, *hunk)
			hunk = nil
		}
	}
	flushFile := func() {
		flushHunk()
		if cur != nil {
			files = append(files, *cur)
			cur = nil
		}
	}

	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "diff --git "):
			flushFile()
			cur = &FileStatus{Status: StatusModified}
			parts := strings.SplitN(line, " ", 4)
			if len(parts) >= 4 {
				cur.SourcePath = strings.TrimPrefix(parts[2], "a/")
				cur.DestinationPath = strings.TrimPrefix(parts[3], "b/")
			}
			continue
		}

		if cur == nil {
			continue
		}

		switch {
		case strings.HasPrefix(line, "index "), strings.HasPrefix(line, "old mode "), strings.HasPrefix(line, "new mode "):
			continue
		case strings.HasPrefix(line, "new file mode "):
			cur.Status = StatusAdded
			continue
		case strings.HasPrefix(line, "deleted file mode "):
			cur.Status = StatusDeleted
			continue
		case strings.HasPrefix(line, "similarity index "):
			cur.Status = StatusRenamed
			continue
		case strings.HasPrefix(line, "rename from "):
			cur.SourcePath = strings.TrimPrefix(line, "rename from ")
			continue
		case strings.HasPrefix(line, "rename to "):
			cur.DestinationPath = strings.TrimPrefix(line, "rename to ")
			continue
		case strings.HasPrefix(line, "Binary files "):
			cur.SourceBinary = true
			cur.DestinationBinary = true
			continue
		case strings.HasPrefix(line, "--- "):
			p := strings.TrimPrefix(line, "--- ")
			if p != "/dev/null" {
				cur.SourcePath = strings.TrimPrefix(p, "a/")
			}
			continue
		case strings.HasPrefix(line, "+++ "):
			p := strings.TrimPrefix(line, "+++ ")
			if p != "/dev/null" {
				cur.DestinationPath = strings.TrimPrefix(p, "b/")
			}
			continue
		case strings.HasPrefix(line, "@@ "):
			flushHunk()
			hunk = &Delta{Context: line}
			parts := strings.SplitN(line, "@@", 3)
			if len(parts) >= 2 {
				for _, r := range strings.Fields(strings.TrimSpace(parts[1])) {
					switch {
					case strings.HasPrefix(r, "-"):
						hunk.OldStart, hunk.OldLines = parseRange(r[1:])
					case strings.HasPrefix(r, "+"):
						hunk.NewStart, hunk.NewLines = parseRange(r[1:])
					}
				}
			}
			oldLine, newLine = hunk.OldStart, hunk.NewStart
			continue
		}

		if hunk == nil || line == "" {
			continue
		}
		dl := DiffLine{Content: line[1:]}
		switch line[0] {
		case '+':
			dl.Origin = OriginAddition
			dl.NewLineNo = intPtr(newLine)
			newLine++
			cur.LargestNewLine = max(cur.LargestNewLine, newLine-1)
		case '-':
			dl.Origin = OriginDeletion
			dl.OldLineNo = intPtr(oldLine)
			oldLine++
			cur.LargestOldLine = max(cur.LargestOldLine, oldLine-1)
		case '\\':
			dl.Origin = OriginHeader
			dl.EOF = true
		default:
			dl.Origin = OriginContext
			dl.OldLineNo = intPtr(oldLine)
			dl.NewLineNo = intPtr(newLine)
			oldLine++
			newLine++
			cur.LargestOldLine = max(cur.LargestOldLine, oldLine-1)
			cur.LargestNewLine = max(cur.LargestNewLine, newLine-1)
		}
		hunk.Lines = append(hunk.Lines, dl)
	}
	flushFile()
	return files
}

func parseRange(spec string) (start, count int) {
	nums := strings.SplitN(spec, ",", 2)
	start, _ = strconv.Atoi(nums[0])
	count = 1
	if len(nums) == 2 {
		count, _ = strconv.Atoi(nums[1])
	}
	return start, count
}

func intPtr(v int) *int { return &v }

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
