// Package comment detects and strips the leading comment block of a source
// file. Stripping license headers this way makes revisions of the same file
// from different vendor drops diffable.
package comment

import (
	"bytes"
	"strings"
)

// Mode is the comment style of a file's leading block, decided by the first
// non-blank line.
type Mode int

const (
	ModeNone Mode = iota
	ModeHash
	ModeSlash
	ModeBlock
)

// DetectMode inspects the first non-blank line and reports the comment style
// it opens with.
func DetectMode(data []byte) Mode {
	for _, raw := range splitLines(data) {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "#"):
			return ModeHash
		case strings.HasPrefix(line, "//"):
			return ModeSlash
		case strings.HasPrefix(line, "/*"):
			return ModeBlock
		}
		return ModeNone
	}
	return ModeNone
}

// LeadingLines returns how many leading lines belong to the file's opening
// comment block, zero when there is none or the block is malformed.
func LeadingLines(data []byte) int {
	switch DetectMode(data) {
	case ModeHash:
		return countPrefixed(splitLines(data), "#", 1)
	case ModeSlash:
		return countPrefixed(splitLines(data), "//", 1)
	case ModeBlock:
		return countBlock(splitLines(data))
	}
	return 0
}

// countPrefixed counts consecutive lines starting with prefix, tolerating up
// to maxLineBreaks embedded runs of blank lines. Trailing blank runs are only
// counted when a further prefixed line follows them.
func countPrefixed(lines []string, prefix string, maxLineBreaks int) int {
	n := 0
	lb := 0
	lbn := 0
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			if lbn == 0 {
				if lb == maxLineBreaks {
					break
				}
				lb++
				lbn++
			} else {
				lbn++
			}
			continue
		}
		if !strings.HasPrefix(line, prefix) {
			break
		}
		n += lbn
		lbn = 0
		n++
	}
	return n
}

// countBlock counts the lines of a leading /* ... */ block. The opener must
// sit at the beginning of its line and the closer at the end of its line;
// anything else makes the whole block uncountable and yields zero.
func countBlock(lines []string) int {
	n := 0
	hasBegin := false
	hasEnd := false

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		if hasBegin {
			n++
			end, ok := findEnd(line)
			if !ok {
				return 0
			}
			if !end {
				continue
			}
			hasEnd = true
			break
		}

		if line == "" {
			n++
			continue
		}

		begin, ok := findBegin(line)
		if !ok {
			return 0
		}
		if !begin {
			break
		}
		hasBegin = true
		n++

		end, endOK := findEnd(line[2:])
		if !endOK {
			return 0
		}
		if end {
			hasEnd = true
			break
		}
	}

	if !hasBegin || !hasEnd {
		return 0
	}
	return n
}

// findBegin reports whether line opens a block comment. A /* somewhere past
// the beginning of the line is malformed (ok == false).
func findBegin(line string) (found, ok bool) {
	pos := strings.Index(line, "/*")
	if pos < 0 {
		return false, true
	}
	if pos != 0 {
		return false, false
	}
	return true, true
}

// findEnd reports whether line closes a block comment. A */ anywhere but the
// very end of the line is malformed (ok == false).
func findEnd(line string) (found, ok bool) {
	pos := strings.Index(line, "*/")
	if pos < 0 {
		return false, true
	}
	if pos != len(line)-2 {
		return false, false
	}
	return true, true
}

// Strip drops the first removeN lines of data and prepends padN blank lines
// to what remains.
func Strip(data []byte, removeN, padN int) []byte {
	rest := data
	for i := 0; i < removeN && len(rest) > 0; i++ {
		if j := bytes.IndexByte(rest, '\n'); j >= 0 {
			rest = rest[j+1:]
		} else {
			rest = nil
		}
	}

	out := make([]byte, 0, padN+len(rest))
	for i := 0; i < padN; i++ {
		out = append(out, '\n')
	}
	return append(out, rest...)
}

// splitLines splits on LF without keeping terminators. A trailing newline
// does not produce a final empty line.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
