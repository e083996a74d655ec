// Package region locates the fenced code region around a cursor line and
// splices new content into it.
package region

import (
	"errors"
	"strings"
)

const minFence = 3

// Region describes a fenced code block located in a document.
// StartLine and EndLine are the 0-based indices of the opening and closing
// fence lines. Prefix is the container prefix of the opening fence, the
// blanks and blockquote markers in front of it; Content has it stripped from
// every body line.
type Region struct {
	Content   string
	StartLine int
	EndLine   int
	Lang      string
	Info      string
	Prefix    string
}

// Lines returns the number of body lines between the fences.
func (r *Region) Lines() int {
	return r.EndLine - r.StartLine - 1
}

type role int

const (
	roleNone role = iota
	roleOpen
	roleClose
)

type fence struct {
	char   byte
	size   int
	quote  int
	info   string
	prefix string
}

// parseFence reports whether line is a fence line. The marker may follow a
// container prefix of blanks and blockquote markers, so fences nested in list
// items and blockquotes are recognized.
func parseFence(line string) (fence, bool) {
	line = strings.TrimRight(line, "\r")

	pos, quote := 0, 0

scan:
	for ; pos < len(line); pos++ {
		switch line[pos] {
		case ' ', '\t':
		case '>':
			quote++
		default:
			break scan
		}
	}

	if pos == len(line) {
		return fence{}, false
	}

	char := line[pos]
	if char != '`' && char != '~' {
		return fence{}, false
	}

	size := 0
	for pos+size < len(line) && line[pos+size] == char {
		size++
	}

	if size < minFence {
		return fence{}, false
	}

	info := strings.TrimSpace(line[pos+size:])
	if char == '`' && strings.ContainsRune(info, '`') {
		return fence{}, false
	}

	return fence{char: char, size: size, quote: quote, info: info, prefix: line[:pos]}, true
}

func (f fence) closes(open fence) bool {
	return len(f.info) == 0 && f.char == open.char && f.size >= open.size && f.quote == open.quote
}

// roles assigns every line its fence role in a single top-down pass, so that
// a bare marker closing a block is never mistaken for the start of the next.
func roles(lines []string) []role {
	res := make([]role, len(lines))

	var (
		open   fence
		inside bool
	)

	for i, line := range lines {
		f, ok := parseFence(line)
		if !ok {
			continue
		}

		switch {
		case !inside:
			res[i] = roleOpen
			open, inside = f, true
		case f.closes(open):
			res[i] = roleClose
			inside = false
		}
	}

	return res
}

// Locate returns the fenced region enclosing the cursor line. A cursor on
// either fence line resolves to the same region as one on its body.
// It returns ErrNotFound when no terminated region encloses the cursor.
func Locate(lines []string, cursor int) (*Region, error) {
	if cursor < 0 || cursor >= len(lines) {
		return nil, ErrNotFound
	}

	kinds := roles(lines)

	start := -1

	for i := cursor; i >= 0 && start < 0; i-- {
		switch kinds[i] {
		case roleOpen:
			start = i
		case roleClose:
			if i != cursor {
				return nil, ErrNotFound
			}
		case roleNone:
		}
	}

	if start < 0 {
		return nil, ErrNotFound
	}

	from := cursor + 1
	if kinds[cursor] == roleClose {
		from = cursor
	}

	end := -1

	for i := from; i < len(lines); i++ {
		if kinds[i] == roleClose {
			end = i

			break
		}
	}

	if end < 0 {
		return nil, ErrNotFound
	}

	f, _ := parseFence(lines[start])

	body := make([]string, 0, end-start-1)
	for _, line := range lines[start+1 : end] {
		body = append(body, dedent(line, f.prefix))
	}

	return &Region{
		Content:   strings.Join(body, "\n"),
		StartLine: start,
		EndLine:   end,
		Lang:      firstWord(f.info),
		Info:      f.info,
		Prefix:    f.prefix,
	}, nil
}

// dedent strips prefix from line, or as much of it as line starts with.
func dedent(line, prefix string) string {
	n := 0
	for n < len(prefix) && n < len(line) && line[n] == prefix[n] {
		n++
	}

	return line[n:]
}

// indent is the inverse of dedent. Blank lines get the prefix without its
// trailing blanks.
func indent(line, prefix string) string {
	if strings.TrimRight(line, "\r") == "" {
		return strings.TrimRight(prefix, " \t") + line
	}

	return prefix + line
}

func firstWord(info string) string {
	if idx := strings.IndexAny(info, " \t{"); idx >= 0 {
		return info[:idx]
	}

	return info
}

// ErrNotFound is returned by [Locate] when the cursor is not inside a
// terminated fenced region.
var ErrNotFound = errors.New("no codeblock found at cursor position")
