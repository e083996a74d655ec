package cmd

import "github.com/ezerfernandes/fencedit/internal/region"

// document is an in-memory host document loaded from a file.
type document struct {
	text   string
	cursor int
}

func (d *document) CursorLine() int {
	return d.cursor
}

func (d *document) Text() string {
	return d.text
}

func (d *document) SetText(text string) error {
	d.text = text

	return nil
}

// SetCursorLine moves the cursor, keeping it inside the document.
func (d *document) SetCursorLine(line int) {
	last := len(region.Split(d.text)) - 1

	switch {
	case line < 0:
		line = 0
	case line > last:
		line = last
	}

	d.cursor = line
}
