package extedit

// Document is the host document being edited. Lines are 0-based.
type Document interface {
	CursorLine() int
	Text() string
	SetText(text string) error
	SetCursorLine(line int)
}

// Notifier shows a message to the user.
type Notifier interface {
	Notify(msg string)
}

// NotifyFunc adapts a function to [Notifier].
type NotifyFunc func(msg string)

// Notify calls f(msg).
func (f NotifyFunc) Notify(msg string) {
	f(msg)
}

// Store holds the temporary file shared with the editor.
type Store interface {
	Create(prefix, ext, content string) (string, error)
	Read(path string) (string, error)
	Remove(path string) error
}

// Launcher runs the editor on a file and blocks until it exits.
type Launcher interface {
	Invoke(template []string, path string) error
}
