package extedit

import "fmt"

// ExportError reports a failure writing the temporary file.
type ExportError struct {
	Err error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("write temporary file: %v", e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// ImportError reports a failure reading the edited temporary file back.
type ImportError struct {
	Path string
	Err  error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
