// Package extedit edits the fenced code block under the cursor in an
// external editor and splices the result back into the document.
package extedit

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/ezerfernandes/fencedit/internal/mdcode"
	"github.com/ezerfernandes/fencedit/internal/region"
)

// DefaultPrefix starts the names of temporary files.
const DefaultPrefix = "fencedit-codeblock"

const (
	msgNotFound = "No codeblock found at cursor position"
	msgUpdated  = "Codeblock updated successfully"
	msgFailed   = "Error editing with external editor: %v"
)

// Config is the configuration of a single edit.
type Config struct {
	Command []string
	Prefix  string
}

// Session runs edits against one host document. Every run produces exactly
// one notification, and the document is written at most once, at the end of
// a successful run.
type Session struct {
	Doc      Document
	Notifier Notifier
	Store    Store
	Launcher Launcher
	Logger   *slog.Logger
	// OnState, when set, observes every state transition.
	OnState func(State)
}

// Run edits the block around the cursor. The returned error is the one the
// notification was built from; it is [region.ErrNotFound], an *ExportError,
// an *ImportError or the launcher's error.
func (s *Session) Run(cfg Config) error {
	s.enter(Locating)

	lines := region.Split(s.Doc.Text())
	cursor := s.Doc.CursorLine()

	r, err := region.Locate(lines, cursor)
	if err != nil {
		s.logger().Debug("no region", "cursor", cursor)
		s.Notifier.Notify(msgNotFound)
		s.enter(Idle)

		return err
	}

	s.logger().Debug("region located", "start", r.StartLine, "end", r.EndLine, "lang", r.Lang)

	var path string

	defer func() {
		s.enter(Cleanup)

		if len(path) != 0 {
			if rerr := s.Store.Remove(path); rerr != nil {
				s.logger().Debug("cleanup failed", "path", path, "err", rerr)
			}
		}

		s.enter(Idle)
	}()

	path, err = s.edit(cfg, lines, r)
	if err != nil {
		s.Notifier.Notify(fmt.Sprintf(msgFailed, err))

		return err
	}

	s.Doc.SetCursorLine(cursor)
	s.Notifier.Notify(msgUpdated)

	return nil
}

// edit exports the region, waits for the editor and writes the spliced
// document. It returns the temporary path whenever one was created.
func (s *Session) edit(cfg Config, lines []string, r *region.Region) (string, error) {
	s.enter(Exporting)

	prefix := cfg.Prefix
	if len(prefix) == 0 {
		prefix = DefaultPrefix
	}

	path, err := s.Store.Create(prefix, mdcode.InfoExtension(r.Info), region.Export(r))
	if err != nil {
		return "", &ExportError{Err: err}
	}

	s.enter(Invoking)

	if err := s.Launcher.Invoke(cfg.Command, path); err != nil {
		return path, err
	}

	s.enter(Importing)

	content, err := s.Store.Read(path)
	if err != nil {
		return path, &ImportError{Path: path, Err: err}
	}

	s.enter(Splicing)

	if err := s.Doc.SetText(region.Join(region.Splice(lines, r, content))); err != nil {
		return path, err
	}

	return path, nil
}

func (s *Session) enter(state State) {
	s.logger().Debug("state", "state", state.String())

	if s.OnState != nil {
		s.OnState(state)
	}
}

func (s *Session) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return s.Logger
}
