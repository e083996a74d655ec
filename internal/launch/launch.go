// Package launch runs an external editor on a file and waits for it to exit.
package launch

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/syntax"
)

// ErrEmptyTemplate is returned when the command template has no program.
var ErrEmptyTemplate = errors.New("editor command is empty")

// ExitError reports an editor that terminated with a non-zero status.
// Code is -1 when the process was killed by a signal.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("external editor exited with code %d", e.Code)
}

// SpawnError reports an editor that could not be started at all.
type SpawnError struct {
	Program string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Program, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Invoker starts editor processes.
//
// A zero Invoker starts the editor detached from the caller: in its own
// process group and without standard streams, which suits editors that open
// their own terminal window. With Attach set the editor shares the caller's
// terminal and the given streams instead.
type Invoker struct {
	Attach bool
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// Invoke runs the command built from template and path and blocks until the
// process exits. It returns nil for exit status 0, an *ExitError for any other
// termination and a *SpawnError when the process cannot be started.
// There is no timeout: the editor is interactive.
func (inv *Invoker) Invoke(template []string, path string) error {
	program, args, err := Command(template, path, os.Environ())
	if err != nil {
		return err
	}

	cmd := exec.Command(program, args...) //nolint:gosec
	cmd.Env = environ()

	if inv.Attach {
		cmd.Stdin, cmd.Stdout, cmd.Stderr = inv.Stdin, inv.Stdout, inv.Stderr
	} else {
		detach(cmd)
	}

	inv.logger().Debug("launching editor", "program", program, "args", args, "attach", inv.Attach)

	if err := cmd.Start(); err != nil {
		return &SpawnError{Program: program, Err: err}
	}

	err = cmd.Wait()

	var exitErr *exec.ExitError

	switch {
	case err == nil:
		inv.logger().Debug("editor finished", "program", program)

		return nil
	case errors.As(err, &exitErr):
		inv.logger().Debug("editor failed", "program", program, "code", exitErr.ExitCode())

		return &ExitError{Code: exitErr.ExitCode()}
	default:
		return &SpawnError{Program: program, Err: err}
	}
}

func (inv *Invoker) logger() *slog.Logger {
	if inv.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return inv.Logger
}

// Command builds the program and argument list for editing path.
//
// When the arguments are shell-wrapped (see [IsShellWrapped]) the quoted path
// is appended to the last argument, which is the command string the shell
// executes. Otherwise the path becomes a separate trailing argument.
// The program is expanded as a shell word against env, so "$EDITOR" works.
func Command(template []string, path string, env []string) (string, []string, error) {
	if len(template) == 0 {
		return "", nil, ErrEmptyTemplate
	}

	program, err := expandProgram(template[0], env)
	if err != nil {
		return "", nil, &SpawnError{Program: template[0], Err: err}
	}

	if len(program) == 0 {
		return "", nil, &SpawnError{Program: template[0], Err: ErrEmptyTemplate}
	}

	args := make([]string, len(template)-1, len(template))
	copy(args, template[1:])

	if IsShellWrapped(args) {
		last := len(args) - 1
		args[last] = args[last] + " " + Quote(path)

		return program, args, nil
	}

	return program, append(args, path), nil
}

// IsShellWrapped reports whether args ask a shell to run a command string,
// i.e. contain "-c" or a short flag cluster ending in c such as "-lc".
// Clusters longer than three letters are not considered.
func IsShellWrapped(args []string) bool {
	for _, arg := range args {
		if isCommandFlag(arg) {
			return true
		}
	}

	return false
}

func isCommandFlag(arg string) bool {
	const maxCluster = 4

	if len(arg) < 2 || len(arg) > maxCluster || arg[0] != '-' || !strings.HasSuffix(arg, "c") {
		return false
	}

	for _, r := range arg[1:] {
		if r < 'a' || r > 'z' {
			return false
		}
	}

	return true
}

// Quote wraps s in double quotes for a POSIX shell, escaping the characters
// that keep their meaning inside double quotes.
func Quote(s string) string {
	var b strings.Builder

	b.Grow(len(s) + 2)
	b.WriteByte('"')

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\', '"', '$', '`':
			b.WriteByte('\\')
		}

		b.WriteByte(s[i])
	}

	b.WriteByte('"')

	return b.String()
}

// expandProgram expands variable references in a program given as a single
// shell word. Anything that does not parse as exactly one word is returned
// unchanged.
func expandProgram(program string, env []string) (string, error) {
	if !strings.ContainsRune(program, '$') {
		return program, nil
	}

	var words []*syntax.Word

	err := syntax.NewParser().Words(strings.NewReader(program), func(w *syntax.Word) bool {
		words = append(words, w)

		return true
	})
	if err != nil || len(words) != 1 {
		return program, nil //nolint:nilerr
	}

	return expand.Literal(&expand.Config{Env: expand.ListEnviron(env...)}, words[0])
}

// environ returns the inherited environment with PATH set explicitly.
func environ() []string {
	env := os.Environ()

	return append(env, "PATH="+os.Getenv("PATH"))
}
