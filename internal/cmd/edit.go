package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/ezerfernandes/fencedit/internal/extedit"
	"github.com/ezerfernandes/fencedit/internal/launch"
	"github.com/ezerfernandes/fencedit/internal/mdcode"
	"github.com/ezerfernandes/fencedit/internal/scratch"
	"github.com/ezerfernandes/fencedit/internal/settings"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
)

//go:embed help/edit.md
var editHelp string

type editOptions struct {
	line    int
	index   int
	command string
	shell   string
	attach  bool
	tempDir string
}

func editCmd(opts *options) *cobra.Command {
	eopts := new(editOptions)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "edit [flags] filename",
		Aliases: []string{"e"},
		Short:   "Edit the code block around a line in an external editor",
		Long:    editHelp,
		Args:    checkargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return editRun(cmd, args[0], opts, eopts)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().IntVarP(&eopts.line, "line", "l", 0, "1-based line of the cursor")
	cmd.Flags().IntVarP(&eopts.index, "index", "i", 0, "0-based index of the code block to edit")
	cmd.Flags().StringVar(&eopts.command, "command", "", `editor command as a JSON list, e.g. '["code","--wait"]'`)
	cmd.Flags().StringVar(&eopts.shell, "shell", "", `editor command as a single string, e.g. "code --wait"`)
	cmd.Flags().BoolVar(&eopts.attach, "attach", false, "run the editor in this terminal instead of detached")
	cmd.Flags().StringVar(&eopts.tempDir, "temp-dir", "", "directory for the temporary file (default system temp dir)")

	cmd.MarkFlagsMutuallyExclusive("line", "index")
	cmd.MarkFlagsMutuallyExclusive("command", "shell")

	return cmd
}

func editRun(cmd *cobra.Command, filename string, opts *options, eopts *editOptions) error {
	conf, err := loadSettings(opts)
	if err != nil {
		return err
	}

	template, err := eopts.template(conf)
	if err != nil {
		return err
	}

	attach := conf.Attach
	if cmd.Flag("attach").Changed {
		attach = eopts.attach
	}

	if attach && filename == stdioArg {
		return errStdinAttach
	}

	src, err := readSource(cmd, filename)
	if err != nil {
		return err
	}

	cursor, err := eopts.cursor(cmd, src)
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cmd.ErrOrStderr())
	defer closeLog()

	doc := &document{text: string(src), cursor: cursor}

	session := &extedit.Session{
		Doc: doc,
		Notifier: extedit.NotifyFunc(func(msg string) {
			opts.status("%s\n", msg)
		}),
		Store: &scratch.Dir{Path: eopts.tempDir},
		Launcher: &launch.Invoker{
			Attach: attach,
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
			Logger: logger,
		},
		Logger: logger,
	}

	logger.Debug("edit", "file", filename, "cursor", cursor, "command", template, "attach", attach)

	runErr := session.Run(extedit.Config{Command: template})

	if runErr == nil || filename == stdioArg {
		if err := writeSource(cmd, filename, []byte(doc.Text())); err != nil {
			return err
		}
	}

	if runErr != nil {
		return &notifiedError{err: runErr}
	}

	logger.Debug("edit done", "file", filename, "cursor", doc.CursorLine())

	return nil
}

func (eopts *editOptions) template(conf *settings.Settings) ([]string, error) {
	switch {
	case len(eopts.command) != 0:
		return settings.ParseCommand(eopts.command)
	case len(eopts.shell) != 0:
		words, err := shlex.Split(eopts.shell)
		if err != nil {
			return nil, fmt.Errorf("invalid --shell command: %w", err)
		}

		if len(words) == 0 {
			return nil, settings.ErrEmptyCommand
		}

		return words, nil
	default:
		return conf.Command, nil
	}
}

// cursor resolves the 0-based cursor line from --line or --index.
func (eopts *editOptions) cursor(cmd *cobra.Command, src []byte) (int, error) {
	if cmd.Flag("index").Changed {
		blocks, err := mdcode.Unfence(src)
		if err != nil {
			return 0, err
		}

		block := blocks.Find(eopts.index)
		if block == nil || block.StartLine == 0 {
			return 0, fmt.Errorf("%w: %d", errNoBlock, eopts.index)
		}

		return block.StartLine - 1, nil
	}

	if eopts.line < 1 {
		return 0, errMissingCursor
	}

	return eopts.line - 1, nil
}

func loadSettings(opts *options) (*settings.Settings, error) {
	path, err := settingsPath(opts)
	if err != nil {
		return nil, err
	}

	return settings.Load(path)
}

func settingsPath(opts *options) (string, error) {
	if len(opts.config) != 0 {
		return opts.config, nil
	}

	return settings.Path()
}

var (
	errMissingCursor = errors.New("--line or --index is required")
	errNoBlock       = errors.New("no code block with index")
	errStdinAttach   = errors.New("--attach cannot be used when reading the document from stdin")
)
