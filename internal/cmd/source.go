package cmd

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

const (
	fileMode = 0o644
	stdioArg = "-"
)

func checkargs(_ *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errMissingFile
	}

	return nil
}

func readSource(cmd *cobra.Command, filename string) ([]byte, error) {
	if filename == stdioArg {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(filename)
}

func writeSource(cmd *cobra.Command, filename string, data []byte) error {
	if filename == stdioArg {
		_, err := cmd.OutOrStdout().Write(data)

		return err
	}

	mode := os.FileMode(fileMode)
	if info, err := os.Stat(filename); err == nil {
		mode = info.Mode().Perm()
	}

	return os.WriteFile(filename, data, mode)
}

var errMissingFile = errors.New("a single Markdown file (or - for stdin) is required")
