package cmd

import (
	_ "embed"

	"github.com/ezerfernandes/fencedit/internal/mdcode"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
)

//go:embed help/list.md
var listHelp string

func listCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "list [flags] filename",
		Aliases: []string{"ls"},
		Short:   "List the fenced code blocks of a Markdown document",
		Long:    listHelp,
		Args:    checkargs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := make(map[string]string)
			if cmd.Flag("file").Changed {
				meta[mdcode.MetaFile] = opts.file
			}

			accept, err := filter(opts.lang, meta)
			if err != nil {
				return err
			}

			return listRun(cmd, args[0], accept)
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().StringSliceVarP(&opts.lang, "lang", "l", nil, "language glob patterns to include")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "glob pattern for the file metadata")

	return cmd
}

func listRun(cmd *cobra.Command, filename string, accept filterFunc) error {
	src, err := readSource(cmd, filename)
	if err != nil {
		return err
	}

	blocks, err := mdcode.Unfence(src)
	if err != nil {
		return err
	}

	tbl := table.New("INDEX", "LANG", "START", "END", "FILE").WithWriter(cmd.OutOrStdout())

	for _, block := range blocks {
		if !accept(block.Lang, block.Meta) {
			continue
		}

		tbl.AddRow(block.Index, block.Lang, block.StartLine, block.EndLine, block.Meta.Get(mdcode.MetaFile))
	}

	tbl.Print()

	return nil
}
