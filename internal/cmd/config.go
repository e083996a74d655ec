package cmd

import (
	_ "embed"
	"fmt"

	"github.com/ezerfernandes/fencedit/internal/settings"
	"github.com/spf13/cobra"
)

//go:embed help/config.md
var configHelp string

func configCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "config",
		Short: "Show or change the editor command",
		Long:  configHelp,

		DisableAutoGenTag: true,
	}

	cmd.AddCommand(configShowCmd(opts), configSetCmd(opts), configResetCmd(opts))

	return cmd
}

func configShowCmd(opts *options) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "show",
		Short: "Print the settings in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := settingsPath(opts)
			if err != nil {
				return err
			}

			conf, err := settings.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "file:    %s\n", path)
			fmt.Fprintf(out, "command: %s\n", settings.FormatCommand(conf.Command))
			fmt.Fprintf(out, "attach:  %t\n", conf.Attach)

			return nil
		},

		DisableAutoGenTag: true,
	}
}

func configSetCmd(opts *options) *cobra.Command {
	var attach bool

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "set [flags] [json-command]",
		Short: "Store the editor command given as a JSON list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := settingsPath(opts)
			if err != nil {
				return err
			}

			conf, err := settings.Load(path)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				command, perr := settings.ParseCommand(args[0])
				if perr != nil {
					opts.status("keeping %s\n", settings.FormatCommand(conf.Command))

					return perr
				}

				conf.Command = command
			}

			if cmd.Flag("attach").Changed {
				conf.Attach = attach
			}

			if err := settings.Save(path, conf); err != nil {
				return err
			}

			opts.status("saved %s\n", path)

			return nil
		},

		DisableAutoGenTag: true,
	}

	cmd.Flags().BoolVar(&attach, "attach", false, "run the editor in the invoking terminal")

	return cmd
}

func configResetCmd(opts *options) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "reset",
		Short: "Restore the default editor command",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := settingsPath(opts)
			if err != nil {
				return err
			}

			if err := settings.Save(path, settings.Default()); err != nil {
				return err
			}

			opts.status("saved %s\n", path)

			return nil
		},

		DisableAutoGenTag: true,
	}
}
