package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/msto63/charseq/core/config"
)

func newConfigCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings",
		Long: `Print the settings charseq runs with after merging defaults, the
config file, CHARSEQ_* environment variables and command line flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.query(cmd, func(out io.Writer) error {
				format, err := config.ParseFormat(output)
				if err != nil {
					return err
				}

				source := a.cfg.FilePath()
				if source == "" {
					source = "defaults"
				}
				fmt.Fprintf(out, "# source: %s\n", source)
				return config.Encode(out, a.settings, format)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "toml", "output format: toml or yaml")
	return cmd
}
