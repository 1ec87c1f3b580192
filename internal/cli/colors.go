package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/routinely/internal/routine"
)

// NewColorsCommand creates the colors command.
func NewColorsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "colors",
		Short:         "List the routine color palette",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := &OutputFormatter{
				Format:    rootOpts.Format,
				Writer:    cmd.OutOrStdout(),
				ErrWriter: cmd.ErrOrStderr(),
				Verbose:   rootOpts.Verbose,
			}
			if formatter.Format == "" {
				formatter.Format = "text"
			}
			return formatter.Success(RenderColors(), routine.Palette)
		},
	}

	return cmd
}
