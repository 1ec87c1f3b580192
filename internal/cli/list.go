package cli

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "list",
		Short:         "List all routines",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}

	return cmd
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	sess, err := opts.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	formatter := sess.formatter(cmd, opts.Verbose)

	routines := sess.Manager.Store().List()
	formatter.VerboseLog("%d routine(s)", len(routines))

	return formatter.Success(RenderList(routines, sess.Clock.Now()), routines)
}
