package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/routinely/internal/routine"
)

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a routine",
		Long: `Delete a routine and its entire completion history.

Prompts for confirmation unless --yes is given.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(rootOpts, cmd, args[0], yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runRemove(opts *RootOptions, cmd *cobra.Command, id string, yes bool) error {
	sess, err := opts.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	formatter := sess.formatter(cmd, opts.Verbose)

	r, ok := sess.Manager.Store().Get(id)
	if !ok {
		return outputNotFound(formatter, id)
	}

	confirm := promptConfirm(cmd)
	if yes {
		confirm = nil
	}

	deleted, err := sess.Manager.Delete(id, confirm)
	if err != nil {
		return outputDomainError(formatter, err)
	}
	if !deleted {
		return formatter.Success("Aborted.", map[string]any{"deleted": false})
	}

	return formatter.Success(fmt.Sprintf("Deleted %q  %s", r.Name, r.ID), map[string]any{"deleted": true, "id": r.ID})
}

// promptConfirm asks on the command's streams and accepts only an
// explicit "y"/"yes".
func promptConfirm(cmd *cobra.Command) func(routine.Routine) bool {
	return func(r routine.Routine) bool {
		fmt.Fprintf(cmd.OutOrStdout(), "Delete %q and its history? [y/N]: ", r.Name)
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}
