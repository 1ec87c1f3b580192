package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/routinely/internal/routine"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		description string
		color       string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a routine",
		Long: `Add a routine with the given name.

The color may be a palette name (see "routinely colors") or any
hex value; it defaults to the first palette entry.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, cmd, args[0], description, color)
		},
	}

	cmd.Flags().StringVarP(&description, "desc", "d", "", "routine description")
	cmd.Flags().StringVarP(&color, "color", "c", "", "routine color (palette name or hex)")

	return cmd
}

func runAdd(opts *RootOptions, cmd *cobra.Command, name, description, color string) error {
	sess, err := opts.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	formatter := sess.formatter(cmd, opts.Verbose)

	if c, ok := routine.PaletteColorByName(color); ok {
		color = c.Value
	}

	r, err := sess.Manager.Create(routine.FormData{
		Name:        name,
		Description: description,
		Color:       color,
	})
	if err != nil {
		return outputDomainError(formatter, err)
	}

	formatter.VerboseLog("created routine %s", r.ID)
	return formatter.Success(fmt.Sprintf("Added %q  %s", r.Name, r.ID), r)
}
