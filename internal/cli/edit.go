package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/routinely/internal/routine"
)

// NewEditCommand creates the edit command.
func NewEditCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		name        string
		description string
		color       string
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a routine",
		Long: `Edit a routine's name, description or color.

Only the provided flags change; everything else, including the
completion history, is kept as is.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(rootOpts, cmd, args[0], editFields{
				name:        name,
				description: description,
				color:       color,
				nameSet:     cmd.Flags().Changed("name"),
				descSet:     cmd.Flags().Changed("desc"),
				colorSet:    cmd.Flags().Changed("color"),
			})
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new name")
	cmd.Flags().StringVarP(&description, "desc", "d", "", "new description")
	cmd.Flags().StringVarP(&color, "color", "c", "", "new color (palette name or hex)")

	return cmd
}

type editFields struct {
	name, description, color   string
	nameSet, descSet, colorSet bool
}

func runEdit(opts *RootOptions, cmd *cobra.Command, id string, fields editFields) error {
	sess, err := opts.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	formatter := sess.formatter(cmd, opts.Verbose)

	current, ok := sess.Manager.Store().Get(id)
	if !ok {
		return outputNotFound(formatter, id)
	}

	form := routine.FormData{
		Name:        current.Name,
		Description: current.Description,
		Color:       current.Color,
	}
	if fields.nameSet {
		form.Name = fields.name
	}
	if fields.descSet {
		form.Description = fields.description
	}
	if fields.colorSet {
		form.Color = fields.color
		if c, ok := routine.PaletteColorByName(fields.color); ok {
			form.Color = c.Value
		}
	}

	updated, found, err := sess.Manager.Edit(id, form)
	if err != nil {
		return outputDomainError(formatter, err)
	}
	if !found {
		return outputNotFound(formatter, id)
	}

	return formatter.Success(fmt.Sprintf("Updated %q  %s", updated.Name, updated.ID), updated)
}
