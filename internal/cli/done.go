package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/routinely/internal/dates"
)

// NewDoneCommand creates the done command.
func NewDoneCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id> [date]",
		Short: "Toggle a routine's completion for a day",
		Long: `Toggle completion of a routine for a calendar day.

The date is YYYY-MM-DD and defaults to today. Toggling an already
completed day un-completes it; any date, past or future, is allowed.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			day := ""
			if len(args) == 2 {
				day = args[1]
			}
			return runDone(rootOpts, cmd, args[0], day)
		},
	}

	return cmd
}

func runDone(opts *RootOptions, cmd *cobra.Command, id, day string) error {
	sess, err := opts.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	formatter := sess.formatter(cmd, opts.Verbose)

	date := sess.Clock.Now()
	if day != "" {
		date, err = dates.ParseDay(day)
		if err != nil {
			msg := fmt.Sprintf("invalid date %q: want YYYY-MM-DD", day)
			_ = formatter.Error(ErrCodeUsage, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
	}
	key := dates.FormatDate(date)

	completed, found, err := sess.Manager.Toggle(id, date)
	if err != nil {
		return outputDomainError(formatter, err)
	}
	if !found {
		return outputNotFound(formatter, id)
	}

	data := map[string]any{"id": id, "date": key, "completed": completed}
	if completed {
		return formatter.Success(fmt.Sprintf("Marked done for %s", key), data)
	}
	return formatter.Success(fmt.Sprintf("Unmarked for %s", key), data)
}
