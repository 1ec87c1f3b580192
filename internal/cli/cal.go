package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/routinely/internal/dates"
)

// NewCalCommand creates the cal command.
func NewCalCommand(rootOpts *RootOptions) *cobra.Command {
	var monthDelta int

	cmd := &cobra.Command{
		Use:   "cal <id> [YYYY-MM]",
		Short: "Show a routine's month calendar",
		Long: `Show a routine's completion calendar for a month.

The month defaults to the current one. --offset shifts by whole
months from there, so "--offset -1" shows the previous month.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			month := ""
			if len(args) == 2 {
				month = args[1]
			}
			return runCal(rootOpts, cmd, args[0], month, monthDelta)
		},
	}

	cmd.Flags().IntVar(&monthDelta, "offset", 0, "months to shift from the requested month")

	return cmd
}

func runCal(opts *RootOptions, cmd *cobra.Command, id, month string, monthDelta int) error {
	sess, err := opts.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	formatter := sess.formatter(cmd, opts.Verbose)

	now := sess.Clock.Now()
	year, m := dates.CurrentMonth(sess.Clock)
	if month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			msg := fmt.Sprintf("invalid month %q: want YYYY-MM", month)
			_ = formatter.Error(ErrCodeUsage, msg, nil)
			return NewExitError(ExitCommandError, msg)
		}
		year, m = parsed.Year(), parsed.Month()
	}
	year, m = dates.AddMonths(year, m, monthDelta)

	r, ok := sess.Manager.Store().Get(id)
	if !ok {
		return outputNotFound(formatter, id)
	}

	grid := dates.MarkCompleted(dates.DaysInMonth(year, m, now), r.CompletedSet())
	data := map[string]any{"year": year, "month": int(m), "days": grid}

	return formatter.Success(RenderCalendar(r, year, m, now), data)
}
