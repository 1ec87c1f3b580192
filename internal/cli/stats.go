package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/routinely/internal/stats"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	var frame string

	cmd := &cobra.Command{
		Use:   "stats <id>",
		Short: "Show a routine's completion statistics",
		Long: `Show streaks and the completion rate for a timeframe.

Timeframes: weekly (current calendar week), monthly (trailing 30
days), yearly (trailing 365 days), streak (trailing 14 days).`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(rootOpts, cmd, args[0], stats.Timeframe(frame))
		},
	}

	cmd.Flags().StringVar(&frame, "frame", string(stats.TimeframeWeekly), "timeframe (weekly|monthly|yearly|streak)")

	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command, id string, tf stats.Timeframe) error {
	sess, err := opts.openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	formatter := sess.formatter(cmd, opts.Verbose)

	if !tf.Valid() {
		msg := fmt.Sprintf("invalid frame %q: must be one of %v", tf, stats.Timeframes)
		_ = formatter.Error(ErrCodeUsage, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	r, ok := sess.Manager.Store().Get(id)
	if !ok {
		return outputNotFound(formatter, id)
	}

	now := sess.Clock.Now()
	text, err := RenderStats(r, tf, now)
	if err != nil {
		return WrapExitError(ExitCommandError, "computing stats", err)
	}

	rate, _ := stats.WindowRate(r, now, tf)
	data := map[string]any{
		"id":      r.ID,
		"frame":   tf,
		"streaks": stats.ComputeStreaks(r, now),
		"rate":    rate,
	}
	return formatter.Success(text, data)
}
