package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/roach88/routinely/internal/app"
	"github.com/roach88/routinely/internal/dates"
	"github.com/roach88/routinely/internal/storage"
	"github.com/roach88/routinely/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	Driver     string // storage driver override
	DBPath     string // storage path override

	// Clock is swapped in tests; nil means the system clock.
	Clock dates.Clock
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the routinely CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "routinely",
		Short: "Routinely - daily routine tracking",
		Long:  "Track daily routines: completions, streaks, calendars and completion rates.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "" && !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.routinely/config.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Driver, "driver", "", "storage driver (sqlite|badger|memory)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "storage path")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewEditCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewDoneCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCalCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewColorsCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// session is one command's wired application: config resolved, storage
// opened, store hydrated. Close releases the storage handle.
type session struct {
	Manager *app.Manager
	Clock   dates.Clock
	Format  string

	kv     storage.KV
	logger *zap.Logger
}

// openSession resolves configuration (flags over env over file over
// defaults), opens the configured storage driver and hydrates the
// store.
func (o *RootOptions) openSession() (*session, error) {
	path := o.ConfigPath
	if path == "" {
		path = DefaultConfigPath()
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "loading config", err)
	}

	if o.Driver != "" {
		cfg.Storage.Driver = o.Driver
	}
	if o.DBPath != "" {
		cfg.Storage.Path = o.DBPath
	}
	format := cfg.Format
	if o.Format != "" {
		format = o.Format
	}
	if !isValidFormat(format) {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", format, ValidFormats))
	}

	logger, err := newLogger(o.Verbose)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "building logger", err)
	}

	kv, err := storage.Open(cfg.Storage.Driver, cfg.Storage.Path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "opening storage", err)
	}

	clock := o.Clock
	if clock == nil {
		clock = dates.SystemClock{}
	}

	s := store.New(storage.NewRoutineStore(kv, logger), clock, logger)
	return &session{
		Manager: app.NewManager(s, logger),
		Clock:   clock,
		Format:  format,
		kv:      kv,
		logger:  logger,
	}, nil
}

func (s *session) Close() error {
	_ = s.logger.Sync()
	return s.kv.Close()
}

// formatter builds the command's output formatter over its streams.
func (s *session) formatter(cmd *cobra.Command, verbose bool) *OutputFormatter {
	return &OutputFormatter{
		Format:    s.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   verbose,
	}
}

// newLogger builds a console logger. Verbose mode logs everything;
// otherwise only errors reach the terminal.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
