package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soocke/box-annotator/app"
	"github.com/soocke/box-annotator/config"
)

var (
	cfgPath  string
	logLevel string

	cfg    *config.Config
	logger *slog.Logger
)

// Execute runs the CLI. Without a subcommand the annotation window opens.
func Execute() error {
	root := newRootCmd()
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "box-annotator [image]",
		Short:         "Draw and export bounding-box annotations",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgPath)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "config %s: %v (using defaults)\n", cfgPath, err)
			}
			level, err := ParseLevel(logLevel, cfg.Debug)
			if err != nil {
				return err
			}
			logger = NewLogger(cmd.ErrOrStderr(), level)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnotate(args)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath(), "config file")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (default info, debug with config.debug)")

	root.AddCommand(annotateCmd(), inspectCmd(), convertCmd())
	return root
}

func annotateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "annotate [image]",
		Short: "Open the annotation window",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnnotate(args)
		},
	}
}

func runAnnotate(args []string) error {
	image := ""
	if len(args) == 1 {
		image = args[0]
	}
	a := app.NewApp("Box Annotator", cfg, cfgPath, logger)
	a.Run(image)
	return nil
}

// ParseLevel maps a --log-level value to a slog level. An empty value selects
// Debug when debug is set and Info otherwise.
func ParseLevel(s string, debug bool) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		if debug {
			return slog.LevelDebug, nil
		}
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}
