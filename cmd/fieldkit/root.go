package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/fieldkit/internal/logger"
	"github.com/alexisbeaulieu97/fieldkit/internal/ui/components"
)

type rootFlags struct {
	verbose bool
	logFile string
	theme   string

	log     *logger.Logger
	closers []io.Closer
}

// stdoutIsTerminal is replaced in tests.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fieldkit",
		Short:         "Fieldkit renders stateful text fields in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setupLogger(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return flags.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file instead of stderr")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Colour theme (light or dark)")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newFormCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func (f *rootFlags) setupLogger(stderr io.Writer) error {
	level := "warn"
	if f.verbose {
		level = "debug"
	}

	writer := stderr
	if f.logFile != "" {
		file, err := os.OpenFile(f.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		f.closers = append(f.closers, file)
		writer = file
	}

	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: f.logFile == "",
		Writer:        writer,
		Component:     "fieldkit",
	})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	f.log = log
	return nil
}

func (f *rootFlags) close() error {
	var first error
	for _, c := range f.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	f.closers = nil
	return first
}

// resolveTheme picks the --theme flag, then fallback, then the default
// theme.
func (f *rootFlags) resolveTheme(fallback string) (components.Theme, error) {
	name := f.theme
	if name == "" {
		name = fallback
	}
	if name == "" {
		return components.DefaultTheme(), nil
	}
	theme, ok := components.ThemeByName(name)
	if !ok {
		return components.Theme{}, fmt.Errorf("unknown theme %q (want light or dark)", name)
	}
	return theme, nil
}
