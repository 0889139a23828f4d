package cli

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Execute is the entry point to running the CLI
func Execute(version string) {
	if err := NewRootCommand(&Input{}, version).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the cycletsp command tree bound to input.
func NewRootCommand(input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "cycletsp",
		Short:        "Approximate TSP(1,2) tours by merging a cycle cover",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&input.jsonLogger, "json", false, "output logs in json format")

	rootCmd.AddCommand(
		newSolveCommand(input),
		newGenerateCommand(input),
		newBenchCommand(input),
	)

	return rootCmd
}

// newLogger returns the logger for one command run, writing to w.
func (i *Input) newLogger(w io.Writer) *log.Logger {
	logger := log.New()
	logger.SetOutput(w)
	if i.jsonLogger {
		logger.SetFormatter(&log.JSONFormatter{})
	} else {
		logger.SetFormatter(&log.TextFormatter{
			DisableTimestamp: true,
			PadLevelText:     true,
			DisableColors:    !isTerminal(w),
		})
	}
	if i.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
