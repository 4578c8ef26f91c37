// Package cli implements the gobark command line interface
package cli

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gobark/config"
)

var (
	configFile string
	envFile    string
	quiet      bool
)

// GetRootCommand returns the root command with all subcommands added
func GetRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "gobark",
		Short:         "Run and inspect driving experiments scored by the general evaluator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVarP(&configFile, "config", "c", "", "JSON experiment configuration")
	rootCommand.PersistentFlags().StringVar(&envFile, "env", ".env", "File of GOBARK_* overrides")
	rootCommand.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Do not log episodes")

	rootCommand.AddCommand(RunCommand())
	rootCommand.AddCommand(RenderCommand())
	rootCommand.AddCommand(ParamsCommand())
	return rootCommand
}

// loadConfig loads the configuration named by the persistent flags
func loadConfig() (config.Config, error) {
	return config.Load(configFile, envFile)
}

// newLogger returns the episode logger, which discards output if
// --quiet is set
func newLogger() *log.Logger {
	var w io.Writer = os.Stderr
	if quiet {
		w = io.Discard
	}
	return log.New(w, "gobark: ", log.LstdFlags)
}
