package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/samuelfneumann/progressbar"
	"github.com/spf13/cobra"

	"github.com/samuelfneumann/gobark/config"
	"github.com/samuelfneumann/gobark/experiment"
	"github.com/samuelfneumann/gobark/experiment/tracker"
)

// RunCommand returns the command which runs an online experiment
func RunCommand() *cobra.Command {
	var episodes int
	var progress bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run an online experiment and save its results",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("episodes") {
				c.Episodes = episodes
			}
			return run(cmd.Context(), c, progress)
		},
	}
	cmd.PersistentFlags().IntVarP(&episodes, "episodes", "e", 10, "Number of episodes to run")
	cmd.PersistentFlags().BoolVarP(&progress, "progress", "p", false, "Display a progress bar")
	return cmd
}

func run(ctx context.Context, c config.Config, progress bool) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	runtime, err := c.NewRuntime()
	if err != nil {
		return err
	}
	a, err := c.NewAgent(runtime)
	if err != nil {
		return err
	}

	if c.Output.Dir != "" {
		if err := os.MkdirAll(c.Output.Dir, 0o755); err != nil {
			return err
		}
	}

	exp := experiment.NewOnline(runtime, a, c.Episodes)
	exp.SetLogger(newLogger())
	exp.SetMaxEpisodeSteps(c.MaxEpisodeSteps)

	returns := tracker.NewReturn(c.Output.Path(c.Output.Returns))
	if c.Output.Returns != "" {
		exp.Register(returns)
	}
	if c.Output.Lengths != "" {
		exp.Register(tracker.NewEpisodeLength(c.Output.Path(c.Output.Lengths)))
	}
	if c.Output.SQLite != "" {
		db, err := tracker.NewSQLite(ctx, c.Output.Path(c.Output.SQLite))
		if err != nil {
			return fmt.Errorf("open step store: %w", err)
		}
		defer db.Close()
		exp.Register(db)
		newLogger().Printf("tracking steps under run %v", db.RunID())
	}

	if progress {
		bar := progressbar.New(50, c.Episodes, time.Second, true)
		bar.Display()
		defer bar.Close()
		exp.OnEpisode(func(experiment.EpisodeSummary) { bar.Increment() })
	}

	runErr := exp.Run(ctx)
	if err := exp.Save(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	if c.Output.Plot != "" && c.Output.Returns != "" {
		if err := tracker.PlotReturns(c.Output.Path(c.Output.Plot),
			returns.Returns(), 10); err != nil {
			return fmt.Errorf("plot returns: %w", err)
		}
	}
	return nil
}
