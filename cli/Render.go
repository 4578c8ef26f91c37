package cli

import (
	"github.com/spf13/cobra"

	env "github.com/samuelfneumann/gobark/environment"
	"github.com/samuelfneumann/gobark/viewer"
)

// RenderCommand returns the command which renders the world after
// running the configured agent for a number of steps
func RenderCommand() *cobra.Command {
	var steps int
	var out string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the world of an episode to a PNG image",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			runtime, err := c.NewRuntime()
			if err != nil {
				return err
			}
			a, err := c.NewAgent(runtime)
			if err != nil {
				return err
			}

			step, err := runtime.Reset()
			if err != nil {
				return err
			}
			for i := 0; i < steps && !step.Last(); i++ {
				if step, _, err = runtime.Step(a.SelectAction(step)); err != nil {
					return err
				}
			}
			newLogger().Printf("rendering step %v (%v) to %v", step.Number,
				step.EndType(), out)

			return viewer.Render(runtime.World(), env.EgoID, out,
				viewer.DefaultOptions())
		},
	}
	cmd.PersistentFlags().IntVar(&steps, "steps", 0, "Number of steps to run before rendering")
	cmd.PersistentFlags().StringVarP(&out, "out", "o", "world.png", "Output image")
	return cmd
}
