package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
)

// ParamsCommand returns the command which prints the configuration,
// including all functor parameters, as JSON
func ParamsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the effective configuration as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(c)
		},
	}
}
