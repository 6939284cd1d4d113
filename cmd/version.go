// cmd/version.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/musesonar/sonar-cli/internal/config"
)

// Version will be set at build time
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of the sonar CLI",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sonar version %s\n", Version)
		if cfg, err := config.Default(); err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "steps config %s (supported %s)\n", cfg.Version.Original(), config.SupportedVersions)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
