package cmd

import (
	"fmt"

	"github.com/nfrund/funnel/internal/config"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of funnelctl",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "funnelctl %s\n", config.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
