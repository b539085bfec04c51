package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/nfrund/funnel/internal/content"
	"github.com/nfrund/funnel/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "funnelctl",
	Short: "Funnel landing page tooling",
	Long: `funnelctl works with the landing page outside the web server.

Available commands:
  export     Render the page and its assets into a static directory
  audit      Drive a headless browser over a running page and check the reveals
  motion     Print the sampled values of a looping animation scope
  events     List the analytics events the page publishes
  version    Print the version

Every flag can also be set with a FUNNEL_ prefixed environment variable,
for example FUNNEL_CONTENT=copy.yaml.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		slog.SetDefault(logging.NewWithWriter(cmd.ErrOrStderr(), "text", viper.GetString("log-level")))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("content", "", "YAML overlay for the page copy")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")

	_ = viper.BindPFlag("content", rootCmd.PersistentFlags().Lookup("content"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	viper.SetEnvPrefix("FUNNEL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// loadPage returns the default copy, overlaid with the --content file when set.
func loadPage() (*content.Page, error) {
	store := content.NewStore(content.Default())
	if path := viper.GetString("content"); path != "" {
		if err := store.Load(path); err != nil {
			return nil, fmt.Errorf("load content: %w", err)
		}
	}
	return store.Page(), nil
}
