package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/nfrund/funnel/internal/motion"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var motionCmd = &cobra.Command{
	Use:   "motion [scope]",
	Short: "Print the sampled values of a looping animation scope",
	Long: `Sample every loop of a scope at fixed steps and print the interpolated
property values. With --live the scope is started for real for the given
duration and the delivered frames are counted per loop before it is reverted.

Examples:
  funnelctl motion                      # the guarantee seal, sampled every 250ms
  funnelctl motion seal --step 1s --steps 21
  funnelctl motion seal --live 3s`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := motion.SealScope
		if len(args) == 1 {
			name = args[0]
		}
		cfg := motion.Default()
		scope, err := cfg.Scope(name)
		if err != nil {
			return err
		}

		step := viper.GetDuration("step")
		if step <= 0 {
			return fmt.Errorf("--step must be positive, got %s", step)
		}

		if live := viper.GetDuration("live"); live > 0 {
			return runLive(cmd, scope, step, live)
		}
		return printSamples(cmd, scope, step, viper.GetInt("steps"))
	},
}

func printSamples(cmd *cobra.Command, scope *motion.Scope, step time.Duration, steps int) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Time", "Target", "Values")
	for i := 0; i < steps; i++ {
		at := time.Duration(i) * step
		for _, loop := range scope.Loops {
			if err := table.Append(at.String(), loop.Target, formatValues(loop.Sample(at))); err != nil {
				return err
			}
		}
	}
	return table.Render()
}

func runLive(cmd *cobra.Command, scope *motion.Scope, interval, length time.Duration) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), length)
	defer cancel()

	var mu sync.Mutex
	frames := make(map[string]int)
	last := make(map[string]map[string]float64)
	err := scope.Start(ctx, interval, func(f motion.Frame) {
		mu.Lock()
		frames[f.Target]++
		last[f.Target] = f.Values
		mu.Unlock()
	})
	if err != nil {
		return err
	}

	<-ctx.Done()
	scope.Revert()

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Target", "Frames", "Last values")
	for _, loop := range scope.Loops {
		if err := table.Append(loop.Target, fmt.Sprint(frames[loop.Target]), formatValues(last[loop.Target])); err != nil {
			return err
		}
	}
	return table.Render()
}

// formatValues prints properties in name order so rows are stable.
func formatValues(values map[string]float64) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%.2f", k, values[k])
	}
	return strings.Join(parts, " ")
}

func init() {
	motionCmd.Flags().Duration("step", 250*time.Millisecond, "time between samples")
	motionCmd.Flags().Int("steps", 9, "number of samples")
	motionCmd.Flags().Duration("live", 0, "run the scope for this long instead of sampling")

	_ = viper.BindPFlag("step", motionCmd.Flags().Lookup("step"))
	_ = viper.BindPFlag("steps", motionCmd.Flags().Lookup("steps"))
	_ = viper.BindPFlag("live", motionCmd.Flags().Lookup("live"))

	rootCmd.AddCommand(motionCmd)
}
