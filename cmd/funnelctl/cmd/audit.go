package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/funnel/internal/audit"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrAuditFailed is returned when at least one audit check fails.
var ErrAuditFailed = errors.New("audit failed")

var auditCmd = &cobra.Command{
	Use:   "audit <url>",
	Short: "Check scroll reveals and page text in a headless browser",
	Long: `Open the page in headless Chrome, scroll it one viewport at a time and check
that every data-reveal element starts hidden and ends visible, and that the
footer year and prices are present.

Chrome is found through CHROME_PATH or --chrome.

Examples:
  funnelctl audit http://localhost:8080/
  funnelctl audit file://$PWD/dist/index.html --width 390 --height 844`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := audit.DefaultOptions()
		opts.ViewportWidth = viper.GetInt64("width")
		opts.ViewportHeight = viper.GetInt64("height")
		opts.Settle = viper.GetDuration("settle")
		opts.ChromePath = viper.GetString("chrome")
		opts.Year = viper.GetInt("audit-year")

		report, err := audit.Run(cmd.Context(), args[0], opts)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s: %d reveal targets, %d scroll steps\n", report.URL, report.Targets, report.Steps)
		if err := renderFindings(cmd, report.Findings); err != nil {
			return err
		}
		if !report.Passed() {
			return ErrAuditFailed
		}
		return nil
	},
}

func renderFindings(cmd *cobra.Command, findings []audit.Finding) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Check", "Result", "Detail")
	for _, f := range findings {
		result := "ok"
		if !f.OK {
			result = "FAIL"
		}
		if err := table.Append(f.Check, result, f.Detail); err != nil {
			return err
		}
	}
	return table.Render()
}

func init() {
	defaults := audit.DefaultOptions()
	auditCmd.Flags().Int64("width", defaults.ViewportWidth, "viewport width")
	auditCmd.Flags().Int64("height", defaults.ViewportHeight, "viewport height")
	auditCmd.Flags().Duration("settle", defaults.Settle, "wait after each scroll step")
	auditCmd.Flags().String("chrome", "", "path to the Chrome binary")
	auditCmd.Flags().Int("year", 0, "expected footer year (0 means the current year)")

	_ = viper.BindPFlag("width", auditCmd.Flags().Lookup("width"))
	_ = viper.BindPFlag("height", auditCmd.Flags().Lookup("height"))
	_ = viper.BindPFlag("settle", auditCmd.Flags().Lookup("settle"))
	_ = viper.BindPFlag("chrome", auditCmd.Flags().Lookup("chrome"))
	_ = viper.BindPFlag("audit-year", auditCmd.Flags().Lookup("year"))

	rootCmd.AddCommand(auditCmd)
}
