package cmd

import (
	"strings"

	"github.com/nfrund/funnel/internal/pubsub"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	// Registers the landing events in the catalog.
	_ "github.com/nfrund/funnel/internal/modules/landing/events"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the analytics events published by the landing page",
	RunE: func(cmd *cobra.Command, args []string) error {
		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.Header("Event", "Module", "Payload", "Description")
		for _, e := range pubsub.Events() {
			payload := e.TypeName
			if len(e.Fields) > 0 {
				payload += " {" + strings.Join(e.Fields, ", ") + "}"
			}
			if err := table.Append(e.Name, e.Module, payload, e.Description); err != nil {
				return err
			}
		}
		return table.Render()
	},
}

func init() {
	rootCmd.AddCommand(eventsCmd)
}
