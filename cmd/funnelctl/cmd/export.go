package cmd

import (
	"fmt"

	"github.com/nfrund/funnel/internal/export"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// exportFs is where export writes; tests swap in a memory filesystem.
var exportFs afero.Fs = afero.NewOsFs()

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the landing page into a static directory",
	Long: `Render index.html and copy the embedded CSS and JS next to it.

The exported page has no server behind it: FAQ entries toggle in the browser
and the checkout buttons link straight to --checkout-url.

Examples:
  funnelctl export --out dist
  funnelctl export --out dist --content copy.yaml --checkout-url https://pay.example.com/x`,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, err := loadPage()
		if err != nil {
			return err
		}

		out := viper.GetString("out")
		res, err := export.Site(cmd.Context(), exportFs, out, page, export.Options{
			CheckoutURL: viper.GetString("checkout-url"),
			Year:        viper.GetInt("year"),
		})
		if err != nil {
			return fmt.Errorf("export to %s: %w", out, err)
		}

		w := cmd.OutOrStdout()
		for _, f := range res.Files {
			fmt.Fprintln(w, f)
		}
		fmt.Fprintf(w, "wrote %d files (%d bytes) to %s\n", len(res.Files), res.Bytes, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("out", "dist", "output directory")
	exportCmd.Flags().String("checkout-url", "https://pay.hotmart.com/", "payment page the checkout buttons link to")
	exportCmd.Flags().Int("year", 0, "copyright year for the footer (0 means the current year)")

	_ = viper.BindPFlag("out", exportCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("checkout-url", exportCmd.Flags().Lookup("checkout-url"))
	_ = viper.BindPFlag("year", exportCmd.Flags().Lookup("year"))

	rootCmd.AddCommand(exportCmd)
}
