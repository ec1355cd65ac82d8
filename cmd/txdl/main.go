// txdl downloads a CSV export of the transaction history for a date range,
// the same flow the dashboard's download button runs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/framlopez/uala-transactions-api/internal/downloader"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "txdl",
	Short: "Download a CSV export of the transaction history",
	Long: `txdl requests a CSV export of the transaction history for a date
range and saves it as transactions_<from>_to_<to>.csv. Dates use the
YYYY-MM-DD format, both bounds inclusive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		d := downloader.New(
			viper.GetString("base-url"),
			downloader.WithOutputDir(viper.GetString("out")),
		)

		path, err := d.Download(cmd.Context(), viper.GetString("from"), viper.GetString("to"))
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	rootCmd.Flags().String("base-url", "http://localhost:8080", "API base URL")
	rootCmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	rootCmd.Flags().String("to", "", "end date (YYYY-MM-DD)")
	rootCmd.Flags().String("out", ".", "output directory")

	_ = rootCmd.MarkFlagRequired("from")
	_ = rootCmd.MarkFlagRequired("to")

	_ = viper.BindPFlags(rootCmd.Flags())
	viper.SetEnvPrefix("TXDL")
	viper.AutomaticEnv()

	rootCmd.SilenceUsage = true
}
