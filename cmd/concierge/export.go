package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
)

var (
	exportFrom string
	exportTo   string
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the visit log as an XLSX workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeFn, err := dial()
		if err != nil {
			return err
		}
		defer closeFn()

		resp, err := client.ExportVisits(cmd.Context(), &conciergev1.ExportVisitsRequest{
			FromDate: exportFrom,
			ToDate:   exportTo,
		})
		if err != nil {
			return err
		}

		if err := os.WriteFile(exportOut, resp.GetXlsx(), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", exportOut, err)
		}
		fmt.Printf("wrote %s (%d bytes)\n", exportOut, len(resp.GetXlsx()))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFrom, "from", "", "start date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportTo, "to", "", "end date (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportOut, "out", "visits.xlsx", "output file")
	rootCmd.AddCommand(exportCmd)
}
