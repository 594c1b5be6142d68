package main

import (
	"fmt"

	"github.com/spf13/cobra"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
)

var visitorsCmd = &cobra.Command{
	Use:   "visitors",
	Short: "List enrolled visitors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeFn, err := dial()
		if err != nil {
			return err
		}
		defer closeFn()

		resp, err := client.ListVisitors(cmd.Context(), &conciergev1.ListVisitorsRequest{})
		if err != nil {
			return err
		}

		for _, v := range resp.GetVisitors() {
			taxID := v.GetTaxId()
			if taxID == "" {
				taxID = "-"
			}
			photo := " "
			if v.GetPhotoPath() != "" {
				photo = "*" // enrolled for face recognition
			}
			fmt.Printf("%s %s  %-11s  %s\n", photo, v.GetId(), taxID, v.GetName())
		}
		fmt.Printf("%d visitor(s)\n", len(resp.GetVisitors()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(visitorsCmd)
}
