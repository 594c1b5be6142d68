package main

import (
	"fmt"

	"github.com/spf13/cobra"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
)

var scanCmd = &cobra.Command{
	Use:   "scan PHOTO",
	Short: "Extract identity fields from a document photo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeFn, err := dial()
		if err != nil {
			return err
		}
		defer closeFn()

		resp, err := client.ScanDocument(cmd.Context(), &conciergev1.ScanDocumentRequest{
			SourcePath: args[0],
		})
		if err != nil {
			return err
		}

		show := func(label, v string) {
			if v == "" {
				v = "(not found)"
			}
			fmt.Printf("%-12s %s\n", label+":", v)
		}
		show("name", resp.GetName())
		show("tax id", resp.GetTaxId())
		show("birth date", resp.GetBirthDate())
		if resp.GetNeedsReview() {
			fmt.Println("review needed: confirm the fields manually")
		}
		fmt.Printf("job: %s\n", resp.GetJobId())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
