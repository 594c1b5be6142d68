package main

import (
	"fmt"

	"github.com/spf13/cobra"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
)

var (
	enrollTaxID     string
	enrollBirthDate string
	enrollPhoto     string
)

var enrollCmd = &cobra.Command{
	Use:   "enroll NAME",
	Short: "Register a visitor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeFn, err := dial()
		if err != nil {
			return err
		}
		defer closeFn()

		resp, err := client.RegisterVisitor(cmd.Context(), &conciergev1.RegisterVisitorRequest{
			Name:      args[0],
			TaxId:     enrollTaxID,
			BirthDate: enrollBirthDate,
			PhotoPath: enrollPhoto,
		})
		if err != nil {
			return err
		}

		v := resp.GetVisitor()
		if resp.GetExisting() {
			fmt.Printf("already enrolled: %s (%s)\n", v.GetName(), v.GetId())
			return nil
		}
		fmt.Printf("enrolled: %s (%s)\n", v.GetName(), v.GetId())
		return nil
	},
}

func init() {
	enrollCmd.Flags().StringVar(&enrollTaxID, "tax-id", "", "11-digit tax id")
	enrollCmd.Flags().StringVar(&enrollBirthDate, "birth-date", "", "birth date (DD/MM/YYYY)")
	enrollCmd.Flags().StringVar(&enrollPhoto, "photo", "", "enrollment photo path on the daemon host")
	rootCmd.AddCommand(enrollCmd)
}
