package main

import (
	"fmt"

	"github.com/spf13/cobra"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
)

var (
	visitsFrom string
	visitsTo   string
	visitsOpen bool
)

var visitsCmd = &cobra.Command{
	Use:   "visits",
	Short: "List the visit log",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeFn, err := dial()
		if err != nil {
			return err
		}
		defer closeFn()

		resp, err := client.ListVisits(cmd.Context(), &conciergev1.ListVisitsRequest{
			FromDate: visitsFrom,
			ToDate:   visitsTo,
			OpenOnly: visitsOpen,
		})
		if err != nil {
			return err
		}

		for _, v := range resp.GetVisits() {
			exit := "(inside)"
			if v.GetExitAt() != "" {
				exit = v.GetExitAt()
			}
			fmt.Printf("%s  %s -> %s  %-8s  %s\n",
				v.GetVisitorName(), v.GetEntryAt(), exit, v.GetMethod(), v.GetNotes())
		}
		fmt.Printf("%d visit(s)\n", len(resp.GetVisits()))
		return nil
	},
}

func init() {
	visitsCmd.Flags().StringVar(&visitsFrom, "from", "", "start date (YYYY-MM-DD)")
	visitsCmd.Flags().StringVar(&visitsTo, "to", "", "end date (YYYY-MM-DD)")
	visitsCmd.Flags().BoolVar(&visitsOpen, "open", false, "only visitors currently inside")
	rootCmd.AddCommand(visitsCmd)
}
