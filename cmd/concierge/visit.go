package main

import (
	"fmt"

	"github.com/spf13/cobra"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
)

var (
	entryMethod     string
	entryConfidence float64
	entryNotes      string
)

var entryCmd = &cobra.Command{
	Use:   "entry VISITOR_ID",
	Short: "Register a visitor entering the building",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeFn, err := dial()
		if err != nil {
			return err
		}
		defer closeFn()

		resp, err := client.RegisterEntry(cmd.Context(), &conciergev1.RegisterEntryRequest{
			VisitorId:  args[0],
			Method:     entryMethod,
			Confidence: entryConfidence,
			Notes:      entryNotes,
		})
		if err != nil {
			return err
		}
		fmt.Printf("entry %s at %s\n", resp.GetVisitId(), resp.GetEntryAt())
		return nil
	},
}

var exitCmd = &cobra.Command{
	Use:   "exit VISITOR_ID",
	Short: "Register a visitor leaving the building",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeFn, err := dial()
		if err != nil {
			return err
		}
		defer closeFn()

		resp, err := client.RegisterExit(cmd.Context(), &conciergev1.RegisterExitRequest{
			VisitorId: args[0],
		})
		if err != nil {
			return err
		}
		fmt.Printf("exit %s at %s\n", resp.GetVisitId(), resp.GetExitAt())
		return nil
	},
}

func init() {
	entryCmd.Flags().StringVar(&entryMethod, "method", "MANUAL", "identification method (FACE | MANUAL | DOCUMENT)")
	entryCmd.Flags().Float64Var(&entryConfidence, "confidence", 0, "match confidence, when identified by face")
	entryCmd.Flags().StringVar(&entryNotes, "notes", "", "free-form note on the visit")
	rootCmd.AddCommand(entryCmd)
	rootCmd.AddCommand(exitCmd)
}
