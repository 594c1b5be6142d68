package main

import (
	"fmt"

	"github.com/spf13/cobra"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize PHOTO",
	Short: "Match a captured frame against enrolled visitors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, closeFn, err := dial()
		if err != nil {
			return err
		}
		defer closeFn()

		resp, err := client.RecognizeFace(cmd.Context(), &conciergev1.RecognizeFaceRequest{
			PhotoPath: args[0],
		})
		if err != nil {
			return err
		}

		switch resp.GetState() {
		case "MATCHED":
			fmt.Printf("matched visitor %s (distance %.3f, confidence %.2f)\n",
				resp.GetVisitorId(), resp.GetDistance(), resp.GetConfidence())
		case "MANUAL_SELECTION":
			fmt.Println("no automatic match: pick the visitor manually (see `concierge visitors`)")
		default:
			fmt.Println("no face detected in the frame")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
}
