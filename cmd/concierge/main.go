package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	conciergev1 "github.com/portaria-digital/concierge/gen/concierge/v1"
)

var serverAddr string

var rootCmd = &cobra.Command{
	Use:   "concierge",
	Short: "Front-desk client for the concierge daemon",
	Long: `concierge talks to a running concierged instance: enroll visitors,
scan identity documents, recognize faces at the door, and keep the visit log.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverAddr, "server", envOr("CONCIERGE_ADDR", "localhost:8080"),
		"concierged gRPC address")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// dial connects to the daemon and returns the client plus a closer.
func dial() (conciergev1.ConciergeServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to %s: %w", serverAddr, err)
	}
	return conciergev1.NewConciergeServiceClient(conn), func() { _ = conn.Close() }, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
