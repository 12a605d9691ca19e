// Package main is the entry point for the build code server and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/build-share-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "buildcode",
	Short: "Build code gRPC server and tools",
	Long: `buildcode packs character builds into short shareable codes, serves them
over gRPC and stores share links in Redis.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)

	// Offline codec commands
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(inspectCmd)
}
