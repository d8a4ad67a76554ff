// Package main provides the entry point for the Wellspring HTTP API server
// and CLI tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wellspring",
	Short: "Wellspring mental wellness API server",
	Long:  "Wellspring scores stress assessments and recommends books, music, and insights tailored to the user's emotional state, served via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
