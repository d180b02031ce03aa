// Package main provides the entry point for the screenplay generation CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "screenplay_agent",
	Short: "AI screenplay generator",
	Long:  "Screenplay Agent turns a one-line story idea into a fully formatted screenplay with character reference images and a paginated PDF, via a staged LLM pipeline.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
