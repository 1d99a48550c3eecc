// Package main provides the entry point for the Resume Refiner CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_refiner",
	Short: "Resume Refiner CLI and HTTP API Server",
	Long:  "Resume Refiner edits resumes written in a constrained Markdown dialect, rewriting individual sections against a job description with an LLM while leaving the rest of the document untouched.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
