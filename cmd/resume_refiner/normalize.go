package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-refiner/internal/resume"
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Parse a resume file and print it in canonical form",
	Long: `Parse a resume written in the Markdown dialect and print it back in
canonical form: sections in standard order, dates in canonical format, and
uniform spacing. Fails with a descriptive error when the file does not
conform to the dialect.`,
	RunE: runNormalize,
}

var (
	normalizeResume string
	normalizeOut    string
)

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeResume, "resume", "r", "", "Path to resume file in the Markdown dialect")
	normalizeCmd.Flags().StringVarP(&normalizeOut, "out", "o", "", "Write the normalized resume to this file instead of stdout")

	_ = normalizeCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(normalizeResume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	doc, err := resume.Parse(string(data))
	if err != nil {
		return err
	}

	canonical := resume.SerializeDocument(doc)

	if normalizeOut != "" {
		if err := os.WriteFile(normalizeOut, []byte(canonical), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Wrote normalized resume to %s\n", normalizeOut)
		return nil
	}

	fmt.Fprint(os.Stdout, canonical)
	return nil
}
