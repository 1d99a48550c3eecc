package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-refiner/internal/config"
	"github.com/jonathan/resume-refiner/internal/jobdesc"
	"github.com/jonathan/resume-refiner/internal/llm"
	"github.com/jonathan/resume-refiner/internal/observability"
	"github.com/jonathan/resume-refiner/internal/refine"
	"github.com/jonathan/resume-refiner/internal/resume"
	"github.com/jonathan/resume-refiner/internal/workflow"
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Refine one section of a resume file against a job description",
	Long: `Rewrite one section of a resume (personal, education, experience,
certifications, or full) to target a job description, then print the full
updated document. The job description is read from a text file or fetched
from a URL.`,
	RunE: runRefine,
}

var (
	refineConfigPath string
	refineResume     string
	refineJob        string
	refineJobURL     string
	refineSection    string
	refineModel      string
	refineIntro      bool
	refineVerbose    bool
	refineOut        string
	refineSaveAs     string
)

func init() {
	refineCmd.Flags().StringVarP(&refineConfigPath, "config", "c", "", "Path to JSON config file with flag defaults")
	refineCmd.Flags().StringVarP(&refineResume, "resume", "r", "", "Path to resume file in the Markdown dialect")
	refineCmd.Flags().StringVarP(&refineJob, "job", "j", "", "Path to job description text file")
	refineCmd.Flags().StringVarP(&refineJobURL, "job-url", "u", "", "URL to fetch the job posting from")
	refineCmd.Flags().StringVarP(&refineSection, "section", "s", "experience", "Section to refine: personal, education, experience, certifications, full")
	refineCmd.Flags().StringVar(&refineModel, "model", "", "Override for the model used to rewrite the section")
	refineCmd.Flags().BoolVar(&refineIntro, "intro", false, "Print the model's explanation of its edits")
	refineCmd.Flags().BoolVarP(&refineVerbose, "verbose", "v", false, "Print detailed progress information")
	refineCmd.Flags().StringVarP(&refineOut, "out", "o", "", "Write the updated resume to this file instead of stdout")
	refineCmd.Flags().StringVar(&refineSaveAs, "save-as", "", "Save the result as a new resume file at this path, leaving the original alone")

	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:               refineResume,
		Job:                  refineJob,
		JobURL:               refineJobURL,
		Section:              refineSection,
		Model:                refineModel,
		GenerateIntroduction: refineIntro,
		Verbose:              refineVerbose,
	}

	if refineConfigPath != "" {
		fileCfg, err := config.LoadConfig(refineConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("either --job or --job-url must be provided")
	}

	section, err := resume.ParseSectionKind(cfg.Section)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store := &fileStore{outPath: refineOut}

	printer := observability.NewPrinter(os.Stderr)
	if cfg.Verbose {
		text, err := store.Load(ctx, cfg.Resume)
		if err != nil {
			return err
		}
		doc, err := resume.Parse(text)
		if err != nil {
			return err
		}
		printer.PrintDocumentSummary(doc)
	}

	var jobDescription string
	if cfg.Job != "" {
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobDescription = string(data)
	} else {
		jobDescription, err = jobdesc.FetchText(ctx, cfg.JobURL, nil)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(llm.TierAdvanced, cfg.Model)
	}

	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create AI client: %w", err)
	}
	defer func() { _ = client.Close() }()

	session := workflow.NewSession(store, &refine.Service{Client: client}, cfg.Resume)

	result, err := session.Refine(ctx, jobDescription, section, cfg.GenerateIntroduction)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printer.PrintRefinementSummary(section, result.RefinedMarkdown, result.Introduction)
	}
	if cfg.GenerateIntroduction && result.Introduction != "" {
		fmt.Fprintf(os.Stderr, "%s\n\n", result.Introduction)
	}

	if refineSaveAs != "" {
		saved, err := session.SaveAsNew(ctx, refineSaveAs)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved refined resume to %s\n", saved)
		return nil
	}

	if _, err := session.Accept(ctx); err != nil {
		return err
	}

	if refineOut != "" {
		fmt.Fprintf(os.Stdout, "Wrote refined resume to %s\n", refineOut)
		return nil
	}

	fmt.Fprint(os.Stdout, store.merged)
	return nil
}
