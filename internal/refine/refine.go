// Package refine orchestrates LLM-backed rewriting of resume sections
// against a job description.
package refine

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-refiner/internal/llm"
	"github.com/jonathan/resume-refiner/internal/resume"
	"github.com/jonathan/resume-refiner/internal/schemas"
)

// Input describes one refinement request.
type Input struct {
	// ResumeText is the full resume in the Markdown dialect.
	ResumeText string
	// JobDescription is the target job posting, plain text.
	JobDescription string
	// Section selects which part of the resume to rewrite.
	Section resume.SectionKind
	// GenerateIntro asks the model for a short explanation of its edits.
	GenerateIntro bool
}

// RefinedResult is the structured outcome of a refinement.
type RefinedResult struct {
	RefinedMarkdown string `json:"refined_markdown"`
	Introduction    string `json:"introduction,omitempty"`
}

// Refine rewrites the selected section of the resume to target the job
// description. An absent or empty section short-circuits to a zero result
// without contacting the AI service.
func Refine(ctx context.Context, client llm.Client, input Input) (*RefinedResult, error) {
	sectionText, err := resume.Select(input.ResumeText, input.Section)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(sectionText) == "" {
		log.Printf("refine: section %s is empty, skipping model call", input.Section)
		return &RefinedResult{}, nil
	}

	prompt := buildPrompt(input.Section, sectionText, input.JobDescription, input.GenerateIntro)

	log.Printf("refine: rewriting section %s with model %s", input.Section, client.GetModel(llm.TierAdvanced))
	raw, err := client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		if llm.IsAuthError(err) {
			return nil, &TransportError{
				Message:        "AI service rejected the credentials",
				Authentication: true,
				Cause:          err,
			}
		}
		return nil, &TransportError{
			Message: "AI service request failed",
			Cause:   err,
		}
	}

	result, err := decodeResult(raw)
	if err != nil {
		return nil, err
	}

	if !input.GenerateIntro {
		result.Introduction = ""
	}

	return result, nil
}

// decodeResult validates and unmarshals the model response. It tolerates
// prose around the JSON by retrying on an extracted fenced block.
func decodeResult(raw string) (*RefinedResult, error) {
	candidate := llm.CleanJSONBlock(raw)

	if err := schemas.ValidateRefinedResult(candidate); err != nil {
		if fenced := llm.ExtractFencedJSON(raw); fenced != "" {
			if retryErr := schemas.ValidateRefinedResult(fenced); retryErr == nil {
				candidate = fenced
				err = nil
			}
		}
		if err != nil {
			return nil, &ResponseFormatError{
				Detail: fmt.Sprintf("schema validation failed: %v", err),
				Cause:  err,
			}
		}
	}

	var result RefinedResult
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		return nil, &ResponseFormatError{
			Detail: "response is not valid JSON",
			Cause:  err,
		}
	}

	return &result, nil
}

// Service bundles an LLM client behind the refinement operation so callers
// can depend on a narrow seam.
type Service struct {
	Client llm.Client
}

// Refine implements the refinement operation for the workflow layer.
func (s *Service) Refine(ctx context.Context, resumeText, jobDescription string, section resume.SectionKind, generateIntro bool) (*RefinedResult, error) {
	return Refine(ctx, s.Client, Input{
		ResumeText:     resumeText,
		JobDescription: jobDescription,
		Section:        section,
		GenerateIntro:  generateIntro,
	})
}
