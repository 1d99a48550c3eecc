// Package prompts holds the LLM prompt fragments used to build refinement
// requests. Fragments live in refine.json and are embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed refine.json
var promptFiles embed.FS

// Key identifies one prompt fragment in refine.json.
type Key string

const (
	// SectionIntro opens a single-section rewrite and takes a
	// {{.SectionName}} placeholder.
	SectionIntro Key = "refine_intro"
	// FullIntro opens a whole-document rewrite.
	FullIntro Key = "refine_full_intro"
	// Rules states the non-negotiable rewriting rules.
	Rules Key = "refine_rules"
	// ExperienceGuidance adds the role-by-role instructions used for the
	// Experience section.
	ExperienceGuidance Key = "refine_experience_guidance"
	// ResponseFormat describes the JSON reply shape.
	ResponseFormat Key = "refine_response_format"
	// ResponseFormatWithIntro is ResponseFormat plus an introduction field.
	ResponseFormatWithIntro Key = "refine_response_format_with_intro"
	// InputBlock carries the job description and resume text and takes
	// {{.JobDescription}} and {{.ResumeText}} placeholders.
	InputBlock Key = "refine_input"
)

var (
	loadOnce  sync.Once
	fragments map[Key]string
	loadErr   error
)

// Get retrieves the fragment for key, loading and caching refine.json on
// first use.
func Get(key Key) (string, error) {
	loadOnce.Do(load)
	if loadErr != nil {
		return "", loadErr
	}
	fragment, ok := fragments[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in refine.json", key)
	}
	return fragment, nil
}

// MustGet retrieves the fragment for key, panicking if it is absent. The
// keys declared above are required for every refinement request.
func MustGet(key Key) string {
	fragment, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return fragment
}

// Format replaces template placeholders in the form {{.Name}} with values
// from data. Unknown placeholders are left intact.
func Format(template string, data map[string]string) string {
	result := template
	for name, value := range data {
		placeholder := fmt.Sprintf("{{.%s}}", name)
		result = strings.ReplaceAll(result, placeholder, value)
	}
	return result
}

func load() {
	data, err := promptFiles.ReadFile("refine.json")
	if err != nil {
		loadErr = fmt.Errorf("failed to read prompt file refine.json: %w", err)
		return
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		loadErr = fmt.Errorf("failed to parse prompt file refine.json: %w", err)
		return
	}

	fragments = make(map[Key]string, len(raw))
	for name, fragment := range raw {
		fragments[Key(name)] = fragment
	}
}
