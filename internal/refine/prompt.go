package refine

import (
	"strings"

	"github.com/jonathan/resume-refiner/internal/prompts"
	"github.com/jonathan/resume-refiner/internal/resume"
)

// sectionDisplayNames maps section kinds to the names used in prompts.
var sectionDisplayNames = map[resume.SectionKind]string{
	resume.SectionPersonal:       "Personal",
	resume.SectionEducation:      "Education",
	resume.SectionExperience:     "Experience",
	resume.SectionCertifications: "Certifications",
}

// buildPrompt assembles the refinement prompt for a section and job
// description. The Experience section carries extra guidance.
func buildPrompt(section resume.SectionKind, sectionText, jobDescription string, withIntro bool) string {
	var parts []string

	if section == resume.SectionFull {
		parts = append(parts, prompts.MustGet(prompts.FullIntro))
	} else {
		intro := prompts.MustGet(prompts.SectionIntro)
		parts = append(parts, prompts.Format(intro, map[string]string{
			"SectionName": sectionDisplayNames[section],
		}))
	}

	parts = append(parts, prompts.MustGet(prompts.Rules))

	if section == resume.SectionExperience || section == resume.SectionFull {
		parts = append(parts, prompts.MustGet(prompts.ExperienceGuidance))
	}

	formatKey := prompts.ResponseFormat
	if withIntro {
		formatKey = prompts.ResponseFormatWithIntro
	}
	parts = append(parts, prompts.MustGet(formatKey))

	input := prompts.MustGet(prompts.InputBlock)
	parts = append(parts, prompts.Format(input, map[string]string{
		"JobDescription": jobDescription,
		"ResumeText":     sectionText,
	}))

	return strings.Join(parts, "\n\n")
}
