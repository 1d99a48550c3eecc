package resume

import "fmt"

// Reconstruct merges refined Markdown for one section with the untouched
// structured data of the other sections of originalText and renders a
// complete canonical document. For SectionFull the refined Markdown is the
// whole document and is returned unchanged.
//
// A refined fragment that does not parse as its section type fails with a
// ReconstructionError wrapping the underlying ParseError or DateFormatError;
// it is never silently patched.
func Reconstruct(originalText string, kind SectionKind, refinedMarkdown string) (string, error) {
	if kind == SectionFull {
		return refinedMarkdown, nil
	}

	doc := &ResumeDocument{}
	var err error

	if doc.Personal, err = ExtractPersonal(originalText); err != nil {
		return "", fmt.Errorf("failed to parse original personal section: %w", err)
	}
	if doc.Education, err = ExtractEducation(originalText); err != nil {
		return "", fmt.Errorf("failed to parse original education section: %w", err)
	}
	if doc.Certifications, err = ExtractCertifications(originalText); err != nil {
		return "", fmt.Errorf("failed to parse original certifications section: %w", err)
	}
	if doc.Experience, err = ExtractExperience(originalText); err != nil {
		return "", fmt.Errorf("failed to parse original experience section: %w", err)
	}

	switch kind {
	case SectionPersonal:
		doc.Personal, err = ExtractPersonal(refinedMarkdown)
	case SectionEducation:
		doc.Education, err = ExtractEducation(refinedMarkdown)
	case SectionCertifications:
		doc.Certifications, err = ExtractCertifications(refinedMarkdown)
	case SectionExperience:
		doc.Experience, err = ExtractExperience(refinedMarkdown)
	default:
		return "", &InvalidSectionError{Name: string(kind)}
	}
	if err != nil {
		return "", &ReconstructionError{Section: kind, Cause: err}
	}

	return SerializeDocument(doc), nil
}
