package resume

// sectionNormalizers is the explicit dispatch table of extract/serialize
// pairs for each refinable section. Selecting a section is a normalization
// pass: extract its structured form, then render the canonical Markdown.
var sectionNormalizers = map[SectionKind]func(string) (string, error){
	SectionPersonal: func(text string) (string, error) {
		p, err := ExtractPersonal(text)
		if err != nil {
			return "", err
		}
		return SerializePersonal(p), nil
	},
	SectionEducation: func(text string) (string, error) {
		e, err := ExtractEducation(text)
		if err != nil {
			return "", err
		}
		return SerializeEducation(e), nil
	},
	SectionExperience: func(text string) (string, error) {
		e, err := ExtractExperience(text)
		if err != nil {
			return "", err
		}
		return SerializeExperience(e), nil
	},
	SectionCertifications: func(text string) (string, error) {
		c, err := ExtractCertifications(text)
		if err != nil {
			return "", err
		}
		return SerializeCertifications(c), nil
	},
}

// Select returns the canonical Markdown of one section of fullText. For
// SectionFull the input is returned verbatim, preserving any content outside
// the strict dialect. An absent section yields an empty string.
func Select(fullText string, kind SectionKind) (string, error) {
	if kind == SectionFull {
		return fullText, nil
	}
	normalize, ok := sectionNormalizers[kind]
	if !ok {
		return "", &InvalidSectionError{Name: string(kind)}
	}
	return normalize(fullText)
}
