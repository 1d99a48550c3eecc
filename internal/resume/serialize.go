package resume

import "strings"

// SerializePersonal renders the Personal section in canonical form.
// Returns an empty string when the section is absent.
func SerializePersonal(p PersonalInfo) string {
	if p.IsZero() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("# Personal\n")

	if p.Name != "" || p.Email != "" || p.Phone != "" || p.Location != "" {
		sb.WriteString("## Contact Information\n")
		writeKeyValue(&sb, "Name", p.Name)
		writeKeyValue(&sb, "Email", p.Email)
		writeKeyValue(&sb, "Phone", p.Phone)
		writeKeyValue(&sb, "Location", p.Location)
	}
	if p.Website != "" || p.Github != "" || p.Linkedin != "" {
		sb.WriteString("## Websites\n")
		writeKeyValue(&sb, "Website", p.Website)
		writeKeyValue(&sb, "Github", p.Github)
		writeKeyValue(&sb, "Linkedin", p.Linkedin)
	}
	if p.Banner != "" {
		sb.WriteString("## Banner\n")
		sb.WriteString(p.Banner)
		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n")
}

// SerializeEducation renders the Education section in canonical form.
func SerializeEducation(e Education) string {
	if e.IsZero() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("# Education\n")
	sb.WriteString("## Degrees\n")
	for _, d := range e.Degrees {
		sb.WriteString("### Degree\n")
		writeKeyValue(&sb, "School", d.School)
		writeKeyValue(&sb, "Degree", d.Degree)
		writeKeyValue(&sb, "Major", d.Major)
		writeKeyValue(&sb, "Start date", d.StartDate.String())
		writeKeyValue(&sb, "End date", d.EndDate.String())
	}

	return strings.TrimRight(sb.String(), "\n")
}

// SerializeCertifications renders the Certifications section in canonical
// form.
func SerializeCertifications(certs Certifications) string {
	if len(certs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("# Certifications\n")
	for _, c := range certs {
		sb.WriteString("## Certification\n")
		writeKeyValue(&sb, "Name", c.Name)
		writeKeyValue(&sb, "Issuer", c.Issuer)
		writeKeyValue(&sb, "ID", c.ID)
		writeKeyValue(&sb, "Issued", c.Issued.String())
		writeKeyValue(&sb, "Expires", c.Expires.String())
	}

	return strings.TrimRight(sb.String(), "\n")
}

// SerializeExperience renders the Experience section in canonical form.
// Skills are always rendered as a `* ` bulleted list, one item per line;
// downstream prompting and reconstruction depend on that exact syntax.
func SerializeExperience(e Experience) string {
	if e.IsZero() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("# Experience\n")

	if len(e.Roles) > 0 {
		sb.WriteString("## Roles\n")
		for _, r := range e.Roles {
			sb.WriteString("### Role\n")
			sb.WriteString("#### Basics\n")
			writeKeyValue(&sb, "Company", r.Company)
			writeKeyValue(&sb, "Title", r.Title)
			writeKeyValue(&sb, "Location", r.Location)
			writeKeyValue(&sb, "Start date", r.StartDate.String())
			writeKeyValue(&sb, "End date", r.EndDate.String())
			if r.Summary != "" {
				sb.WriteString("#### Summary\n")
				sb.WriteString(r.Summary)
				sb.WriteString("\n")
			}
			writeBullets(&sb, "#### Responsibilities", r.Responsibilities)
			writeBullets(&sb, "#### Skills", r.Skills)
		}
	}

	if len(e.Projects) > 0 {
		sb.WriteString("## Projects\n")
		for _, p := range e.Projects {
			sb.WriteString("### Project\n")
			sb.WriteString("#### Overview\n")
			writeKeyValue(&sb, "Title", p.Title)
			writeKeyValue(&sb, "Url", p.URL)
			writeKeyValue(&sb, "Start date", p.StartDate.String())
			writeKeyValue(&sb, "End date", p.EndDate.String())
			if p.Description != "" {
				sb.WriteString("#### Description\n")
				sb.WriteString(p.Description)
				sb.WriteString("\n")
			}
			writeBullets(&sb, "#### Skills", p.Skills)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

// SerializeDocument renders a full document in canonical section order.
// Absent sections are omitted entirely.
func SerializeDocument(doc *ResumeDocument) string {
	sections := []string{
		SerializePersonal(doc.Personal),
		SerializeEducation(doc.Education),
		SerializeCertifications(doc.Certifications),
		SerializeExperience(doc.Experience),
	}

	var nonEmpty []string
	for _, s := range sections {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	if len(nonEmpty) == 0 {
		return ""
	}
	return strings.Join(nonEmpty, "\n\n") + "\n"
}

func writeKeyValue(sb *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	sb.WriteString(key)
	sb.WriteString(": ")
	sb.WriteString(value)
	sb.WriteString("\n")
}

func writeBullets(sb *strings.Builder, header string, items []string) {
	if len(items) == 0 {
		return
	}
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, item := range items {
		sb.WriteString("* ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
}
