package resume

import (
	"fmt"
	"strings"
)

// knownHeaders is the set of header titles the dialect defines. A known
// header at an unexpected depth is a structural error; an unknown header is
// ignored for forward compatibility.
var knownHeaders = map[string]bool{
	"Personal":            true,
	"Contact Information": true,
	"Websites":            true,
	"Banner":              true,
	"Education":           true,
	"Degrees":             true,
	"Degree":              true,
	"Certifications":      true,
	"Certification":       true,
	"Experience":          true,
	"Roles":               true,
	"Role":                true,
	"Basics":              true,
	"Summary":             true,
	"Responsibilities":    true,
	"Skills":              true,
	"Projects":            true,
	"Project":             true,
	"Overview":            true,
	"Description":         true,
}

// node is a header block: the header title, body lines before any child
// header, and nested child headers.
type node struct {
	level    int
	title    string
	lines    []string
	children []*node
}

// splitHeading recognizes a dialect header line: one to four leading '#'
// characters at column zero followed by a space and a non-empty title.
func splitHeading(line string) (level int, title string, ok bool) {
	i := 0
	for i < len(line) && line[i] == '#' {
		i++
	}
	if i == 0 || i > 4 {
		return 0, "", false
	}
	if i >= len(line) || line[i] != ' ' {
		return 0, "", false
	}
	title = strings.TrimSpace(line[i+1:])
	if title == "" {
		return 0, "", false
	}
	return i, title, true
}

// buildTree scans text into a forest of header nodes. Headers are matched
// case-sensitively; lines before the first header are ignored.
func buildTree(text string) []*node {
	var roots []*node
	var stack []*node

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, " \t\r")

		if level, title, ok := splitHeading(line); ok {
			n := &node{level: level, title: title}
			for len(stack) > 0 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				roots = append(roots, n)
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, n)
			}
			stack = append(stack, n)
			continue
		}

		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.lines = append(top.lines, line)
		}
	}

	return roots
}

// Parse parses full resume Markdown into a ResumeDocument. A missing section
// is valid; a duplicated top-level section, a known header at an unexpected
// depth, or text with no recognizable top-level sections is a ParseError.
func Parse(text string) (*ResumeDocument, error) {
	doc := &ResumeDocument{}
	seen := map[string]bool{}
	recognized := false

	for _, n := range buildTree(text) {
		if n.level != 1 {
			if knownHeaders[n.title] {
				return nil, &ParseError{
					Message: fmt.Sprintf("header %q at unexpected depth %d", n.title, n.level),
				}
			}
			continue
		}

		var err error
		switch n.title {
		case "Personal":
			if seen[n.title] {
				return nil, &ParseError{Section: n.title, Message: "section appears more than once"}
			}
			doc.Personal, err = parsePersonal(n)
		case "Education":
			if seen[n.title] {
				return nil, &ParseError{Section: n.title, Message: "section appears more than once"}
			}
			doc.Education, err = parseEducation(n)
		case "Certifications":
			if seen[n.title] {
				return nil, &ParseError{Section: n.title, Message: "section appears more than once"}
			}
			doc.Certifications, err = parseCertifications(n)
		case "Experience":
			if seen[n.title] {
				return nil, &ParseError{Section: n.title, Message: "section appears more than once"}
			}
			doc.Experience, err = parseExperience(n)
		default:
			continue
		}
		if err != nil {
			return nil, err
		}
		seen[n.title] = true
		recognized = true
	}

	if !recognized {
		return nil, &ParseError{Message: "no recognizable top-level sections found"}
	}
	return doc, nil
}

// findTopLevel locates the single top-level section with the given title.
// Returns nil without error when the section is absent.
func findTopLevel(text, title string) (*node, error) {
	var found *node
	for _, n := range buildTree(text) {
		if n.level == 1 && n.title == title {
			if found != nil {
				return nil, &ParseError{Section: title, Message: "section appears more than once"}
			}
			found = n
		}
	}
	return found, nil
}

// ExtractPersonal parses just the Personal section of text. Other sections
// may be malformed without affecting the result; an absent section yields a
// zero value.
func ExtractPersonal(text string) (PersonalInfo, error) {
	n, err := findTopLevel(text, "Personal")
	if err != nil || n == nil {
		return PersonalInfo{}, err
	}
	return parsePersonal(n)
}

// ExtractEducation parses just the Education section of text.
func ExtractEducation(text string) (Education, error) {
	n, err := findTopLevel(text, "Education")
	if err != nil || n == nil {
		return Education{}, err
	}
	return parseEducation(n)
}

// ExtractCertifications parses just the Certifications section of text.
func ExtractCertifications(text string) (Certifications, error) {
	n, err := findTopLevel(text, "Certifications")
	if err != nil || n == nil {
		return nil, err
	}
	return parseCertifications(n)
}

// ExtractExperience parses just the Experience section of text.
func ExtractExperience(text string) (Experience, error) {
	n, err := findTopLevel(text, "Experience")
	if err != nil || n == nil {
		return Experience{}, err
	}
	return parseExperience(n)
}

func parsePersonal(n *node) (PersonalInfo, error) {
	p := PersonalInfo{}
	for _, c := range n.children {
		switch {
		case c.level == 2 && c.title == "Contact Information":
			kv, err := parseKeyValues("Personal", "Contact Information", c.lines)
			if err != nil {
				return p, err
			}
			p.Name = kv["Name"]
			p.Email = kv["Email"]
			p.Phone = kv["Phone"]
			p.Location = kv["Location"]
			if err := rejectNestedKnown("Personal", c); err != nil {
				return p, err
			}
		case c.level == 2 && c.title == "Websites":
			kv, err := parseKeyValues("Personal", "Websites", c.lines)
			if err != nil {
				return p, err
			}
			p.Website = kv["Website"]
			p.Github = kv["Github"]
			p.Linkedin = kv["Linkedin"]
			if err := rejectNestedKnown("Personal", c); err != nil {
				return p, err
			}
		case c.level == 2 && c.title == "Banner":
			p.Banner = joinFreeText(c.lines)
			if err := rejectNestedKnown("Personal", c); err != nil {
				return p, err
			}
		default:
			if knownHeaders[c.title] {
				return p, &ParseError{
					Section: "Personal",
					Message: fmt.Sprintf("header %q at unexpected depth %d", c.title, c.level),
				}
			}
		}
	}
	return p, nil
}

func parseEducation(n *node) (Education, error) {
	edu := Education{}
	for _, c := range n.children {
		switch {
		case c.level == 2 && c.title == "Degrees":
			for _, d := range c.children {
				if d.level == 3 && d.title == "Degree" {
					deg, err := parseDegree(d, len(edu.Degrees)+1)
					if err != nil {
						return edu, err
					}
					edu.Degrees = append(edu.Degrees, deg)
					continue
				}
				if knownHeaders[d.title] {
					return edu, &ParseError{
						Section: "Education",
						Message: fmt.Sprintf("header %q at unexpected depth %d", d.title, d.level),
					}
				}
			}
		default:
			if knownHeaders[c.title] {
				return edu, &ParseError{
					Section: "Education",
					Message: fmt.Sprintf("header %q at unexpected depth %d", c.title, c.level),
				}
			}
		}
	}
	return edu, nil
}

func parseDegree(n *node, index int) (Degree, error) {
	ctx := fmt.Sprintf("Degree #%d", index)
	kv, err := parseKeyValues("Education", ctx, n.lines)
	if err != nil {
		return Degree{}, err
	}
	if err := rejectNestedKnown("Education", n); err != nil {
		return Degree{}, err
	}

	deg := Degree{
		School: kv["School"],
		Degree: kv["Degree"],
		Major:  kv["Major"],
	}
	if deg.StartDate, err = parseDate(kv["Start date"], ctx+" start date"); err != nil {
		return deg, err
	}
	if deg.EndDate, err = parseDate(kv["End date"], ctx+" end date"); err != nil {
		return deg, err
	}
	return deg, nil
}

func parseCertifications(n *node) (Certifications, error) {
	var certs Certifications
	for _, c := range n.children {
		if c.level == 2 && c.title == "Certification" {
			cert, err := parseCertification(c, len(certs)+1)
			if err != nil {
				return certs, err
			}
			certs = append(certs, cert)
			continue
		}
		if knownHeaders[c.title] {
			return certs, &ParseError{
				Section: "Certifications",
				Message: fmt.Sprintf("header %q at unexpected depth %d", c.title, c.level),
			}
		}
	}
	return certs, nil
}

func parseCertification(n *node, index int) (Certification, error) {
	ctx := fmt.Sprintf("Certification #%d", index)
	kv, err := parseKeyValues("Certifications", ctx, n.lines)
	if err != nil {
		return Certification{}, err
	}
	if err := rejectNestedKnown("Certifications", n); err != nil {
		return Certification{}, err
	}

	cert := Certification{
		Name:   kv["Name"],
		Issuer: kv["Issuer"],
		ID:     kv["ID"],
	}
	if cert.Issued, err = parseDate(kv["Issued"], ctx+" issued date"); err != nil {
		return cert, err
	}
	if cert.Expires, err = parseDate(kv["Expires"], ctx+" expiry date"); err != nil {
		return cert, err
	}
	return cert, nil
}

func parseExperience(n *node) (Experience, error) {
	exp := Experience{}
	for _, c := range n.children {
		switch {
		case c.level == 2 && c.title == "Roles":
			for _, r := range c.children {
				if r.level == 3 && r.title == "Role" {
					role, err := parseRole(r, len(exp.Roles)+1)
					if err != nil {
						return exp, err
					}
					exp.Roles = append(exp.Roles, role)
					continue
				}
				if knownHeaders[r.title] {
					return exp, &ParseError{
						Section: "Experience",
						Message: fmt.Sprintf("header %q at unexpected depth %d", r.title, r.level),
					}
				}
			}
		case c.level == 2 && c.title == "Projects":
			for _, p := range c.children {
				if p.level == 3 && p.title == "Project" {
					project, err := parseProject(p, len(exp.Projects)+1)
					if err != nil {
						return exp, err
					}
					exp.Projects = append(exp.Projects, project)
					continue
				}
				if knownHeaders[p.title] {
					return exp, &ParseError{
						Section: "Experience",
						Message: fmt.Sprintf("header %q at unexpected depth %d", p.title, p.level),
					}
				}
			}
		default:
			if knownHeaders[c.title] {
				return exp, &ParseError{
					Section: "Experience",
					Message: fmt.Sprintf("header %q at unexpected depth %d", c.title, c.level),
				}
			}
		}
	}
	return exp, nil
}

func parseRole(n *node, index int) (Role, error) {
	ctx := fmt.Sprintf("Role #%d", index)
	role := Role{}
	hasBasics := false

	for _, c := range n.children {
		switch {
		case c.level == 4 && c.title == "Basics":
			hasBasics = true
			kv, err := parseKeyValues("Experience", ctx, c.lines)
			if err != nil {
				return role, err
			}
			role.Company = kv["Company"]
			role.Title = kv["Title"]
			role.Location = kv["Location"]
			if role.StartDate, err = parseDate(kv["Start date"], ctx+" start date"); err != nil {
				return role, err
			}
			if role.EndDate, err = parseDate(kv["End date"], ctx+" end date"); err != nil {
				return role, err
			}
		case c.level == 4 && c.title == "Summary":
			role.Summary = joinFreeText(c.lines)
		case c.level == 4 && c.title == "Responsibilities":
			items, err := parseBullets("Experience", ctx+" responsibilities", c.lines)
			if err != nil {
				return role, err
			}
			role.Responsibilities = items
		case c.level == 4 && c.title == "Skills":
			items, err := parseBullets("Experience", ctx+" skills", c.lines)
			if err != nil {
				return role, err
			}
			role.Skills = items
		default:
			if knownHeaders[c.title] {
				return role, &ParseError{
					Section: "Experience",
					Context: ctx,
					Message: fmt.Sprintf("header %q at unexpected depth %d", c.title, c.level),
				}
			}
		}
	}

	if !hasBasics {
		return role, &ParseError{
			Section: "Experience",
			Context: ctx,
			Message: "missing required #### Basics block",
		}
	}
	return role, nil
}

func parseProject(n *node, index int) (Project, error) {
	ctx := fmt.Sprintf("Project #%d", index)
	project := Project{}
	hasOverview := false

	for _, c := range n.children {
		switch {
		case c.level == 4 && c.title == "Overview":
			hasOverview = true
			kv, err := parseKeyValues("Experience", ctx, c.lines)
			if err != nil {
				return project, err
			}
			project.Title = kv["Title"]
			project.URL = kv["Url"]
			if project.StartDate, err = parseDate(kv["Start date"], ctx+" start date"); err != nil {
				return project, err
			}
			if project.EndDate, err = parseDate(kv["End date"], ctx+" end date"); err != nil {
				return project, err
			}
		case c.level == 4 && c.title == "Description":
			project.Description = joinFreeText(c.lines)
		case c.level == 4 && c.title == "Skills":
			items, err := parseBullets("Experience", ctx+" skills", c.lines)
			if err != nil {
				return project, err
			}
			project.Skills = items
		default:
			if knownHeaders[c.title] {
				return project, &ParseError{
					Section: "Experience",
					Context: ctx,
					Message: fmt.Sprintf("header %q at unexpected depth %d", c.title, c.level),
				}
			}
		}
	}

	if !hasOverview {
		return project, &ParseError{
			Section: "Experience",
			Context: ctx,
			Message: "missing required #### Overview block",
		}
	}
	return project, nil
}

// parseKeyValues reads `Key: Value` lines. A non-blank line without a colon
// is missing its key, which is a structural error. Unknown keys are kept in
// the map and simply never read, to tolerate forward-compatible extensions.
func parseKeyValues(section, context string, lines []string) (map[string]string, error) {
	kv := make(map[string]string)
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		idx := strings.Index(s, ":")
		if idx <= 0 {
			return nil, &ParseError{
				Section: section,
				Context: context,
				Message: fmt.Sprintf("line %q is missing a key", s),
			}
		}
		key := strings.TrimSpace(s[:idx])
		kv[key] = strings.TrimSpace(s[idx+1:])
	}
	return kv, nil
}

// parseBullets reads a `* item` list. Any non-blank line that is not a
// bullet is a structural error; the bullet syntax is a hard format contract.
func parseBullets(section, context string, lines []string) ([]string, error) {
	var items []string
	for _, line := range lines {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		if !strings.HasPrefix(s, "* ") {
			return nil, &ParseError{
				Section: section,
				Context: context,
				Message: fmt.Sprintf("expected a bulleted list item, got %q", s),
			}
		}
		item := strings.TrimSpace(strings.TrimPrefix(s, "* "))
		if item != "" {
			items = append(items, item)
		}
	}
	return items, nil
}

// joinFreeText joins a free-text block, trimming surrounding blank lines but
// preserving interior structure.
func joinFreeText(lines []string) string {
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimRight(l, " \t")
	}
	return strings.TrimSpace(strings.Join(trimmed, "\n"))
}

// rejectNestedKnown errors when a known dialect header is nested inside a
// leaf block where no header belongs.
func rejectNestedKnown(section string, n *node) error {
	for _, c := range n.children {
		if knownHeaders[c.title] {
			return &ParseError{
				Section: section,
				Message: fmt.Sprintf("header %q at unexpected depth %d", c.title, c.level),
			}
		}
		if err := rejectNestedKnown(section, c); err != nil {
			return err
		}
	}
	return nil
}
