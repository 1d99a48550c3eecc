// Package resume implements the constrained Markdown resume dialect: the
// typed document model, the structural parser and serializer, section
// selection, and reconstruction of full documents from refined sections.
//
// The dialect is a strict header hierarchy (`#` through `####`) with
// `Key: Value` lines and `* ` bullet lists. Each top-level section parses
// independently of the others.
package resume

// SectionKind identifies one refinable unit of a resume document.
type SectionKind string

// Section kinds accepted by Select, Refine, and Reconstruct.
const (
	SectionPersonal       SectionKind = "personal"
	SectionEducation      SectionKind = "education"
	SectionExperience     SectionKind = "experience"
	SectionCertifications SectionKind = "certifications"
	SectionFull           SectionKind = "full"
)

// ParseSectionKind converts a client-supplied section name into a SectionKind.
// Returns an InvalidSectionError for anything outside the known set.
func ParseSectionKind(name string) (SectionKind, error) {
	switch SectionKind(name) {
	case SectionPersonal, SectionEducation, SectionExperience, SectionCertifications, SectionFull:
		return SectionKind(name), nil
	default:
		return "", &InvalidSectionError{Name: name}
	}
}

// PersonalInfo holds the singleton personal section of a resume.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
	Website  string `json:"website,omitempty"`
	Github   string `json:"github,omitempty"`
	Linkedin string `json:"linkedin,omitempty"`
	Banner   string `json:"banner,omitempty"`
}

// IsZero reports whether no personal field is populated.
func (p PersonalInfo) IsZero() bool {
	return p == PersonalInfo{}
}

// Degree is a single education entry. Order within Education is display order.
type Degree struct {
	School    string `json:"school,omitempty"`
	Degree    string `json:"degree,omitempty"`
	Major     string `json:"major,omitempty"`
	StartDate Date   `json:"start_date,omitempty"`
	EndDate   Date   `json:"end_date,omitempty"`
}

// Education is the ordered sequence of degrees.
type Education struct {
	Degrees []Degree `json:"degrees,omitempty"`
}

// IsZero reports whether the education section is empty.
func (e Education) IsZero() bool {
	return len(e.Degrees) == 0
}

// Certification is a single certification entry.
type Certification struct {
	Name    string `json:"name,omitempty"`
	Issuer  string `json:"issuer,omitempty"`
	ID      string `json:"id,omitempty"`
	Issued  Date   `json:"issued,omitempty"`
	Expires Date   `json:"expires,omitempty"`
}

// Certifications is the ordered sequence of certification entries.
type Certifications []Certification

// Role is one employment entry. Responsibilities keep their input order;
// Skills preserve input order for display but are treated as a set when the
// refiner synchronizes them with responsibilities.
type Role struct {
	Company          string   `json:"company,omitempty"`
	Title            string   `json:"title,omitempty"`
	Location         string   `json:"location,omitempty"`
	StartDate        Date     `json:"start_date,omitempty"`
	EndDate          Date     `json:"end_date,omitempty"`
	Summary          string   `json:"summary,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
	Skills           []string `json:"skills,omitempty"`
}

// Project is one project entry.
type Project struct {
	Title       string   `json:"title,omitempty"`
	URL         string   `json:"url,omitempty"`
	StartDate   Date     `json:"start_date,omitempty"`
	EndDate     Date     `json:"end_date,omitempty"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

// Experience holds the two independent ordered sequences of the experience
// section.
type Experience struct {
	Roles    []Role    `json:"roles,omitempty"`
	Projects []Project `json:"projects,omitempty"`
}

// IsZero reports whether the experience section is empty.
func (e Experience) IsZero() bool {
	return len(e.Roles) == 0 && len(e.Projects) == 0
}

// ResumeDocument aggregates the four sections of a resume. A zero-valued
// section means the section was absent from the source text, which is valid.
type ResumeDocument struct {
	Personal       PersonalInfo   `json:"personal,omitempty"`
	Education      Education      `json:"education,omitempty"`
	Certifications Certifications `json:"certifications,omitempty"`
	Experience     Experience     `json:"experience,omitempty"`
}
