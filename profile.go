package locprof

// Section heading labels. A region matches a label when its heading text
// starts with it.
const (
	LabelAbout           = "About"
	LabelActivity        = "Activity"
	LabelCertifications  = "Licenses & certifications"
	LabelEducation       = "Education"
	LabelExperience      = "Experience"
	LabelFeatured        = "Featured"
	LabelInterests       = "Interests"
	LabelLanguages       = "Languages"
	LabelRecommendations = "Recommendations"
	LabelSkills          = "Skills"
)

// Profile is the aggregate record extracted from one profile page.
// A section field is nil when its section is absent from the page. A present
// section always yields a non-nil value, even when no entries were recovered.
type Profile struct {
	Header          *Header          `json:"header"`
	About           *string          `json:"about"`
	Experience      *Experience      `json:"experience"`
	Education       *Education       `json:"education"`
	Certifications  *Certifications  `json:"certifications"`
	Skills          []Skill          `json:"skills"`
	Recommendations []Recommendation `json:"recommendations"`
	Languages       []string         `json:"languages"`
	Activity        *Activity        `json:"activity"`
	Featured        []FeaturedItem   `json:"featured"`
	Interests       []Interest       `json:"interests"`
}

// Header holds the summary fields from the profile banner.
// Every field is independently nullable.
type Header struct {
	Name            *string `json:"name"`
	Headline        *string `json:"headline"`
	Organizations   *string `json:"organizations"`
	Location        *string `json:"location"`
	Connections     *string `json:"connections"`
	ProfilePhotoURL *string `json:"profilePhotoUrl"`
	CoverPhotoURL   *string `json:"coverPhotoUrl"`
}

// AnchorEntry is a link reduced to its normalized text and resolved path.
// Path is nil when the link target could not be parsed.
type AnchorEntry struct {
	Text string  `json:"text"`
	Path *string `json:"path"`
}

// RoleEntry is one experience entry. The source concatenates title,
// employer, employment type, dates, duration and location with no
// recoverable delimiter, so RawText is left for downstream segmentation.
type RoleEntry struct {
	RawText string  `json:"rawText"`
	Path    *string `json:"path"`
}

// EducationEntry is one education entry, left unsegmented like RoleEntry.
type EducationEntry struct {
	RawText string  `json:"rawText"`
	Path    *string `json:"path"`
}

// CertificationEntry is one license or certification entry.
type CertificationEntry struct {
	RawText string  `json:"rawText"`
	Path    *string `json:"path"`
}

// Experience is the experience section.
type Experience struct {
	Roles        []RoleEntry `json:"roles"`
	Logos        []string    `json:"logos"`
	Descriptions []string    `json:"descriptions"`
}

// Education is the education section.
type Education struct {
	Entries []EducationEntry `json:"entries"`
	Logos   []string         `json:"logos"`
}

// Certifications is the licenses and certifications section.
type Certifications struct {
	Entries []CertificationEntry `json:"entries"`
	Logos   []string             `json:"logos"`
}

// Skill is a named skill with an optional endorsement count.
type Skill struct {
	Name         string `json:"name"`
	Endorsements *int   `json:"endorsements"`
}

// ConnectionDegree is the network distance shown next to a recommender.
type ConnectionDegree string

// Connection degrees.
const (
	DegreeFirst  ConnectionDegree = "1st"
	DegreeSecond ConnectionDegree = "2nd"
	DegreeThird  ConnectionDegree = "3rd"
)

// Recommendation is one received recommendation.
type Recommendation struct {
	RecommenderName  string           `json:"recommenderName"`
	ConnectionDegree ConnectionDegree `json:"connectionDegree"`
	Text             string           `json:"text"`
}

// Activity is the recent activity section.
type Activity struct {
	Followers *int   `json:"followers"`
	Posts     []Post `json:"posts"`
}

// Post is one activity item with its engagement counts.
type Post struct {
	Text     string `json:"text"`
	Comments *int   `json:"comments"`
	Reposts  *int   `json:"reposts"`
}

// FeaturedItem is one entry of the featured section.
type FeaturedItem struct {
	Text string  `json:"text"`
	Path *string `json:"path"`
}

// Interest is one followed company, group, school or person.
type Interest struct {
	Text      string `json:"text"`
	Followers *int   `json:"followers"`
}
