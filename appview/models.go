package appview

// Profile is the decoded on-ledger profile object. Counts are the declared
// sizes of the indexed collections hanging off the profile as dynamic fields.
type Profile struct {
	ID               string   `json:"id"`
	Owner            string   `json:"owner"`
	Name             string   `json:"name"`
	Bio              string   `json:"bio"`
	AvatarURL        string   `json:"avatarUrl"`
	BannerURL        string   `json:"bannerUrl"`
	SocialLinks      []string `json:"socialLinks"`
	IsVerified       bool     `json:"isVerified"`
	CreatedAt        string   `json:"createdAt"`
	ExperienceCount  uint64   `json:"experienceCount"`
	EducationCount   uint64   `json:"educationCount"`
	CertificateCount uint64   `json:"certificateCount"`
	Skills           []Skill  `json:"skills"`
}

type Skill struct {
	Name             string `json:"name"`
	EndorsementCount uint64 `json:"endorsement_count"`
}

// Experience, Education, and Certificate are indexed collection entries.
// Index is the storage index the entry was found at; OrderIndex is the
// caller-supplied display order, which is not guaranteed to match.

type Experience struct {
	Index       uint64 `json:"id"`
	JobTitle    string `json:"job_title"`
	Company     string `json:"company"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
	OrderIndex  uint64 `json:"order_index"`
}

type Education struct {
	Index        uint64 `json:"id"`
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	OrderIndex   uint64 `json:"order_index"`
}

type Certificate struct {
	Index          uint64 `json:"id"`
	Name           string `json:"name"`
	Issuer         string `json:"issuer"`
	IssueDate      string `json:"issue_date"`
	CertificateURL string `json:"certificate_url"`
	OrderIndex     uint64 `json:"order_index"`
}

type Post struct {
	ID           string   `json:"id"`
	Author       string   `json:"author"`
	ProfileID    string   `json:"profileId"`
	Content      string   `json:"content"`
	ImageURLs    []string `json:"imageUrls"`
	LikeCount    uint64   `json:"likeCount"`
	CommentCount uint64   `json:"commentCount"`
	CreatedAt    string   `json:"createdAt"`
	UpdatedAt    string   `json:"updatedAt"`
}

type Comment struct {
	Index     uint64 `json:"id"`
	Author    string `json:"author"`
	ProfileID string `json:"profileId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}
