package intake

// Intake represents the structured resume content a user supplies for one
// generation request: identity, contact details, and the free-text blocks
// the generator reshapes into the final document.
type Intake struct {
	FullName            string `json:"full_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Location            string `json:"location"`
	LinkedIn            string `json:"linkedin,omitempty"`
	GitHub              string `json:"github,omitempty"`
	Portfolio           string `json:"portfolio,omitempty"`
	Education           string `json:"education"`
	JobTitle            string `json:"job_title"`
	JobDescription      string `json:"job_description,omitempty"`
	JobDescriptionFrom  string `json:"job_description_from,omitempty"`
	ProfessionalSummary string `json:"professional_summary,omitempty"`
	Skills              string `json:"skills"`
	WorkExperience      string `json:"work_experience"`
	Projects            string `json:"projects"`
	Certifications      string `json:"certifications,omitempty"`
	Achievements        string `json:"achievements,omitempty"`
}
