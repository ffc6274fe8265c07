package llm

import (
	"fmt"
)

// buildResumePrompt creates the generation prompt. The formatting rules
// are load-bearing: the classifier downstream keys on the ALL CAPS
// headers, the pipe contact line, the em dash subheadings and the bullet
// glyph this template demands.
//
//nolint:funlen // Prompt template
func buildResumePrompt(req ResumeRequest) (prompt string) {
	prompt = fmt.Sprintf(`You are an expert resume writer specializing in ATS (Applicant Tracking System) optimization.
Create a professional, ATS-friendly resume following this EXACT format and structure:

**STRICT FORMATTING REQUIREMENTS:**
1. Name at top in ALL CAPS
2. Contact line: City, Country | Phone | Email | LinkedIn | Portfolio/GitHub (if provided)
3. Section headers in ALL CAPS with blank line before
4. Use bullet points (•) for job responsibilities and achievements
5. Use em dash (—) for separating job title and company
6. Use vertical bars (|) for separating location and dates
7. NO tables, columns, icons, or graphics
8. Keep it simple, clean, and text-only

**REQUIRED FORMAT:**

%s
%s | %s | %s | %s | %s

PROFESSIONAL SUMMARY
Write 2-4 lines based on: %s
If not provided, create a compelling summary highlighting experience for %s role using keywords from job description.

CORE SKILLS
Extract and list relevant skills from: %s
Format: Skill1 · Skill2 · Skill3 · Skill4 (use middle dot · as separator)
Prioritize skills matching the job description.

PROFESSIONAL EXPERIENCE
Format work experience from: %s
Use this structure:
Job Title — Company Name
Location | MM/YYYY – Present (or MM/YYYY – MM/YYYY)
• Achievement/responsibility with metrics
• Achievement/responsibility with metrics
• Achievement/responsibility with metrics

PROJECTS
Format projects from: %s
Use this structure:
Project Name — Role
• Brief description with technologies used
• Key features and achievements with metrics if available

EDUCATION
Format education from: %s
Use this structure:
Degree — University Name
MM/YYYY – MM/YYYY (or Expected MM/YYYY)

CERTIFICATIONS
List certifications from: %s
Format: Certification1 · Certification2 · Certification3

ACHIEVEMENTS (if notable achievements exist)
List any significant achievements, rankings, or recognitions from: %s

**CRITICAL INSTRUCTIONS:**
- Analyze the job description and naturally incorporate relevant keywords
- Use action verbs: Built, Developed, Implemented, Designed, Improved, Led, etc.
- Include metrics and numbers wherever possible (%%, $, time saved, users, etc.)
- Keep bullet points concise (1-2 lines max)
- Ensure proper spacing between sections
- Use consistent formatting throughout
- Make it ATS-friendly (no special characters except · — | • )

Job Description for keyword optimization:
%s

Generate the complete resume now following this exact format.`,
		req.FullName,
		req.Location, req.Phone, req.Email, req.LinkedIn, req.Portfolio,
		req.ProfessionalSummary,
		req.JobTitle,
		req.Skills,
		req.WorkExperience,
		req.Projects,
		req.Education,
		req.Certifications,
		req.Achievements,
		req.JobDescription,
	)

	return prompt
}
