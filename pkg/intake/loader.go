package intake

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Load reads intake data from a JSON file.
func Load(path string) (data Intake, err error) {
	// Read file
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read intake file: %s", path)
		return data, err
	}

	// Parse JSON
	err = json.Unmarshal(fileData, &data)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse intake JSON: %s", path)
		return data, err
	}

	// Validate data
	err = data.Validate()
	if err != nil {
		err = errors.Wrap(err, "intake validation failed")
		return data, err
	}

	return data, err
}

// Validate checks that all required fields are present, reporting every
// missing field in a single error.
func (i *Intake) Validate() (err error) {
	required := []struct {
		label string
		value string
	}{
		{"full_name", i.FullName},
		{"email", i.Email},
		{"phone", i.Phone},
		{"location", i.Location},
		{"education", i.Education},
		{"job_title", i.JobTitle},
		{"skills", i.Skills},
		{"work_experience", i.WorkExperience},
		{"projects", i.Projects},
	}

	missing := make([]string, 0)
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.label)
		}
	}

	// The job description may be inline or fetched from a source; one of
	// the two must be present.
	if strings.TrimSpace(i.JobDescription) == "" && strings.TrimSpace(i.JobDescriptionFrom) == "" {
		missing = append(missing, "job_description (or job_description_from)")
	}

	if len(missing) > 0 {
		err = errors.Errorf("missing required fields: %s", strings.Join(missing, ", "))
		return err
	}

	return err
}

// OrDefault returns the value, or "Not provided" when it is empty. The
// prompt template expects the placeholder rather than an empty slot.
func OrDefault(value string) (result string) {
	result = value
	if strings.TrimSpace(result) == "" {
		result = "Not provided"
	}
	return result
}
