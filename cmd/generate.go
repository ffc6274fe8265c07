package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mfields/resumegen/pkg/atscheck"
	"github.com/mfields/resumegen/pkg/classify"
	"github.com/mfields/resumegen/pkg/config"
	"github.com/mfields/resumegen/pkg/intake"
	"github.com/mfields/resumegen/pkg/jd"
	"github.com/mfields/resumegen/pkg/llm"
	"github.com/mfields/resumegen/pkg/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var generateOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var skipPDF bool

//nolint:gochecknoglobals // Cobra boilerplate
var skipCheck bool

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate [intake-file]",
	Short: "Generate an ATS-friendly resume",
	Long: `Generate an ATS-optimized resume from an intake file of structured
resume content: identity, contact details, education, skills, work
experience, projects, and the target job.

The intake file defaults to the intake_location in the config. The job
description may be inline (job_description) or fetched from a file or
URL (job_description_from).

Two artifacts are written: the generated text exactly as returned by the
model, and a paginated PDF. If PDF rendering fails the text artifact is
kept.

Example:
  resumegen generate intake.json
  resumegen generate intake.json --output-dir ~/Documents --skip-pdf`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "", "Output directory (default from config)")
	generateCmd.Flags().BoolVar(&skipPDF, "skip-pdf", false, "Skip PDF generation, write only the text artifact")
	generateCmd.Flags().BoolVar(&skipCheck, "skip-check", false, "Skip the ATS compatibility report")
}

func runGenerate(cmd *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	// Load configuration
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	// Load intake
	intakePath := cfg.IntakeLocation
	if len(args) == 1 {
		intakePath = args[0]
	}
	if intakePath == "" {
		err = errors.New("no intake file given and no intake_location in config")
		return err
	}

	if getVerbose() {
		fmt.Printf("Loading intake from: %s\n", intakePath)
	}

	var data intake.Intake
	data, err = intake.Load(intakePath)
	if err != nil {
		err = errors.Wrap(err, "failed to load intake")
		return err
	}

	// Resolve the job description when the intake names a source
	jobDescription := data.JobDescription
	if strings.TrimSpace(jobDescription) == "" {
		if getVerbose() {
			fmt.Printf("Fetching job description from: %s\n", data.JobDescriptionFrom)
		}
		jobDescription, err = jd.Fetch(ctx, data.JobDescriptionFrom)
		if err != nil {
			err = errors.Wrap(err, "failed to fetch job description")
			return err
		}
	}

	// Generate
	if getVerbose() {
		fmt.Printf("Generating resume with model: %s\n", cfg.GetModel())
	}

	client := llm.NewClient(cfg.GroqAPIKey, cfg.GetModel())

	var resume string
	resume, err = client.GenerateResume(ctx, buildResumeRequest(data, jobDescription))
	if err != nil {
		return err
	}

	// Write artifacts
	outDir := getOutputDir(generateOutputDir, cfg.Defaults.OutputDir)
	txtPath, pdfPath := buildArtifactPaths(data.FullName, outDir, time.Now())

	// The text artifact is the model output byte for byte.
	err = writeArtifact(txtPath, []byte(resume))
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", txtPath)

	if !skipCheck {
		printReport(atscheck.Check(resume))
	}

	if skipPDF {
		return err
	}

	// A rendering failure must not lose the text artifact: warn and keep
	// what was written.
	pdfErr := renderToFile(resume, pdfPath)
	if pdfErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: PDF generation failed: %v\n", pdfErr)
		fmt.Fprintf(os.Stderr, "Text artifact kept at %s\n", txtPath)
		return err
	}
	fmt.Printf("Wrote %s\n", pdfPath)

	return err
}

// buildResumeRequest maps intake content onto the prompt request,
// substituting the placeholder for empty optional fields.
func buildResumeRequest(data intake.Intake, jobDescription string) (req llm.ResumeRequest) {
	portfolio := data.Portfolio
	if strings.TrimSpace(portfolio) == "" {
		portfolio = data.GitHub
	}

	req = llm.ResumeRequest{
		FullName:            data.FullName,
		Email:               data.Email,
		Phone:               data.Phone,
		Location:            data.Location,
		LinkedIn:            intake.OrDefault(data.LinkedIn),
		Portfolio:           intake.OrDefault(portfolio),
		JobTitle:            data.JobTitle,
		JobDescription:      jobDescription,
		ProfessionalSummary: intake.OrDefault(data.ProfessionalSummary),
		Education:           data.Education,
		Skills:              data.Skills,
		WorkExperience:      data.WorkExperience,
		Projects:            data.Projects,
		Certifications:      intake.OrDefault(data.Certifications),
		Achievements:        intake.OrDefault(data.Achievements),
	}
	return req
}

// renderToFile classifies a text blob, renders it to PDF and writes the
// result.
func renderToFile(resume, pdfPath string) (err error) {
	lines := classify.Classify(resume)

	var pdfBytes []byte
	pdfBytes, err = render.Render(lines)
	if err != nil {
		return err
	}

	err = writeArtifact(pdfPath, pdfBytes)
	return err
}
