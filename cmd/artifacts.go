package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mfields/resumegen/pkg/atscheck"
	"github.com/pkg/errors"
)

// buildArtifactPaths derives the output file names from the candidate
// name and the current date, e.g. ATS_Resume_Jane_Doe_20260830.pdf.
func buildArtifactPaths(fullName, outDir string, now time.Time) (txtPath, pdfPath string) {
	name := strings.ReplaceAll(strings.TrimSpace(fullName), " ", "_")
	base := fmt.Sprintf("ATS_Resume_%s_%s", name, now.Format("20060102"))

	txtPath = filepath.Join(outDir, base+".txt")
	pdfPath = filepath.Join(outDir, base+".pdf")
	return txtPath, pdfPath
}

// writeArtifact writes one output artifact, creating the directory if
// needed.
func writeArtifact(path string, data []byte) (err error) {
	outputDir := filepath.Dir(path)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write artifact: %s", path)
		return err
	}

	return err
}

// getOutputDir returns the output directory from the flag or the config
// default.
func getOutputDir(flagValue, configDefault string) (outDir string) {
	outDir = flagValue
	if outDir == "" {
		outDir = configDefault
	}
	return outDir
}

// printReport prints an ATS check report.
func printReport(report atscheck.Report) {
	fmt.Printf("ATS score: %d/100 (structure %d, formatting %d)\n",
		report.Score, report.Structure, report.Formatting)

	for _, finding := range report.Findings {
		rule := atscheck.Rules[finding.Rule]
		if finding.Line > 0 {
			fmt.Printf("  [%s] line %d: %s (%s)\n", rule.Severity, finding.Line, finding.Detail, finding.Rule)
			continue
		}
		fmt.Printf("  [%s] %s (%s)\n", rule.Severity, finding.Detail, finding.Rule)
	}
}
