package cmd

import (
	"os"

	"github.com/mfields/resumegen/pkg/atscheck"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var minScore int

//nolint:gochecknoglobals // Cobra boilerplate
var checkCmd = &cobra.Command{
	Use:   "check <resume.txt>",
	Short: "Check a resume text file for ATS compatibility",
	Long: `Check a resume text file against the ATS compatibility rules:
document structure (name, contact line, section headers) and formatting
(tabs, decorative symbols, overlong bullets).

Exits non-zero when the score falls below --min-score.

Example:
  resumegen check ATS_Resume_Jane_Doe_20260830.txt
  resumegen check resume.txt --min-score 80`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().IntVar(&minScore, "min-score", 0, "Fail when the score is below this value")
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
	var data []byte
	data, err = os.ReadFile(args[0])
	if err != nil {
		err = errors.Wrapf(err, "failed to read resume file: %s", args[0])
		return err
	}

	report := atscheck.Check(string(data))
	printReport(report)

	if report.Score < minScore {
		err = errors.Errorf("ATS score %d is below minimum %d", report.Score, minScore)
		return err
	}

	return err
}
