package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderOutputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var renderName string

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render <resume.txt>",
	Short: "Render an existing resume text file to PDF",
	Long: `Render an existing resume text file to a paginated PDF without
calling the LLM. Useful for re-rendering a hand-edited text artifact.

The output name is derived from --name, or from the first non-blank line
of the file when the flag is omitted.

Example:
  resumegen render ATS_Resume_Jane_Doe_20260830.txt
  resumegen render resume.txt --name "Jane Doe" --output-dir ~/Documents`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderOutputDir, "output-dir", ".", "Output directory")
	renderCmd.Flags().StringVar(&renderName, "name", "", "Candidate name used in the output filename")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	var data []byte
	data, err = os.ReadFile(args[0])
	if err != nil {
		err = errors.Wrapf(err, "failed to read resume file: %s", args[0])
		return err
	}
	resume := string(data)

	name := renderName
	if name == "" {
		name = firstNonBlankLine(resume)
	}
	if name == "" {
		err = errors.New("resume file is empty and no --name given")
		return err
	}

	_, pdfPath := buildArtifactPaths(name, renderOutputDir, time.Now())

	err = renderToFile(resume, pdfPath)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", pdfPath)
	return err
}

// firstNonBlankLine returns the first non-blank line of a blob, which by
// construction of the generated format is the candidate name.
func firstNonBlankLine(text string) (line string) {
	for _, candidate := range strings.Split(text, "\n") {
		candidate = strings.TrimSpace(candidate)
		if candidate != "" {
			line = candidate
			return line
		}
	}
	return line
}
