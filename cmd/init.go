package cmd

import (
	"fmt"

	"github.com/mfields/resumegen/pkg/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default configuration file",
	Long: `Create a default configuration file at $HOME/.resumegen/config.json
(or at the path given with --config). Edit it afterwards to set your
Groq API key and intake location.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	err = config.InitConfig(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to create config")
		return err
	}

	path := getConfigFile()
	if path == "" {
		path = "$HOME/.resumegen/config.json"
	}
	fmt.Printf("Created %s\n", path)

	return err
}
