package main

import (
	"io"
	"os"

	"github.com/rinsehq/rinse/config"
	"github.com/rinsehq/rinse/sanitize"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var fs = afero.NewOsFs()

var configDir string

func init() {
	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", ".", "directory containing the rinse configuration file")
}

var rootCmd = &cobra.Command{
	Use:               "rinse",
	Short:             "Rinse sanitizes untrusted text and structured data before rendering",
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func newSanitizer() (*sanitize.Sanitizer, error) {
	c, err := config.Parse(fs, configDir)
	if err != nil {
		return nil, err
	}

	return c.Sanitizer()
}

// readInput returns the contents of the file named by the first
// argument, or stdin when no file (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := afero.ReadFile(fs, args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
