package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(urlCmd)
}

var urlCmd = &cobra.Command{
	Use:   "url <url>",
	Short: "Validate a URL against the scheme allowlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSanitizer()
		if err != nil {
			return err
		}

		fmt.Println(s.ValidateURL(args[0]))
		return nil
	},
}
