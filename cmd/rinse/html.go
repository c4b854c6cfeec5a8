package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var htmlPolicyName string

func init() {
	htmlCmd.Flags().StringVarP(&htmlPolicyName, "policy", "p", "", "policy to filter with (defaults to the configured default policy)")
	rootCmd.AddCommand(htmlCmd)
}

var htmlCmd = &cobra.Command{
	Use:   "html [file]",
	Short: "Filter the input through a policy allowlist, keeping permitted markup",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSanitizer()
		if err != nil {
			return err
		}

		input, err := readInput(args)
		if err != nil {
			return err
		}

		out, err := s.FilterHTML(input, htmlPolicyName)
		if err != nil {
			return err
		}

		fmt.Println(out)
		return nil
	},
}
