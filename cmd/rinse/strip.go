package main

import (
	"fmt"

	"github.com/rinsehq/rinse/sanitize"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(stripCmd)
}

var stripCmd = &cobra.Command{
	Use:   "strip [file]",
	Short: "Remove all markup from the input, printing only its text content",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(args)
		if err != nil {
			return err
		}

		fmt.Println(sanitize.StripText(input))
		return nil
	},
}
