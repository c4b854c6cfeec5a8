package main

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rinsehq/rinse/log"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(jsonCmd)
}

var jsonCmd = &cobra.Command{
	Use:   "json [file]",
	Short: "Sanitize a JSON document, preserving its shape and sensitive fields",
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

		var value any
		if err := json.Unmarshal([]byte(input), &value); err != nil {
			return fmt.Errorf("input is not valid JSON: %w", err)
		}

		logger := log.S().With("run", uuid.NewString())

		var cleaned any
		if m, ok := value.(map[string]any); ok {
			cleaned, err = s.Request(m)
			if err != nil {
				return err
			}
		} else {
			out, err := s.Structure(value)
			if err != nil {
				return err
			}

			cleaned = out.Value
			if out.Modified {
				logger.Debugw("document sanitized", "warnings", out.Warnings)
			}
		}

		data, err := json.MarshalIndent(cleaned, "", "  ")
		if err != nil {
			return err
		}

		fmt.Println(string(data))
		return nil
	},
}
