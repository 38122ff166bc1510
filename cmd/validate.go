// Package cmd implements CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/netseg/internal/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a segment profile without packing it",
	Long: `Validate a segment profile (YAML) without producing any output bytes.

Useful for pre-checking profiles before wiring them into a pipeline.

Examples:
  netseg validate -f segment.yml`,
	Run: func(cmd *cobra.Command, args []string) {
		runValidateCommand()
	},
}

var validateProfileFile string

func init() {
	validateCmd.Flags().StringVarP(&validateProfileFile, "file", "f", "",
		"segment profile to validate (required)")
	validateCmd.MarkFlagRequired("file")
}

func runValidateCommand() {
	profile, err := config.Load(validateProfileFile)
	if err != nil {
		exitWithError("failed to load profile", err)
	}

	tcp, err := profile.Segment.Header()
	if err != nil {
		fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
		os.Exit(1)
	}
	payload, err := profile.Segment.Payload()
	if err != nil {
		fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("VALID: %d -> %d, flags %s, %d payload byte(s)\n",
		tcp.Source, tcp.Destination, tcp.ControlBits, len(payload))
}
