// Package cmd implements CLI commands.
package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/netseg/internal/config"
	"firestige.xyz/netseg/internal/core/segment"
	"firestige.xyz/netseg/internal/log"
	"firestige.xyz/netseg/internal/netbuf"
	"firestige.xyz/netseg/internal/packet"
)

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack a segment profile into wire bytes",
	Long: `Pack a segment profile (YAML) into its 20-byte wire header plus payload
and print the result as a hex dump.

Examples:
  netseg pack -f segment.yml
  netseg pack -f segment.yml --window 4096`,
	Run: func(cmd *cobra.Command, args []string) {
		runPackCommand()
	},
}

var (
	packProfileFile string
	packWindow      uint16
)

func init() {
	packCmd.Flags().StringVarP(&packProfileFile, "file", "f", "",
		"segment profile to pack (required)")
	packCmd.Flags().Uint16Var(&packWindow, "window", 0,
		"override the profile's window size")
	packCmd.MarkFlagRequired("file")
}

func runPackCommand() {
	profile, err := config.Load(packProfileFile)
	if err != nil {
		exitWithError("failed to load profile", err)
	}
	if err := log.Init(profile.Log); err != nil {
		exitWithError("failed to init logging", err)
	}

	tcp, err := profile.Segment.Header()
	if err != nil {
		exitWithError("invalid segment profile", err)
	}

	// CLI overrides ride the same mutation hook external callers use.
	if packWindow != 0 {
		override := segment.MutatorFunc(func(t *segment.TCP) error {
			t.WindowSize = packWindow
			return nil
		})
		if err := tcp.Mutate(override); err != nil {
			exitWithError("mutator failed", err)
		}
	}

	payload, err := profile.Segment.Payload()
	if err != nil {
		exitWithError("invalid payload", err)
	}

	buf := netbuf.New()
	builder := packet.NewBuilder().Append(&tcp)
	if len(payload) > 0 {
		builder.Append(packet.Raw(payload))
	}
	if err := builder.Build(buf); err != nil {
		exitWithError("failed to pack", err)
	}

	log.L().WithField("bytes", buf.Len()).Debug("packed segment")
	fmt.Print(hex.Dump(buf.Bytes()))
}
