// Package cmd implements CLI commands.
package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"firestige.xyz/netseg/internal/core/segment"
	"firestige.xyz/netseg/internal/netbuf"
	"firestige.xyz/netseg/internal/packet"
)

var unpackCmd = &cobra.Command{
	Use:   "unpack [hex]",
	Short: "Unpack wire bytes into segment header fields",
	Long: `Unpack a hex-encoded segment (argument or stdin) and print the decoded
header as YAML, followed by any payload bytes.

Examples:
  netseg unpack 005001bb00000001000000005002000100000000
  cat segment.hex | netseg unpack`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runUnpackCommand(args)
	},
}

func runUnpackCommand(args []string) {
	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			exitWithError("failed to read stdin", err)
		}
		input = string(data)
	}

	raw, err := hex.DecodeString(strings.Join(strings.Fields(input), ""))
	if err != nil {
		exitWithError("invalid hex input", err)
	}

	buf := netbuf.New()
	if err := packet.Raw(raw).Pack(buf); err != nil {
		exitWithError("failed to stage input", err)
	}

	tcp := segment.NewTCP()
	if err := tcp.Unpack(buf); err != nil {
		exitWithError("failed to unpack", err)
	}
	// Advance past the header so what remains is payload.
	if _, err := buf.Consume(segment.HeaderLen); err != nil {
		exitWithError("failed to consume header", err)
	}

	printDecoded(&tcp, buf.Bytes())
}

// decodedView is the YAML shape of an unpacked header.
type decodedView struct {
	Source         uint16 `yaml:"source"`
	Destination    uint16 `yaml:"destination"`
	Sequence       uint32 `yaml:"sequence"`
	Acknowledgment uint32 `yaml:"acknowledgment"`
	DataOffset     uint8  `yaml:"data_offset"`
	Flags          string `yaml:"flags"`
	WindowSize     uint16 `yaml:"window_size"`
	Checksum       uint16 `yaml:"checksum"`
	UrgentPointer  uint16 `yaml:"urgent_pointer"`
}

func printDecoded(tcp *segment.TCP, payload []byte) {
	view := decodedView{
		Source:         tcp.Source,
		Destination:    tcp.Destination,
		Sequence:       tcp.Sequence,
		Acknowledgment: tcp.Acknowledgment,
		DataOffset:     tcp.DataOffset,
		Flags:          tcp.ControlBits.String(),
		WindowSize:     tcp.WindowSize,
		Checksum:       tcp.Checksum,
		UrgentPointer:  tcp.UrgentPointer,
	}

	out, err := yaml.Marshal(&view)
	if err != nil {
		exitWithError("failed to render header", err)
	}
	fmt.Print(string(out))

	if len(payload) > 0 {
		fmt.Printf("payload: # %d bytes\n", len(payload))
		fmt.Print(hex.Dump(payload))
	}
}
