// Package config loads segment profiles using viper.
package config

import (
	"encoding/hex"
	"fmt"
	"strings"

	"firestige.xyz/netseg/internal/core"
	"firestige.xyz/netseg/internal/core/segment"
	"firestige.xyz/netseg/internal/log"
)

// Profile is the top-level profile file structure.
type Profile struct {
	Log     *log.Config   `mapstructure:"log"`
	Segment SegmentConfig `mapstructure:"segment"`
}

// SegmentConfig describes one segment header plus its payload. Ports are
// strings on purpose: they go through the codec's validating setters, the
// same path a wire-facing caller uses.
type SegmentConfig struct {
	Source         string   `mapstructure:"source"`
	Destination    string   `mapstructure:"destination"`
	Sequence       uint32   `mapstructure:"sequence"`
	Acknowledgment uint32   `mapstructure:"acknowledgment"`
	Flags          []string `mapstructure:"flags"`
	WindowSize     uint16   `mapstructure:"window_size"`
	UrgentPointer  uint16   `mapstructure:"urgent_pointer"`
	PayloadHex     string   `mapstructure:"payload_hex"`
}

// Header builds a segment header from the profile through the validating
// setters. Bad ports or unknown flag names fail with core.ErrConfigInvalid
// wrapping the underlying cause.
func (c *SegmentConfig) Header() (segment.TCP, error) {
	tcp := segment.NewTCP()

	if c.Source != "" {
		if err := tcp.SetSource(c.Source); err != nil {
			return tcp, fmt.Errorf("%w: source port %q: %w", core.ErrConfigInvalid, c.Source, err)
		}
	}
	if c.Destination != "" {
		if err := tcp.SetDestination(c.Destination); err != nil {
			return tcp, fmt.Errorf("%w: destination port %q: %w", core.ErrConfigInvalid, c.Destination, err)
		}
	}

	tcp.Sequence = c.Sequence
	tcp.Acknowledgment = c.Acknowledgment
	for _, name := range c.Flags {
		flag, ok := segment.ParseFlag(name)
		if !ok {
			return tcp, fmt.Errorf("%w: unknown flag %q", core.ErrConfigInvalid, name)
		}
		tcp.ControlBits |= flag
	}
	if c.WindowSize != 0 {
		tcp.WindowSize = c.WindowSize
	}
	tcp.UrgentPointer = c.UrgentPointer

	return tcp, nil
}

// Payload decodes the payload_hex field. Whitespace is tolerated so dumps
// can be pasted in directly.
func (c *SegmentConfig) Payload() ([]byte, error) {
	compact := strings.Join(strings.Fields(c.PayloadHex), "")
	if compact == "" {
		return nil, nil
	}
	payload, err := hex.DecodeString(compact)
	if err != nil {
		return nil, fmt.Errorf("%w: payload_hex: %w", core.ErrConfigInvalid, err)
	}
	return payload, nil
}
