// Package packet assembles multi-layer frames bottom-up over a shared
// netbuf.Buffer.
package packet

import (
	"fmt"

	"firestige.xyz/netseg/internal/log"
	"firestige.xyz/netseg/internal/netbuf"
)

// Layer is anything that can prepend its wire representation to a buffer.
// segment.TCP satisfies it; outer-layer codecs plug in the same way.
type Layer interface {
	Pack(*netbuf.Buffer) error
}

// Raw is a literal byte layer, used for payloads and for headers packed by
// an external codec.
type Raw []byte

// Pack prepends the raw bytes to buf.
func (r Raw) Pack(buf *netbuf.Buffer) error {
	region, err := buf.Shift(len(r))
	if err != nil {
		return err
	}
	copy(region, r)
	return nil
}

// Builder accumulates layers outermost-first and packs them in reverse, so
// the finished buffer reads outer header → inner header → payload even
// though the innermost layer is written first.
type Builder struct {
	layers []Layer
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds a layer. Layers are given outermost-first, the same order
// they appear on the wire.
func (b *Builder) Append(l Layer) *Builder {
	b.layers = append(b.layers, l)
	return b
}

// Build packs every layer into buf, innermost first. The first layer error
// aborts the build; the buffer may then hold the layers already packed.
func (b *Builder) Build(buf *netbuf.Buffer) error {
	for i := len(b.layers) - 1; i >= 0; i-- {
		before := buf.Len()
		if err := b.layers[i].Pack(buf); err != nil {
			return fmt.Errorf("packet: pack layer %d: %w", i, err)
		}
		log.L().Debugf("packed layer %d: %d bytes", i, buf.Len()-before)
	}
	return nil
}
