package segment

import (
	"encoding/binary"

	"firestige.xyz/netseg/internal/core"
	"firestige.xyz/netseg/internal/netbuf"
)

// HeaderLen is the fixed header size. Options are unsupported, so the
// header is always five 32-bit words.
const HeaderLen = 20

// dataOffsetWords is the header length in 32-bit words as carried in the
// data-offset nibble.
const dataOffsetWords = 5

// TCP is the in-memory segment header. It holds plain field values and no
// references to the buffer or to any mutator; Pack reads it, Unpack fills
// it, setters and mutators rewrite it in place.
type TCP struct {
	Source         uint16
	Destination    uint16
	Sequence       uint32
	Acknowledgment uint32
	DataOffset     uint8
	ControlBits    Flags
	WindowSize     uint16
	Checksum       uint16
	UrgentPointer  uint16
}

// NewTCP returns a header with documented defaults: all fields zero except
// the data offset (5 words) and window size (1).
func NewTCP() TCP {
	return TCP{
		DataOffset: dataOffsetWords,
		WindowSize: 1,
	}
}

// SetSource parses s as a decimal port and assigns it to the source port.
// On failure the field keeps its previous value.
func (t *TCP) SetSource(s string) error {
	port, err := ParsePort(s)
	if err != nil {
		return err
	}
	t.Source = port
	return nil
}

// SetDestination parses s as a decimal port and assigns it to the
// destination port. On failure the field keeps its previous value.
func (t *TCP) SetDestination(s string) error {
	port, err := ParsePort(s)
	if err != nil {
		return err
	}
	t.Destination = port
	return nil
}

// Pack serializes the header into HeaderLen bytes at the front of buf, in
// network byte order. The buffer's growth error is propagated untouched and
// nothing is written in that case.
//
// Two fields do not round-trip: the data offset is always written as 5
// regardless of the field value (variable offsets are unsupported), and the
// checksum is always written as zero. Checksum computation needs the
// pseudo-header, which only the IP layer can see, so it stays with that
// collaborator rather than here.
func (t *TCP) Pack(buf *netbuf.Buffer) error {
	hdr, err := buf.Shift(HeaderLen)
	if err != nil {
		return err
	}

	// Source Port (2 bytes at offset 0)
	binary.BigEndian.PutUint16(hdr[0:2], t.Source)

	// Destination Port (2 bytes at offset 2)
	binary.BigEndian.PutUint16(hdr[2:4], t.Destination)

	// Sequence Number (4 bytes at offset 4)
	binary.BigEndian.PutUint32(hdr[4:8], t.Sequence)

	// Acknowledgment Number (4 bytes at offset 8)
	binary.BigEndian.PutUint32(hdr[8:12], t.Acknowledgment)

	// Data Offset (upper 4 bits of byte 12), then control bits from the
	// shared position table (NS in byte 12, the rest in byte 13)
	hdr[12] = dataOffsetWords << 4
	hdr[13] = 0
	for _, fb := range flagBits {
		if t.ControlBits&fb.flag != 0 {
			hdr[fb.offset] |= fb.mask
		}
	}

	// Window Size (2 bytes at offset 14)
	binary.BigEndian.PutUint16(hdr[14:16], t.WindowSize)

	// Checksum (2 bytes at offset 16) — placeholder, see doc comment
	hdr[16] = 0
	hdr[17] = 0

	// Urgent Pointer (2 bytes at offset 18)
	binary.BigEndian.PutUint16(hdr[18:20], t.UrgentPointer)

	return nil
}

// Unpack decodes the front HeaderLen bytes of buf into t. With fewer than
// HeaderLen bytes available it fails with core.ErrMissingData and t keeps
// its previous contents. Decoded values are accepted as sent: no field
// validation is applied beyond the length check. The buffer is not
// advanced; callers consume the header bytes themselves when moving to the
// next layer.
func (t *TCP) Unpack(buf *netbuf.Buffer) error {
	hdr := buf.Bytes()
	if len(hdr) < HeaderLen {
		return core.ErrMissingData
	}

	t.Source = binary.BigEndian.Uint16(hdr[0:2])
	t.Destination = binary.BigEndian.Uint16(hdr[2:4])
	t.Sequence = binary.BigEndian.Uint32(hdr[4:8])
	t.Acknowledgment = binary.BigEndian.Uint32(hdr[8:12])
	t.DataOffset = hdr[12] >> 4

	t.ControlBits = 0
	for _, fb := range flagBits {
		if hdr[fb.offset]&fb.mask != 0 {
			t.ControlBits |= fb.flag
		}
	}

	t.WindowSize = binary.BigEndian.Uint16(hdr[14:16])
	t.Checksum = binary.BigEndian.Uint16(hdr[16:18])
	t.UrgentPointer = binary.BigEndian.Uint16(hdr[18:20])

	return nil
}
