package segment

import (
	"testing"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"firestige.xyz/netseg/internal/netbuf"
)

// Differential check: bytes produced by Pack must parse identically under
// an independent TCP decoder.
func TestPackAgainstGopacket(t *testing.T) {
	tcp := NewTCP()
	tcp.Source = 5060
	tcp.Destination = 5061
	tcp.Sequence = 0xCAFEBABE
	tcp.Acknowledgment = 0x00C0FFEE
	tcp.ControlBits = FlagSYN | FlagACK | FlagECE | FlagNS
	tcp.WindowSize = 8192
	tcp.UrgentPointer = 7

	buf := netbuf.New()
	if err := tcp.Pack(buf); err != nil {
		t.Fatalf("Pack failed: %v", err)
	}

	var reference layers.TCP
	if err := reference.DecodeFromBytes(buf.Bytes(), gopacket.NilDecodeFeedback); err != nil {
		t.Fatalf("gopacket rejected packed bytes: %v", err)
	}

	if uint16(reference.SrcPort) != tcp.Source {
		t.Errorf("SrcPort: gopacket sees %d, packed %d", reference.SrcPort, tcp.Source)
	}
	if uint16(reference.DstPort) != tcp.Destination {
		t.Errorf("DstPort: gopacket sees %d, packed %d", reference.DstPort, tcp.Destination)
	}
	if reference.Seq != tcp.Sequence {
		t.Errorf("Seq: gopacket sees %d, packed %d", reference.Seq, tcp.Sequence)
	}
	if reference.Ack != tcp.Acknowledgment {
		t.Errorf("Ack: gopacket sees %d, packed %d", reference.Ack, tcp.Acknowledgment)
	}
	if reference.DataOffset != 5 {
		t.Errorf("DataOffset: gopacket sees %d, want 5", reference.DataOffset)
	}
	if !reference.SYN || !reference.ACK || !reference.ECE || !reference.NS {
		t.Errorf("Flags lost in translation: %+v", reference)
	}
	if reference.FIN || reference.RST || reference.PSH || reference.URG || reference.CWR {
		t.Errorf("Flags invented in translation: %+v", reference)
	}
	if reference.Window != tcp.WindowSize {
		t.Errorf("Window: gopacket sees %d, packed %d", reference.Window, tcp.WindowSize)
	}
	if reference.Checksum != 0 {
		t.Errorf("Checksum: gopacket sees %d, want 0", reference.Checksum)
	}
	if reference.Urgent != tcp.UrgentPointer {
		t.Errorf("Urgent: gopacket sees %d, packed %d", reference.Urgent, tcp.UrgentPointer)
	}
}

// The reverse direction: bytes produced by gopacket's serializer must decode
// identically under Unpack.
func TestUnpackAgainstGopacket(t *testing.T) {
	reference := layers.TCP{
		SrcPort:    layers.TCPPort(80),
		DstPort:    layers.TCPPort(443),
		Seq:        1000,
		Ack:        2000,
		DataOffset: 5,
		PSH:        true,
		ACK:        true,
		Window:     512,
		Urgent:     3,
	}

	serial := gopacket.NewSerializeBuffer()
	if err := reference.SerializeTo(serial, gopacket.SerializeOptions{}); err != nil {
		t.Fatalf("gopacket serialize failed: %v", err)
	}

	buf := netbuf.New()
	region, err := buf.Shift(len(serial.Bytes()))
	if err != nil {
		t.Fatalf("Shift failed: %v", err)
	}
	copy(region, serial.Bytes())

	tcp := NewTCP()
	if err := tcp.Unpack(buf); err != nil {
		t.Fatalf("Unpack failed: %v", err)
	}

	if tcp.Source != 80 || tcp.Destination != 443 {
		t.Errorf("Ports: got %d -> %d", tcp.Source, tcp.Destination)
	}
	if tcp.Sequence != 1000 || tcp.Acknowledgment != 2000 {
		t.Errorf("Seq/Ack: got %d / %d", tcp.Sequence, tcp.Acknowledgment)
	}
	if tcp.ControlBits != FlagPSH|FlagACK {
		t.Errorf("ControlBits: got %v, want PSH|ACK", tcp.ControlBits)
	}
	if tcp.WindowSize != 512 || tcp.UrgentPointer != 3 {
		t.Errorf("Window/Urgent: got %d / %d", tcp.WindowSize, tcp.UrgentPointer)
	}
}
