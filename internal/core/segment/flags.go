// Package segment implements the TCP segment header codec.
package segment

import "strings"

// Flags is the control-bit mask of a TCP segment header.
type Flags uint16

const (
	FlagFIN Flags = 1 << iota
	FlagSYN
	FlagRST
	FlagPSH
	FlagACK
	FlagURG
	FlagECE
	FlagCWR
	FlagNS
)

// flagBits maps each control bit to its wire position inside the 20-byte
// header. Pack and Unpack both walk this table, so the flag-to-bit mapping
// exists in exactly one place. NS sits in the low bit of the data-offset
// byte; the other eight share byte 13.
var flagBits = []struct {
	flag   Flags
	offset int
	mask   byte
}{
	{FlagNS, 12, 0x01},
	{FlagCWR, 13, 0x80},
	{FlagECE, 13, 0x40},
	{FlagURG, 13, 0x20},
	{FlagACK, 13, 0x10},
	{FlagPSH, 13, 0x08},
	{FlagRST, 13, 0x04},
	{FlagSYN, 13, 0x02},
	{FlagFIN, 13, 0x01},
}

var flagNames = map[Flags]string{
	FlagNS:  "NS",
	FlagCWR: "CWR",
	FlagECE: "ECE",
	FlagURG: "URG",
	FlagACK: "ACK",
	FlagPSH: "PSH",
	FlagRST: "RST",
	FlagSYN: "SYN",
	FlagFIN: "FIN",
}

// String renders the set flags in wire order, e.g. "SYN|ACK".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	names := make([]string, 0, len(flagBits))
	for _, fb := range flagBits {
		if f&fb.flag != 0 {
			names = append(names, flagNames[fb.flag])
		}
	}
	return strings.Join(names, "|")
}

// ParseFlag resolves a flag name ("SYN", case-insensitive) to its bit.
func ParseFlag(name string) (Flags, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for flag, n := range flagNames {
		if n == upper {
			return flag, true
		}
	}
	return 0, false
}
