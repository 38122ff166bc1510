package segment

import "firestige.xyz/netseg/internal/core"

// maxPortDigits is the length of "65535". ParsePort never looks past it.
const maxPortDigits = 5

// ParsePort converts a decimal string to a 16-bit port number.
//
// Only ASCII digits are accepted; the first non-digit fails the whole parse
// with core.ErrBadField. At most the first five characters are consulted —
// a sixth digit is silently dropped rather than rejected. That positional
// clamp is surprising but long-standing behavior that callers rely on, so it
// is kept as is. Values above 65535 fail with core.ErrBadField.
func ParsePort(s string) (uint16, error) {
	if len(s) > maxPortDigits {
		s = s[:maxPortDigits]
	}

	// Accumulate in 32 bits so five nines cannot wrap before the range
	// check below.
	var port uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, core.ErrBadField
		}
		port = port*10 + uint32(c-'0')
	}

	if port > 65535 {
		return 0, core.ErrBadField
	}
	return uint16(port), nil
}
