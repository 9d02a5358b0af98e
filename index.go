package starenv

// maxIndex is the largest valid array index (2^32 - 2).
const maxIndex = 1<<32 - 2

// parseIndex returns the array index named by s, if any. s must be the canonical decimal representation of an
// integer in [0, maxIndex]: no sign, no whitespace, and no leading zeros.
func parseIndex(s string) (uint32, bool) {
	if len(s) == 0 || len(s) > 10 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	if s[0] == '0' {
		return 0, len(s) == 1
	}

	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + uint64(c-'0')
	}
	if v > maxIndex {
		return 0, false
	}
	return uint32(v), true
}
