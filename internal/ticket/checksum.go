package ticket

import (
	"strconv"
	"unicode/utf16"
)

// Checksum is a casual tamper hint over a booking id, not an integrity check.
// It is the 31-multiplier rolling hash over UTF-16 code units, kept in a
// signed 32-bit accumulator, rendered as lowercase hex of its absolute value
// and cut to 8 characters. Short hashes are not zero padded.
func Checksum(bookingID string) string {
	var hash int32
	for _, unit := range utf16.Encode([]rune(bookingID)) {
		hash = (hash << 5) - hash + int32(unit)
	}

	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}

	hex := strconv.FormatInt(abs, 16)
	if len(hex) > 8 {
		hex = hex[:8]
	}
	return hex
}
