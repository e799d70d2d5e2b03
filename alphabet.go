package geohash

const (
	// The geohash alphabet. It is neither RFC 4648 base32 nor base32hex: the digits
	// come first and the letters a, i, l and o are left out. Hashes compare and sort
	// as plain strings, so this table must never change.
	encoding = "0123456789bcdefghjkmnpqrstuvwxyz"

	// Marks bytes outside of the alphabet in the decoding LUT.
	invalid = 0xFF
)

// Decoding LUT, built once in init.go and read-only afterwards.
var dec [256]byte

// symbol maps a 5-bit group to its character. Callers only ever pass values
// assembled from 5 bits, so the mask is purely a BCE hint.
func symbol(v byte) byte {
	return encoding[v&0x1F]
}

// value is the inverse of symbol.
func value(c byte) (byte, bool) {
	v := dec[c]
	return v, v != invalid
}

// ValidSymbol reports whether c belongs to the geohash alphabet.
func ValidSymbol(c byte) bool {
	return dec[c] != invalid
}

// Valid checks that every byte of hash belongs to the geohash alphabet. It returns
// an InvalidSymbolError pointing at the first byte that does not.
//
// An empty string is valid: it denotes the whole globe.
func Valid(hash string) error {
	for i := 0; i < len(hash); i++ {
		if dec[hash[i]] == invalid {
			return &InvalidSymbolError{Symbol: hash[i], Offset: i}
		}
	}

	return nil
}
