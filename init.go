package geohash

// The LUT is filled here rather than declared as a literal so that it can be derived
// from the alphabet itself and cannot drift from it.
func init() {
	for i := 0; i < len(dec); i++ {
		dec[i] = invalid
	}

	for i := 0; i < len(encoding); i++ {
		dec[encoding[i]] = byte(i)
	}
}
