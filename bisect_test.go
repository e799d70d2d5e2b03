package geohash

import (
	"testing"
)

func TestBisector(t *testing.T) {
	t.Run("tie-break", testBisectorTieBreak)
	t.Run("parity", testBisectorParity)
	t.Run("invariant", testBisectorInvariant)
	t.Run("symmetry", testBisectorSymmetry)
}

func testBisectorTieBreak(t *testing.T) {
	b := newBisector()

	// 0.0 is the midpoint of both initial intervals.
	if bit := b.split(0, 0); bit != 0 {
		t.Errorf("expected longitude bit [0], got [%d]", bit)
	}

	if bit := b.split(0, 0); bit != 0 {
		t.Errorf("expected latitude bit [0], got [%d]", bit)
	}

	if b.lon != (interval{-180, 0}) {
		t.Errorf("expected longitude interval [%v], got [%v]", interval{-180, 0}, b.lon)
	}

	if b.lat != (interval{-90, 0}) {
		t.Errorf("expected latitude interval [%v], got [%v]", interval{-90, 0}, b.lat)
	}

	// The smallest step above the midpoint flips it.
	b = newBisector()
	if bit := b.split(0, 1e-300); bit != 1 {
		t.Errorf("expected longitude bit [1], got [%d]", bit)
	}
}

func testBisectorParity(t *testing.T) {
	b := newBisector()
	for i := 0; i < 10; i++ {
		lonErr, latErr := b.lonErr, b.latErr
		b.take(1)

		if i%2 == 0 {
			if b.lonErr != lonErr/2 || b.latErr != latErr {
				t.Fatalf("step %d: expected only the longitude error to halve, got [%v, %v]", i, b.latErr, b.lonErr)
			}
		} else {
			if b.latErr != latErr/2 || b.lonErr != lonErr {
				t.Fatalf("step %d: expected only the latitude error to halve, got [%v, %v]", i, b.latErr, b.lonErr)
			}
		}
	}
}

func testBisectorInvariant(t *testing.T) {
	coords := [][2]float64{
		{42.6, -5.6},
		{-90, -180},
		{90, 180},
		{0, 0},
		{-33.8688, 151.2093},
	}

	for _, c := range coords {
		b := newBisector()
		for i := 0; i < 5*DefaultPrecision; i++ {
			b.split(c[0], c[1])

			if b.lat.lo > b.lat.hi || b.lon.lo > b.lon.hi {
				t.Fatalf("%v: step %d: inverted interval lat %v lon %v", c, i, b.lat, b.lon)
			}

			if w := (b.lat.hi - b.lat.lo) / 2; w != b.latErr {
				t.Fatalf("%v: step %d: expected latitude error [%v], got [%v]", c, i, w, b.latErr)
			}

			if w := (b.lon.hi - b.lon.lo) / 2; w != b.lonErr {
				t.Fatalf("%v: step %d: expected longitude error [%v], got [%v]", c, i, w, b.lonErr)
			}
		}
	}
}

// Decoding the bits an encoding pass emitted must walk the very same intervals.
func testBisectorSymmetry(t *testing.T) {
	enc, dec := newBisector(), newBisector()
	for i := 0; i < 5*DefaultPrecision; i++ {
		dec.take(enc.split(57.64911, 10.40744))

		if enc != dec {
			t.Fatalf("step %d: expected [%+v], got [%+v]", i, enc, dec)
		}
	}
}
