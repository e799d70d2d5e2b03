package geohash

// interval bounds a single axis. lo <= hi holds after every step.
type interval struct {
	lo, hi float64
}

func (iv interval) mid() float64 {
	return (iv.lo + iv.hi) / 2
}

// bisector carries the state of a single encode or decode pass: one interval
// and one error margin per axis, and the parity that decides which axis the
// next bit belongs to. Even steps (starting with the first) refine the longitude,
// odd steps the latitude.
//
// A bisector is a plain value. It lives on the stack of whichever call uses it
// and is never shared.
type bisector struct {
	lat, lon       interval
	latErr, lonErr float64
	even           bool
}

func newBisector() bisector {
	return bisector{
		lat:    interval{-90, 90},
		lon:    interval{-180, 180},
		latErr: 90,
		lonErr: 180,
		even:   true,
	}
}

// axis returns the interval and error margin the next bit applies to.
func (b *bisector) axis() (*interval, *float64) {
	if b.even {
		return &b.lon, &b.lonErr
	}

	return &b.lat, &b.latErr
}

// halve is the one step shared by encoding and decoding. It keeps the upper half
// of the active interval when upper is set and the lower half otherwise, then
// hands the next step over to the other axis.
func (b *bisector) halve(upper bool) {
	iv, err := b.axis()
	mid := iv.mid()

	if upper {
		iv.lo = mid
	} else {
		iv.hi = mid
	}

	*err /= 2
	b.even = !b.even
}

// split is the encoding step. It returns 1 if the coordinate of the active axis
// lies strictly above the midpoint of its interval, 0 otherwise. A coordinate
// sitting exactly on the midpoint therefore goes to the lower half.
func (b *bisector) split(lat, lon float64) byte {
	v := lat
	if b.even {
		v = lon
	}

	if v > b.active().mid() {
		b.halve(true)
		return 1
	}

	b.halve(false)
	return 0
}

// take is the decoding step: it applies a single bit read off a geohash.
func (b *bisector) take(bit byte) {
	b.halve(bit != 0)
}

func (b *bisector) active() interval {
	if b.even {
		return b.lon
	}

	return b.lat
}

// splitSymbol runs five encoding steps and assembles their bits, first bit in the
// most significant position, into the character they denote.
func (b *bisector) splitSymbol(lat, lon float64) byte {
	var v byte
	for i := 0; i < 5; i++ {
		v = v<<1 | b.split(lat, lon)
	}

	return symbol(v)
}

// takeSymbol runs five decoding steps for the 5-bit group v, most significant bit first.
func (b *bisector) takeSymbol(v byte) {
	for shift := 4; shift >= 0; shift-- {
		b.take(v >> uint(shift) & 1)
	}
}

// center returns the midpoints of both intervals, i.e. the decoded estimate.
func (b *bisector) center() (lat, lon float64) {
	return b.lat.mid(), b.lon.mid()
}
