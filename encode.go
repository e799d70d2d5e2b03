// Package geohash encodes positions into geohashes and decodes geohashes back into
// positions, one at a time or in batches.
package geohash

import "unsafe"

// DefaultPrecision is the number of characters Encode produces. 12 characters pin
// a point down to a cell of roughly 37mm by 19mm.
const DefaultPrecision = 12

// Point is a (latitude, longitude) pair in degrees.
//
// No range checks are performed anywhere in this package. Latitudes outside of
// [-90, 90] and longitudes outside of [-180, 180] still encode, but into the
// all-zero or all-one corner of the respective axis.
type Point struct {
	Lat float64
	Lon float64
}

// Geohash encodes the Point with the given precision. See EncodeWithPrecision.
func (p Point) Geohash(precision int) string {
	return EncodeWithPrecision(p.Lat, p.Lon, precision)
}

// Encode encodes the given position into a geohash of DefaultPrecision characters.
func Encode(lat, lon float64) string {
	return EncodeWithPrecision(lat, lon, DefaultPrecision)
}

// EncodeWithPrecision encodes the given position into a geohash of exactly precision
// characters. Each character adds 5 bits, alternating between longitude and latitude
// and starting with longitude.
//
// A precision of 0 or less yields an empty string.
func EncodeWithPrecision(lat, lon float64, precision int) string {
	if precision <= 0 {
		return ""
	}

	dst := make([]byte, precision)
	encode(dst, lat, lon)

	// dst never escapes other than through the returned string, so this is safe.
	return unsafe.String(&dst[0], len(dst))
}

// encode fills dst with the first len(dst) characters of the geohash of (lat, lon).
func encode(dst []byte, lat, lon float64) {
	b := newBisector()
	for i := range dst {
		dst[i] = b.splitSymbol(lat, lon)
	}
}

// EncodeBatch encodes each (lats[i], lons[i]) pair with the given precision.
// Both slices must have the same length. Returns a ShapeMismatchError if they do not.
//
// The result at index i is always equal to EncodeWithPrecision(lats[i], lons[i], precision).
func EncodeBatch(lats, lons []float64, precision int) ([]string, error) {
	if len(lats) != len(lons) {
		return nil, &ShapeMismatchError{
			Want: len(lats),
			Got:  len(lons),
			msg:  errShapeCoordsMsg,
		}
	}

	dst := make([]string, len(lats))
	each(len(lats), func(i int) {
		dst[i] = EncodeWithPrecision(lats[i], lons[i], precision)
	})

	return dst, nil
}

// EncodePoints is EncodeBatch for a slice of Points. It cannot fail.
func EncodePoints(points []Point, precision int) []string {
	dst := make([]string, len(points))
	each(len(points), func(i int) {
		dst[i] = points[i].Geohash(precision)
	})

	return dst
}
