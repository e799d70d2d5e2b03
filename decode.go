package geohash

// Exact holds the decoded center of a geohash cell along with the plus/minus
// error margin on each axis. The margins are half the width of the cell, so the
// encoded position lies within [Lat-LatErr, Lat+LatErr] x [Lon-LonErr, Lon+LonErr].
type Exact struct {
	Lat    float64
	Lon    float64
	LatErr float64
	LonErr float64
}

// Box returns the cell described by e.
func (e Exact) Box() Box {
	return Box{
		MinLat: e.Lat - e.LatErr,
		MaxLat: e.Lat + e.LatErr,
		MinLon: e.Lon - e.LonErr,
		MaxLon: e.Lon + e.LonErr,
	}
}

// Box is the cell a geohash denotes.
type Box struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// Center returns the midpoint of the Box.
func (b Box) Center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}

// Contains reports whether the given position lies within the Box, edges included.
func (b Box) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// decode runs every bit of hash through a fresh bisector.
func decode(hash string) (bisector, error) {
	b := newBisector()
	for i := 0; i < len(hash); i++ {
		v, ok := value(hash[i])
		if !ok {
			return b, &InvalidSymbolError{Symbol: hash[i], Offset: i}
		}

		b.takeSymbol(v)
	}

	return b, nil
}

// DecodeExact decodes the given geohash into the center of its cell and the error
// margins on both axes. Returns an InvalidSymbolError if the hash contains a byte
// outside of the geohash alphabet.
//
// The empty string decodes to (0, 0) with margins of 90 and 180 degrees.
func DecodeExact(hash string) (lat, lon, latErr, lonErr float64, err error) {
	b, err := decode(hash)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	lat, lon = b.center()

	return lat, lon, b.latErr, b.lonErr, nil
}

func decodeExact(hash string) (Exact, error) {
	lat, lon, latErr, lonErr, err := DecodeExact(hash)

	return Exact{lat, lon, latErr, lonErr}, err
}

// DecodeBox decodes the given geohash into the cell it denotes.
func DecodeBox(hash string) (Box, error) {
	e, err := decodeExact(hash)
	if err != nil {
		return Box{}, err
	}

	return e.Box(), nil
}

// Decode decodes the given geohash and returns the latitude and longitude of the
// center of its cell as decimal strings. Only the digits the precision of the hash
// actually justifies are kept and trailing zeros are dropped, e.g. "ezs42" decodes
// to "42.6" and "-5.6".
func Decode(hash string) (lat, lon string, err error) {
	e, err := decodeExact(hash)
	if err != nil {
		return "", "", err
	}

	return formatCoord(e.Lat, e.LatErr), formatCoord(e.Lon, e.LonErr), nil
}

// DecodeExactBatch runs DecodeExact over every geohash of the batch.
//
// All hashes must have the same length. A hash of a different length than the first
// one yields a ShapeMismatchError and a hash with an invalid symbol an InvalidSymbolError,
// each wrapped in a RowError naming the offending row.
func DecodeExactBatch(hashes []string) ([]Exact, error) {
	if err := sameLength(hashes); err != nil {
		return nil, err
	}

	dst := make([]Exact, len(hashes))
	err := batch(len(hashes), func(i int) (err error) {
		dst[i], err = decodeExact(hashes[i])
		return
	})
	if err != nil {
		return nil, err
	}

	return dst, nil
}

// DecodeBatch runs Decode over every geohash of the batch. The same constraints
// as for DecodeExactBatch apply.
func DecodeBatch(hashes []string) (lats, lons []string, err error) {
	if err = sameLength(hashes); err != nil {
		return nil, nil, err
	}

	lats = make([]string, len(hashes))
	lons = make([]string, len(hashes))
	err = batch(len(hashes), func(i int) (err error) {
		lats[i], lons[i], err = Decode(hashes[i])
		return
	})
	if err != nil {
		return nil, nil, err
	}

	return lats, lons, nil
}

func sameLength(hashes []string) error {
	if len(hashes) == 0 {
		return nil
	}

	n := len(hashes[0])
	for i := 1; i < len(hashes); i++ {
		if len(hashes[i]) != n {
			return &RowError{
				Row: i,
				Err: &ShapeMismatchError{
					Want: n,
					Got:  len(hashes[i]),
					msg:  errShapeHashesMsg,
				},
			}
		}
	}

	return nil
}
