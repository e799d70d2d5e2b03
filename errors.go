package geohash

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSymbol matches (via errors.Is) any InvalidSymbolError.
	ErrInvalidSymbol = errors.New("geohash: invalid symbol")
	// ErrShapeMismatch matches (via errors.Is) any ShapeMismatchError.
	ErrShapeMismatch = errors.New("geohash: batch shape mismatch")
)

const (
	errShapeCoordsMsg = "latitude and longitude batches differ in length"
	errShapeHashesMsg = "geohashes in a batch must share the same length"
)

// InvalidSymbolError gets returned when a geohash contains a byte that is not part
// of the geohash alphabet.
type InvalidSymbolError struct {
	Symbol byte
	Offset int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("geohash: invalid symbol %q at offset %d", e.Symbol, e.Offset)
}

func (e *InvalidSymbolError) Is(target error) bool { return target == ErrInvalidSymbol }

// ShapeMismatchError gets returned when the inputs of a batch call do not line up,
// e.g. there are fewer longitudes than latitudes, or a geohash batch mixes precisions.
type ShapeMismatchError struct {
	Want int
	Got  int
	msg  string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("geohash: %s; want: %d, got: %d", e.msg, e.Want, e.Got)
}

func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }

// RowError wraps the error of a single row of a batch call.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("geohash: row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
