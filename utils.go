package strut

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// MillimetresPerInch is millimetres per inch (25.4)
	MillimetresPerInch = 25.4
	// InchesPerMillimetre is inches per millimetre
	InchesPerMillimetre = 1.0 / MillimetresPerInch
)

const (
	pi = math.Pi
	// tolerance is the absolute per-coordinate tolerance for point
	// equality, deduplication and hash quantization. Model units are
	// millimetres.
	tolerance = 1e-9
)

// Tolerance returns the point equality tolerance used for edge
// deduplication and spatial hashing.
func Tolerance() float64 { return tolerance }

// DtoR converts degrees to radians
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}

// Clamp x between a and b, assume a <= b
func clamp(x, a, b float64) float64 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// angleBetween returns the angle between a and b in radians, in [0, pi].
func angleBetween(a, b r3.Vec) float64 {
	return math.Acos(clamp(r3.Dot(r3.Unit(a), r3.Unit(b)), -1, 1))
}

func ErrMsg(s string) error {
	return errors.New(s)
}
