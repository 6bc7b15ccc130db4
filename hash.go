package strut

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Spatial hashing of wireframe endpoints.
//
// Coordinates are quantized by rounding to the package equality
// tolerance before mixing, so two points the tolerant comparison
// considers equal hash to the same value away from quantization cell
// boundaries. Endpoint hashes combine with XOR, making the edge hash
// independent of edge orientation. The hash is a cheap grouping key
// for deduplication and strut-to-node association, not an
// authoritative identifier; that is the externally assigned id.

// PointHash returns the hash of p quantized to the package tolerance.
func PointHash(p r3.Vec) uint64 {
	return hash3(quantize(p.X), quantize(p.Y), quantize(p.Z))
}

// EdgeHash returns the orientation independent hash of the edge's
// endpoints: EdgeHash(e) == EdgeHash(e.Reverse()).
func EdgeHash(e Edge) uint64 {
	return PointHash(e.Start) ^ PointHash(e.End)
}

// quantize maps a coordinate to its tolerance-resolution cell index.
func quantize(c float64) int64 {
	return int64(math.Round(c / tolerance))
}

// hash3 mixes three cell indices into a single value, splitmix64 style.
func hash3(x, y, z int64) uint64 {
	h := uint64(0x9e3779b97f4a7c15)
	for _, v := range [3]int64{x, y, z} {
		h ^= uint64(v)
		h *= 0xbf58476d1ce4e5b9
		h ^= h >> 31
	}
	return h
}
