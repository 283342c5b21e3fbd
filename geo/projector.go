// Package geo implements the equirectangular local-tangent-plane projection
// the navigator uses to turn a geodetic follow-target position into the
// local NED frame, and the inverse for turning local offsets back into
// geodetic coordinates for telemetry display.
package geo

import (
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
	"gonum.org/v1/gonum/spatial/r3"
)

// earthRadius is the mean Earth radius in meters used by the equirectangular
// approximation (matches PX4's CONSTANTS_RADIUS_OF_EARTH).
const earthRadius = 6371000.0

// Ref is a local-tangent-plane reference point: a geodetic origin plus the
// trig terms needed to project around it cheaply.
type Ref struct {
	LatRad, LonRad float64
	sinLat, cosLat float64
}

// NewRef builds a reference point from a geodetic origin in degrees.
func NewRef(latDeg, lonDeg float64) Ref {
	latRad := latDeg * math.Pi / 180
	lonRad := lonDeg * math.Pi / 180
	return Ref{
		LatRad: latRad,
		LonRad: lonRad,
		sinLat: math.Sin(latRad),
		cosLat: math.Cos(latRad),
	}
}

// projectionCacheSize bounds the number of distinct (reference, point) pairs
// whose projections are memoized at once; mission replay and follow-target
// streaming both reproject the same handful of points many times a second.
const projectionCacheSize = 64

// Projector performs equirectangular projection/reprojection about a
// reference point, caching repeated lookups for the same (ref, point) pair.
type Projector struct {
	cache *lru.Cache[cacheKey, r3.Vec]
}

type cacheKey struct {
	latRad, lonRad float64
	lat, lon       float64
}

// NewProjector builds a Projector with an empty cache.
func NewProjector() *Projector {
	cache, err := lru.New[cacheKey, r3.Vec](projectionCacheSize)
	if err != nil {
		// Only returns an error for a non-positive size, which
		// projectionCacheSize never is.
		panic(err)
	}
	return &Projector{cache: cache}
}

// Project converts a geodetic point into meters north/east of ref, then
// returns the local NED x (north) / y (east) components the engine expects.
func (p *Projector) Project(ref Ref, latDeg, lonDeg float64) (x, y float32) {
	key := cacheKey{ref.LatRad, ref.LonRad, latDeg, lonDeg}
	if v, ok := p.cache.Get(key); ok {
		return float32(v.X), float32(v.Y)
	}

	latRad := latDeg * math.Pi / 180
	lonRad := lonDeg * math.Pi / 180

	dLat := latRad - ref.LatRad
	dLon := lonRad - ref.LonRad

	v := r3.Vec{
		X: dLat * earthRadius,
		Y: dLon * earthRadius * ref.cosLat,
		Z: 0,
	}
	p.cache.Add(key, v)
	return float32(v.X), float32(v.Y)
}

// Reproject is the inverse of Project: given local north/east meters about
// ref, it returns the geodetic latitude/longitude in degrees.
func (p *Projector) Reproject(ref Ref, x, y float32) (latDeg, lonDeg float64) {
	dLat := float64(x) / earthRadius
	dLon := float64(y) / (earthRadius * ref.cosLat)

	latRad := ref.LatRad + dLat
	lonRad := ref.LonRad + dLon
	return latRad * 180 / math.Pi, lonRad * 180 / math.Pi
}
