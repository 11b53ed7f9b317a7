package geo

import "math"

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Fence is a circular admission zone around a reference coordinate.
type Fence struct {
	Center       Point   `json:"center"`
	RadiusMeters float64 `json:"radius_meters"`
}

// HaversineDistanceMeters returns the great-circle distance between two
// coordinates in meters. NaN coordinates propagate; callers validate GPS
// reads before calling.
func HaversineDistanceMeters(a, b Point) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	latARad := a.Latitude * (math.Pi / 180.0)
	latBRad := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(latARad)*math.Cos(latBRad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Contains reports whether p lies inside the fence. The boundary is
// inclusive: a point exactly RadiusMeters away is admitted.
func (f Fence) Contains(p Point) bool {
	return HaversineDistanceMeters(p, f.Center) <= f.RadiusMeters
}

// Distance returns the distance from p to the fence center in meters.
func (f Fence) Distance(p Point) float64 {
	return HaversineDistanceMeters(p, f.Center)
}
