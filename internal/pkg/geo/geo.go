package geo

import "math"

const earthRadiusMeters = 6371000 // mean Earth radius

// HaversineDistance returns the great-circle distance in meters between two
// coordinates given in degrees.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * (math.Pi / 180.0)
	dLon := (lon2 - lon1) * (math.Pi / 180.0)

	lat1Rad := lat1 * (math.Pi / 180.0)
	lat2Rad := lat2 * (math.Pi / 180.0)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// WithinRadius reports whether the user coordinate lies inside the circular
// zone centered at (zoneLat, zoneLon). A distance exactly equal to the radius
// counts as inside. NaN inputs propagate to a NaN distance, which compares
// false, so malformed coordinates fail closed.
func WithinRadius(userLat, userLon, zoneLat, zoneLon, radiusMeters float64) bool {
	return HaversineDistance(userLat, userLon, zoneLat, zoneLon) <= radiusMeters
}
