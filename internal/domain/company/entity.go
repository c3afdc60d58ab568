package company

// GeoFenceZone is a circular area gating location-based actions. Company and
// branch rows carry one each; the branch zone, when present, wins.
type GeoFenceZone struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}
