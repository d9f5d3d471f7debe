package geo

import (
	"math"

	"arthive/shared/constant"
)

// Distance calculates the great-circle distance between two points on Earth
// using the Haversine formula. Returns distance in kilometers.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return constant.EarthRadiusKm * c
}

// RoundKm rounds a distance to one decimal, the precision exposed to clients.
func RoundKm(km float64) float64 {
	return math.Round(km*10) / 10
}

// ValidCoordinate reports whether a lat/lng pair can be used for distance
// filtering. The zero pair is treated as unset rather than a point in the
// Gulf of Guinea.
func ValidCoordinate(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
