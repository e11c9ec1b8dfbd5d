package geo

import (
	"math"
	"sort"

	"sports-health-centers-api/internal/models"
)

// EarthRadiusKm is the mean Earth radius used by Haversine.
const EarthRadiusKm = 6371.0

const (
	MinRadiusKm     = 1.0
	MaxRadiusKm     = 500.0
	DefaultRadiusKm = 50.0
)

// DegreesToRadians converts decimal degrees to radians.
func DegreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// Haversine returns the great-circle distance in kilometres between two
// points given in decimal degrees.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rLat1 := DegreesToRadians(lat1)
	rLat2 := DegreesToRadians(lat2)
	dLat := rLat2 - rLat1
	dLng := DegreesToRadians(lng2) - DegreesToRadians(lng1)

	// a = sin²(Δlat/2) + cos(lat1)·cos(lat2)·sin²(Δlon/2)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// Rounding can push a just outside [0, 1] for antipodal or out-of-range input.
	a = math.Min(1, math.Max(0, a))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(a))
}

// RoundKm rounds a distance to 2 decimals.
func RoundKm(d float64) float64 {
	return math.Round(d*100) / 100
}

// Positioned is a collection whose members have parsed coordinates.
type Positioned interface {
	All() []models.Center
	Position(i int) (lat, lng float64)
}

// Nearby returns copies of the centers within radiusKm (inclusive) of the
// point, annotated with distance_km and sorted by it. Equal distances keep
// collection order.
func Nearby(src Positioned, lat, lng, radiusKm float64) []models.NearbyCenter {
	out := make([]models.NearbyCenter, 0)
	for i, c := range src.All() {
		clat, clng := src.Position(i)
		d := Haversine(lat, lng, clat, clng)
		if d <= radiusKm {
			out = append(out, models.NearbyCenter{Center: c, DistanceKm: RoundKm(d)})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out
}
