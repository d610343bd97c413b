// Package geo holds the pure geographic and pricing computations the
// simulator feeds into new rides.
package geo

import (
	"math"
	"math/rand"

	"github.com/matheus-emanuel/mini-uber-lakehouse/pkg/models"
)

const earthRadiusKm = 6371.0

// Box is the bounding box random trip endpoints are drawn from.
type Box struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

func (b Box) RandomPoint() models.Point {
	return models.Point{
		Lat: b.LatMin + rand.Float64()*(b.LatMax-b.LatMin),
		Lon: b.LonMin + rand.Float64()*(b.LonMax-b.LonMin),
	}
}

// HaversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func HaversineKm(a, b models.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLon := degreesToRadians(b.Lon - a.Lon)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// DurationMin converts a distance at a given average speed into whole
// minutes, floored at 3 so even tiny hops look like real trips.
func DurationMin(distanceKm, speedKmh float64) int {
	min := int(math.Round(distanceKm / speedKmh * 60))
	if min < 3 {
		return 3
	}
	return min
}

// RandomDurationMin draws the trip's average speed uniformly from
// [speedMinKmh, speedMaxKmh] and derives the duration from it.
func RandomDurationMin(distanceKm, speedMinKmh, speedMaxKmh float64) int {
	speed := speedMinKmh + rand.Float64()*(speedMaxKmh-speedMinKmh)
	return DurationMin(distanceKm, speed)
}

// Fare holds the pricing constants of the simulated fleet.
type Fare struct {
	BaseFare  float64
	PerKm     float64
	PerMinute float64
}

func (f Fare) Price(distanceKm float64, durationMin int) float64 {
	return Round2(f.BaseFare + distanceKm*f.PerKm + float64(durationMin)*f.PerMinute)
}

// Round2 rounds to two decimal places, the precision rides and payments
// are stored with.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
