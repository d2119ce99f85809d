package domain

import (
	"fmt"
	"math"
	"strconv"

	dErrors "ainadeul/pkg/domain-errors"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Coordinate is a WGS84 point.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Validate checks the latitude and longitude ranges.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 {
		return dErrors.New(dErrors.CodeInvalidInput, "latitude must be between -90 and 90")
	}
	if c.Lng < -180 || c.Lng > 180 {
		return dErrors.New(dErrors.CodeInvalidInput, "longitude must be between -180 and 180")
	}
	return nil
}

// TravelMode is a means of transport with a fixed average speed.
type TravelMode string

const (
	ModeCar     TravelMode = "car"
	ModeTransit TravelMode = "transit"
	ModeWalk    TravelMode = "walk"
)

// Average speeds in km/h. Transit includes waiting time.
var travelSpeedKmh = map[TravelMode]float64{
	ModeCar:     30,
	ModeTransit: 25,
	ModeWalk:    4,
}

// SpeedKmh returns the mode's average speed; unknown modes travel at car speed.
func (m TravelMode) SpeedKmh() float64 {
	if speed, ok := travelSpeedKmh[m]; ok {
		return speed
	}
	return travelSpeedKmh[ModeCar]
}

// DistanceKm is the haversine distance between a and b, rounded to one decimal.
func DistanceKm(a, b Coordinate) float64 {
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(a.Lat))*math.Cos(toRadians(b.Lat))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(EarthRadiusKm*c*10) / 10
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// TravelMinutes estimates travel time at the mode's average speed, rounded up
// to the next whole minute. Distance is scaled before dividing so that exact
// multiples of the speed produce exact minute counts.
func TravelMinutes(km float64, mode TravelMode) int {
	if km <= 0 {
		return 0
	}
	return int(math.Ceil(km * 60 / mode.SpeedKmh()))
}

// FormatDistance renders sub-kilometre distances in metres and the rest in km.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	return strconv.FormatFloat(km, 'f', -1, 64) + "km"
}

// FormatTravelTime renders "45분", "1시간" or "1시간 30분".
func FormatTravelTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d분", minutes)
	}
	hours, mins := minutes/60, minutes%60
	if mins == 0 {
		return fmt.Sprintf("%d시간", hours)
	}
	return fmt.Sprintf("%d시간 %d분", hours, mins)
}
