package models

import (
	"strconv"
	"strings"

	dErrors "ainadeul/pkg/domain-errors"
)

// ParentEnergy is how much energy the parent has left today.
type ParentEnergy string

const (
	ParentEnergyLow    ParentEnergy = "낮음"
	ParentEnergyMedium ParentEnergy = "보통"
	ParentEnergyHigh   ParentEnergy = "높음"
)

// ChildCondition is how the child is doing today.
type ChildCondition string

const (
	ChildConditionNormal ChildCondition = "보통"
	ChildConditionLow    ChildCondition = "저조함"
)

// TravelBucket bounds the car travel time from home.
type TravelBucket string

const (
	Within10Minutes TravelBucket = "10분 이내"
	Within30Minutes TravelBucket = "30분 이내"
	Within1Hour     TravelBucket = "1시간 이내"
	Over1Hour       TravelBucket = "1시간 이상"
)

var travelBucketMinutes = map[TravelBucket]int{
	Within10Minutes: 10,
	Within30Minutes: 30,
	Within1Hour:     60,
	Over1Hour:       60,
}

type Environment string

const (
	EnvironmentAny     Environment = "모두"
	EnvironmentIndoor  Environment = "실내"
	EnvironmentOutdoor Environment = "실외"
)

type Parking string

const (
	ParkingAny      Parking = "상관없음"
	ParkingRequired Parking = "필수"
)

type Cost string

const (
	CostAny  Cost = "상관없음"
	CostFree Cost = "무료"
)

const (
	// LowParentEnergyMinScore is the parent_energy_required floor applied for ParentEnergyLow.
	LowParentEnergyMinScore = 4.0
	// LowChildConditionMinScore is the child_energy_consumption floor applied for ChildConditionLow.
	LowChildConditionMinScore = 3.5
)

// Filter narrows a place listing. Zero values apply no restriction.
type Filter struct {
	Region         string
	Category       string
	ParentEnergy   ParentEnergy
	ChildCondition ChildCondition
	TravelTime     TravelBucket
	MaxDistanceKm  float64
	Environment    Environment
	Parking        Parking
	Cost           Cost
}

// ListRequest is the raw query of GET /places.
type ListRequest struct {
	Region         string
	Category       string
	ParentEnergy   string
	ChildCondition string
	TravelTime     string
	MaxDistance    string
	Environment    string
	Parking        string
	Cost           string
}

func (r *ListRequest) Sanitize() {
	for _, f := range []*string{&r.Region, &r.Category, &r.ParentEnergy, &r.ChildCondition, &r.TravelTime, &r.MaxDistance, &r.Environment, &r.Parking, &r.Cost} {
		*f = strings.TrimSpace(*f)
	}
}

// ToFilter validates the enumerated values and builds a Filter.
func (r *ListRequest) ToFilter() (Filter, error) {
	f := Filter{
		Region:         r.Region,
		Category:       r.Category,
		ParentEnergy:   ParentEnergy(r.ParentEnergy),
		ChildCondition: ChildCondition(r.ChildCondition),
		TravelTime:     TravelBucket(r.TravelTime),
		Environment:    Environment(r.Environment),
		Parking:        Parking(r.Parking),
		Cost:           Cost(r.Cost),
	}

	switch f.ParentEnergy {
	case "", ParentEnergyLow, ParentEnergyMedium, ParentEnergyHigh:
	default:
		return Filter{}, invalidValue("parent_energy", r.ParentEnergy)
	}
	switch f.ChildCondition {
	case "", ChildConditionNormal, ChildConditionLow:
	default:
		return Filter{}, invalidValue("child_condition", r.ChildCondition)
	}
	if _, ok := travelBucketMinutes[f.TravelTime]; f.TravelTime != "" && !ok {
		return Filter{}, invalidValue("travel_time", r.TravelTime)
	}
	switch f.Environment {
	case "", EnvironmentAny, EnvironmentIndoor, EnvironmentOutdoor:
	default:
		return Filter{}, invalidValue("environment", r.Environment)
	}
	switch f.Parking {
	case "", ParkingAny, ParkingRequired:
	default:
		return Filter{}, invalidValue("parking", r.Parking)
	}
	switch f.Cost {
	case "", CostAny, CostFree:
	default:
		return Filter{}, invalidValue("cost", r.Cost)
	}

	if r.MaxDistance != "" {
		km, err := strconv.ParseFloat(r.MaxDistance, 64)
		if err != nil || km <= 0 {
			return Filter{}, invalidValue("max_distance", r.MaxDistance)
		}
		f.MaxDistanceKm = km
	}
	return f, nil
}

func invalidValue(field, value string) error {
	return dErrors.New(dErrors.CodeValidation, "invalid "+field+": "+strconv.Quote(value))
}

// Match reports whether p passes every restriction. distanceKm and
// travelMinutes are nil when the viewer has no home; distance-based
// restrictions are then skipped.
func (f Filter) Match(p *Place, distanceKm *float64, travelMinutes *int) bool {
	if f.Region != "" && p.Region != f.Region {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.ParentEnergy == ParentEnergyLow && (p.Scores == nil || p.Scores.ParentEnergyRequired < LowParentEnergyMinScore) {
		return false
	}
	if f.ChildCondition == ChildConditionLow && (p.Scores == nil || p.Scores.ChildEnergyConsumption < LowChildConditionMinScore) {
		return false
	}
	switch f.Environment {
	case EnvironmentIndoor:
		if !p.IsIndoor {
			return false
		}
	case EnvironmentOutdoor:
		if !p.IsOutdoor {
			return false
		}
	}
	if f.Parking == ParkingRequired && !p.HasParking() {
		return false
	}
	if f.Cost == CostFree && !p.IsFree() {
		return false
	}

	if distanceKm == nil || travelMinutes == nil {
		return true
	}
	if f.MaxDistanceKm > 0 && *distanceKm > f.MaxDistanceKm {
		return false
	}
	if f.TravelTime == "" {
		return true
	}
	limit := travelBucketMinutes[f.TravelTime]
	if f.TravelTime == Over1Hour {
		return *travelMinutes > limit
	}
	return *travelMinutes <= limit
}
