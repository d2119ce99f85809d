package models

import (
	"time"

	"ainadeul/internal/recommend"
	"ainadeul/pkg/domain"
)

const (
	cardFeatureLimit = 3
	cardBandLimit    = 3
)

// Viewer is who is looking at places. The zero value is an anonymous viewer
// without a home or children.
type Viewer struct {
	Home     *domain.Coordinate
	Children []domain.Child
}

// Personalized reports whether anything about the viewer changes the result.
func (v Viewer) Personalized() bool {
	return v.Home != nil || len(v.Children) > 0
}

// Proximity is the viewer-relative distance to a place.
type Proximity struct {
	DistanceKm    float64
	TravelMinutes int
}

// ProximityFrom computes distance and car travel time from home to p.
func ProximityFrom(home domain.Coordinate, p *Place) Proximity {
	km := domain.DistanceKm(home, p.Location)
	return Proximity{DistanceKm: km, TravelMinutes: domain.TravelMinutes(km, domain.ModeCar)}
}

type AgeBandLabel struct {
	Band  domain.AgeBand `json:"band"`
	Label string         `json:"label"`
}

// Card is a place as shown in the listing.
type Card struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Category        string                `json:"category"`
	CategoryEmoji   string                `json:"category_emoji"`
	Region          string                `json:"region"`
	Address         string                `json:"address"`
	IsIndoor        bool                  `json:"is_indoor"`
	IsOutdoor       bool                  `json:"is_outdoor"`
	IsFree          bool                  `json:"is_free"`
	Parking         bool                  `json:"parking"`
	DistanceKm      *float64              `json:"distance_km,omitempty"`
	Distance        string                `json:"distance,omitempty"`
	TravelMinutes   *int                  `json:"travel_time_car,omitempty"`
	TravelTime      string                `json:"travel_time,omitempty"`
	ExpectedRating  float64               `json:"expected_rating"`
	RecommendedAges []AgeBandLabel        `json:"recommended_ages"`
	ParentEnergy    recommend.EnergyLabel `json:"parent_energy"`
	ChildEnergy     recommend.EnergyLabel `json:"child_energy"`
	BlogReviewCount int                   `json:"blog_review_count"`
	Features        []string              `json:"features"`
}

func NewCard(p *Place, score recommend.Result, prox *Proximity) Card {
	card := Card{
		ID:              p.ID.String(),
		Name:            p.Name,
		Category:        p.Category,
		CategoryEmoji:   CategoryEmoji(p.Category),
		Region:          p.Region,
		Address:         p.Address,
		IsIndoor:        p.IsIndoor,
		IsOutdoor:       p.IsOutdoor,
		IsFree:          p.IsFree(),
		Parking:         p.HasParking(),
		ExpectedRating:  score.ExpectedRating,
		RecommendedAges: bandLabels(score.RecommendedBands, cardBandLimit),
		BlogReviewCount: len(p.BlogMentions),
		Features:        head(p.Features(), cardFeatureLimit),
	}
	card.ParentEnergy, card.ChildEnergy = energyLabels(p)
	if prox != nil {
		km, minutes := prox.DistanceKm, prox.TravelMinutes
		card.DistanceKm = &km
		card.Distance = domain.FormatDistance(km)
		card.TravelMinutes = &minutes
		card.TravelTime = domain.FormatTravelTime(minutes)
	}
	return card
}

// Detail is the full place view.
type Detail struct {
	Card
	Location       domain.Coordinate     `json:"location"`
	Phone          string                `json:"phone,omitempty"`
	Homepage       string                `json:"homepage,omitempty"`
	Description    string                `json:"description,omitempty"`
	AllFeatures    []string              `json:"all_features"`
	PriceAdult     *int                  `json:"price_adult,omitempty"`
	PriceChild     *int                  `json:"price_child,omitempty"`
	PriceNote      string                `json:"price_note,omitempty"`
	Amenities      *Amenities            `json:"amenities,omitempty"`
	Scores         *FilterScores         `json:"scores,omitempty"`
	RatedAges      []recommend.RatedBand `json:"rated_ages"`
	OperatingHours []string              `json:"operating_hours"`
	BlogMentions   []BlogMention         `json:"blog_mentions"`
	CreatedAt      time.Time             `json:"created_at"`
}

func NewDetail(p *Place, score recommend.Result, prox *Proximity) Detail {
	d := Detail{
		Card:           NewCard(p, score, prox),
		Location:       p.Location,
		Phone:          p.Phone,
		Homepage:       p.Homepage,
		AllFeatures:    nonNil(p.Features()),
		Amenities:      p.Amenities,
		Scores:         p.Scores,
		RatedAges:      nonNil(recommend.RatedBands(p.Suitability)),
		OperatingHours: p.Hours.Lines(),
		BlogMentions:   nonNil(p.BlogMentions),
		CreatedAt:      p.CreatedAt,
	}
	// the detail page lists every recommended band
	d.RecommendedAges = bandLabels(score.RecommendedBands, len(score.RecommendedBands))
	if p.Details != nil {
		d.Description = p.Details.Description
		d.PriceAdult = p.Details.PriceAdult
		d.PriceChild = p.Details.PriceChild
		d.PriceNote = p.Details.PriceNote
	}
	return d
}

// energyLabels falls back to the middle score when the place has no scores row.
func energyLabels(p *Place) (recommend.EnergyLabel, recommend.EnergyLabel) {
	parent, child := 3.0, 3.0
	if p.Scores != nil {
		parent, child = p.Scores.ParentEnergyRequired, p.Scores.ChildEnergyConsumption
	}
	return recommend.ParentEnergy(parent), recommend.ChildEnergy(child)
}

func bandLabels(bands []domain.AgeBand, limit int) []AgeBandLabel {
	bands = head(bands, limit)
	labels := make([]AgeBandLabel, 0, len(bands))
	for _, b := range bands {
		labels = append(labels, AgeBandLabel{Band: b, Label: b.Label()})
	}
	return labels
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		items = items[:n]
	}
	return nonNil(items)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

type ListResponse struct {
	Places []Card `json:"places"`
	Total  int    `json:"total"`
}
