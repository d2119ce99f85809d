// Package recommend scores a place's per-age-band suitability against the
// children of the person looking at it.
package recommend

import (
	"math"
	"time"

	"ainadeul/pkg/domain"
)

const (
	// DefaultRating is shown when nothing about the place has been rated.
	DefaultRating = 3.5
	// RecommendThreshold is the minimum band score for a band to be recommended.
	RecommendThreshold = 4.0
)

// Suitability maps an age band to a score in [0, 5]. Zero or absent means not rated.
type Suitability map[domain.AgeBand]float64

// Result is the scorer output shown on a place card.
type Result struct {
	ExpectedRating   float64          `json:"expected_rating"`
	RecommendedBands []domain.AgeBand `json:"recommended_bands"`
}

// Score computes both the expected rating and the recommended bands.
func Score(s Suitability, children []domain.Child, asOf time.Time) Result {
	return Result{
		ExpectedRating:   ExpectedRating(s, children, asOf),
		RecommendedBands: RecommendedBands(s),
	}
}

// ExpectedRating averages the scores of the children's current bands. When no
// child lands on a scored band it falls back to the mean of every non-zero
// score, and to DefaultRating when the place is unrated.
func ExpectedRating(s Suitability, children []domain.Child, asOf time.Time) float64 {
	var total float64
	var count int
	for _, child := range children {
		score := s[domain.BandFor(child.Months(asOf))]
		if score > 0 {
			total += score
			count++
		}
	}
	if count > 0 {
		return roundTenth(total / float64(count))
	}

	for _, band := range domain.AgeBands {
		if score := s[band]; score > 0 {
			total += score
			count++
		}
	}
	if count > 0 {
		return roundTenth(total / float64(count))
	}
	return DefaultRating
}

// RecommendedBands returns every band scoring at least RecommendThreshold, youngest first.
func RecommendedBands(s Suitability) []domain.AgeBand {
	bands := make([]domain.AgeBand, 0, len(domain.AgeBands))
	for _, band := range domain.AgeBands {
		if s[band] >= RecommendThreshold {
			bands = append(bands, band)
		}
	}
	return bands
}

// RatedBand is a band with its score, for the place detail view.
type RatedBand struct {
	Band  domain.AgeBand `json:"band"`
	Label string         `json:"label"`
	Score float64        `json:"score"`
}

// RatedBands lists every band with a positive score, youngest first.
func RatedBands(s Suitability) []RatedBand {
	var rated []RatedBand
	for _, band := range domain.AgeBands {
		if score := s[band]; score > 0 {
			rated = append(rated, RatedBand{Band: band, Label: band.Label(), Score: score})
		}
	}
	return rated
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
