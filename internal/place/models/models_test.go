package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ainadeul/internal/recommend"
	"ainadeul/pkg/domain"
)

func TestOperatingHoursLines(t *testing.T) {
	hours := OperatingHours{
		Sunday:  {Open: "10:00", Close: "17:00"},
		Monday:  {Open: "09:00", Close: "18:00"},
		Tuesday: {Closed: true},
	}
	assert.Equal(t, []string{"월: 09:00 - 18:00", "화: 휴무", "일: 10:00 - 17:00"}, hours.Lines())
	assert.Empty(t, OperatingHours(nil).Lines())
}

func TestCategoryEmoji(t *testing.T) {
	assert.Equal(t, "📚", CategoryEmoji("도서관"))
	assert.Equal(t, "🏠", CategoryEmoji("실내놀이터"))
	assert.Equal(t, "📍", CategoryEmoji("수영장"))
}

func TestNewCard(t *testing.T) {
	p := &Place{
		ID:       domain.PlaceID(uuid.New()),
		Name:     "국립중앙과학관",
		Category: "과학관",
		Details:  &Details{Features: []string{"천체관", "자기부상열차", "어린이과학관", "야외전시"}},
		Scores:   &FilterScores{ParentEnergyRequired: 4.6, ChildEnergyConsumption: 2.0},
		BlogMentions: []BlogMention{
			{ID: "1", Title: "주말 나들이"},
			{ID: "2", Title: "과학관 후기"},
		},
	}
	score := recommend.Result{
		ExpectedRating:   4.3,
		RecommendedBands: []domain.AgeBand{domain.Band25To48, domain.Band49To72, domain.Band73To84, domain.BandOver84},
	}

	t.Run("without home", func(t *testing.T) {
		card := NewCard(p, score, nil)
		assert.Equal(t, "🔬", card.CategoryEmoji)
		assert.Equal(t, []string{"천체관", "자기부상열차", "어린이과학관"}, card.Features)
		require.Len(t, card.RecommendedAges, 3)
		assert.Equal(t, "2-4세", card.RecommendedAges[0].Label)
		assert.Equal(t, 2, card.BlogReviewCount)
		assert.Equal(t, "매우 편함", card.ParentEnergy.Text)
		assert.Equal(t, "활발한 활동", card.ChildEnergy.Text)
		assert.Nil(t, card.DistanceKm)
		assert.Empty(t, card.TravelTime)
	})

	t.Run("with proximity", func(t *testing.T) {
		card := NewCard(p, score, &Proximity{DistanceKm: 0.8, TravelMinutes: 2})
		require.NotNil(t, card.DistanceKm)
		assert.Equal(t, "800m", card.Distance)
		assert.Equal(t, "2분", card.TravelTime)
	})

	t.Run("detail keeps every band and feature", func(t *testing.T) {
		d := NewDetail(p, score, nil)
		assert.Len(t, d.RecommendedAges, 4)
		assert.Len(t, d.AllFeatures, 4)
		assert.Empty(t, d.RatedAges)
		assert.NotNil(t, d.OperatingHours)
	})

	t.Run("no scores row uses the middle labels", func(t *testing.T) {
		card := NewCard(&Place{ID: domain.PlaceID(uuid.New())}, recommend.Result{ExpectedRating: recommend.DefaultRating}, nil)
		assert.Equal(t, "보통", card.ParentEnergy.Text)
		assert.Equal(t, "적당한 활동", card.ChildEnergy.Text)
		assert.Equal(t, []string{}, card.Features)
	})
}

func TestPlaceFeatures(t *testing.T) {
	assert.Nil(t, (&Place{}).Features())

	p := &Place{Details: &Details{Features: []string{"천체관 ", "천체관", "", "자기부상열차"}}}
	assert.Equal(t, []string{"천체관", "자기부상열차"}, p.Features())
}
