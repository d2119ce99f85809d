package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// AgeSuite tests the age engine.
//
// Justification: Pure functions with calendar and band-boundary edge cases.
// The invariants "months never go negative" and "boundary months belong to the
// lower band" must be preserved.
type AgeSuite struct {
	suite.Suite
	asOf time.Time
}

func TestAgeSuite(t *testing.T) {
	suite.Run(t, new(AgeSuite))
}

func (s *AgeSuite) SetupTest() {
	s.asOf = time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)
}

func (s *AgeSuite) TestMonthsSince() {
	s.Run("same year and month is zero", func() {
		s.Equal(0, MonthsSince(2026, 10, s.asOf))
	})

	s.Run("counts calendar months across years", func() {
		s.Equal(13, MonthsSince(2025, 9, s.asOf))
		s.Equal(34, MonthsSince(2023, 12, s.asOf))
	})

	s.Run("future birth dates clamp to zero", func() {
		s.Equal(0, MonthsSince(2026, 11, s.asOf))
		s.Equal(0, MonthsSince(2030, 1, s.asOf))
	})

	s.Run("never negative for any valid birth date", func() {
		for year := s.asOf.Year() - MaxBirthYearsBack; year <= s.asOf.Year(); year++ {
			for month := 1; month <= 12; month++ {
				if !IsValidBirthDate(year, month, s.asOf) {
					continue
				}
				s.GreaterOrEqual(MonthsSince(year, month, s.asOf), 0)
			}
		}
	})

	s.Run("does not validate the month range", func() {
		// month 13 is the caller's problem; the arithmetic still runs
		s.Equal(9, MonthsSince(2025, 13, s.asOf))
	})
}

func (s *AgeSuite) TestIsValidBirthDate() {
	s.Run("rejects next year", func() {
		s.False(IsValidBirthDate(s.asOf.Year()+1, 1, s.asOf))
	})

	s.Run("rejects a later month of the current year", func() {
		s.False(IsValidBirthDate(2026, 11, s.asOf))
	})

	s.Run("accepts the current month", func() {
		s.True(IsValidBirthDate(2026, 10, s.asOf))
	})

	s.Run("rejects more than twenty years back", func() {
		s.False(IsValidBirthDate(s.asOf.Year()-21, 1, s.asOf))
	})

	s.Run("accepts exactly twenty years and zero months ago", func() {
		s.True(IsValidBirthDate(s.asOf.Year()-20, int(s.asOf.Month()), s.asOf))
		s.True(IsValidBirthDate(s.asOf.Year()-20, 1, s.asOf))
	})

	s.Run("rejects months outside 1-12", func() {
		s.False(IsValidBirthDate(s.asOf.Year(), 13, s.asOf))
		s.False(IsValidBirthDate(2024, 0, s.asOf))
		s.False(IsValidBirthDate(2024, -3, s.asOf))
	})
}

func (s *AgeSuite) TestAgeLabel() {
	s.Equal("0개월", AgeLabel(0))
	s.Equal("23개월", AgeLabel(23))
	s.Equal("만 2세", AgeLabel(24))
	s.Equal("만 2세", AgeLabel(35))
	s.Equal("만 7세", AgeLabel(90))
}

func (s *AgeSuite) TestAgeLabelFromBirthDate() {
	s.Equal("13개월", AgeLabelFromBirthDate("2025-09", s.asOf))
	s.Equal("만 3세", AgeLabelFromBirthDate("2023-01", s.asOf))
	s.Empty(AgeLabelFromBirthDate("", s.asOf))
	s.Empty(AgeLabelFromBirthDate("2023", s.asOf))
	s.Empty(AgeLabelFromBirthDate("20x3-01", s.asOf))
}

func (s *AgeSuite) TestBandFor_Boundaries() {
	cases := []struct {
		months int
		want   AgeBand
	}{
		{0, Band0To12},
		{12, Band0To12},
		{13, Band13To24},
		{24, Band13To24},
		{25, Band25To48},
		{48, Band25To48},
		{49, Band49To72},
		{72, Band49To72},
		{73, Band73To84},
		{84, Band73To84},
		{85, BandOver84},
		{240, BandOver84},
	}
	for _, tc := range cases {
		s.Equal(tc.want, BandFor(tc.months), "months=%d", tc.months)
	}
}

func (s *AgeSuite) TestBandFor_Partition() {
	// every month value lands in exactly one band and bands appear in order
	prev := -1
	seen := map[AgeBand]bool{}
	for m := 0; m <= 120; m++ {
		order := BandFor(m).Order()
		s.GreaterOrEqual(order, prev)
		s.LessOrEqual(order-prev, 1, "bands must be contiguous")
		prev = order
		seen[BandFor(m)] = true
	}
	s.Len(seen, len(AgeBands))
}

func (s *AgeSuite) TestBandMetadata() {
	s.Equal("1-2세", Band13To24.Label())
	s.Equal("age_over_84_months", BandOver84.Column())
	band, ok := BandForColumn("age_25_48_months")
	s.True(ok)
	s.Equal(Band25To48, band)
	_, ok = BandForColumn("age_unknown")
	s.False(ok)
	s.False(AgeBand("3-5").IsValid())
	s.Equal(-1, AgeBand("3-5").Order())
}

func (s *AgeSuite) TestYoungestMonths() {
	s.Run("empty slice yields no result", func() {
		_, ok := YoungestMonths(nil, s.asOf)
		s.False(ok)
	})

	s.Run("returns the minimum", func() {
		months, ok := YoungestMonths([]Child{
			{BirthYear: 2021, BirthMonth: 3},
			{BirthYear: 2025, BirthMonth: 4},
			{BirthYear: 2023, BirthMonth: 10},
		}, s.asOf)
		s.True(ok)
		s.Equal(18, months)
	})

	s.Run("a newborn this month yields zero", func() {
		months, ok := YoungestMonths([]Child{{BirthYear: 2026, BirthMonth: 10}}, s.asOf)
		s.True(ok)
		s.Equal(0, months)
	})
}
