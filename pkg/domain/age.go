package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MaxBirthYearsBack bounds how far in the past a child's birth year may lie.
const MaxBirthYearsBack = 20

// Child is the part of a child profile the age engine works from.
type Child struct {
	BirthYear  int `json:"birth_year"`
	BirthMonth int `json:"birth_month"`
}

// AgeBand is one of the six fixed, contiguous age categories places are rated against.
type AgeBand string

const (
	Band0To12  AgeBand = "0-12"
	Band13To24 AgeBand = "13-24"
	Band25To48 AgeBand = "25-48"
	Band49To72 AgeBand = "49-72"
	Band73To84 AgeBand = "73-84"
	BandOver84 AgeBand = "85+"
)

// AgeBands lists every band youngest first.
var AgeBands = []AgeBand{Band0To12, Band13To24, Band25To48, Band49To72, Band73To84, BandOver84}

// bandUpperBounds holds the inclusive upper bound in months of every bounded band.
var bandUpperBounds = []struct {
	maxMonths int
	band      AgeBand
}{
	{12, Band0To12},
	{24, Band13To24},
	{48, Band25To48},
	{72, Band49To72},
	{84, Band73To84},
}

var bandLabels = map[AgeBand]string{
	Band0To12:  "0-12개월",
	Band13To24: "1-2세",
	Band25To48: "2-4세",
	Band49To72: "4-6세",
	Band73To84: "6-7세",
	BandOver84: "7세+",
}

var bandColumns = map[AgeBand]string{
	Band0To12:  "age_0_12_months",
	Band13To24: "age_13_24_months",
	Band25To48: "age_25_48_months",
	Band49To72: "age_49_72_months",
	Band73To84: "age_73_84_months",
	BandOver84: "age_over_84_months",
}

// IsValid reports whether b is one of the six known bands.
func (b AgeBand) IsValid() bool {
	_, ok := bandLabels[b]
	return ok
}

// Label is the short display label used on place cards.
func (b AgeBand) Label() string {
	return bandLabels[b]
}

// Column is the age-suitability column name the band is stored under.
func (b AgeBand) Column() string {
	return bandColumns[b]
}

// Order is the band's position in AgeBands, or -1 for unknown bands.
func (b AgeBand) Order() int {
	for i, band := range AgeBands {
		if band == b {
			return i
		}
	}
	return -1
}

// BandForColumn maps a storage column name back to its band.
func BandForColumn(column string) (AgeBand, bool) {
	for band, c := range bandColumns {
		if c == column {
			return band, true
		}
	}
	return "", false
}

// MonthsSince returns the whole calendar months between the birth month and asOf,
// clamped at zero. It does not validate the month range; use IsValidBirthDate first.
func MonthsSince(birthYear, birthMonth int, asOf time.Time) int {
	months := (asOf.Year()-birthYear)*12 + (int(asOf.Month()) - birthMonth)
	return max(0, months)
}

// Months is MonthsSince for a Child.
func (c Child) Months(asOf time.Time) int {
	return MonthsSince(c.BirthYear, c.BirthMonth, asOf)
}

// IsValidBirthDate rejects months outside 1-12, dates after asOf's year/month,
// and years more than MaxBirthYearsBack before asOf's year.
func IsValidBirthDate(year, month int, asOf time.Time) bool {
	if month < 1 || month > 12 {
		return false
	}
	currentYear, currentMonth := asOf.Year(), int(asOf.Month())
	if year > currentYear || (year == currentYear && month > currentMonth) {
		return false
	}
	if year < currentYear-MaxBirthYearsBack {
		return false
	}
	return true
}

// AgeLabel renders months below 24 as "N개월" and everything else as whole years ("만 N세").
func AgeLabel(months int) string {
	if months < 24 {
		return fmt.Sprintf("%d개월", months)
	}
	return fmt.Sprintf("만 %d세", months/12)
}

// AgeLabelFromBirthDate renders the age label for a "YYYY-MM" birth date.
// Empty or malformed input yields an empty label.
func AgeLabelFromBirthDate(birthDate string, asOf time.Time) string {
	yearPart, monthPart, ok := strings.Cut(birthDate, "-")
	if !ok {
		return ""
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return ""
	}
	month, err := strconv.Atoi(monthPart)
	if err != nil {
		return ""
	}
	return AgeLabel(MonthsSince(year, month, asOf))
}

// BandFor maps an age in months to the band with the smallest upper bound >= months.
func BandFor(months int) AgeBand {
	for _, b := range bandUpperBounds {
		if months <= b.maxMonths {
			return b.band
		}
	}
	return BandOver84
}

// YoungestMonths returns the smallest age in months among children.
// ok is false when children is empty.
func YoungestMonths(children []Child, asOf time.Time) (months int, ok bool) {
	for i, c := range children {
		m := c.Months(asOf)
		if i == 0 || m < months {
			months = m
		}
	}
	return months, len(children) > 0
}
