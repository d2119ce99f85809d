package models

import (
	"fmt"
	"time"
)

var typeLabels = map[string]string{
	TypeRegular:     "정기",
	TypeSpecial:     "특별",
	TypeExhibition:  "전시",
	TypePerformance: "공연",
}

var typeColors = map[string]string{
	TypeRegular:     "#4CAF50",
	TypeSpecial:     "#FF6B6B",
	TypeExhibition:  "#9C27B0",
	TypePerformance: "#2196F3",
}

// TypeLabel shortens a known event type for the badge. Unknown types are
// shown as is.
func TypeLabel(eventType string) string {
	if label, ok := typeLabels[eventType]; ok {
		return label
	}
	return eventType
}

func TypeColor(eventType string) string {
	if color, ok := typeColors[eventType]; ok {
		return color
	}
	return "#666"
}

// FormatAgeRange renders a target age range given in months. A note from
// the organizer overrides the bounds. Zero bounds count as open.
func FormatAgeRange(minMonths, maxMonths *int, note string) string {
	if note != "" {
		return note
	}
	lo, hi := orZero(minMonths), orZero(maxMonths)
	switch {
	case lo == 0 && hi == 0:
		return "전연령"
	case hi == 0:
		return formatAge(lo) + " 이상"
	case lo == 0:
		return formatAge(hi) + " 이하"
	default:
		return formatAge(lo) + " ~ " + formatAge(hi)
	}
}

func formatAge(months int) string {
	if months < 24 {
		return fmt.Sprintf("%d개월", months)
	}
	return fmt.Sprintf("%d세", months/12)
}

// FormatDateRange renders "3. 15." or "3. 15. - 4. 2.".
func FormatDateRange(start time.Time, end *time.Time) string {
	s := formatDate(start)
	if end == nil {
		return s
	}
	return s + " - " + formatDate(*end)
}

func formatDate(t time.Time) string {
	return fmt.Sprintf("%d. %d.", int(t.Month()), t.Day())
}

func orZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
