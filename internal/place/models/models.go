package models

import (
	"fmt"
	"time"

	"ainadeul/internal/recommend"
	"ainadeul/pkg/domain"
	platformstrings "ainadeul/pkg/platform/strings"
)

// Place is a family outing destination with its optional side records.
// A nil side record means the row is missing, not that every flag is false.
type Place struct {
	ID           domain.PlaceID
	Name         string
	Category     string
	Region       string
	Address      string
	Location     domain.Coordinate
	IsIndoor     bool
	IsOutdoor    bool
	IsActive     bool
	Phone        string
	Homepage     string
	Hours        OperatingHours
	Details      *Details
	Amenities    *Amenities
	Scores       *FilterScores
	Suitability  recommend.Suitability
	BlogMentions []BlogMention
	CreatedAt    time.Time
}

type Details struct {
	Description string   `json:"description,omitempty"`
	Features    []string `json:"features"`
	IsFree      bool     `json:"is_free"`
	PriceAdult  *int     `json:"price_adult,omitempty"`
	PriceChild  *int     `json:"price_child,omitempty"`
	PriceNote   string   `json:"price_note,omitempty"`
}

type Amenities struct {
	ParkingAvailable bool   `json:"parking_available"`
	ParkingFree      bool   `json:"parking_free"`
	ParkingNote      string `json:"parking_note,omitempty"`
	NursingRoom      bool   `json:"nursing_room"`
	DiaperTable      bool   `json:"diaper_table"`
	StrollerAccess   bool   `json:"stroller_access"`
	BabyChair        bool   `json:"baby_chair"`
}

// FilterScores are 1-5 scores. Higher parent_energy_required means less effort
// for the parent; higher child_energy_consumption means a calmer activity.
type FilterScores struct {
	ParentEnergyRequired   float64 `json:"parent_energy_required"`
	ChildEnergyConsumption float64 `json:"child_energy_consumption"`
}

type BlogMention struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
	BloggerName string    `json:"blogger_name,omitempty"`
	PostDate    time.Time `json:"post_date"`
}

// IsFree reports whether the place is known to be free of charge.
func (p *Place) IsFree() bool {
	return p.Details != nil && p.Details.IsFree
}

func (p *Place) HasParking() bool {
	return p.Amenities != nil && p.Amenities.ParkingAvailable
}

// Features returns the trimmed, de-duplicated feature tags, or nil without
// a details record.
func (p *Place) Features() []string {
	if p.Details == nil {
		return nil
	}
	return platformstrings.DedupeAndTrim(p.Details.Features)
}

// Weekday keys operating hours. Values match the JSON keys in the hours column.
type Weekday string

const (
	Monday    Weekday = "mon"
	Tuesday   Weekday = "tue"
	Wednesday Weekday = "wed"
	Thursday  Weekday = "thu"
	Friday    Weekday = "fri"
	Saturday  Weekday = "sat"
	Sunday    Weekday = "sun"
)

// Weekdays lists the week starting on Monday.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

var weekdayLabels = map[Weekday]string{
	Monday:    "월",
	Tuesday:   "화",
	Wednesday: "수",
	Thursday:  "목",
	Friday:    "금",
	Saturday:  "토",
	Sunday:    "일",
}

func (d Weekday) Label() string {
	return weekdayLabels[d]
}

type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// OperatingHours maps weekdays to hours. Days without an entry are unknown.
type OperatingHours map[Weekday]DayHours

// Lines renders "월: 09:00 - 18:00" or "화: 휴무" for each known day, Monday first.
func (h OperatingHours) Lines() []string {
	lines := make([]string, 0, len(h))
	for _, day := range Weekdays {
		hours, ok := h[day]
		if !ok {
			continue
		}
		if hours.Closed {
			lines = append(lines, day.Label()+": 휴무")
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s - %s", day.Label(), hours.Open, hours.Close))
	}
	return lines
}

var categoryEmoji = map[string]string{
	"도서관":   "📚",
	"박물관":   "🏛️",
	"미술관":   "🎨",
	"과학관":   "🔬",
	"체육시설":  "⚽",
	"공원":    "🌳",
	"카페":    "☕",
	"실내놀이터": "🏠",
}

// CategoryEmoji returns the icon for a category, 📍 for anything unlisted.
func CategoryEmoji(category string) string {
	if emoji, ok := categoryEmoji[category]; ok {
		return emoji
	}
	return "📍"
}
