package models

import (
	"time"

	"ainadeul/pkg/domain"
)

type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusOngoing  Status = "ongoing"
	StatusEnded    Status = "ended"
)

// Event types as stored by the organizers' feeds.
const (
	TypeRegular     = "정기프로그램"
	TypeSpecial     = "특별행사"
	TypeExhibition  = "전시"
	TypePerformance = "공연"
)

// Event is a dated program for children. StartDate and EndDate carry a
// calendar date only; their clock is midnight UTC.
type Event struct {
	ID              domain.EventID
	Title           string
	Description     string
	Type            string
	Status          Status
	StartDate       time.Time
	EndDate         *time.Time
	TargetAgeMin    *int // months, nil is open
	TargetAgeMax    *int // months, nil is open
	TargetAgeNote   string
	IsFree          bool
	RegistrationURL string
	Organizer       *Organizer
	Place           *PlaceSummary
	CreatedAt       time.Time
}

type Organizer struct {
	ID       domain.OrganizerID `json:"id"`
	Name     string             `json:"name"`
	Category string             `json:"category"`
}

// PlaceSummary is the venue an event is held at.
type PlaceSummary struct {
	ID      domain.PlaceID `json:"id"`
	Name    string         `json:"name"`
	Address string         `json:"address"`
	Region  string         `json:"region"`
}

// Date truncates t to its calendar date in loc, expressed at midnight UTC
// so it compares directly with StartDate and EndDate.
func Date(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
