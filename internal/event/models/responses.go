package models

import "time"

// View is an event as the events page renders it.
type View struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Type            string        `json:"event_type"`
	TypeLabel       string        `json:"type_label"`
	TypeColor       string        `json:"type_color"`
	Status          Status        `json:"status"`
	StartDate       string        `json:"start_date"`
	EndDate         string        `json:"end_date,omitempty"`
	DateRange       string        `json:"date_range"`
	AgeRange        string        `json:"age_range"`
	IsFree          bool          `json:"is_free"`
	RegistrationURL string        `json:"registration_url,omitempty"`
	Organizer       *Organizer    `json:"organizer,omitempty"`
	Place           *PlaceSummary `json:"place,omitempty"`
}

const dateLayout = time.DateOnly

func NewView(e *Event) View {
	v := View{
		ID:              e.ID.String(),
		Title:           e.Title,
		Description:     e.Description,
		Type:            e.Type,
		TypeLabel:       TypeLabel(e.Type),
		TypeColor:       TypeColor(e.Type),
		Status:          e.Status,
		StartDate:       e.StartDate.Format(dateLayout),
		DateRange:       FormatDateRange(e.StartDate, e.EndDate),
		AgeRange:        FormatAgeRange(e.TargetAgeMin, e.TargetAgeMax, e.TargetAgeNote),
		IsFree:          e.IsFree,
		RegistrationURL: e.RegistrationURL,
		Organizer:       e.Organizer,
		Place:           e.Place,
	}
	if e.EndDate != nil {
		v.EndDate = e.EndDate.Format(dateLayout)
	}
	return v
}

type ListResponse struct {
	Events []View `json:"events"`
	Total  int    `json:"total"`
}

type OrganizersResponse struct {
	Organizers []Organizer `json:"organizers"`
}
