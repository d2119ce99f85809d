package models

import (
	"time"

	"ainadeul/pkg/domain"
)

// ChildResponse is a child as shown to the parent, with the age label computed
// for the request date.
type ChildResponse struct {
	ID         string         `json:"id"`
	Nickname   string         `json:"nickname"`
	BirthYear  int            `json:"birth_year"`
	BirthMonth int            `json:"birth_month"`
	AgeMonths  int            `json:"age_months"`
	AgeLabel   string         `json:"age_label"`
	AgeBand    domain.AgeBand `json:"age_band"`
	CreatedAt  time.Time      `json:"created_at"`
}

type ProfileResponse struct {
	UserID         string             `json:"user_id"`
	Home           *domain.Coordinate `json:"home,omitempty"`
	Address        string             `json:"address,omitempty"`
	Children       []ChildResponse    `json:"children"`
	NeedsChildInfo bool               `json:"needs_child_info"`
}

type SavedPlaceResponse struct {
	PlaceID string    `json:"place_id"`
	SavedAt time.Time `json:"saved_at"`
}

type ToggleSavedResponse struct {
	PlaceID string `json:"place_id"`
	Saved   bool   `json:"saved"`
}

type VisitResponse struct {
	ID        string    `json:"id"`
	PlaceID   string    `json:"place_id"`
	VisitedOn string    `json:"visited_on"`
	Rating    int       `json:"rating,omitempty"`
	Memo      string    `json:"memo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NewChildResponse(c ChildRecord, asOf time.Time) ChildResponse {
	months := c.Child().Months(asOf)
	return ChildResponse{
		ID:         c.ID.String(),
		Nickname:   c.Nickname,
		BirthYear:  c.BirthYear,
		BirthMonth: c.BirthMonth,
		AgeMonths:  months,
		AgeLabel:   domain.AgeLabel(months),
		AgeBand:    domain.BandFor(months),
		CreatedAt:  c.CreatedAt,
	}
}

func NewProfileResponse(p *Profile, asOf time.Time) ProfileResponse {
	children := make([]ChildResponse, 0, len(p.Children))
	for _, c := range p.Children {
		children = append(children, NewChildResponse(c, asOf))
	}
	return ProfileResponse{
		UserID:         p.UserID.String(),
		Home:           p.Home,
		Address:        p.Address,
		Children:       children,
		NeedsChildInfo: p.NeedsChildInfo(),
	}
}

func NewVisitResponse(v Visit) VisitResponse {
	return VisitResponse{
		ID:        v.ID.String(),
		PlaceID:   v.PlaceID.String(),
		VisitedOn: v.VisitedOn.Format(time.DateOnly),
		Rating:    v.Rating,
		Memo:      v.Memo,
		CreatedAt: v.CreatedAt,
	}
}
