package models

import (
	"strings"
	"time"

	dErrors "ainadeul/pkg/domain-errors"
	platformstrings "ainadeul/pkg/platform/strings"
	"ainadeul/pkg/platform/validation"
)

// AddChildRequest registers a child by nickname and birth year/month.
type AddChildRequest struct {
	Nickname   string `json:"nickname" validate:"required,notblank"`
	BirthYear  int    `json:"birth_year" validate:"required,gte=1900"`
	BirthMonth int    `json:"birth_month" validate:"required,gte=1,lte=12"`
}

func (r *AddChildRequest) Sanitize() {
	platformstrings.TrimSpace(&r.Nickname)
}

func (r *AddChildRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	return validation.CheckStringLength("nickname", r.Nickname, validation.MaxNicknameLength)
}

// UpdateLocationRequest sets the home location. Either a coordinate or an
// address must be given; an address alone is geocoded against the district table.
type UpdateLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
	Address   string   `json:"address"`
}

func (r *UpdateLocationRequest) Sanitize() {
	platformstrings.TrimSpace(&r.Address)
}

func (r *UpdateLocationRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if (r.Latitude == nil) != (r.Longitude == nil) {
		return dErrors.New(dErrors.CodeValidation, "latitude and longitude must be provided together")
	}
	if r.Latitude == nil && r.Address == "" {
		return dErrors.New(dErrors.CodeValidation, "a coordinate or an address is required")
	}
	return validation.CheckStringLength("address", r.Address, validation.MaxAddressLength)
}

// AddVisitRequest records a visit. VisitedOn is a calendar date (YYYY-MM-DD).
type AddVisitRequest struct {
	PlaceID   string `json:"place_id" validate:"required,uuid"`
	VisitedOn string `json:"visited_on" validate:"required,datetime=2006-01-02"`
	Rating    int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Memo      string `json:"memo"`

	visitedOn time.Time
}

func (r *AddVisitRequest) Sanitize() {
	platformstrings.TrimSpace(&r.PlaceID, &r.VisitedOn, &r.Memo)
}

func (r *AddVisitRequest) Normalize() {
	r.PlaceID = strings.ToLower(r.PlaceID)
}

func (r *AddVisitRequest) Validate() error {
	if err := validation.Struct(r); err != nil {
		return err
	}
	if err := validation.CheckStringLength("memo", r.Memo, validation.MaxMemoLength); err != nil {
		return err
	}
	d, err := time.Parse(time.DateOnly, r.VisitedOn)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "visited_on must be formatted as YYYY-MM-DD")
	}
	r.visitedOn = d
	return nil
}

// Date returns the parsed visit date. Only valid after Validate.
func (r *AddVisitRequest) Date() time.Time {
	return r.visitedOn
}
