package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
)

func ptr[T any](v T) *T { return &v }

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFormatAgeRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max *int
		note     string
		want     string
	}{
		{"note wins", ptr(12), ptr(36), "초등학생 이상", "초등학생 이상"},
		{"no bounds", nil, nil, "", "전연령"},
		{"zero bounds are open", ptr(0), ptr(0), "", "전연령"},
		{"lower bound only in months", ptr(18), nil, "", "18개월 이상"},
		{"upper bound only in years", nil, ptr(84), "", "7세 이하"},
		{"both bounds", ptr(12), ptr(48), "", "12개월 ~ 4세"},
		{"years floor", ptr(24), ptr(35), "", "2세 ~ 2세"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAgeRange(tt.min, tt.max, tt.note))
		})
	}
}

func TestTypeLabelAndColor(t *testing.T) {
	assert.Equal(t, "정기", TypeLabel(TypeRegular))
	assert.Equal(t, "특별", TypeLabel(TypeSpecial))
	assert.Equal(t, "체험", TypeLabel("체험"))

	assert.Equal(t, "#9C27B0", TypeColor(TypeExhibition))
	assert.Equal(t, "#2196F3", TypeColor(TypePerformance))
	assert.Equal(t, "#666", TypeColor("체험"))
}

func TestFormatDateRange(t *testing.T) {
	assert.Equal(t, "3. 15.", FormatDateRange(day("2026-03-15"), nil))
	assert.Equal(t, "3. 15. - 4. 2.", FormatDateRange(day("2026-03-15"), ptr(day("2026-04-02"))))
}

func TestListRequestToFilter(t *testing.T) {
	orgID := uuid.New()

	t.Run("defaults to upcoming", func(t *testing.T) {
		req := &ListRequest{Tab: "all", OrganizerID: "all", EventType: "all"}
		req.Sanitize()
		f, err := req.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, Filter{Tab: TabUpcoming}, f)
		assert.Equal(t, StatusUpcoming, f.Status())
	})

	t.Run("parses every selector", func(t *testing.T) {
		req := &ListRequest{Tab: "ongoing", OrganizerID: orgID.String(), EventType: TypeSpecial, TargetAge: " 30 "}
		req.Sanitize()
		f, err := req.ToFilter()
		require.NoError(t, err)
		assert.Equal(t, TabOngoing, f.Tab)
		assert.Equal(t, StatusOngoing, f.Status())
		assert.Equal(t, domain.OrganizerID(orgID), *f.OrganizerID)
		assert.Equal(t, 30, *f.TargetAgeMonths)
	})

	tests := []struct {
		name string
		req  ListRequest
	}{
		{"unknown tab", ListRequest{Tab: "past"}},
		{"bad organizer", ListRequest{OrganizerID: "museum"}},
		{"bad age", ListRequest{TargetAge: "two"}},
		{"negative age", ListRequest{TargetAge: "-3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToFilter()
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation) || dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}

func TestFilterMatch(t *testing.T) {
	today := day("2026-10-14")
	org := &Organizer{ID: domain.OrganizerID(uuid.New()), Name: "대전시립미술관"}

	upcoming := &Event{Status: StatusUpcoming, StartDate: day("2026-10-20"), Type: TypeExhibition, Organizer: org,
		TargetAgeMin: ptr(24), TargetAgeMax: ptr(84)}
	startsToday := &Event{Status: StatusUpcoming, StartDate: today}
	past := &Event{Status: StatusUpcoming, StartDate: day("2026-10-01")}
	ongoing := &Event{Status: StatusOngoing, StartDate: day("2026-10-01"), EndDate: ptr(day("2026-10-14"))}
	openEnded := &Event{Status: StatusOngoing, StartDate: day("2026-10-01")}
	finished := &Event{Status: StatusOngoing, StartDate: day("2026-10-01"), EndDate: ptr(day("2026-10-13"))}

	t.Run("upcoming tab", func(t *testing.T) {
		f := Filter{Tab: TabUpcoming}
		assert.True(t, f.Match(upcoming, today))
		assert.True(t, f.Match(startsToday, today))
		assert.False(t, f.Match(past, today))
		assert.False(t, f.Match(ongoing, today))
	})

	t.Run("ongoing tab", func(t *testing.T) {
		f := Filter{Tab: TabOngoing}
		assert.True(t, f.Match(ongoing, today))
		assert.False(t, f.Match(openEnded, today))
		assert.False(t, f.Match(finished, today))
		assert.False(t, f.Match(upcoming, today))
	})

	t.Run("organizer and type", func(t *testing.T) {
		other := domain.OrganizerID(uuid.New())
		assert.True(t, Filter{OrganizerID: &org.ID, Type: TypeExhibition}.Match(upcoming, today))
		assert.False(t, Filter{OrganizerID: &other}.Match(upcoming, today))
		assert.False(t, Filter{OrganizerID: &org.ID}.Match(startsToday, today))
		assert.False(t, Filter{Type: TypePerformance}.Match(upcoming, today))
	})

	t.Run("target age", func(t *testing.T) {
		assert.True(t, Filter{TargetAgeMonths: ptr(24)}.Match(upcoming, today))
		assert.True(t, Filter{TargetAgeMonths: ptr(84)}.Match(upcoming, today))
		assert.False(t, Filter{TargetAgeMonths: ptr(12)}.Match(upcoming, today))
		assert.False(t, Filter{TargetAgeMonths: ptr(96)}.Match(upcoming, today))
		assert.True(t, Filter{TargetAgeMonths: ptr(6)}.Match(startsToday, today), "open bounds admit every age")
	})
}

func TestDate(t *testing.T) {
	seoul := time.FixedZone("KST", 9*60*60)
	lateUTC := time.Date(2026, 10, 13, 16, 0, 0, 0, time.UTC)
	assert.Equal(t, day("2026-10-14"), Date(lateUTC, seoul))
	assert.Equal(t, day("2026-10-13"), Date(lateUTC, time.UTC))
}

func TestNewView(t *testing.T) {
	e := &Event{
		ID:        domain.EventID(uuid.New()),
		Title:     "가족 인형극",
		Type:      TypePerformance,
		Status:    StatusUpcoming,
		StartDate: day("2026-11-01"),
		EndDate:   ptr(day("2026-11-03")),
		IsFree:    true,
	}
	v := NewView(e)
	assert.Equal(t, "공연", v.TypeLabel)
	assert.Equal(t, "#2196F3", v.TypeColor)
	assert.Equal(t, "2026-11-01", v.StartDate)
	assert.Equal(t, "2026-11-03", v.EndDate)
	assert.Equal(t, "11. 1. - 11. 3.", v.DateRange)
	assert.Equal(t, "전연령", v.AgeRange)
}
