//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"ainadeul/internal/event/models"
	"ainadeul/pkg/domain"
	"ainadeul/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *PostgresStore
	ctx   context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.Postgres(s.T())
	s.store = NewPostgres(s.pg.DB)
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateModuleTables(s.ctx))
}

func (s *PostgresStoreSuite) TestRoundTripWithJoins() {
	placeID := s.pg.CreateTestPlace(s.ctx, s.T(), "대전시립미술관")
	org := models.Organizer{ID: domain.OrganizerID(uuid.New()), Name: "대전시립미술관", Category: "미술관"}
	s.Require().NoError(s.store.SaveOrganizer(s.ctx, org))

	end := date(2026, 12, 31)
	minAge := 36
	full := &models.Event{
		ID:              domain.EventID(uuid.New()),
		Title:           "어린이 미술 체험전",
		Description:     "손으로 만지는 전시",
		Type:            models.TypeExhibition,
		Status:          models.StatusOngoing,
		StartDate:       date(2026, 10, 1),
		EndDate:         &end,
		TargetAgeMin:    &minAge,
		IsFree:          true,
		RegistrationURL: "https://example.org/register",
		Organizer:       &org,
		Place:           &models.PlaceSummary{ID: placeID},
	}
	bare := &models.Event{
		ID:        domain.EventID(uuid.New()),
		Title:     "가족 음악회",
		Type:      models.TypePerformance,
		Status:    models.StatusUpcoming,
		StartDate: date(2026, 11, 8),
	}
	s.Require().NoError(s.store.Save(s.ctx, full))
	s.Require().NoError(s.store.Save(s.ctx, bare))

	ongoing, err := s.store.ListByStatus(s.ctx, models.StatusOngoing)
	s.Require().NoError(err)
	s.Require().Len(ongoing, 1)
	got := ongoing[0]
	s.Equal(full.Title, got.Title)
	s.True(got.StartDate.Equal(full.StartDate))
	s.Require().NotNil(got.EndDate)
	s.True(got.EndDate.Equal(end))
	s.Require().NotNil(got.TargetAgeMin)
	s.Equal(36, *got.TargetAgeMin)
	s.Nil(got.TargetAgeMax)
	s.Require().NotNil(got.Organizer)
	s.Equal("미술관", got.Organizer.Category)
	s.Require().NotNil(got.Place)
	s.Equal("대전시립미술관", got.Place.Name)

	upcoming, err := s.store.ListByStatus(s.ctx, models.StatusUpcoming)
	s.Require().NoError(err)
	s.Require().Len(upcoming, 1)
	s.Nil(upcoming[0].Organizer)
	s.Nil(upcoming[0].Place)
	s.Nil(upcoming[0].EndDate)
}

func (s *PostgresStoreSuite) TestSaveUpserts() {
	e := &models.Event{
		ID:        domain.EventID(uuid.New()),
		Title:     "과학 교실",
		Type:      models.TypeRegular,
		Status:    models.StatusUpcoming,
		StartDate: date(2026, 10, 20),
		CreatedAt: time.Now(),
	}
	s.Require().NoError(s.store.Save(s.ctx, e))
	e.Status = models.StatusOngoing
	s.Require().NoError(s.store.Save(s.ctx, e))

	upcoming, err := s.store.ListByStatus(s.ctx, models.StatusUpcoming)
	s.Require().NoError(err)
	s.Empty(upcoming)
	ongoing, err := s.store.ListByStatus(s.ctx, models.StatusOngoing)
	s.Require().NoError(err)
	s.Len(ongoing, 1)
}

func (s *PostgresStoreSuite) TestListOrganizersByName() {
	for _, name := range []string{"한밭도서관", "국립중앙과학관"} {
		s.Require().NoError(s.store.SaveOrganizer(s.ctx, models.Organizer{ID: domain.OrganizerID(uuid.New()), Name: name}))
	}
	orgs, err := s.store.ListOrganizers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(orgs, 2)
	s.Equal("국립중앙과학관", orgs[0].Name)
}
