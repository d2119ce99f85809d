package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ainadeul/internal/event/handler/mocks"
	"ainadeul/internal/event/models"
	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
)

type EventHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
}

func TestEventHandlerSuite(t *testing.T) {
	suite.Run(t, new(EventHandlerSuite))
}

func (s *EventHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.router = chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(s.router)
}

func (s *EventHandlerSuite) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func (s *EventHandlerSuite) TestList() {
	orgID := domain.OrganizerID(uuid.New())

	s.Run("builds the filter from the query", func() {
		age := 48
		s.service.EXPECT().List(gomock.Any(), models.Filter{
			Tab:             models.TabOngoing,
			OrganizerID:     &orgID,
			Type:            models.TypeExhibition,
			TargetAgeMonths: &age,
		}).Return([]models.View{{Title: "공룡 특별전", TypeLabel: "전시"}}, nil)

		q := url.Values{}
		q.Set("tab", "ongoing")
		q.Set("organizer_id", orgID.String())
		q.Set("event_type", models.TypeExhibition)
		q.Set("target_age", "48")
		rec := s.get("/events?" + q.Encode())
		s.Require().Equal(http.StatusOK, rec.Code)

		var body models.ListResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal(1, body.Total)
		s.Equal("전시", body.Events[0].TypeLabel)
	})

	s.Run("all means no restriction", func() {
		s.service.EXPECT().List(gomock.Any(), models.Filter{Tab: models.TabUpcoming}).Return([]models.View{}, nil)

		rec := s.get("/events?organizer_id=all&event_type=all")
		s.Require().Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"events":[],"total":0}`, rec.Body.String())
	})

	s.Run("unknown tab", func() {
		rec := s.get("/events?tab=past")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("service failure", func() {
		s.service.EXPECT().List(gomock.Any(), gomock.Any()).
			Return(nil, dErrors.Wrap(errors.New("db down"), dErrors.CodeInternal, "failed to load events"))

		rec := s.get("/events")
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *EventHandlerSuite) TestOrganizers() {
	orgs := []models.Organizer{{ID: domain.OrganizerID(uuid.New()), Name: "한밭도서관", Category: "도서관"}}
	s.service.EXPECT().ListOrganizers(gomock.Any()).Return(orgs, nil)

	rec := s.get("/events/organizers")
	s.Require().Equal(http.StatusOK, rec.Code)

	var body models.OrganizersResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(orgs, body.Organizers)
}
