package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ainadeul/internal/location"
	"ainadeul/internal/profile/handler/mocks"
	"ainadeul/internal/profile/models"
	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/requestcontext"
)

var requestTime = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

type ProfileHandlerSuite struct {
	suite.Suite
	service *mocks.MockService
	router  chi.Router
	userID  domain.UserID
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerSuite))
}

func (s *ProfileHandlerSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.service = mocks.NewMockService(ctrl)
	s.userID = domain.UserID(uuid.New())

	h := New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.router = chi.NewRouter()
	h.Register(s.router)
}

func (s *ProfileHandlerSuite) do(method, target string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, reader)
	ctx := requestcontext.WithTime(req.Context(), requestTime)
	if authenticated {
		ctx = requestcontext.WithUserID(ctx, s.userID)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req.WithContext(ctx))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (s *ProfileHandlerSuite) TestRequiresUser() {
	rec := s.do(http.MethodGet, "/me/profile", nil, false)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ProfileHandlerSuite) TestGetProfile() {
	s.service.EXPECT().Get(gomock.Any(), s.userID).Return(&models.Profile{
		UserID: s.userID,
		Children: []models.ChildRecord{
			{ID: domain.ChildID(uuid.New()), Nickname: "하늘", BirthYear: 2024, BirthMonth: 6},
		},
	}, nil)

	rec := s.do(http.MethodGet, "/me/profile", nil, true)
	s.Require().Equal(http.StatusOK, rec.Code)

	body := decode[models.ProfileResponse](s.T(), rec)
	s.False(body.NeedsChildInfo)
	s.Require().Len(body.Children, 1)
	s.Equal(12, body.Children[0].AgeMonths)
	s.Equal("12개월", body.Children[0].AgeLabel)
	s.Equal(domain.Band0To12, body.Children[0].AgeBand)
}

func (s *ProfileHandlerSuite) TestAddChild() {
	s.Run("invalid body is rejected before the service", func() {
		rec := s.do(http.MethodPost, "/me/children", map[string]any{"nickname": " ", "birth_year": 2022, "birth_month": 13}, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("created", func() {
		s.service.EXPECT().AddChild(gomock.Any(), s.userID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.UserID, req *models.AddChildRequest) (*models.ChildRecord, error) {
				s.Equal("하늘", req.Nickname, "nickname is trimmed")
				return &models.ChildRecord{ID: domain.ChildID(uuid.New()), Nickname: req.Nickname, BirthYear: req.BirthYear, BirthMonth: req.BirthMonth}, nil
			})

		rec := s.do(http.MethodPost, "/me/children", map[string]any{"nickname": " 하늘 ", "birth_year": 2022, "birth_month": 3}, true)
		s.Require().Equal(http.StatusCreated, rec.Code)
		body := decode[models.ChildResponse](s.T(), rec)
		s.Equal("만 3세", body.AgeLabel)
	})
}

func (s *ProfileHandlerSuite) TestDeleteChild() {
	s.Run("malformed id", func() {
		rec := s.do(http.MethodDelete, "/me/children/not-a-uuid", nil, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("not found", func() {
		childID := uuid.New()
		s.service.EXPECT().DeleteChild(gomock.Any(), s.userID, domain.ChildID(childID)).
			Return(dErrors.New(dErrors.CodeNotFound, "child not found"))

		rec := s.do(http.MethodDelete, "/me/children/"+childID.String(), nil, true)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("deleted", func() {
		childID := uuid.New()
		s.service.EXPECT().DeleteChild(gomock.Any(), s.userID, domain.ChildID(childID)).Return(nil)

		rec := s.do(http.MethodDelete, "/me/children/"+childID.String(), nil, true)
		s.Equal(http.StatusNoContent, rec.Code)
	})
}

func (s *ProfileHandlerSuite) TestUpdateLocation() {
	s.Run("half a coordinate is rejected", func() {
		rec := s.do(http.MethodPut, "/me/location", map[string]any{"latitude": 36.3}, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("address only", func() {
		home := location.Geocode("대전 중구")
		s.service.EXPECT().UpdateLocation(gomock.Any(), s.userID, gomock.Any()).
			Return(&models.Profile{UserID: s.userID, Home: &home, Address: "대전 중구"}, nil)

		rec := s.do(http.MethodPut, "/me/location", map[string]any{"address": "대전 중구"}, true)
		s.Require().Equal(http.StatusOK, rec.Code)
		body := decode[models.ProfileResponse](s.T(), rec)
		s.Require().NotNil(body.Home)
		s.Equal(home, *body.Home)
		s.True(body.NeedsChildInfo)
	})
}

func (s *ProfileHandlerSuite) TestUseCurrentLocationErrors() {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"unavailable", location.ErrUnavailable, http.StatusServiceUnavailable},
		{"denied", location.ErrDenied, http.StatusForbidden},
		{"timeout", location.ErrTimeout, http.StatusGatewayTimeout},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			s.service.EXPECT().UseCurrentLocation(gomock.Any(), s.userID).Return(nil, tc.err)

			rec := s.do(http.MethodPost, "/me/location/current", nil, true)
			s.Equal(tc.status, rec.Code)
		})
	}
}

func (s *ProfileHandlerSuite) TestToggleSavedPlace() {
	placeID := uuid.New()
	s.service.EXPECT().ToggleSavedPlace(gomock.Any(), s.userID, domain.PlaceID(placeID)).Return(true, nil)

	rec := s.do(http.MethodPost, "/me/saved-places/"+placeID.String(), nil, true)
	s.Require().Equal(http.StatusOK, rec.Code)
	body := decode[models.ToggleSavedResponse](s.T(), rec)
	s.True(body.Saved)
	s.Equal(placeID.String(), body.PlaceID)
}

func (s *ProfileHandlerSuite) TestVisits() {
	placeID := uuid.New()

	s.Run("bad date", func() {
		rec := s.do(http.MethodPost, "/me/visits", map[string]any{"place_id": placeID.String(), "visited_on": "15/06/2025"}, true)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("recorded", func() {
		s.service.EXPECT().AddVisit(gomock.Any(), s.userID, gomock.Any()).Return(&models.Visit{
			ID:        domain.VisitID(uuid.New()),
			PlaceID:   domain.PlaceID(placeID),
			VisitedOn: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			Rating:    5,
		}, nil)

		rec := s.do(http.MethodPost, "/me/visits", map[string]any{"place_id": placeID.String(), "visited_on": "2025-06-01", "rating": 5}, true)
		s.Require().Equal(http.StatusCreated, rec.Code)
		body := decode[models.VisitResponse](s.T(), rec)
		s.Equal("2025-06-01", body.VisitedOn)
	})

	s.Run("listed", func() {
		s.service.EXPECT().ListVisits(gomock.Any(), s.userID).Return(nil, nil)

		rec := s.do(http.MethodGet, "/me/visits", nil, true)
		s.Require().Equal(http.StatusOK, rec.Code)
		assert.JSONEq(s.T(), `{"visits":[]}`, rec.Body.String())
	})
}
