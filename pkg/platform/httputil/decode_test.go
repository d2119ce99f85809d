package httputil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "ainadeul/pkg/domain-errors"
)

type nicknameRequest struct {
	Nickname string `json:"nickname"`

	sanitized  bool
	normalized bool
}

func (r *nicknameRequest) Sanitize() {
	r.sanitized = true
	r.Nickname = strings.TrimSpace(r.Nickname)
}

func (r *nicknameRequest) Normalize() { r.normalized = true }

func (r *nicknameRequest) Validate() error {
	if r.Nickname == "" {
		return errors.New("nickname is required")
	}
	return nil
}

type placeIDRequest struct {
	PlaceID string `json:"place_id"`
}

func (r *placeIDRequest) Validate() error {
	if r.PlaceID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "place_id is required")
	}
	return nil
}

type DecodeSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestDecodeSuite(t *testing.T) {
	suite.Run(t, &DecodeSuite{logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
}

func (s *DecodeSuite) post(body string) (*http.Request, *httptest.ResponseRecorder) {
	return httptest.NewRequest(http.MethodPost, "/me/children", strings.NewReader(body)), httptest.NewRecorder()
}

func (s *DecodeSuite) errorBody(w *httptest.ResponseRecorder) map[string]string {
	var body map[string]string
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func (s *DecodeSuite) TestPreparesDecodedRequest() {
	r, w := s.post(`{"nickname":"  하늘 "}`)

	req, ok := DecodeAndPrepare[nicknameRequest](w, r, s.logger, r.Context(), "req-1")

	s.Require().True(ok)
	s.Equal("하늘", req.Nickname)
	s.True(req.sanitized)
	s.True(req.normalized)
}

func (s *DecodeSuite) TestBodyErrors() {
	cases := map[string]struct {
		body        string
		description string
	}{
		"empty body":     {"", "request body is required"},
		"malformed json": {`{nickname}`, "invalid request body"},
		"wrong type":     {`{"nickname":1}`, "invalid request body"},
		"two objects":    {`{"nickname":"a"}{"nickname":"b"}`, "request body must hold a single JSON object"},
	}
	for name, tc := range cases {
		s.Run(name, func() {
			r, w := s.post(tc.body)

			_, ok := DecodeAndPrepare[nicknameRequest](w, r, s.logger, r.Context(), "req-1")

			s.False(ok)
			s.Equal(http.StatusBadRequest, w.Code)
			body := s.errorBody(w)
			s.Equal("bad_request", body["error"])
			s.Equal(tc.description, body["error_description"])
		})
	}
}

func (s *DecodeSuite) TestOversizedBody() {
	r, w := s.post(`{"nickname":"` + strings.Repeat("아", 64) + `"}`)
	r.Body = http.MaxBytesReader(w, r.Body, 16)

	_, ok := DecodeAndPrepare[nicknameRequest](w, r, s.logger, r.Context(), "req-1")

	s.False(ok)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("request body exceeds 16 bytes", s.errorBody(w)["error_description"])
}

func (s *DecodeSuite) TestPlainValidationErrorBecomesValidationCode() {
	r, w := s.post(`{"nickname":"   "}`)

	_, ok := DecodeAndPrepare[nicknameRequest](w, r, s.logger, r.Context(), "req-1")

	s.False(ok)
	body := s.errorBody(w)
	s.Equal("validation_error", body["error"])
	s.Equal("nickname is required", body["error_description"])
}

func (s *DecodeSuite) TestDomainValidationErrorKeepsItsCode() {
	r, w := s.post(`{"place_id":""}`)

	_, ok := DecodeAndPrepare[placeIDRequest](w, r, s.logger, r.Context(), "req-1")

	s.False(ok)
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal("bad_request", s.errorBody(w)["error"])
}

func (s *DecodeSuite) TestPrepareRequestWithoutHooks() {
	s.NoError(PrepareRequest(&struct{ Name string }{Name: "x"}))
}
