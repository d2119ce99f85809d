package location

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"ainadeul/pkg/domain"
	dErrors "ainadeul/pkg/domain-errors"
	"ainadeul/pkg/platform/httputil"
)

type PresetsResponse struct {
	Regions       []Region          `json:"regions"`
	Landmarks     []Landmark        `json:"landmarks"`
	DefaultCenter domain.Coordinate `json:"default_center"`
}

type GeocodeResponse struct {
	Address    string            `json:"address"`
	Coordinate domain.Coordinate `json:"coordinate"`
}

// Handler serves the location-setting menus. It needs no session.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/locations/presets", h.handlePresets)
	r.Get("/locations/geocode", h.handleGeocode)
}

func (h *Handler) handlePresets(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, PresetsResponse{
		Regions:       Regions,
		Landmarks:     Landmarks,
		DefaultCenter: DefaultCenter,
	})
}

func (h *Handler) handleGeocode(w http.ResponseWriter, r *http.Request) {
	address := strings.TrimSpace(r.URL.Query().Get("address"))
	if address == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "address is required"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, GeocodeResponse{Address: address, Coordinate: Geocode(address)})
}
