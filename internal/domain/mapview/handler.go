package mapview

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/map/markers", listMarkersHandler(svc))
}

// listMarkersHandler godoc
// @Summary      Marcadores del mapa
// @Description  GeoJSON FeatureCollection con un punto por evento y el color de su tipo.
// @Tags         map
// @Produce      json
// @Param        include_unlocated  query     bool  false  "Incluir eventos sin posición (0,0)"
// @Success      200                {object}  FeatureCollection
// @Failure      400                {string}  string
// @Router       /map/markers [get]
func listMarkersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		include := false
		if v := r.URL.Query().Get("include_unlocated"); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				http.Error(w, "include_unlocated must be a boolean", http.StatusBadRequest)
				return
			}
			include = b
		}

		w.Header().Set("Content-Type", "application/geo+json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(ToGeoJSON(svc.Markers(r.Context(), include)))
	}
}
