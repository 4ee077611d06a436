package profile

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/profile", getProfileHandler(svc))
	r.Put("/profile", updateProfileHandler(svc))
}

type profileResponse struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	EventCount int    `json:"event_count"`
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// getProfileHandler godoc
// @Summary      Perfil del usuario
// @Description  Devuelve el perfil guardado (o el de ejemplo) y la cantidad de eventos registrados.
// @Tags         profile
// @Produce      json
// @Success      200  {object}  profileResponse
// @Router       /profile [get]
func getProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Get(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(v))
	}
}

// updateProfileHandler godoc
// @Summary      Editar perfil
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      updateProfileRequest  true  "Nombre y email"
// @Success      200   {object}  profileResponse
// @Failure      400   {string}  string
// @Router       /profile [put]
func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.Update(r.Context(), UpdateInput{Name: req.Name, Email: req.Email})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toProfileResponse(v))
	}
}

func toProfileResponse(v View) profileResponse {
	return profileResponse{Name: v.Name, Email: v.Email, EventCount: v.EventCount}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
