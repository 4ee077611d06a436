package summary

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/summary", getSummaryHandler(svc))
}

type summaryResponse struct {
	Total         int                    `json:"total"`
	ByKind        []kindCountResponse    `json:"by_kind"`
	RecentCount   int                    `json:"recent_count"`
	Recent        []recentEventResponse  `json:"recent"`
	RecentAttacks int                    `json:"recent_attacks"`
	AttackAlert   bool                   `json:"attack_alert"`
	TopSpecies    []speciesCountResponse `json:"top_species"`
	Monthly       []monthCountResponse   `json:"monthly"`
}

type kindCountResponse struct {
	Kind    string `json:"kind"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type speciesCountResponse struct {
	Species string `json:"species"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

type monthCountResponse struct {
	Label string `json:"label"`
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Count int    `json:"count"`
}

type recentEventResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Kind    string `json:"kind"`
	Species string `json:"species"`
	Place   string `json:"place"`
}

// getSummaryHandler godoc
// @Summary      Resumen del dashboard
// @Description  Totales y porcentajes por tipo, eventos de los últimos 7 días, alerta de ataques (30 días), top 5 de especies y actividad de los últimos 3 meses.
// @Tags         summary
// @Produce      json
// @Success      200  {object}  summaryResponse
// @Router       /summary [get]
func getSummaryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, toSummaryResponse(svc.Get(r.Context())))
	}
}

func toSummaryResponse(s Summary) summaryResponse {
	out := summaryResponse{
		Total:         s.Total,
		ByKind:        make([]kindCountResponse, 0, len(s.ByKind)),
		RecentCount:   s.RecentCount,
		Recent:        make([]recentEventResponse, 0, len(s.Recent)),
		RecentAttacks: s.RecentAttacks,
		AttackAlert:   s.AttackAlert,
		TopSpecies:    make([]speciesCountResponse, 0, len(s.TopSpecies)),
		Monthly:       make([]monthCountResponse, 0, len(s.Monthly)),
	}
	for _, k := range s.ByKind {
		out.ByKind = append(out.ByKind, kindCountResponse{Kind: string(k.Kind), Count: k.Count, Percent: k.Percent})
	}
	for _, e := range s.Recent {
		out.Recent = append(out.Recent, recentEventResponse{
			ID: e.ID, Date: e.Date, Time: e.Time, Kind: string(e.Kind), Species: e.Species, Place: e.Place,
		})
	}
	for _, sp := range s.TopSpecies {
		out.TopSpecies = append(out.TopSpecies, speciesCountResponse{Species: sp.Species, Count: sp.Count, Percent: sp.Percent})
	}
	for _, m := range s.Monthly {
		out.Monthly = append(out.Monthly, monthCountResponse{Label: m.Label, Year: m.Year, Month: int(m.Month), Count: m.Count})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
