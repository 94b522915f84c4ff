package entries

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/entries", func(er chi.Router) {
		er.Post("/", createEntryHandler(svc))
		er.Get("/", listEntriesHandler(svc))
	})
}

// createEntryRequest es el cuerpo para insertar un evento crudo en el log.
// Mantiene el formato de wire original (assetId en camelCase, timestamp ISO-8601).
type createEntryRequest struct {
	ID        string    `json:"id"`
	AssetID   string    `json:"assetId"`
	Timestamp string    `json:"timestamp"` // RFC3339; opcional
	Type      Kind      `json:"type" enums:"entry,exit,delete"`
	Location  Location  `json:"location" enums:"office,client"`
	Remarks   string    `json:"remarks"`
	Name      string    `json:"name"`
	Model     string    `json:"model"`
	Condition Condition `json:"condition" enums:"working,damaged"`
}

// entryResponse representa un evento del log devuelto por la API.
type entryResponse struct {
	ID        string    `json:"id"`
	AssetID   string    `json:"assetId"`
	Timestamp time.Time `json:"timestamp"`
	Type      Kind      `json:"type"`
	Location  Location  `json:"location"`
	Remarks   string    `json:"remarks,omitempty"`
	Name      string    `json:"name,omitempty"`
	Model     string    `json:"model,omitempty"`
	Condition Condition `json:"condition,omitempty"`
}

// createEntryHandler godoc
// @Summary Insertar evento en el log
// @Description Inserta un evento tal cual llega. El store no valida transiciones (duplicados, re-entry): esa lógica es advisory y corre en los endpoints de /api/assets. id y timestamp son opcionales; si faltan, el servidor los genera.
// @Tags entries
// @Accept json
// @Produce json
// @Param payload body createEntryRequest true "Evento; timestamp en formato RFC3339"
// @Success 201 {object} entryResponse
// @Failure 400 {string} string "invalid json / campos inválidos"
// @Failure 500 {string} string "internal error"
// @Router /api/entries [post]
func createEntryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		var ts time.Time
		if req.Timestamp != "" {
			t, err := time.Parse(time.RFC3339, req.Timestamp)
			if err != nil {
				http.Error(w, "timestamp must be RFC3339", http.StatusBadRequest)
				return
			}
			ts = t
		}

		e, err := svc.Append(r.Context(), AppendInput{
			ID:        req.ID,
			AssetID:   req.AssetID,
			Timestamp: ts,
			Kind:      req.Type,
			Location:  req.Location,
			Remarks:   req.Remarks,
			Name:      req.Name,
			Model:     req.Model,
			Condition: req.Condition,
		})
		if err != nil {
			if err == ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toEntryResponse(e))
	}
}

// listEntriesHandler godoc
// @Summary Listar el log completo
// @Description Devuelve todos los eventos sin agrupar ni ordenar (el orden no está garantizado; los consumidores re-ordenan). Es la entrada cruda de la proyección y del export.
// @Tags entries
// @Produce json
// @Success 200 {array} entryResponse
// @Failure 500 {string} string "internal error"
// @Router /api/entries [get]
func listEntriesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]entryResponse, 0, len(items))
		for _, e := range items {
			out = append(out, toEntryResponse(e))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

func toEntryResponse(e Entry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		AssetID:   e.AssetID,
		Timestamp: e.Timestamp,
		Type:      e.Kind,
		Location:  e.Location,
		Remarks:   e.Remarks,
		Name:      e.Name,
		Model:     e.Model,
		Condition: e.Condition,
	}
}

// writeJSON está duplicado intencionalmente en handlers de distintos módulos
// para evitar crear paquetes/helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
