package assets

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"asset-tracking/internal/domain/entries"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *entries.Service) {
	r.Route("/api/assets", func(ar chi.Router) {
		ar.Get("/", listAssetsHandler(svc))

		ar.Route("/{assetID}", func(sr chi.Router) {
			sr.Get("/session", sessionHandler(svc))
			sr.Post("/transitions", transitionHandler(svc))
			sr.Post("/delete", deleteAssetHandler(svc))
		})
	})
}

// entryResponse está duplicado con el módulo entries a propósito: cada
// módulo es dueño de su forma de wire y todavía no amerita un helper común.
type entryResponse struct {
	ID        string            `json:"id"`
	AssetID   string            `json:"assetId"`
	Timestamp time.Time         `json:"timestamp"`
	Type      entries.Kind      `json:"type"`
	Location  entries.Location  `json:"location"`
	Remarks   string            `json:"remarks,omitempty"`
	Name      string            `json:"name,omitempty"`
	Model     string            `json:"model,omitempty"`
	Condition entries.Condition `json:"condition,omitempty"`
}

// assetResponse representa un activo proyectado desde el log.
type assetResponse struct {
	ID           string            `json:"id"`
	Entries      []entryResponse   `json:"entries"`
	Status       Status            `json:"status"`
	LastActivity time.Time         `json:"lastActivity"`
	Name         string            `json:"name,omitempty"`
	Model        string            `json:"model,omitempty"`
	Condition    entries.Condition `json:"condition,omitempty"`
}

// sessionResponse es el prefill del modal de transición.
type sessionResponse struct {
	AssetID     string            `json:"assetId"`
	InitialType entries.Kind      `json:"initialType"`
	TypeLocked  bool              `json:"typeLocked"`
	Name        string            `json:"name,omitempty"`
	Model       string            `json:"model,omitempty"`
	Condition   entries.Condition `json:"condition,omitempty"`
}

// transitionRequest es el cuerpo de una transición evaluada por el guard.
type transitionRequest struct {
	Type      entries.Kind      `json:"type" enums:"entry,exit"`
	Location  entries.Location  `json:"location" enums:"office,client"`
	Remarks   string            `json:"remarks"`
	Name      string            `json:"name"`
	Model     string            `json:"model"`
	Condition entries.Condition `json:"condition" enums:"working,damaged"`
	Path      Path              `json:"path" enums:"scan,manual"`
}

// transitionResponse devuelve el evento insertado y si el guard corrigió
// el tipo propuesto.
type transitionResponse struct {
	Entry     entryResponse `json:"entry"`
	Corrected bool          `json:"corrected"`
}

type deleteRequest struct {
	Remarks string `json:"remarks"`
}

// listAssetsHandler godoc
// @Summary Listar activos proyectados
// @Description Reconstruye el estado de cada activo desde el log completo: agrupa por assetId, ordena por timestamp y toma estado y descripción del historial. Los activos con último evento delete no aparecen (soft-delete). Orden: última actividad descendente.
// @Tags assets
// @Produce json
// @Param q query string false "Filtro por substring del assetId (case-insensitive)"
// @Success 200 {array} assetResponse
// @Failure 500 {string} string "internal error"
// @Router /api/assets [get]
func listAssetsHandler(svc *entries.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evts, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		projected := Project(evts, r.URL.Query().Get("q"))

		out := make([]assetResponse, 0, len(projected))
		for _, a := range projected {
			out = append(out, toAssetResponse(a))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// sessionHandler godoc
// @Summary Sesión de modal para un activo
// @Description Arma el value object que alimenta el modal de transición: tipo preseleccionado, si el selector queda bloqueado (vía scan sobre un activo ingresado) y el prefill de name/model/condition desde el último evento.
// @Tags assets
// @Produce json
// @Param assetID path string true "ID del activo (dato del QR)"
// @Param path query string false "Vía de llegada: scan o manual. Por defecto scan"
// @Success 200 {object} sessionResponse
// @Failure 500 {string} string "internal error"
// @Router /api/assets/{assetID}/session [get]
func sessionHandler(svc *entries.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetID := chi.URLParam(r, "assetID")

		evts, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		path := PathScan
		if v := strings.TrimSpace(r.URL.Query().Get("path")); v != "" {
			path = Path(v)
		}

		s := NewSession(assetID, LastFor(evts, assetID), path)

		writeJSON(w, http.StatusOK, sessionResponse{
			AssetID:     s.AssetID,
			InitialType: s.InitialKind,
			TypeLocked:  s.KindLocked,
			Name:        s.Name,
			Model:       s.Model,
			Condition:   s.Condition,
		})
	}
}

// transitionHandler godoc
// @Summary Registrar una transición con guard
// @Description Evalúa el evento propuesto contra el último evento del activo antes de insertarlo: en la vía manual un entry sobre un activo ya ingresado se corrige a exit; una transición idéntica a la última se rechaza como duplicada sin escribir nada. Ver POST /api/entries para el append sin guard.
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "ID del activo"
// @Param payload body transitionRequest true "Transición propuesta"
// @Success 201 {object} transitionResponse
// @Failure 400 {string} string "invalid json / campos inválidos"
// @Failure 409 {string} string "duplicate"
// @Failure 500 {string} string "internal error"
// @Router /api/assets/{assetID}/transitions [post]
func transitionHandler(svc *entries.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetID := strings.TrimSpace(chi.URLParam(r, "assetID"))

		var req transitionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		evts, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		path := req.Path
		if path == "" {
			path = PathScan
		}

		proposed := entries.Entry{
			AssetID:   assetID,
			Kind:      req.Type,
			Location:  req.Location,
			Remarks:   strings.TrimSpace(req.Remarks),
			Name:      strings.TrimSpace(req.Name),
			Model:     strings.TrimSpace(req.Model),
			Condition: req.Condition,
		}

		d, err := EvaluateTransition(LastFor(evts, assetID), proposed, path)
		if err == ErrDuplicateTransition {
			http.Error(w, "duplicate", http.StatusConflict)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		e, err := svc.Append(r.Context(), entries.AppendInput{
			AssetID:   d.Final.AssetID,
			Kind:      d.Final.Kind,
			Location:  d.Final.Location,
			Remarks:   d.Final.Remarks,
			Name:      d.Final.Name,
			Model:     d.Final.Model,
			Condition: d.Final.Condition,
		})
		if err != nil {
			if err == entries.ErrInvalidInput {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, transitionResponse{
			Entry:     toEntryResponse(e),
			Corrected: d.Corrected,
		})
	}
}

// deleteAssetHandler godoc
// @Summary Borrado lógico de un activo
// @Description Inserta un evento delete para el activo; el historial completo queda en el log y sigue saliendo en el export. Requiere un motivo en remarks.
// @Tags assets
// @Accept json
// @Produce json
// @Param assetID path string true "ID del activo"
// @Param payload body deleteRequest true "Motivo del borrado"
// @Success 201 {object} entryResponse
// @Failure 400 {string} string "remarks required"
// @Failure 404 {string} string "asset not found"
// @Failure 500 {string} string "internal error"
// @Router /api/assets/{assetID}/delete [post]
func deleteAssetHandler(svc *entries.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetID := strings.TrimSpace(chi.URLParam(r, "assetID"))

		var req deleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Remarks) == "" {
			http.Error(w, "remarks required", http.StatusBadRequest)
			return
		}

		evts, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		last := LastFor(evts, assetID)
		if last == nil {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}

		// El evento delete arrastra la descripción del último evento para
		// que el historial exportado quede completo.
		e, err := svc.Append(r.Context(), entries.AppendInput{
			AssetID:   assetID,
			Kind:      entries.KindDelete,
			Location:  last.Location,
			Remarks:   strings.TrimSpace(req.Remarks),
			Name:      last.Name,
			Model:     last.Model,
			Condition: last.Condition,
		})
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toEntryResponse(e))
	}
}

func toAssetResponse(a Asset) assetResponse {
	out := assetResponse{
		ID:           a.ID,
		Entries:      make([]entryResponse, 0, len(a.Entries)),
		Status:       a.Status,
		LastActivity: a.LastActivity(),
		Name:         a.Name,
		Model:        a.Model,
		Condition:    a.Condition,
	}
	for _, e := range a.Entries {
		out.Entries = append(out.Entries, toEntryResponse(e))
	}
	return out
}

func toEntryResponse(e entries.Entry) entryResponse {
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
