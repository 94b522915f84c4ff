package export

import (
	"net/http"
	"time"

	"asset-tracking/internal/domain/assets"
	"asset-tracking/internal/domain/entries"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *entries.Service) {
	r.Get("/api/export", exportHandler(svc))
}

// exportHandler godoc
// @Summary Exportar historial a Excel
// @Description Descarga un .xlsx con todo el historial, una fila por evento. Incluye los activos con borrado lógico (Source=Deleted); el estado actual de cada activo se deriva de su último evento.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary
// @Failure 500 {string} string "internal error"
// @Router /api/export [get]
func exportHandler(svc *entries.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		evts, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		f, err := Workbook(assets.ProjectAll(evts))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+Filename(time.Now())+`"`)
		_ = f.Write(w)
	}
}
