package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"asset-tracking/internal/domain/assets"
)

const sheetName = "Asset Tracking"

var header = []any{
	"Asset ID", "Date", "Time", "Type", "Location",
	"Remarks", "Name", "Model", "Source", "Current Status",
}

// Workbook arma el .xlsx del historial: una fila por evento, agrupadas por
// activo. Los activos borrados van incluidos con Source=Deleted; el borrado
// es lógico y el reporte es el lugar donde ese historial se sigue viendo.
func Workbook(all []assets.Asset) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	if err := setRow(f, 1, header); err != nil {
		return nil, err
	}

	row := 2
	for _, a := range all {
		source := "Active"
		if a.Status == assets.StatusDeleted {
			source = "Deleted"
		}
		status := statusLabel(a.Status)

		for _, e := range a.Entries {
			cells := []any{
				a.ID,
				e.Timestamp.Format("2006-01-02"),
				e.Timestamp.Format("15:04:05"),
				title(string(e.Kind)),
				title(string(e.Location)),
				e.Remarks,
				e.Name,
				e.Model,
				source,
				status,
			}
			if err := setRow(f, row, cells); err != nil {
				return nil, err
			}
			row++
		}
	}

	return f, nil
}

// Filename replica el nombre de archivo de descarga del reporte.
func Filename(now time.Time) string {
	return fmt.Sprintf("asset-tracking-%s.xlsx", now.Format("2006-01-02-15-04"))
}

func setRow(f *excelize.File, row int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheetName, cell, &cells)
}

// statusLabel usa las etiquetas de la planilla, no los valores de wire.
func statusLabel(s assets.Status) string {
	switch s {
	case assets.StatusCheckedIn:
		return "In Stock"
	case assets.StatusCheckedOut:
		return "Checked Out"
	case assets.StatusDeleted:
		return "Deleted"
	}
	return "Unknown"
}

func title(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
