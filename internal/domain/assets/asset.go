package assets

import (
	"time"

	"asset-tracking/internal/domain/entries"
)

// Status es el estado derivado de un activo. Nunca se persiste: se
// reconstruye entero desde el log en cada lectura.
type Status string

const (
	StatusUnknown    Status = "unknown"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusDeleted    Status = "deleted"
)

// StatusFor traduce el último evento del activo a su estado.
func StatusFor(last entries.Entry) Status {
	switch last.Kind {
	case entries.KindEntry:
		return StatusCheckedIn
	case entries.KindExit:
		return StatusCheckedOut
	case entries.KindDelete:
		return StatusDeleted
	}
	return StatusUnknown
}

// Asset es una proyección por AssetID: existe solo mientras exista al menos
// un evento con ese ID en el log, y no tiene identidad propia fuera de él.
type Asset struct {
	ID string

	// Historial completo, orden por Timestamp ascendente; los empates
	// conservan el orden de llegada al log.
	Entries []entries.Entry

	Status Status

	// Último valor no vacío visto en el historial para cada campo, de modo
	// que un evento posterior sin name no borre el name anterior.
	Name      string
	Model     string
	Condition entries.Condition
}

// LastEntry devuelve el último evento del historial. Los grupos nunca están
// vacíos: se derivan de los propios eventos.
func (a Asset) LastEntry() entries.Entry {
	return a.Entries[len(a.Entries)-1]
}

func (a Asset) LastActivity() time.Time {
	return a.LastEntry().Timestamp
}
