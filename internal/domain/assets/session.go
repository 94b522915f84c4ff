package assets

import "asset-tracking/internal/domain/entries"

// Session es el value object inmutable que alimenta un modal de transición:
// se construye una sola vez al abrir el diálogo, con (assetID, último evento,
// vía), y se descarta al cerrarlo. Reemplaza los flags de formulario sueltos.
type Session struct {
	AssetID string

	// Kind preseleccionado para el formulario.
	InitialKind entries.Kind

	// KindLocked bloquea el selector de tipo. Solo pasa en la vía scan
	// sobre un activo ya ingresado: la única transición posible es exit.
	KindLocked bool

	// Prefill de los campos descriptivos, para que el usuario edite en
	// lugar de re-tipear.
	Name      string
	Model     string
	Condition entries.Condition
}

// NewSession arma la sesión del modal a partir del último evento conocido
// del activo (nil si es nuevo: entry editable, sin prefill).
func NewSession(assetID string, last *entries.Entry, path Path) Session {
	s := Session{
		AssetID:     assetID,
		InitialKind: entries.KindEntry,
	}
	if last == nil {
		return s
	}

	s.Name = last.Name
	s.Model = last.Model
	s.Condition = last.Condition

	if last.Kind == entries.KindEntry {
		s.InitialKind = entries.KindExit
		s.KindLocked = path == PathScan
	}

	return s
}
