package entries

import "time"

// Entry es un evento inmutable del log: una vez insertado nunca se modifica
// ni se elimina. El borrado de un activo también es un Entry (kind=delete),
// no una fila menos.
type Entry struct {
	ID      string
	AssetID string // no es único: muchos eventos comparten AssetID

	Timestamp time.Time // única clave de orden del log

	Kind     Kind
	Location Location

	Remarks string

	// Descripción del activo físico. Opcionales: eventos viejos pueden
	// venir sin estos campos y el esquema los tolera ausentes.
	Name      string
	Model     string
	Condition Condition
}
