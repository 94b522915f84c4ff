package assets

import (
	"errors"

	"asset-tracking/internal/domain/entries"
)

var (
	ErrDuplicateTransition = errors.New("duplicate transition")
)

// Path indica por qué vía llegó el usuario al formulario de transición.
type Path string

const (
	PathScan   Path = "scan"
	PathManual Path = "manual"
)

// Decision es el resultado del guard sobre un evento propuesto.
type Decision struct {
	// Final es el evento a insertar. Puede diferir del propuesto si hubo
	// auto-corrección del kind.
	Final entries.Entry

	// Corrected marca que el kind propuesto fue reescrito.
	Corrected bool
}

// EvaluateTransition decide si el evento propuesto puede insertarse, dado el
// último evento conocido del activo (last == nil si el activo es nuevo).
//
// Reglas, en orden:
//
//  1. Activo nuevo: se acepta tal cual.
//  2. Re-entry por la vía manual: si last.Kind == entry y proposed.Kind ==
//     entry, el kind se reescribe a exit ANTES de comparar duplicados. Un
//     activo ya ingresado no puede volver a ingresar; se asume que el
//     usuario quiso registrar la salida. En la vía scan esto no hace falta:
//     la Session ya bloquea el selector en exit.
//  3. Duplicado: mismo kind+name+model+condition que last (los campos
//     ausentes comparan como "") => ErrDuplicateTransition y no se inserta
//     nada.
//
// Es lógica advisory previa al append: el store no revalida, y dos clientes
// concurrentes que lean el mismo last todavía pueden colar dos entry
// consecutivos en el log. La proyección los muestra tal como quedaron.
func EvaluateTransition(last *entries.Entry, proposed entries.Entry, path Path) (Decision, error) {
	if last == nil {
		return Decision{Final: proposed}, nil
	}

	d := Decision{Final: proposed}
	if path == PathManual && last.Kind == entries.KindEntry && proposed.Kind == entries.KindEntry {
		d.Final.Kind = entries.KindExit
		d.Corrected = true
	}

	if sameTransition(*last, d.Final) {
		return Decision{}, ErrDuplicateTransition
	}

	return d, nil
}

// sameTransition compara los campos que definen una transición repetida.
// Location y remarks no cuentan: repetir la misma salida con otro remark
// sigue siendo la misma transición.
func sameTransition(last, next entries.Entry) bool {
	return last.Kind == next.Kind &&
		last.Name == next.Name &&
		last.Model == next.Model &&
		last.Condition == next.Condition
}
