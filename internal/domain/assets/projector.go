package assets

import (
	"sort"
	"strings"

	"asset-tracking/internal/domain/entries"
)

// Project pliega el log completo (sin orden garantizado) en la lista de
// activos visibles: agrupa por AssetID, ordena cada grupo por Timestamp con
// sort estable, deriva el estado del último evento y excluye los activos
// cuyo último evento es delete (soft-delete: el historial sigue en el log).
//
// search filtra por substring case-insensitive sobre el AssetID. El
// resultado queda ordenado por última actividad descendente.
func Project(evts []entries.Entry, search string) []Asset {
	q := strings.ToLower(strings.TrimSpace(search))

	out := make([]Asset, 0)
	for _, a := range ProjectAll(evts) {
		if a.Status == StatusDeleted {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(a.ID), q) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// ProjectAll proyecta todos los activos, incluidos los borrados (para
// export e historial). Un log vacío da una lista vacía, no un error.
func ProjectAll(evts []entries.Entry) []Asset {
	groups := make(map[string][]entries.Entry)
	for _, e := range evts {
		groups[e.AssetID] = append(groups[e.AssetID], e)
	}

	out := make([]Asset, 0, len(groups))
	for id, g := range groups {
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].Timestamp.Before(g[j].Timestamp)
		})

		a := Asset{
			ID:      id,
			Entries: g,
			Status:  StatusFor(g[len(g)-1]),
		}

		// Carry-forward: del último evento hacia atrás, el primer valor
		// no vacío de cada campo gana.
		for i := len(g) - 1; i >= 0; i-- {
			if a.Name == "" {
				a.Name = g[i].Name
			}
			if a.Model == "" {
				a.Model = g[i].Model
			}
			if a.Condition == "" {
				a.Condition = g[i].Condition
			}
			if a.Name != "" && a.Model != "" && a.Condition != "" {
				break
			}
		}

		out = append(out, a)
	}

	// Más reciente primero. Desempate por ID para que el resultado sea
	// determinista ante cualquier permutación del log de entrada.
	sort.Slice(out, func(i, j int) bool {
		ti, tj := out[i].LastActivity(), out[j].LastActivity()
		if ti.Equal(tj) {
			return out[i].ID < out[j].ID
		}
		return ti.After(tj)
	})

	return out
}

// LastFor devuelve el último evento de un activo, o nil si el activo no
// tiene eventos todavía.
func LastFor(evts []entries.Entry, assetID string) *entries.Entry {
	var group []entries.Entry
	for _, e := range evts {
		if e.AssetID == assetID {
			group = append(group, e)
		}
	}
	if len(group) == 0 {
		return nil
	}

	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Timestamp.Before(group[j].Timestamp)
	})

	last := group[len(group)-1]
	return &last
}
