package assets

import (
	"testing"
	"time"

	"asset-tracking/internal/domain/entries"
)

func at(min int) time.Time {
	return time.Date(2026, 3, 1, 10, min, 0, 0, time.UTC)
}

func TestProject_LastEventWins(t *testing.T) {
	evts := []entries.Entry{
		{ID: "1", AssetID: "LAP-001", Timestamp: at(1), Kind: entries.KindEntry, Location: entries.LocationOffice, Name: "A"},
		{ID: "2", AssetID: "LAP-001", Timestamp: at(2), Kind: entries.KindExit, Location: entries.LocationClient, Name: "B"},
	}

	out := Project(evts, "")
	if len(out) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(out))
	}
	if out[0].Status != StatusCheckedOut {
		t.Fatalf("expected checked_out, got %s", out[0].Status)
	}
	if out[0].Name != "B" {
		t.Fatalf("expected name B, got %q", out[0].Name)
	}
}

func TestProject_DeterministicOverPermutations(t *testing.T) {
	base := []entries.Entry{
		{ID: "1", AssetID: "LAP-001", Timestamp: at(1), Kind: entries.KindEntry, Location: entries.LocationOffice, Name: "Laptop", Model: "X1", Condition: entries.ConditionWorking},
		{ID: "2", AssetID: "LAP-001", Timestamp: at(3), Kind: entries.KindExit, Location: entries.LocationClient},
		{ID: "3", AssetID: "CAM-002", Timestamp: at(2), Kind: entries.KindEntry, Location: entries.LocationOffice, Name: "Camera"},
	}
	permuted := []entries.Entry{base[2], base[1], base[0]}

	a := Project(base, "")
	b := Project(permuted, "")

	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Status != b[i].Status ||
			a[i].Name != b[i].Name || a[i].Model != b[i].Model ||
			a[i].Condition != b[i].Condition {
			t.Fatalf("asset %d differs between permutations: %#v vs %#v", i, a[i], b[i])
		}
	}
}

func TestProject_TieBreakKeepsInputOrder(t *testing.T) {
	ts := at(5)
	evts := []entries.Entry{
		{ID: "first", AssetID: "LAP-001", Timestamp: ts, Kind: entries.KindEntry, Location: entries.LocationOffice},
		{ID: "second", AssetID: "LAP-001", Timestamp: ts, Kind: entries.KindExit, Location: entries.LocationOffice},
	}

	out := Project(evts, "")
	if len(out) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(out))
	}
	if out[0].Entries[0].ID != "first" || out[0].Entries[1].ID != "second" {
		t.Fatalf("expected stable order on equal timestamps, got %s then %s",
			out[0].Entries[0].ID, out[0].Entries[1].ID)
	}
	// El último en orden de llegada decide el estado.
	if out[0].Status != StatusCheckedOut {
		t.Fatalf("expected checked_out from last tied event, got %s", out[0].Status)
	}
}

func TestProject_SoftDeleteExcludedButReconstructable(t *testing.T) {
	evts := []entries.Entry{
		{ID: "1", AssetID: "LAP-001", Timestamp: at(1), Kind: entries.KindEntry, Location: entries.LocationOffice},
		{ID: "2", AssetID: "LAP-001", Timestamp: at(2), Kind: entries.KindDelete, Location: entries.LocationOffice, Remarks: "lost"},
		{ID: "3", AssetID: "CAM-002", Timestamp: at(3), Kind: entries.KindEntry, Location: entries.LocationOffice},
	}

	visible := Project(evts, "")
	if len(visible) != 1 || visible[0].ID != "CAM-002" {
		t.Fatalf("expected only CAM-002 visible, got %#v", visible)
	}

	all := ProjectAll(evts)
	if len(all) != 2 {
		t.Fatalf("expected deleted asset reconstructable, got %d assets", len(all))
	}
	for _, a := range all {
		if a.ID == "LAP-001" {
			if a.Status != StatusDeleted {
				t.Fatalf("expected deleted status, got %s", a.Status)
			}
			if len(a.Entries) != 2 {
				t.Fatalf("expected full history retained, got %d entries", len(a.Entries))
			}
		}
	}
}

func TestProject_SearchAndSort(t *testing.T) {
	evts := []entries.Entry{
		{ID: "1", AssetID: "A1", Timestamp: at(10), Kind: entries.KindEntry, Location: entries.LocationOffice},
		{ID: "2", AssetID: "B2", Timestamp: at(20), Kind: entries.KindEntry, Location: entries.LocationOffice},
	}

	// Substring case-insensitive: "a" matchea "A1" y nada más.
	out := Project(evts, "a")
	if len(out) != 1 || out[0].ID != "A1" {
		t.Fatalf("expected [A1], got %#v", out)
	}

	// Sin filtro: más reciente primero.
	out = Project(evts, "")
	if len(out) != 2 || out[0].ID != "B2" || out[1].ID != "A1" {
		t.Fatalf("expected [B2 A1] by last activity desc, got %#v", out)
	}
}

func TestProject_CarryForwardSkipsBlankFields(t *testing.T) {
	// Un evento posterior sin name/model no borra los valores anteriores.
	evts := []entries.Entry{
		{ID: "1", AssetID: "LAP-001", Timestamp: at(1), Kind: entries.KindEntry, Location: entries.LocationOffice, Name: "Laptop", Model: "X1", Condition: entries.ConditionWorking},
		{ID: "2", AssetID: "LAP-001", Timestamp: at(2), Kind: entries.KindExit, Location: entries.LocationClient, Condition: entries.ConditionDamaged},
	}

	out := Project(evts, "")
	if len(out) != 1 {
		t.Fatalf("expected 1 asset, got %d", len(out))
	}
	a := out[0]
	if a.Name != "Laptop" || a.Model != "X1" {
		t.Fatalf("expected carry-forward of name/model, got name=%q model=%q", a.Name, a.Model)
	}
	if a.Condition != entries.ConditionDamaged {
		t.Fatalf("expected latest condition damaged, got %q", a.Condition)
	}
}

func TestProject_EmptyLog(t *testing.T) {
	out := Project(nil, "")
	if len(out) != 0 {
		t.Fatalf("expected empty list, got %d", len(out))
	}
}

func TestLastFor(t *testing.T) {
	evts := []entries.Entry{
		{ID: "1", AssetID: "LAP-001", Timestamp: at(2), Kind: entries.KindExit, Location: entries.LocationOffice},
		{ID: "2", AssetID: "LAP-001", Timestamp: at(1), Kind: entries.KindEntry, Location: entries.LocationOffice},
	}

	last := LastFor(evts, "LAP-001")
	if last == nil || last.ID != "1" {
		t.Fatalf("expected last by timestamp (id 1), got %#v", last)
	}

	if LastFor(evts, "NOPE") != nil {
		t.Fatalf("expected nil for unknown asset")
	}
}
