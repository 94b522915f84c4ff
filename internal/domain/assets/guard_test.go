package assets

import (
	"testing"

	"asset-tracking/internal/domain/entries"
)

func TestEvaluateTransition_NewAssetAcceptedAsIs(t *testing.T) {
	proposed := entries.Entry{AssetID: "LAP-001", Kind: entries.KindEntry, Location: entries.LocationOffice}

	d, err := EvaluateTransition(nil, proposed, PathManual)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if d.Final.Kind != entries.KindEntry || d.Corrected {
		t.Fatalf("expected proposed accepted as-is, got %#v", d)
	}
}

func TestEvaluateTransition_ManualReentryRewrittenToExit(t *testing.T) {
	// Un activo ya ingresado no puede volver a ingresar: en la vía manual
	// el guard reescribe a exit, y como el evento reescrito difiere del
	// último, NO cuenta como duplicado.
	last := entries.Entry{AssetID: "LAP-001", Kind: entries.KindEntry, Name: "Drill", Model: "X1", Condition: entries.ConditionWorking}
	proposed := entries.Entry{AssetID: "LAP-001", Kind: entries.KindEntry, Name: "Drill", Model: "X1", Condition: entries.ConditionWorking}

	d, err := EvaluateTransition(&last, proposed, PathManual)
	if err != nil {
		t.Fatalf("expected rewrite, not error: %v", err)
	}
	if d.Final.Kind != entries.KindExit {
		t.Fatalf("expected kind rewritten to exit, got %s", d.Final.Kind)
	}
	if !d.Corrected {
		t.Fatalf("expected Corrected flag")
	}
}

func TestEvaluateTransition_ScanReentryIsNotRewritten(t *testing.T) {
	// En la vía scan la corrección no aplica: la Session ya bloquea el
	// selector en exit, así que un entry idéntico repetido es duplicado.
	last := entries.Entry{AssetID: "LAP-001", Kind: entries.KindEntry, Name: "Drill", Model: "X1", Condition: entries.ConditionWorking}
	proposed := entries.Entry{AssetID: "LAP-001", Kind: entries.KindEntry, Name: "Drill", Model: "X1", Condition: entries.ConditionWorking}

	_, err := EvaluateTransition(&last, proposed, PathScan)
	if err != ErrDuplicateTransition {
		t.Fatalf("expected ErrDuplicateTransition, got %v", err)
	}
}

func TestEvaluateTransition_DuplicateExitRejected(t *testing.T) {
	last := entries.Entry{AssetID: "LAP-001", Kind: entries.KindExit, Name: "Drill", Model: "X1", Condition: entries.ConditionWorking}
	proposed := entries.Entry{AssetID: "LAP-001", Kind: entries.KindExit, Name: "Drill", Model: "X1", Condition: entries.ConditionWorking}

	_, err := EvaluateTransition(&last, proposed, PathManual)
	if err != ErrDuplicateTransition {
		t.Fatalf("expected ErrDuplicateTransition, got %v", err)
	}
}

func TestEvaluateTransition_ChangedFieldIsNotDuplicate(t *testing.T) {
	last := entries.Entry{AssetID: "LAP-001", Kind: entries.KindExit, Name: "Drill", Model: "X1", Condition: entries.ConditionWorking}
	proposed := entries.Entry{AssetID: "LAP-001", Kind: entries.KindExit, Name: "Drill", Model: "X1", Condition: entries.ConditionDamaged}

	d, err := EvaluateTransition(&last, proposed, PathManual)
	if err != nil {
		t.Fatalf("expected allowed, got %v", err)
	}
	if d.Final.Condition != entries.ConditionDamaged {
		t.Fatalf("expected proposed condition kept, got %s", d.Final.Condition)
	}
}

func TestEvaluateTransition_AbsentFieldsCompareAsEmpty(t *testing.T) {
	// Eventos legacy sin name/model/condition: "" == "" cuenta como igual.
	last := entries.Entry{AssetID: "OLD-1", Kind: entries.KindExit}
	proposed := entries.Entry{AssetID: "OLD-1", Kind: entries.KindExit}

	_, err := EvaluateTransition(&last, proposed, PathScan)
	if err != ErrDuplicateTransition {
		t.Fatalf("expected ErrDuplicateTransition for legacy duplicate, got %v", err)
	}
}

func TestEvaluateTransition_CheckedOutCanReenter(t *testing.T) {
	last := entries.Entry{AssetID: "LAP-001", Kind: entries.KindExit, Name: "Drill"}
	proposed := entries.Entry{AssetID: "LAP-001", Kind: entries.KindEntry, Name: "Drill"}

	d, err := EvaluateTransition(&last, proposed, PathManual)
	if err != nil {
		t.Fatalf("expected entry after exit allowed, got %v", err)
	}
	if d.Final.Kind != entries.KindEntry || d.Corrected {
		t.Fatalf("expected entry kept without correction, got %#v", d)
	}
}

func TestEvaluateTransition_DeleteAllowedFromAnyState(t *testing.T) {
	for _, kind := range []entries.Kind{entries.KindEntry, entries.KindExit} {
		last := entries.Entry{AssetID: "LAP-001", Kind: kind, Name: "Drill"}
		proposed := entries.Entry{AssetID: "LAP-001", Kind: entries.KindDelete, Name: "Drill"}

		d, err := EvaluateTransition(&last, proposed, PathManual)
		if err != nil {
			t.Fatalf("expected delete allowed after %s, got %v", kind, err)
		}
		if d.Final.Kind != entries.KindDelete {
			t.Fatalf("expected delete kept, got %s", d.Final.Kind)
		}
	}
}
