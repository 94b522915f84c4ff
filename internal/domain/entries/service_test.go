package entries

import (
	"context"
	"errors"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	log []Entry
}

func (r *testRepo) Append(ctx context.Context, e Entry) error {
	if e.ID == "" {
		return errors.New("repo: id required")
	}
	for _, existing := range r.log {
		if existing.ID == e.ID {
			return errors.New("repo: already exists")
		}
	}
	r.log = append(r.log, e)
	return nil
}

func (r *testRepo) ListAll(ctx context.Context) ([]Entry, error) {
	out := make([]Entry, len(r.log))
	copy(out, r.log)
	return out, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Append_GeneratesIDAndTimestamp(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	now := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	e, err := svc.Append(context.Background(), AppendInput{
		AssetID:  "LAP-001",
		Kind:     KindEntry,
		Location: LocationOffice,
		Name:     "  Laptop  ",
		Model:    "X1",
	})
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if e.ID == "" {
		t.Fatalf("expected generated ID")
	}
	if !e.Timestamp.Equal(now) {
		t.Fatalf("expected timestamp %v, got %v", now, e.Timestamp)
	}
	if e.Name != "Laptop" {
		t.Fatalf("expected trimmed name, got %q", e.Name)
	}
	if len(repo.log) != 1 {
		t.Fatalf("expected 1 persisted entry, got %d", len(repo.log))
	}
}

func TestService_Append_KeepsClientIDAndTimestamp(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	ts := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	e, err := svc.Append(context.Background(), AppendInput{
		ID:        "client-id-1",
		AssetID:   "LAP-001",
		Timestamp: ts,
		Kind:      KindExit,
		Location:  LocationClient,
	})
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if e.ID != "client-id-1" {
		t.Fatalf("expected client ID preserved, got %q", e.ID)
	}
	if !e.Timestamp.Equal(ts) {
		t.Fatalf("expected client timestamp preserved, got %v", e.Timestamp)
	}
}

func TestService_Append_RejectsInvalidInput(t *testing.T) {
	svc := NewService(&testRepo{})

	cases := []struct {
		name string
		in   AppendInput
	}{
		{"missing asset id", AppendInput{Kind: KindEntry, Location: LocationOffice}},
		{"blank asset id", AppendInput{AssetID: "   ", Kind: KindEntry, Location: LocationOffice}},
		{"unknown kind", AppendInput{AssetID: "A1", Kind: Kind("checkout"), Location: LocationOffice}},
		{"missing kind", AppendInput{AssetID: "A1", Location: LocationOffice}},
		{"unknown location", AppendInput{AssetID: "A1", Kind: KindEntry, Location: Location("warehouse")}},
		{"unknown condition", AppendInput{AssetID: "A1", Kind: KindEntry, Location: LocationOffice, Condition: Condition("broken")}},
	}

	for _, tc := range cases {
		if _, err := svc.Append(context.Background(), tc.in); err != ErrInvalidInput {
			t.Fatalf("%s: expected ErrInvalidInput, got %v", tc.name, err)
		}
	}
}

func TestService_Append_AllowsEmptyOptionalFields(t *testing.T) {
	// Eventos legacy: sin name/model/condition.
	svc := NewService(&testRepo{})

	e, err := svc.Append(context.Background(), AppendInput{
		AssetID:  "OLD-1",
		Kind:     KindEntry,
		Location: LocationOffice,
	})
	if err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	if e.Name != "" || e.Model != "" || e.Condition != "" {
		t.Fatalf("expected optional fields empty, got %#v", e)
	}
}

func TestService_Append_SurfacesRepoError(t *testing.T) {
	repo := &testRepo{}
	svc := NewService(repo)

	_, err := svc.Append(context.Background(), AppendInput{
		ID:       "dup",
		AssetID:  "A1",
		Kind:     KindEntry,
		Location: LocationOffice,
	})
	if err != nil {
		t.Fatalf("first Append returned error: %v", err)
	}

	_, err = svc.Append(context.Background(), AppendInput{
		ID:       "dup",
		AssetID:  "A1",
		Kind:     KindExit,
		Location: LocationOffice,
	})
	if err == nil {
		t.Fatalf("expected repo error on duplicated id")
	}
}
