package patients

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"vet-patient-tracker/internal/ports/slots"
)

// -------------------------
// Test slot (in-memory)
// -------------------------

type testSlot struct {
	values  map[string][]byte
	puts    int
	failPut error
	failGet error
}

func newTestSlot() *testSlot {
	return &testSlot{values: map[string][]byte{}}
}

func (s *testSlot) Get(ctx context.Context, key string) ([]byte, error) {
	if s.failGet != nil {
		return nil, s.failGet
	}
	v, ok := s.values[key]
	if !ok {
		return nil, slots.ErrNotFound
	}
	return v, nil
}

func (s *testSlot) Put(ctx context.Context, key string, value []byte) error {
	s.puts++
	if s.failPut != nil {
		return s.failPut
	}
	s.values[key] = append([]byte(nil), value...)
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestPersistence_WritesFullSnapshotOnEveryChange(t *testing.T) {
	slot := newTestSlot()
	store := NewStore()
	p := NewPersistence(slot, PersistenceOptions{})
	p.Attach(store)

	a := rex()
	b := rex()
	b.ID = "p2"
	store.Add(a)
	store.Add(b)
	store.Remove("p1")
	store.Remove("missing") // no-op: no escribe

	if slot.puts != 3 {
		t.Fatalf("expected 3 writes, got %d", slot.puts)
	}

	var stored []Patient
	if err := json.Unmarshal(slot.values["pacientes"], &stored); err != nil {
		t.Fatalf("slot value is not a json array: %v", err)
	}
	if len(stored) != 1 || stored[0].ID != "p2" {
		t.Fatalf("unexpected stored snapshot: %#v", stored)
	}
}

func TestPersistence_EmptyCollectionIsArray(t *testing.T) {
	slot := newTestSlot()
	store := NewStore()
	NewPersistence(slot, PersistenceOptions{}).Attach(store)

	store.Add(rex())
	store.Remove("p1")

	if got := string(slot.values["pacientes"]); got != "[]" {
		t.Fatalf("expected [] for empty collection, got %s", got)
	}
}

func TestPersistence_RoundTrip(t *testing.T) {
	slot := newTestSlot()
	original := seeded("a", "b", "c")
	p := NewPersistence(slot, PersistenceOptions{Key: "clinica"})

	if err := p.Save(context.Background(), original.List()); err != nil {
		t.Fatalf("Save: %v", err)
	}

	hydrated := NewStore()
	p.Hydrate(context.Background(), hydrated)

	if !reflect.DeepEqual(hydrated.List(), original.List()) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", hydrated.List(), original.List())
	}
}

func TestPersistence_ReadsOriginalFormat(t *testing.T) {
	slot := newTestSlot()
	slot.values["pacientes"] = []byte(`[{"nombre":"Rex","propietario":"Ana","email":"a@x.com","fecha":"2024-01-01","sintomas":"cough","id":"1704067200000"}]`)

	store := NewStore()
	NewPersistence(slot, PersistenceOptions{}).Hydrate(context.Background(), store)

	got, ok := store.Get("1704067200000")
	if !ok || got.Nombre != "Rex" || got.Sintomas != "cough" {
		t.Fatalf("unexpected hydrated record: %#v", store.List())
	}
}

func TestPersistence_HydrateFallsBackToEmpty(t *testing.T) {
	cases := map[string]func(*testSlot){
		"absent":      func(s *testSlot) {},
		"corrupt":     func(s *testSlot) { s.values["pacientes"] = []byte(`{not json`) },
		"wrong shape": func(s *testSlot) { s.values["pacientes"] = []byte(`{"nombre":"Rex"}`) },
		"empty value": func(s *testSlot) { s.values["pacientes"] = []byte{} },
		"read error":  func(s *testSlot) { s.failGet = errors.New("disk gone") },
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			slot := newTestSlot()
			setup(slot)

			store := seeded("stale")
			NewPersistence(slot, PersistenceOptions{}).Hydrate(context.Background(), store)

			if store.Len() != 0 {
				t.Fatalf("expected empty store, got %d records", store.Len())
			}
		})
	}
}

func TestPersistence_HydrateDropsDuplicatedIDs(t *testing.T) {
	slot := newTestSlot()
	slot.values["pacientes"] = []byte(`[{"id":"a","nombre":"uno"},{"id":"a","nombre":"dos"},{"id":"","nombre":"sin id"},{"id":"b","nombre":"tres"}]`)

	store := NewStore()
	NewPersistence(slot, PersistenceOptions{}).Hydrate(context.Background(), store)

	items := store.List()
	if len(items) != 2 || items[0].Nombre != "uno" || items[1].ID != "b" {
		t.Fatalf("unexpected records: %#v", items)
	}
}

func TestPersistence_WriteFailureDoesNotBreakMutation(t *testing.T) {
	slot := newTestSlot()
	slot.failPut = errors.New("quota exceeded")
	store := NewStore()
	NewPersistence(slot, PersistenceOptions{}).Attach(store)

	store.Add(rex())

	if store.Len() != 1 {
		t.Fatalf("mutation must still apply when the write fails")
	}
	if slot.puts != 1 {
		t.Fatalf("expected one attempted write, got %d", slot.puts)
	}
}

func TestPersistence_SaveWrapsSlotError(t *testing.T) {
	slot := newTestSlot()
	boom := errors.New("boom")
	slot.failPut = boom

	err := NewPersistence(slot, PersistenceOptions{}).Save(context.Background(), nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped slot error, got %v", err)
	}
}
