package memory

import (
	"context"
	"errors"
	"testing"

	"vet-patient-tracker/internal/ports/slots"
)

func TestSlot_GetMissing(t *testing.T) {
	s := NewSlot()
	if _, err := s.Get(context.Background(), "pacientes"); !errors.Is(err, slots.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSlot_PutGetCopies(t *testing.T) {
	s := NewSlot()
	ctx := context.Background()

	in := []byte(`[{"id":"1"}]`)
	if err := s.Put(ctx, "pacientes", in); err != nil {
		t.Fatalf("Put: %v", err)
	}
	in[0] = 'X'

	out, err := s.Get(ctx, "pacientes")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(out) != `[{"id":"1"}]` {
		t.Fatalf("slot must keep its own copy, got %s", out)
	}

	if err := s.Put(ctx, "pacientes", []byte(`[]`)); err != nil {
		t.Fatalf("Put overwrite: %v", err)
	}
	out, _ = s.Get(ctx, "pacientes")
	if string(out) != `[]` {
		t.Fatalf("expected overwrite, got %s", out)
	}
}
