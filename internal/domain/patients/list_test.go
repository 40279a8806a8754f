package patients

import (
	"errors"
	"testing"
)

func TestList_EmptyState(t *testing.T) {
	store := NewStore()
	v := NewList(store, NewForm(store)).View()

	if !v.Empty || v.Title != EmptyTitle || len(v.Entries) != 0 {
		t.Fatalf("expected empty state, got %#v", v)
	}
}

func TestList_EntriesInOrderWithActions(t *testing.T) {
	store := seeded("a", "b")
	form := NewForm(store)
	l := NewList(store, form)

	if err := l.Edit("b"); err != nil {
		t.Fatalf("Edit: %v", err)
	}

	v := l.View()
	if v.Empty || len(v.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %#v", v)
	}
	if v.Entries[0].Patient.ID != "a" || v.Entries[1].Patient.ID != "b" {
		t.Fatalf("unexpected order")
	}
	if v.Entries[0].Editing || !v.Entries[1].Editing {
		t.Fatalf("only b should be marked as editing")
	}
	if v.Entries[1].EditURL != "/pacientes/b/editar" || v.Entries[1].DeleteURL != "/pacientes/b/eliminar" {
		t.Fatalf("unexpected action urls: %#v", v.Entries[1])
	}
	if tgt, ok := form.Target(); !ok || tgt.ID != "b" {
		t.Fatalf("form should target b")
	}
}

func TestList_DeleteRequiresConfirmation(t *testing.T) {
	store := seeded("a", "b", "c")
	l := NewList(store, NewForm(store))

	if err := l.Delete("b", false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if store.Len() != 3 {
		t.Fatalf("unconfirmed delete must not mutate")
	}

	if err := l.Delete("b", true); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if got := ids(store.List()); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("unexpected records after delete: %v", got)
	}
}

func TestList_UnknownIDs(t *testing.T) {
	store := seeded("a")
	l := NewList(store, NewForm(store))

	if err := l.Edit("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on edit, got %v", err)
	}
	if err := l.Delete("nope", true); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
}
