package patients

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func fullFields() Fields {
	return Fields{Nombre: "Rex", Propietario: "Ana", Email: "a@x.com", Fecha: "2024-01-01", Sintomas: "cough"}
}

func TestForm_SubmitNew_AppendsAndClearsDraft(t *testing.T) {
	store := NewStore()
	f := NewForm(store)
	f.newID = seqIDs()

	f.SetFields(fullFields())
	res, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit error: %v", err)
	}
	if res.Action != ActionCreated || res.Patient.ID != "id-1" {
		t.Fatalf("unexpected result: %#v", res)
	}
	if store.Len() != 1 {
		t.Fatalf("expected exactly one record, got %d", store.Len())
	}
	if f.Draft() != (Fields{}) {
		t.Fatalf("draft must be cleared, got %#v", f.Draft())
	}
	if f.SubmitLabel() != LabelAdd {
		t.Fatalf("expected add label, got %q", f.SubmitLabel())
	}
}

func TestForm_DefaultIDsAreUnique(t *testing.T) {
	store := NewStore()
	f := NewForm(store)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		f.SetFields(fullFields())
		res, err := f.Submit()
		if err != nil {
			t.Fatalf("Submit error: %v", err)
		}
		if res.Patient.ID == "" || seen[res.Patient.ID] {
			t.Fatalf("duplicate or empty id %q", res.Patient.ID)
		}
		seen[res.Patient.ID] = true
	}
}

func TestForm_SubmitWithEmptyField_RejectsAndKeepsDraft(t *testing.T) {
	for _, name := range FieldNames {
		t.Run(name, func(t *testing.T) {
			store := NewStore()
			f := NewForm(store)

			fields := fullFields()
			fields.Set(name, "   ")
			f.SetFields(fields)

			_, err := f.Submit()
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) || !reflect.DeepEqual(verr.Missing, []string{name}) {
				t.Fatalf("expected missing [%s], got %#v", name, verr)
			}
			if store.Len() != 0 {
				t.Fatalf("store must not change on validation error")
			}
			if f.Draft() != fields {
				t.Fatalf("draft must be preserved for correction")
			}
		})
	}
}

func TestForm_EditReplacesInPlace(t *testing.T) {
	store := NewStore()
	f := NewForm(store)
	f.newID = seqIDs()

	for _, name := range []string{"Rex", "Milo", "Luna"} {
		fields := fullFields()
		fields.Nombre = name
		f.SetFields(fields)
		if _, err := f.Submit(); err != nil {
			t.Fatalf("seed submit: %v", err)
		}
	}

	milo, _ := store.Get("id-2")
	f.LoadDraft(milo)
	if !f.Editing() || f.SubmitLabel() != LabelEdit {
		t.Fatalf("expected edit mode")
	}
	if f.Draft().Nombre != "Milo" {
		t.Fatalf("draft should carry the record fields, got %#v", f.Draft())
	}

	if err := f.UpdateField(FieldSintomas, "vomits"); err != nil {
		t.Fatalf("UpdateField: %v", err)
	}
	res, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Action != ActionUpdated || res.Patient.ID != "id-2" {
		t.Fatalf("unexpected result: %#v", res)
	}

	items := store.List()
	if got := ids(items); !reflect.DeepEqual(got, []string{"id-1", "id-2", "id-3"}) {
		t.Fatalf("positions changed: %v", got)
	}
	if items[1].Sintomas != "vomits" || items[1].Nombre != "Milo" {
		t.Fatalf("record not replaced: %#v", items[1])
	}
	if items[0].Nombre != "Rex" || items[2].Nombre != "Luna" {
		t.Fatalf("other records changed: %#v", items)
	}
	if f.Editing() || f.Draft() != (Fields{}) {
		t.Fatalf("draft and target must be cleared after edit")
	}
}

func TestForm_LoadDraftDiscardsUnsavedDraft(t *testing.T) {
	store := NewStore()
	f := NewForm(store)

	f.SetFields(Fields{Nombre: "half typed"})
	f.LoadDraft(rex())

	if f.Draft() != rex().Fields() {
		t.Fatalf("expected draft replaced by record fields, got %#v", f.Draft())
	}
}

func TestForm_UpdateFieldUnknown(t *testing.T) {
	f := NewForm(NewStore())
	if err := f.UpdateField("raza", "labrador"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestForm_SubmitTrimsValues(t *testing.T) {
	store := NewStore()
	f := NewForm(store)

	f.SetFields(Fields{Nombre: " Rex ", Propietario: "Ana", Email: "a@x.com ", Fecha: "2024-01-01", Sintomas: "cough\n"})
	res, err := f.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Patient.Nombre != "Rex" || res.Patient.Email != "a@x.com" || res.Patient.Sintomas != "cough" {
		t.Fatalf("values should be trimmed: %#v", res.Patient)
	}
}

func TestForm_ResetLeavesEditMode(t *testing.T) {
	f := NewForm(NewStore())
	f.LoadDraft(rex())
	f.Reset()

	if f.Editing() || f.Draft() != (Fields{}) {
		t.Fatalf("Reset should clear draft and target")
	}
}
