package patients

import "github.com/google/uuid"

const (
	LabelAdd  = "Agregar Paciente"
	LabelEdit = "Editar Paciente"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
)

// Result es lo que produjo un Submit exitoso.
type Result struct {
	Action  Action
	Patient Patient
}

// Form mantiene el borrador y, si se está editando, el registro objetivo.
// No es seguro para uso concurrente; Service lo serializa.
type Form struct {
	store  *Store
	newID  func() string
	draft  Fields
	target *Patient
}

func NewForm(store *Store) *Form {
	return &Form{
		store: store,
		newID: uuid.NewString,
	}
}

// LoadDraft copia el registro al borrador y lo fija como objetivo de edición.
// Un borrador sin guardar se descarta.
func (f *Form) LoadDraft(p Patient) {
	target := p
	f.target = &target
	f.draft = p.Fields()
}

func (f *Form) UpdateField(name, value string) error {
	if !f.draft.Set(name, value) {
		return ErrUnknownField
	}
	return nil
}

func (f *Form) SetFields(fields Fields) {
	f.draft = fields
}

func (f *Form) Draft() Fields { return f.draft }

func (f *Form) Target() (Patient, bool) {
	if f.target == nil {
		return Patient{}, false
	}
	return *f.target, true
}

func (f *Form) Editing() bool { return f.target != nil }

func (f *Form) SubmitLabel() string {
	if f.Editing() {
		return LabelEdit
	}
	return LabelAdd
}

// Reset limpia borrador y objetivo (cancelar edición).
func (f *Form) Reset() {
	f.draft = Fields{}
	f.target = nil
}

// Submit valida el borrador y lo aplica al store.
// Con campos vacíos devuelve *ValidationError y conserva el borrador.
func (f *Form) Submit() (Result, error) {
	if missing := f.draft.Missing(); len(missing) > 0 {
		return Result{}, &ValidationError{Missing: missing}
	}

	fields := f.draft.Trimmed()

	if f.target != nil {
		p := fields.WithID(f.target.ID)
		f.store.Replace(p.ID, p)
		f.Reset()
		return Result{Action: ActionUpdated, Patient: p}, nil
	}

	p := fields.WithID(f.newID())
	f.store.Add(p)
	f.Reset()
	return Result{Action: ActionCreated, Patient: p}, nil
}
