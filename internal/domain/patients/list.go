package patients

const (
	EmptyTitle    = "No hay pacientes"
	EmptySubtitle = "Comienza agregando pacientes y aparecerán en este lugar"
	ConfirmDelete = "¿Deseas eliminar este paciente?"
)

type ListEntry struct {
	Patient   Patient
	Editing   bool // es el objetivo de edición actual
	EditURL   string
	DeleteURL string
}

type ListView struct {
	Empty    bool
	Title    string
	Subtitle string
	Entries  []ListEntry
}

// List presenta el store y expone las acciones editar/eliminar por entrada.
type List struct {
	store *Store
	form  *Form
}

func NewList(store *Store, form *Form) *List {
	return &List{store: store, form: form}
}

func (l *List) View() ListView {
	items := l.store.List()
	if len(items) == 0 {
		return ListView{Empty: true, Title: EmptyTitle, Subtitle: EmptySubtitle}
	}

	editingID := ""
	if t, ok := l.form.Target(); ok {
		editingID = t.ID
	}

	entries := make([]ListEntry, 0, len(items))
	for _, p := range items {
		entries = append(entries, ListEntry{
			Patient:   p,
			Editing:   p.ID == editingID,
			EditURL:   "/pacientes/" + p.ID + "/editar",
			DeleteURL: "/pacientes/" + p.ID + "/eliminar",
		})
	}

	return ListView{
		Title:    "Listado Pacientes",
		Subtitle: "Administra tus Pacientes y Citas",
		Entries:  entries,
	}
}

// Edit entrega el registro al formulario como objetivo de edición.
func (l *List) Edit(id string) error {
	p, ok := l.store.Get(id)
	if !ok {
		return ErrNotFound
	}
	l.form.LoadDraft(p)
	return nil
}

// Delete elimina solo con confirmación explícita del usuario.
func (l *List) Delete(id string, confirmed bool) error {
	if _, ok := l.store.Get(id); !ok {
		return ErrNotFound
	}
	if !confirmed {
		return ErrConfirmationRequired
	}
	if !l.store.Remove(id) {
		return ErrNotFound
	}
	return nil
}
