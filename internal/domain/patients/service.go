package patients

import (
	"errors"
	"strings"
	"sync"

	"vet-patient-tracker/internal/platform/logger"
	"vet-patient-tracker/internal/platform/metrics"
)

const (
	MsgCreated  = "Paciente agregado correctamente"
	MsgUpdated  = "Paciente actualizado correctamente"
	MsgDeleted  = "Paciente eliminado correctamente"
	MsgRequired = "Todos los campos son obligatorios"
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice es una notificación transitoria: se muestra una vez en el próximo render.
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

// Page es todo lo que necesita la vista: formulario, listado y aviso pendiente.
type Page struct {
	Draft       Fields
	EditingID   string
	SubmitLabel string
	List        ListView
	Notice      *Notice
}

// Service serializa cada interacción del usuario (un "turno" del event loop)
// sobre el store, el formulario compartido y el listado.
type Service struct {
	mu      sync.Mutex
	store   *Store
	form    *Form
	list    *List
	notice  *Notice
	newID   func() string
	log     logger.Logger
	metrics *metrics.Metrics
}

type ServiceOptions struct {
	Logger  logger.Logger
	Metrics *metrics.Metrics
	// NewID reemplaza el generador de ids (tests).
	NewID func() string
}

func NewService(store *Store, opts ServiceOptions) *Service {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	form := NewForm(store)
	if opts.NewID != nil {
		form.newID = opts.NewID
	}

	return &Service{
		store:   store,
		form:    form,
		list:    NewList(store, form),
		newID:   form.newID,
		log:     log.With(map[string]any{"component": "patients"}),
		metrics: opts.Metrics,
	}
}

// Page arma la vista y consume el aviso pendiente.
func (s *Service) Page() Page {
	s.mu.Lock()
	defer s.mu.Unlock()

	pg := Page{
		Draft:       s.form.Draft(),
		SubmitLabel: s.form.SubmitLabel(),
		List:        s.list.View(),
		Notice:      s.notice,
	}
	if t, ok := s.form.Target(); ok {
		pg.EditingID = t.ID
	}
	s.notice = nil
	return pg
}

// DraftState es el borrador compartido tal como lo expone la API.
type DraftState struct {
	Draft       Fields `json:"borrador"`
	EditingID   string `json:"editando,omitempty"`
	SubmitLabel string `json:"accion"`
}

func (s *Service) Draft() DraftState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draftLocked()
}

func (s *Service) UpdateField(name, value string) (DraftState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.form.UpdateField(strings.TrimSpace(name), value); err != nil {
		return DraftState{}, err
	}
	return s.draftLocked(), nil
}

// SubmitDraft aplica los campos enviados por el formulario HTML y hace submit.
// Con error de validación el borrador queda con lo enviado para corregirlo.
func (s *Service) SubmitDraft(fields Fields) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.form.SetFields(fields)
	return s.submitLocked(s.form, true)
}

// SubmitCurrent hace submit del borrador tal como está.
func (s *Service) SubmitCurrent() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitLocked(s.form, true)
}

func (s *Service) Edit(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.list.Edit(id)
}

func (s *Service) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Reset()
}

// Delete borra desde el listado; sin confirmación no muta nada.
func (s *Service) Delete(id string, confirmed bool) error {
	return s.delete(id, confirmed, true)
}

// Remove es el borrado explícito de la API (sin aviso en la página).
func (s *Service) Remove(id string) error {
	return s.delete(id, true, false)
}

func (s *Service) delete(id string, confirmed, notify bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.list.Delete(id, confirmed); err != nil {
		return err
	}
	// Si se borró el que se estaba editando, el formulario vuelve a "agregar".
	if t, ok := s.form.Target(); ok && t.ID == id {
		s.form.Reset()
	}
	s.metrics.Mutation("remove")
	s.notify(notify, NoticeSuccess, MsgDeleted)
	s.log.Info("patient deleted", map[string]any{"id": id})
	return nil
}

// Create registra un paciente sin tocar el borrador compartido.
func (s *Service) Create(fields Fields) (Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.detachedForm()
	f.SetFields(fields)
	res, err := s.submitLocked(f, false)
	if err != nil {
		return Patient{}, err
	}
	return res.Patient, nil
}

// Update reemplaza los campos de un paciente existente sin tocar el borrador compartido.
func (s *Service) Update(id string, fields Fields) (Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.store.Get(id)
	if !ok {
		return Patient{}, ErrNotFound
	}

	f := s.detachedForm()
	f.LoadDraft(current)
	f.SetFields(fields)
	res, err := s.submitLocked(f, false)
	if err != nil {
		return Patient{}, err
	}
	return res.Patient, nil
}

func (s *Service) Get(id string) (Patient, error) {
	p, ok := s.store.Get(id)
	if !ok {
		return Patient{}, ErrNotFound
	}
	return p, nil
}

func (s *Service) List() []Patient {
	return s.store.List()
}

func (s *Service) detachedForm() *Form {
	f := NewForm(s.store)
	f.newID = s.newID
	return f
}

// submitLocked aplica el submit; con notify el resultado queda como aviso
// para el próximo render de la página (las llamadas de la API no lo usan).
func (s *Service) submitLocked(f *Form, notify bool) (Result, error) {
	res, err := f.Submit()
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			s.metrics.ValidationFailed()
			s.notify(notify, NoticeError, MsgRequired)
			s.log.Debug("patient form rejected", map[string]any{"missing": verr.Missing})
		}
		return Result{}, err
	}

	switch res.Action {
	case ActionCreated:
		s.metrics.Mutation("add")
		s.notify(notify, NoticeSuccess, MsgCreated)
	case ActionUpdated:
		s.metrics.Mutation("replace")
		s.notify(notify, NoticeSuccess, MsgUpdated)
	}
	s.log.Info("patient saved", map[string]any{"id": res.Patient.ID, "action": string(res.Action)})
	return res, nil
}

func (s *Service) notify(enabled bool, kind NoticeKind, msg string) {
	if enabled {
		s.notice = &Notice{Kind: kind, Message: msg}
	}
}

func (s *Service) draftLocked() DraftState {
	st := DraftState{
		Draft:       s.form.Draft(),
		SubmitLabel: s.form.SubmitLabel(),
	}
	if t, ok := s.form.Target(); ok {
		st.EditingID = t.ID
	}
	return st
}
