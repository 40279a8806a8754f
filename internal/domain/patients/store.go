package patients

import "sync"

// Store es la colección ordenada de pacientes (fuente de verdad de la UI).
// El orden de inserción es el orden de despliegue.
type Store struct {
	mu        sync.RWMutex
	items     []Patient
	observers []func([]Patient)
}

func NewStore() *Store {
	return &Store{items: make([]Patient, 0)}
}

// List devuelve una copia en orden de inserción.
func (s *Store) List() []Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) Get(id string) (Patient, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i >= 0 {
		return s.items[i], true
	}
	return Patient{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) Add(p Patient) {
	s.mu.Lock()
	s.items = append(s.items, p)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
}

// Replace sustituye el registro con ese id en su misma posición.
// Sin match es no-op y devuelve false.
func (s *Store) Replace(id string, p Patient) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	p.ID = id
	s.items[i] = p
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// Remove borra el registro con ese id. Sin match es no-op y devuelve false.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.notify(snap)
	return true
}

// Load reemplaza toda la colección sin notificar (hidratación al arrancar).
func (s *Store) Load(records []Patient) {
	items := make([]Patient, len(records))
	copy(items, records)

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Subscribe registra un observer que recibe un snapshot después de cada
// mutación efectiva. Corre en la misma goroutine que la mutación.
func (s *Store) Subscribe(fn func([]Patient)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) notify(snap []Patient) {
	s.mu.RLock()
	observers := make([]func([]Patient), len(s.observers))
	copy(observers, s.observers)
	s.mu.RUnlock()

	for _, fn := range observers {
		fn(snap)
	}
}

func (s *Store) indexLocked(id string) int {
	for i, p := range s.items {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []Patient {
	out := make([]Patient, len(s.items))
	copy(out, s.items)
	return out
}
