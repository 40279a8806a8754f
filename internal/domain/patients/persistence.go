package patients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vet-patient-tracker/internal/platform/logger"
	"vet-patient-tracker/internal/platform/metrics"
	"vet-patient-tracker/internal/ports/slots"
)

const DefaultKey = "pacientes"

type PersistenceOptions struct {
	Key     string        // default "pacientes"
	Timeout time.Duration // por escritura/lectura; default 3s
	Logger  logger.Logger
	Metrics *metrics.Metrics
}

// Persistence sincroniza el Store completo con un slot durable:
// lee una vez al arrancar y escribe un snapshot entero en cada cambio.
type Persistence struct {
	slot    slots.Slot
	key     string
	timeout time.Duration
	log     logger.Logger
	metrics *metrics.Metrics
}

func NewPersistence(slot slots.Slot, opts PersistenceOptions) *Persistence {
	key := opts.Key
	if key == "" {
		key = DefaultKey
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	return &Persistence{
		slot:    slot,
		key:     key,
		timeout: timeout,
		log:     log.With(map[string]any{"component": "persistence", "key": key}),
		metrics: opts.Metrics,
	}
}

func (p *Persistence) Key() string { return p.key }

// Hydrate carga el slot en el store. Si no existe o no se puede leer/parsear,
// el store queda vacío; no se devuelve error.
func (p *Persistence) Hydrate(ctx context.Context, store *Store) {
	records, err := p.read(ctx)
	switch {
	case err == nil:
		kept, dropped := uniqueByID(records)
		if dropped > 0 {
			p.log.Warn("dropped stored patients without id or with duplicated id", map[string]any{"dropped": dropped})
		}
		store.Load(kept)
		p.metrics.Hydration("ok")
		p.log.Info("patients hydrated", map[string]any{"count": len(kept)})
	case errors.Is(err, slots.ErrNotFound):
		store.Load(nil)
		p.metrics.Hydration("empty")
		p.log.Info("no stored patients, starting empty", nil)
	default:
		store.Load(nil)
		p.metrics.Hydration("invalid")
		p.log.Warn("stored patients unreadable, starting empty", map[string]any{"err": err})
	}
	p.metrics.Records(store.Len())
}

// Attach suscribe la persistencia a los cambios del store.
// Un fallo de escritura se registra pero no interrumpe la operación del usuario.
func (p *Persistence) Attach(store *Store) {
	store.Subscribe(func(records []Patient) {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()

		if err := p.Save(ctx, records); err != nil {
			p.log.Error("snapshot write failed", map[string]any{"err": err, "count": len(records)})
		}
		p.metrics.Records(len(records))
	})
}

// Save escribe la colección completa como arreglo JSON.
func (p *Persistence) Save(ctx context.Context, records []Patient) error {
	if records == nil {
		records = []Patient{}
	}
	b, err := json.Marshal(records)
	if err != nil {
		p.metrics.SnapshotWrite(err)
		return fmt.Errorf("encode patients: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = p.slot.Put(ctx, p.key, b)
	p.metrics.SnapshotWrite(err)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", p.key, err)
	}
	return nil
}

func (p *Persistence) read(ctx context.Context) ([]Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.slot.Get(ctx, p.key)
	if err != nil {
		return nil, err
	}

	// Un valor vacío cuenta como "sin datos"; "null" hidrata una lista vacía.
	var records []Patient
	if len(raw) == 0 {
		return nil, slots.ErrNotFound
	}
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode patients: %w", err)
	}
	return records, nil
}

// uniqueByID conserva la primera aparición de cada id no vacío.
func uniqueByID(records []Patient) ([]Patient, int) {
	seen := make(map[string]struct{}, len(records))
	out := make([]Patient, 0, len(records))
	for _, r := range records {
		if r.ID == "" {
			continue
		}
		if _, ok := seen[r.ID]; ok {
			continue
		}
		seen[r.ID] = struct{}{}
		out = append(out, r)
	}
	return out, len(records) - len(out)
}
