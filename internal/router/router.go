package router

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "vet-patient-tracker/docs"
	mem "vet-patient-tracker/internal/adapters/storage/memory"
	"vet-patient-tracker/internal/domain/patients"
	"vet-patient-tracker/internal/middleware"
	"vet-patient-tracker/internal/platform/logger"
	"vet-patient-tracker/internal/platform/metrics"
	"vet-patient-tracker/internal/ports/slots"
)

type Options struct {
	Logger  logger.Logger    // nil => sin logs
	Metrics *metrics.Metrics // nil => sin /metrics

	// Opcional: si no viene, se usa un slot en memoria (no sobrevive reinicios).
	Slot           slots.Slot
	StorageKey     string
	StorageTimeout time.Duration

	// NewID reemplaza el generador de ids (tests).
	NewID func() string
}

// NewRouter hidrata el listado desde el slot y monta la UI, la API y las rutas operativas.
func NewRouter(ctx context.Context, opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	slot := opts.Slot
	if slot == nil {
		slot = mem.NewSlot()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log, opts.Metrics))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Hidratar antes de suscribir: la carga inicial no debe reescribir el slot.
	store := patients.NewStore()
	persist := patients.NewPersistence(slot, patients.PersistenceOptions{
		Key:     opts.StorageKey,
		Timeout: opts.StorageTimeout,
		Logger:  log,
		Metrics: opts.Metrics,
	})
	persist.Hydrate(ctx, store)
	persist.Attach(store)

	svc := patients.NewService(store, patients.ServiceOptions{
		Logger:  log,
		Metrics: opts.Metrics,
		NewID:   opts.NewID,
	})

	patients.RegisterRoutes(r, svc)
	patients.RegisterAPIRoutes(r, svc)

	return r
}
