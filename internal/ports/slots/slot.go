package slots

import (
	"context"
	"errors"
)

// ErrNotFound indica que la key nunca se escribió.
var ErrNotFound = errors.New("slot not found")

// Slot es un almacén durable clave/valor de un solo valor por key.
// El valor es opaco para el adapter (los pacientes lo usan como JSON).
type Slot interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}
