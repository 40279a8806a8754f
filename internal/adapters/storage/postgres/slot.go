package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"vet-patient-tracker/internal/ports/slots"
)

// Slot guarda cada key como una fila JSONB en la tabla slots.
type Slot struct {
	db *sql.DB
}

// NewSlot asegura la tabla y devuelve el slot.
func NewSlot(ctx context.Context, db *sql.DB) (*Slot, error) {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS slots (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return nil, fmt.Errorf("ensure slots table: %w", err)
	}
	return &Slot{db: db}, nil
}

func (s *Slot) Get(ctx context.Context, key string) ([]byte, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, slots.ErrNotFound
	}

	var v []byte
	err := s.db.QueryRowContext(ctx, `SELECT value::text FROM slots WHERE key = $1`, key).Scan(&v)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, slots.ErrNotFound
		}
		return nil, fmt.Errorf("select slot: %w", err)
	}
	return v, nil
}

// Put hace upsert. value debe ser JSON válido (JSONB lo exige).
func (s *Slot) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at
	`, strings.TrimSpace(key), string(value))
	if err != nil {
		return fmt.Errorf("upsert slot %s: %w", key, err)
	}
	return nil
}

func (s *Slot) Close() error { return s.db.Close() }
