// Package storage elige el slot durable según la config.
package storage

import (
	"context"
	"fmt"
	"io"

	"vet-patient-tracker/internal/adapters/storage/memory"
	"vet-patient-tracker/internal/adapters/storage/postgres"
	"vet-patient-tracker/internal/adapters/storage/s3"
	"vet-patient-tracker/internal/adapters/storage/sqlite"
	"vet-patient-tracker/internal/platform/config"
	"vet-patient-tracker/internal/ports/slots"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open abre el slot del driver configurado. El closer libera la conexión
// subyacente (no-op para memory y s3).
func Open(ctx context.Context, cfg config.Storage) (slots.Slot, io.Closer, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return memory.NewSlot(), nopCloser{}, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case config.DriverPostgres:
		db, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		s, err := postgres.NewSlot(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return s, s, nil

	case config.DriverS3:
		s, err := s3.New(ctx, s3.Config{
			Bucket:          cfg.S3.Bucket,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			Prefix:          cfg.S3.Prefix,
			PathStyle:       cfg.S3.PathStyle,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			SessionToken:    cfg.S3.SessionToken,
		})
		if err != nil {
			return nil, nil, err
		}
		return s, nopCloser{}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
