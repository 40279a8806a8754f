package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"vet-patient-tracker/internal/platform/logger"
)

type Driver string

const (
	DriverMemory   Driver = "memory"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
	DriverS3       Driver = "s3"
)

const (
	DefaultPort       = "8080"
	DefaultStorageKey = "pacientes"
	DefaultSQLitePath = "data/pacientes.db"
	DefaultTimeout    = 3 * time.Second
)

type Config struct {
	Port string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string

	Storage Storage
}

type Storage struct {
	Driver  Driver
	Key     string
	Timeout time.Duration

	SQLitePath  string
	PostgresDSN string
	S3          S3
}

type S3 struct {
	Bucket    string
	Region    string
	Endpoint  string
	Prefix    string
	PathStyle bool

	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Load lee un .env opcional (si existe) y luego las variables de entorno:
// - PORT (default 8080)
// - LOG_LEVEL, LOG_FORMAT, APP_NAME
// - STORAGE_DRIVER=memory|sqlite|postgres|s3 (default sqlite)
// - STORAGE_KEY (default pacientes), STORAGE_TIMEOUT (default 3s)
// - SQLITE_PATH, DB_DSN
// - S3_BUCKET, S3_REGION, S3_ENDPOINT, S3_PREFIX, S3_PATH_STYLE
// - AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, AWS_SESSION_TOKEN (opcionales)
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv construye la config desde un lookup arbitrario (os.Getenv en prod, map en tests).
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		Port:      get("PORT", DefaultPort),
		LogLevel:  logger.ParseLevel(getenv("LOG_LEVEL")),
		LogFormat: logger.ParseFormat(getenv("LOG_FORMAT")),
		AppName:   get("APP_NAME", "vet-patient-tracker"),
		Storage: Storage{
			Driver:      Driver(strings.ToLower(get("STORAGE_DRIVER", string(DriverSQLite)))),
			Key:         get("STORAGE_KEY", DefaultStorageKey),
			Timeout:     DefaultTimeout,
			SQLitePath:  get("SQLITE_PATH", DefaultSQLitePath),
			PostgresDSN: get("DB_DSN", ""),
			S3: S3{
				Bucket:          get("S3_BUCKET", ""),
				Region:          get("S3_REGION", "us-east-1"),
				Endpoint:        get("S3_ENDPOINT", ""),
				Prefix:          get("S3_PREFIX", ""),
				PathStyle:       strings.EqualFold(get("S3_PATH_STYLE", "false"), "true"),
				AccessKeyID:     get("AWS_ACCESS_KEY_ID", ""),
				SecretAccessKey: get("AWS_SECRET_ACCESS_KEY", ""),
				SessionToken:    get("AWS_SESSION_TOKEN", ""),
			},
		},
	}

	if v := get("STORAGE_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("STORAGE_TIMEOUT must be a positive duration, got %q", v)
		}
		cfg.Storage.Timeout = d
	}

	if err := cfg.Storage.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (s Storage) validate() error {
	switch s.Driver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if s.PostgresDSN == "" {
			return errors.New("DB_DSN required for postgres driver")
		}
	case DriverS3:
		if s.S3.Bucket == "" {
			return errors.New("S3_BUCKET required for s3 driver")
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", s.Driver)
	}
	return nil
}

// Addr devuelve la dirección de escucha del server.
func (c Config) Addr() string {
	return ":" + c.Port
}
