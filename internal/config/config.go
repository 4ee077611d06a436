// Package config arma la configuración del servicio: defaults, luego un YAML
// opcional (FAUNA_CONFIG) y al final variables de entorno.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zonas IANA en imágenes sin /usr/share/zoneinfo

	"gopkg.in/yaml.v3"
)

const (
	StorageBolt     = "bbolt"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"

	GeoNone   = "none"
	GeoStatic = "static"
	GeoIPAPI  = "ipapi"
)

type Config struct {
	App     string        `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Geo     GeoConfig     `yaml:"geo"`
	Forms   FormsConfig   `yaml:"forms"`
	Logging LoggingConfig `yaml:"logging"`

	// Zona horaria usada para sellar fecha/hora y para las ventanas del resumen.
	Timezone string `yaml:"timezone"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"` // bbolt / sqlite
	DSN    string `yaml:"dsn"`  // postgres
}

type GeoConfig struct {
	Mode      string        `yaml:"mode"`
	URL       string        `yaml:"url"`
	Latitude  float64       `yaml:"latitude"`
	Longitude float64       `yaml:"longitude"`
	Timeout   time.Duration `yaml:"timeout"`
}

// FormsConfig acota los formularios de captura abiertos en memoria.
type FormsConfig struct {
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxOpen     int           `yaml:"max_open"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load usa el entorno del proceso.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom es Load con un lookup de variables inyectable.
func LoadFrom(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if path := strings.TrimSpace(getenv("FAUNA_CONFIG")); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		App: "fauna-field-log",
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Driver: StorageBolt,
			Path:   filepath.Join("data", "fauna.db"),
		},
		Geo: GeoConfig{
			Mode:    GeoNone,
			Timeout: 15 * time.Second,
		},
		Forms: FormsConfig{
			IdleTimeout: 30 * time.Minute,
			MaxOpen:     64,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Timezone: "Local",
	}
}

func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	float := func(key string, dst *float64) error {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = f
		return nil
	}

	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT: %w", err)
		}
		c.Server.Port = p
	}

	if v := strings.TrimSpace(getenv("FAUNA_FORM_IDLE_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("FAUNA_FORM_IDLE_TIMEOUT: %w", err)
		}
		c.Forms.IdleTimeout = d
	}
	if v := strings.TrimSpace(getenv("FAUNA_MAX_OPEN_FORMS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FAUNA_MAX_OPEN_FORMS: %w", err)
		}
		c.Forms.MaxOpen = n
	}

	str("APP_NAME", &c.App)
	str("FAUNA_STORAGE", &c.Storage.Driver)
	str("FAUNA_DATA_PATH", &c.Storage.Path)
	str("DB_DSN", &c.Storage.DSN)
	str("FAUNA_GEO_MODE", &c.Geo.Mode)
	str("FAUNA_GEO_URL", &c.Geo.URL)
	str("FAUNA_TIMEZONE", &c.Timezone)
	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)

	if err := float("FAUNA_GEO_LAT", &c.Geo.Latitude); err != nil {
		return err
	}
	return float("FAUNA_GEO_LON", &c.Geo.Longitude)
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port out of range: %d", c.Server.Port))
	}

	c.Storage.Driver = strings.ToLower(c.Storage.Driver)
	switch c.Storage.Driver {
	case StorageBolt, StorageSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			errs = append(errs, fmt.Errorf("storage.path is required for %s", c.Storage.Driver))
		}
	case StoragePostgres:
		if strings.TrimSpace(c.Storage.DSN) == "" {
			errs = append(errs, errors.New("storage.dsn (DB_DSN) is required for postgres"))
		}
	case StorageMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	c.Geo.Mode = strings.ToLower(c.Geo.Mode)
	switch c.Geo.Mode {
	case GeoNone, GeoIPAPI:
	case GeoStatic:
		if c.Geo.Latitude < -90 || c.Geo.Latitude > 90 || c.Geo.Longitude < -180 || c.Geo.Longitude > 180 {
			errs = append(errs, fmt.Errorf("geo position out of range: %v,%v", c.Geo.Latitude, c.Geo.Longitude))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown geo mode %q", c.Geo.Mode))
	}

	if c.Forms.IdleTimeout <= 0 {
		errs = append(errs, fmt.Errorf("forms.idle_timeout must be positive: %s", c.Forms.IdleTimeout))
	}
	if c.Forms.MaxOpen <= 0 {
		errs = append(errs, fmt.Errorf("forms.max_open must be positive: %d", c.Forms.MaxOpen))
	}

	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Location resuelve Timezone ("Local", "UTC" o un nombre IANA).
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", tz, err)
	}
	return loc, nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}
