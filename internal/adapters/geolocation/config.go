package geolocation

import (
	"fmt"

	"fauna-field-log/internal/config"
	"fauna-field-log/internal/platform/httpclient"
	"fauna-field-log/internal/ports/geo"
)

// FromConfig arma el Locator configurado. GeoNone devuelve nil: el service lo
// trata como "sin geolocalización".
func FromConfig(cfg config.GeoConfig) (geo.Locator, error) {
	switch cfg.Mode {
	case config.GeoNone, "":
		return nil, nil
	case config.GeoStatic:
		return Static{Position: geo.Position{Latitude: cfg.Latitude, Longitude: cfg.Longitude}}, nil
	case config.GeoIPAPI:
		base := cfg.URL
		if base == "" {
			base = DefaultIPAPIURL
		}
		client, err := httpclient.New(base, cfg.Timeout)
		if err != nil {
			return nil, fmt.Errorf("geo client: %w", err)
		}
		return NewIPAPI(client), nil
	default:
		return nil, fmt.Errorf("unknown geo mode %q", cfg.Mode)
	}
}
