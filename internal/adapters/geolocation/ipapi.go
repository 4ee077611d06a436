package geolocation

import (
	"context"
	"fmt"

	"fauna-field-log/internal/platform/httpclient"
	"fauna-field-log/internal/ports/geo"
)

const DefaultIPAPIURL = "http://ip-api.com"

// IPAPI estima la posición a partir de la IP pública (GET {base}/json).
type IPAPI struct {
	client *httpclient.Client
}

func NewIPAPI(client *httpclient.Client) *IPAPI {
	return &IPAPI{client: client}
}

type ipapiResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

func (l *IPAPI) CurrentPosition(ctx context.Context) (geo.Position, error) {
	if l == nil || l.client == nil {
		return geo.Position{}, geo.ErrUnavailable
	}

	var resp ipapiResponse
	if err := l.client.GetJSON(ctx, "/json", &resp); err != nil {
		return geo.Position{}, fmt.Errorf("%w: %v", geo.ErrUnavailable, err)
	}
	if resp.Status != "success" {
		return geo.Position{}, fmt.Errorf("%w: status=%q %s", geo.ErrUnavailable, resp.Status, resp.Message)
	}
	return geo.Position{Latitude: resp.Lat, Longitude: resp.Lon}, nil
}
