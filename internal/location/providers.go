package location

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/oschwald/geoip2-golang"

	"ainadeul/pkg/domain"
	"ainadeul/pkg/requestcontext"
)

// GeoIPProvider locates the client by looking its IP up in a MaxMind City database.
type GeoIPProvider struct {
	reader *geoip2.Reader
}

// OpenGeoIP opens the database at path. An empty path returns (nil, nil):
// callers then run without a provider and every request is ErrUnavailable.
func OpenGeoIP(path string) (*GeoIPProvider, error) {
	if path == "" {
		return nil, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open geoip database: %w", err)
	}
	return &GeoIPProvider{reader: reader}, nil
}

// Position resolves the client IP carried in ctx. Each call performs a fresh
// lookup, so MaximumAge is always honoured; HighAccuracy has no effect.
func (p *GeoIPProvider) Position(ctx context.Context, _ Options) (domain.Coordinate, error) {
	if p == nil || p.reader == nil {
		return domain.Coordinate{}, ErrUnavailable
	}
	ip := net.ParseIP(requestcontext.ClientIP(ctx))
	if ip == nil {
		return domain.Coordinate{}, ErrDenied
	}
	record, err := p.reader.City(ip)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("geoip lookup: %w", err)
	}
	if record.Location.Latitude == 0 && record.Location.Longitude == 0 {
		return domain.Coordinate{}, ErrDenied
	}
	return domain.Coordinate{Lat: record.Location.Latitude, Lng: record.Location.Longitude}, nil
}

// Close releases the database.
func (p *GeoIPProvider) Close() error {
	if p == nil || p.reader == nil {
		return nil
	}
	return p.reader.Close()
}

// StaticProvider answers every request with a fixed coordinate or error after an
// optional delay. Used for local development and tests.
type StaticProvider struct {
	Coordinate domain.Coordinate
	Err        error
	Delay      time.Duration
}

func (p StaticProvider) Position(ctx context.Context, _ Options) (domain.Coordinate, error) {
	if p.Delay > 0 {
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return domain.Coordinate{}, ctx.Err()
		}
	}
	if p.Err != nil {
		return domain.Coordinate{}, p.Err
	}
	return p.Coordinate, nil
}
