package postgres

import (
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// PostGIS geometry columns cross the driver boundary as GeoJSON text so the
// orb types never need a custom Scanner/Valuer.

func encodePoint(p geometry.Point) (*string, error) {
	if geometry.IsUnset(p) {
		return nil, nil
	}

	return encodeGeometry(orb.Point(p))
}

func encodeRing(ring geometry.Ring) (*string, error) {
	if len(ring) == 0 {
		return nil, nil
	}

	return encodeGeometry(orb.Polygon{orb.Ring(ring)})
}

func encodeGeometry(g orb.Geometry) (*string, error) {
	raw, err := geojson.NewGeometry(g).MarshalJSON()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode geojson")
	}
	s := string(raw)

	return &s, nil
}

func decodePoint(raw *string) (geometry.Point, error) {
	if raw == nil || *raw == "" {
		return geometry.Point{}, nil
	}

	g, err := decodeGeometry(*raw)
	if err != nil {
		return geometry.Point{}, err
	}

	p, ok := g.(orb.Point)
	if !ok {
		return geometry.Point{}, errors.Errorf("expected Point geometry, got %s", g.GeoJSONType())
	}

	return p, nil
}

func decodeRing(raw *string) (geometry.Ring, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}

	g, err := decodeGeometry(*raw)
	if err != nil {
		return nil, err
	}

	poly, ok := g.(orb.Polygon)
	if !ok || len(poly) == 0 {
		return nil, errors.Errorf("expected Polygon geometry, got %s", g.GeoJSONType())
	}

	return geometry.CloseRing(poly[0]), nil
}

func decodeGeometry(raw string) (orb.Geometry, error) {
	g, err := geojson.UnmarshalGeometry([]byte(raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode geojson")
	}

	return g.Geometry(), nil
}
