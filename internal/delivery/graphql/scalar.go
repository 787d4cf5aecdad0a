package graphql

import (
	"encoding/json"
	"strconv"

	"deliveryzone/internal/domain/geometry"

	gql "github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// coordinatesScalar accepts arbitrarily nested lists of numbers, e.g. a single
// ring [[lng, lat], ...] or a polygon [[[lng, lat], ...]]. Anything else is
// rejected during validation.
var coordinatesScalar = gql.NewScalar(gql.ScalarConfig{
	Name:        "Coordinates",
	Description: "Nested lists of numbers in GeoJSON order: [lng, lat] pairs, a ring of pairs or a list of rings.",
	Serialize: func(value any) any {
		return value
	},
	ParseValue:   parseCoordinateValue,
	ParseLiteral: parseCoordinateLiteral,
})

func parseCoordinateValue(value any) any {
	switch v := value.(type) {
	case []any:
		out := make([]any, 0, len(v))
		for _, item := range v {
			parsed := parseCoordinateValue(item)
			if parsed == nil {
				return nil
			}
			out = append(out, parsed)
		}

		return out
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil
		}

		return f
	default:
		return nil
	}
}

func parseCoordinateLiteral(valueAST ast.Value) any {
	switch v := valueAST.(type) {
	case *ast.ListValue:
		out := make([]any, 0, len(v.Values))
		for _, item := range v.Values {
			parsed := parseCoordinateLiteral(item)
			if parsed == nil {
				return nil
			}
			out = append(out, parsed)
		}

		return out
	case *ast.FloatValue:
		return parseNumber(v.Value)
	case *ast.IntValue:
		return parseNumber(v.Value)
	default:
		return nil
	}
}

func parseNumber(s string) any {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return f
}

// boundsToRing flattens Coordinates input into UI-ordered vertices. A polygon
// contributes its outer ring only; pairs that are not two numbers are skipped.
func boundsToRing(raw any) []geometry.LatLng {
	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return nil
	}

	if outer, ok := list[0].([]any); ok && len(outer) > 0 {
		if _, nested := outer[0].([]any); nested {
			list = outer
		}
	}

	ring := make([]geometry.LatLng, 0, len(list))
	for _, item := range list {
		pair, ok := item.([]any)
		if !ok || len(pair) < 2 {
			continue
		}
		lng, okLng := pair[0].(float64)
		lat, okLat := pair[1].(float64)
		if !okLng || !okLat {
			continue
		}
		ring = append(ring, geometry.LatLng{Lat: lat, Lng: lng})
	}

	return ring
}

func pointCoordinates(p geometry.Point) []float64 {
	return []float64{p.Lon(), p.Lat()}
}

func polygonCoordinates(ring geometry.Ring) [][][]float64 {
	outer := make([][]float64, 0, len(ring))
	for _, p := range ring {
		outer = append(outer, pointCoordinates(p))
	}

	return [][][]float64{outer}
}
