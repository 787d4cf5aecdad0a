package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

type request struct {
	BoundType string  `json:"boundType" validate:"required,oneof=point polygon circle radius"`
	Location  point   `json:"location"`
	Polygon   []point `json:"polygon" validate:"omitempty,dive"`
}

func ptr(v float64) *float64 { return &v }

func TestValidator_Validate(t *testing.T) {
	t.Parallel()

	v := New()

	t.Run("valid request", func(t *testing.T) {
		t.Parallel()

		err := v.Validate(&request{BoundType: "circle", Location: point{Lat: ptr(30), Lng: ptr(31)}})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		t.Parallel()

		err := v.Validate(&request{
			BoundType: "square",
			Location:  point{Lat: ptr(95), Lng: ptr(31)},
			Polygon:   []point{{Lat: ptr(1)}},
		})
		require.Error(t, err)

		var fieldErrs ValidationErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Contains(t, fieldErrs, FieldError{Field: "boundType", Rule: "oneof", Param: "point polygon circle radius"})
		assert.Contains(t, fieldErrs, FieldError{Field: "location.lat", Rule: "lte", Param: "90"})
		assert.Contains(t, fieldErrs, FieldError{Field: "polygon[0].lng", Rule: "required"})
		assert.Contains(t, err.Error(), "boundType failed oneof")
	})

	t.Run("non struct input", func(t *testing.T) {
		t.Parallel()

		assert.Error(t, v.Validate("not a struct"))
	})
}
