package config

import (
	"testing"
	"time"

	"deliveryzone/internal/domain/constants"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"deliveryZone": map[string]any{
			"maxRadiusMeters":     50000,
			"circleIndexVertices": 64,
			"zoneCacheTTL":        "5m",
		},
		"persistence": map[string]any{
			"driver": "postgres",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DELIVERYZONE_MAXRADIUSMETERS", want: "deliveryZone.maxRadiusMeters"},
		{envKey: "DELIVERYZONE_ZONECACHETTL", want: "deliveryZone.zoneCacheTTL"},
		{envKey: "PERSISTENCE_DRIVER", want: "persistence.driver"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.PersistenceDriverPostgres, cfg.Persistence.Driver)
	assert.InDelta(t, defaultMaxRadiusMeters, cfg.DeliveryZone.MaxRadiusMeters, 0)
	assert.Equal(t, defaultCircleIndexVertices, cfg.DeliveryZone.CircleIndexVertices)
	assert.Equal(t, defaultZoneCacheTTL, cfg.DeliveryZone.ZoneCacheTTL)

	cfg = &Config{}
	cfg.Persistence.Driver = constants.PersistenceDriverMemory
	cfg.DeliveryZone.MaxRadiusMeters = 1200
	cfg.DeliveryZone.CircleIndexVertices = 16
	cfg.DeliveryZone.ZoneCacheTTL = time.Minute
	applyDefaults(cfg)

	assert.Equal(t, constants.PersistenceDriverMemory, cfg.Persistence.Driver)
	assert.InDelta(t, 1200, cfg.DeliveryZone.MaxRadiusMeters, 0)
	assert.Equal(t, 16, cfg.DeliveryZone.CircleIndexVertices)
	assert.Equal(t, time.Minute, cfg.DeliveryZone.ZoneCacheTTL)
}
