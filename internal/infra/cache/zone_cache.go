// Package cache provides the active zone list cache backed by Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"deliveryzone/config"
	"deliveryzone/internal/domain/entity"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/domain/lifecycle"
	"deliveryzone/internal/domain/service"
	"deliveryzone/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const activeZonesKey = "deliveryzone:zones:active"

// cachedZone is the JSON form of a zone stored in Redis.
type cachedZone struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Polygon     geometry.Ring `json:"polygon"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

type redisZoneCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisZoneCache wraps an existing client.
func NewRedisZoneCache(client *redis.Client, ttl time.Duration) service.ZoneCache {
	return &redisZoneCache{client: client, ttl: ttl}
}

func (c *redisZoneCache) GetActiveZones(ctx context.Context) ([]*entity.Zone, bool, error) {
	data, err := c.client.Get(ctx, activeZonesKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	zones, err := decodeZones(data)
	if err != nil {
		return nil, false, err
	}

	return zones, true, nil
}

func (c *redisZoneCache) SetActiveZones(ctx context.Context, zones []*entity.Zone) error {
	data, err := encodeZones(zones)
	if err != nil {
		return err
	}

	return errors.WithStack(c.client.Set(ctx, activeZonesKey, data, c.ttl).Err())
}

func (c *redisZoneCache) InvalidateActiveZones(ctx context.Context) error {
	return errors.WithStack(c.client.Del(ctx, activeZonesKey).Err())
}

// noopZoneCache always misses.
type noopZoneCache struct{}

// NewNoopZoneCache returns a cache that never stores anything.
func NewNoopZoneCache() service.ZoneCache {
	return noopZoneCache{}
}

func (noopZoneCache) GetActiveZones(context.Context) ([]*entity.Zone, bool, error) {
	return nil, false, nil
}

func (noopZoneCache) SetActiveZones(context.Context, []*entity.Zone) error { return nil }

func (noopZoneCache) InvalidateActiveZones(context.Context) error { return nil }

func encodeZones(zones []*entity.Zone) ([]byte, error) {
	cached := make([]cachedZone, 0, len(zones))
	for _, z := range zones {
		cached = append(cached, cachedZone{
			ID:          z.ID,
			Name:        z.Name,
			Description: z.Description,
			Polygon:     z.Polygon,
			CreatedAt:   z.CreatedAt,
			UpdatedAt:   z.UpdatedAt,
		})
	}

	data, err := json.Marshal(cached)

	return data, errors.WithStack(err)
}

func decodeZones(data []byte) ([]*entity.Zone, error) {
	var cached []cachedZone
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached zones")
	}

	zones := make([]*entity.Zone, 0, len(cached))
	for _, c := range cached {
		zones = append(zones, &entity.Zone{
			ID:          c.ID,
			Name:        c.Name,
			Description: c.Description,
			Polygon:     c.Polygon,
			IsActive:    true,
			CreatedAt:   c.CreatedAt,
			UpdatedAt:   c.UpdatedAt,
		})
	}

	return zones, nil
}

// CacheParams holds dependencies for ZoneCache, injected by Fx
type CacheParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewZoneCache returns a Redis-backed cache when Redis is configured, a no-op cache otherwise.
func NewZoneCache(params CacheParams) service.ZoneCache {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, zone cache disabled")

		return NewNoopZoneCache()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			// A down Redis degrades to store reads, so start anyway.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed, zone cache will miss until it recovers",
					slog.String("addr", cfg.Addr),
					slog.Any("error", err),
				)

				return nil
			}
			params.Logger.Info("Redis zone cache connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisZoneCache(client, params.Config.DeliveryZone.ZoneCacheTTL)
}

// Module provides the zone cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewZoneCache),
)
