package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "deliveryzone/internal/delivery/context"
	"deliveryzone/internal/domain/entity"
	domainerrors "deliveryzone/internal/domain/errors"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/domain/repository"
	"deliveryzone/internal/domain/service"
	"deliveryzone/internal/errors"
	"deliveryzone/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// zoneService implements the ZoneUsecase interface.
type zoneService struct {
	txManager repository.TransactionManager
	zoneRepo  repository.ZoneRepository
	cache     service.ZoneCache
	metrics   service.Metrics
	logger    *slog.Logger
}

// ZoneServiceParams holds dependencies for ZoneService, injected by Fx.
type ZoneServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ZoneRepo  repository.ZoneRepository
	Cache     service.ZoneCache
	Metrics   service.Metrics
	Logger    *slog.Logger
}

// NewZoneService is the constructor for zoneService.
func NewZoneService(params ZoneServiceParams) usecase.ZoneUsecase {
	return &zoneService{
		txManager: params.TxManager,
		zoneRepo:  params.ZoneRepo,
		cache:     params.Cache,
		metrics:   params.Metrics,
		logger:    params.Logger,
	}
}

func (srv *zoneService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListZones returns active zones, served from the cache when possible.
func (srv *zoneService) ListZones(ctx context.Context) ([]*entity.Zone, error) {
	zones, hit, err := srv.cache.GetActiveZones(ctx)
	if err != nil {
		srv.log(ctx).Warn("Zone cache read failed", slog.Any("error", err))
	}
	srv.metrics.ZoneCacheAccess(hit)
	if hit {
		return zones, nil
	}

	zones, err = srv.zoneRepo.ListActiveZones(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active zones")
	}

	if err := srv.cache.SetActiveZones(ctx, zones); err != nil {
		srv.log(ctx).Warn("Zone cache write failed", slog.Any("error", err))
	}

	return zones, nil
}

// CreateZone validates and stores a new zone, then re-points restaurants inside it.
func (srv *zoneService) CreateZone(ctx context.Context, input *usecase.ZoneInput) (*entity.Zone, error) {
	zone := &entity.Zone{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		IsActive:    true,
	}
	if err := applyZoneInput(zone, input); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewZoneRepository().CreateZone(ctx, zone); err != nil {
			return mapZoneError(err, "failed to create zone")
		}

		return srv.refreshReferences(ctx, repoFactory, zone.ID)
	})
	if err != nil {
		return nil, err
	}

	srv.invalidate(ctx)
	srv.log(ctx).Info("Zone created", slog.String("zoneID", zone.ID.String()), slog.String("name", zone.Name))

	return zone, nil
}

// UpdateZone replaces a zone's name, description and polygon.
func (srv *zoneService) UpdateZone(ctx context.Context, zoneID uuid.UUID, input *usecase.ZoneInput) (*entity.Zone, error) {
	var updated *entity.Zone

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		zoneRepo := repoFactory.NewZoneRepository()

		zone, err := zoneRepo.FindZoneByID(ctx, zoneID)
		if err != nil {
			return mapZoneError(err, "failed to find zone")
		}
		if err := applyZoneInput(zone, input); err != nil {
			return err
		}
		if err := zoneRepo.UpdateZone(ctx, zone); err != nil {
			return mapZoneError(err, "failed to update zone")
		}
		updated = zone

		return srv.refreshReferences(ctx, repoFactory, zone.ID)
	})
	if err != nil {
		return nil, err
	}

	srv.invalidate(ctx)

	return updated, nil
}

// SetZoneActive soft-activates or deactivates a zone.
func (srv *zoneService) SetZoneActive(ctx context.Context, zoneID uuid.UUID, active bool) (*entity.Zone, error) {
	var updated *entity.Zone

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		zoneRepo := repoFactory.NewZoneRepository()

		if err := zoneRepo.SetZoneActive(ctx, zoneID, active); err != nil {
			return mapZoneError(err, "failed to update zone status")
		}
		if err := srv.refreshReferences(ctx, repoFactory, zoneID); err != nil {
			return err
		}

		zone, err := zoneRepo.FindZoneByID(ctx, zoneID)
		if err != nil {
			return mapZoneError(err, "failed to reload zone")
		}
		updated = zone

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.invalidate(ctx)

	return updated, nil
}

func (srv *zoneService) refreshReferences(ctx context.Context, repoFactory repository.RepositoryFactory, zoneID uuid.UUID) error {
	changed, err := repoFactory.NewRestaurantRepository().RefreshZoneReferences(ctx, zoneID)
	if err != nil {
		return errors.Wrap(err, "failed to refresh restaurant zone references")
	}
	if changed > 0 {
		srv.log(ctx).Info("Restaurant zone references refreshed",
			slog.String("zoneID", zoneID.String()),
			slog.Int64("changed", changed),
		)
	}

	return nil
}

func (srv *zoneService) invalidate(ctx context.Context) {
	if err := srv.cache.InvalidateActiveZones(ctx); err != nil {
		srv.log(ctx).Warn("Zone cache invalidation failed", slog.Any("error", err))
	}
}

func applyZoneInput(zone *entity.Zone, input *usecase.ZoneInput) error {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("zone name is required")
	}

	ring, err := geometry.NormalizeRing(input.Polygon)
	if err != nil {
		return domainerrors.ErrInvalidGeometry.WithDetails(errors.Cause(err).Error())
	}

	zone.Name = name
	zone.Description = input.Description
	zone.Polygon = ring

	return nil
}

func mapZoneError(err error, msg string) error {
	switch {
	case errors.Is(err, repository.ErrZoneNotFound):
		return domainerrors.ErrZoneNotFound
	case errors.Is(err, repository.ErrZoneNameConflict):
		return domainerrors.ErrZoneNameConflict
	default:
		return errors.Wrap(err, msg)
	}
}
