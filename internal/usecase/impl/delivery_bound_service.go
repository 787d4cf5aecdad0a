// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"deliveryzone/config"
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

const (
	outcomeSuccess = "success"
	outcomeError   = "error"
)

// deliveryBoundService implements the DeliveryBoundUsecase interface.
type deliveryBoundService struct {
	zoneRepo        repository.ZoneRepository
	restaurantRepo  repository.RestaurantRepository
	publisher       service.EventPublisher
	metrics         service.Metrics
	maxRadiusMeters float64
	circleVertices  int
	logger          *slog.Logger
}

// DeliveryBoundServiceParams holds dependencies for DeliveryBoundService, injected by Fx.
type DeliveryBoundServiceParams struct {
	fx.In

	ZoneRepo       repository.ZoneRepository
	RestaurantRepo repository.RestaurantRepository
	Publisher      service.EventPublisher
	Metrics        service.Metrics
	Config         *config.Config
	Logger         *slog.Logger
}

// NewDeliveryBoundService is the constructor for deliveryBoundService.
func NewDeliveryBoundService(params DeliveryBoundServiceParams) usecase.DeliveryBoundUsecase {
	return &deliveryBoundService{
		zoneRepo:        params.ZoneRepo,
		restaurantRepo:  params.RestaurantRepo,
		publisher:       params.Publisher,
		metrics:         params.Metrics,
		maxRadiusMeters: params.Config.DeliveryZone.MaxRadiusMeters,
		circleVertices:  params.Config.DeliveryZone.CircleIndexVertices,
		logger:          params.Logger,
	}
}

func (srv *deliveryBoundService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateDeliveryBoundsAndLocation validates the proposal, resolves the enclosing zone and
// persists location, bound and zone reference in one write.
func (srv *deliveryBoundService) UpdateDeliveryBoundsAndLocation(ctx context.Context, input *usecase.UpdateBoundsInput) (*usecase.UpdateBoundsResult, error) {
	boundType, err := entity.ParseBoundType(input.BoundType)
	if err != nil {
		return srv.reject(ctx, input, domainerrors.ErrInvalidGeometry.WithDetails(errors.Cause(err).Error()+": "+input.BoundType)), nil
	}

	location := input.Location.Point()
	if geometry.IsUnset(location) || !geometry.ValidPoint(location) {
		return srv.reject(ctx, input, domainerrors.ErrInvalidGeometry.WithDetails("location must be a valid, non-zero coordinate")), nil
	}

	// Advisory: a restaurant may own a valid bound outside every zone.
	zone, err := srv.zoneRepo.FindZoneContaining(ctx, location)
	if err != nil {
		srv.metrics.BoundUpdated(string(boundType), outcomeError)

		return nil, errors.Wrap(err, "failed to find zone containing location")
	}
	srv.metrics.ZoneLookup(zone != nil)

	bound, appErr := srv.buildBound(boundType, input)
	if appErr != nil {
		return srv.reject(ctx, input, appErr), nil
	}

	if bound.Type() == entity.BoundTypePoint && zone == nil {
		return srv.reject(ctx, input, domainerrors.ErrNoDeliveryAreaDefined), nil
	}

	area := entity.EffectiveArea(bound, location, srv.circleVertices)
	if bound.Type() == entity.BoundTypeCircle && area == nil {
		return srv.reject(ctx, input, domainerrors.ErrInvalidGeometry.WithDetails("circle extends beyond valid coordinates")), nil
	}

	restaurant, err := srv.restaurantRepo.UpdateDeliveryBound(ctx, repository.BoundUpdate{
		RestaurantID: input.RestaurantID,
		Location:     location,
		Bound:        bound,
		Area:         area,
		ZoneID:       zoneID(zone),
	})
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return srv.reject(ctx, input, domainerrors.ErrRestaurantNotFound), nil
		}
		srv.metrics.BoundUpdated(string(boundType), outcomeError)

		return nil, errors.Wrap(err, "failed to update delivery bound")
	}

	srv.metrics.BoundUpdated(string(boundType), outcomeSuccess)
	srv.publishBoundChanged(ctx, restaurant)

	return &usecase.UpdateBoundsResult{
		Success: true,
		Message: "Delivery bounds and location updated",
		Data:    restaurant,
	}, nil
}

// GetRestaurantDeliveryZoneInfo returns the editor projection for a restaurant.
func (srv *deliveryBoundService) GetRestaurantDeliveryZoneInfo(ctx context.Context, restaurantID uuid.UUID) (*entity.DeliveryBoundInfo, error) {
	info, err := srv.restaurantRepo.ReadDeliveryBoundInfo(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, repository.ErrRestaurantNotFound) {
			return nil, domainerrors.ErrRestaurantNotFound
		}

		return nil, errors.Wrap(err, "failed to read delivery bound info")
	}

	return info, nil
}

func (srv *deliveryBoundService) buildBound(boundType entity.BoundType, input *usecase.UpdateBoundsInput) (entity.DeliveryBound, domainerrors.AppError) {
	switch boundType {
	case entity.BoundTypePolygon:
		ring, err := geometry.NormalizeRing(input.PolygonRing)
		if err != nil {
			return nil, domainerrors.ErrInvalidGeometry.WithDetails(errors.Cause(err).Error())
		}
		bound, err := entity.NewPolygonBound(ring)
		if err != nil {
			return nil, domainerrors.ErrInvalidGeometry.WithDetails(errors.Cause(err).Error())
		}

		return bound, nil

	case entity.BoundTypeCircle:
		if input.CircleRadiusMeters == nil {
			return nil, domainerrors.ErrInvalidRadius.WithDetails("circle radius is required")
		}
		bound, err := entity.NewCircleBound(*input.CircleRadiusMeters)
		if err != nil {
			return nil, domainerrors.ErrInvalidRadius.WithDetails(errors.Cause(err).Error())
		}
		if srv.maxRadiusMeters > 0 && bound.RadiusMeters() > srv.maxRadiusMeters {
			return nil, domainerrors.ErrInvalidRadius.WithDetails(fmt.Sprintf("radius exceeds the maximum of %.0f meters", srv.maxRadiusMeters))
		}

		return bound, nil

	default:
		return entity.PointBound{}, nil
	}
}

// reject turns a validation failure into the tagged result callers render inline.
func (srv *deliveryBoundService) reject(ctx context.Context, input *usecase.UpdateBoundsInput, appErr domainerrors.AppError) *usecase.UpdateBoundsResult {
	srv.metrics.BoundUpdated(boundTypeLabel(input.BoundType), appErr.ErrorCode())
	srv.log(ctx).Info("Delivery bound update rejected",
		slog.String("restaurantID", input.RestaurantID.String()),
		slog.String("boundType", input.BoundType),
		slog.String("code", appErr.ErrorCode()),
		slog.String("details", appErr.Details()),
	)

	message := appErr.Message()
	if appErr.Details() != "" {
		message += ": " + appErr.Details()
	}

	return &usecase.UpdateBoundsResult{
		Success: false,
		Message: message,
		Code:    appErr.ErrorCode(),
	}
}

// publishBoundChanged is best effort: the write is already committed.
func (srv *deliveryBoundService) publishBoundChanged(ctx context.Context, restaurant *entity.Restaurant) {
	event := &service.DeliveryBoundChangedEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		RestaurantID: restaurant.ID.String(),
		BoundType:    string(restaurant.BoundType()),
		Latitude:     restaurant.Location.Lat(),
		Longitude:    restaurant.Location.Lon(),
		OccurredAt:   time.Now().UnixMilli(),
	}
	if restaurant.ZoneID != nil {
		event.ZoneID = restaurant.ZoneID.String()
	}
	switch b := restaurant.Bound.(type) {
	case entity.PolygonBound:
		for _, p := range b.Ring() {
			event.Polygon = append(event.Polygon, [2]float64{p.Lon(), p.Lat()})
		}
	case entity.CircleBound:
		radius := b.RadiusMeters()
		event.CircleRadius = &radius
	}

	if err := srv.publisher.PublishDeliveryBoundChanged(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish delivery bound change",
			slog.String("restaurantID", event.RestaurantID),
			slog.Any("error", err),
		)
	}
}

func zoneID(zone *entity.Zone) *uuid.UUID {
	if zone == nil {
		return nil
	}
	id := zone.ID

	return &id
}

// boundTypeLabel keeps metric label cardinality bounded for arbitrary caller input.
func boundTypeLabel(raw string) string {
	boundType, err := entity.ParseBoundType(raw)
	if err != nil {
		return "unknown"
	}

	return string(boundType)
}
