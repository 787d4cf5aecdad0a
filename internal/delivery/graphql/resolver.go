// Package graphql serves the legacy admin GraphQL API on top of the delivery-zone use cases.
// Coordinates on this surface are GeoJSON ordered: [lng, lat].
package graphql

import (
	"context"
	"log/slog"

	deliverycontext "deliveryzone/internal/delivery/context"
	"deliveryzone/internal/domain/constants"
	"deliveryzone/internal/domain/entity"
	domainerrors "deliveryzone/internal/domain/errors"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/errors"
	"deliveryzone/internal/usecase"

	"github.com/google/uuid"
	gql "github.com/graphql-go/graphql"
)

// noZoneMessage is the text the admin UI shows when a point bound has no zone.
const noZoneMessage = "restaurant's location doesn't lie in any delivery zone"

// Resolver holds the use cases behind every field.
type Resolver struct {
	boundUC     usecase.DeliveryBoundUsecase
	zoneUC      usecase.ZoneUsecase
	discoveryUC usecase.DiscoveryUsecase
	logger      *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(boundUC usecase.DeliveryBoundUsecase, zoneUC usecase.ZoneUsecase, discoveryUC usecase.DiscoveryUsecase, logger *slog.Logger) *Resolver {
	return &Resolver{
		boundUC:     boundUC,
		zoneUC:      zoneUC,
		discoveryUC: discoveryUC,
		logger:      logger,
	}
}

// fieldError exposes an AppError with its business code under "extensions".
type fieldError struct {
	appErr domainerrors.AppError
}

func (e *fieldError) Error() string {
	if d := e.appErr.Details(); d != "" {
		return e.appErr.Message() + ": " + d
	}

	return e.appErr.Message()
}

func (e *fieldError) Extensions() map[string]any {
	return map[string]any{"code": e.appErr.ErrorCode()}
}

// toFieldError keeps domain errors and hides everything else behind INTERNAL_ERROR.
func (r *Resolver) toFieldError(ctx context.Context, err error) error {
	if appErr, ok := domainerrors.AsAppError(err); ok && appErr.HTTPCode() < 500 {
		return &fieldError{appErr: appErr}
	}

	deliverycontext.GetLoggerOrDefault(ctx, r.logger).Error("GraphQL resolver failed",
		slog.Any("error", err),
		slog.String("stack", errors.StackTrace(err)),
	)

	return &fieldError{appErr: domainerrors.ErrInternalError}
}

func parseID(p gql.ResolveParams) (uuid.UUID, error) {
	raw, _ := p.Args["id"].(string)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &fieldError{appErr: domainerrors.ErrValidationFailed.WithDetails("id must be a UUID")}
	}

	return id, nil
}

func (r *Resolver) getRestaurantDeliveryZoneInfo(p gql.ResolveParams) (any, error) {
	id, err := parseID(p)
	if err != nil {
		return nil, err
	}

	info, err := r.boundUC.GetRestaurantDeliveryZoneInfo(p.Context, id)
	if err != nil {
		return nil, r.toFieldError(p.Context, err)
	}

	out := map[string]any{
		"address":   info.Address,
		"boundType": string(info.BoundType),
	}
	if info.Location != nil {
		out["location"] = pointObject(*info.Location)
	}
	if len(info.PolygonBound) > 0 {
		out["deliveryBounds"] = polygonObject(info.PolygonBound)
	}
	if info.CircleBound != nil {
		out["circleBounds"] = map[string]any{"radius": info.CircleBound.Radius}
	}

	return out, nil
}

func (r *Resolver) zones(p gql.ResolveParams) (any, error) {
	zones, err := r.zoneUC.ListZones(p.Context)
	if err != nil {
		return nil, r.toFieldError(p.Context, err)
	}

	out := make([]map[string]any, 0, len(zones))
	for _, z := range zones {
		out = append(out, map[string]any{
			"_id":         z.ID.String(),
			"title":       z.Name,
			"description": z.Description,
			"location":    polygonObject(z.Polygon),
			"isActive":    z.IsActive,
		})
	}

	return out, nil
}

func (r *Resolver) nearByRestaurants(p gql.ResolveParams) (any, error) {
	lat, _ := p.Args["latitude"].(float64)
	lng, _ := p.Args["longitude"].(float64)
	shopType, _ := p.Args["shopType"].(string)

	restaurants, err := r.discoveryUC.NearbyRestaurants(p.Context, geometry.LatLng{Lat: lat, Lng: lng}, shopType)
	if err != nil {
		return nil, r.toFieldError(p.Context, err)
	}

	out := make([]map[string]any, 0, len(restaurants))
	for _, restaurant := range restaurants {
		out = append(out, restaurantObject(restaurant))
	}

	return out, nil
}

func (r *Resolver) updateDeliveryBoundsAndLocation(p gql.ResolveParams) (any, error) {
	claims := deliverycontext.GetClaims(p.Context)
	if claims == nil {
		return nil, &fieldError{appErr: domainerrors.ErrUnauthenticated}
	}
	if !claims.HasAnyRole(constants.RoleAdmin, constants.RoleVendor) {
		return nil, &fieldError{appErr: domainerrors.ErrForbidden}
	}

	id, err := parseID(p)
	if err != nil {
		return nil, err
	}

	input := &usecase.UpdateBoundsInput{
		RestaurantID: id,
		PolygonRing:  boundsToRing(p.Args["bounds"]),
	}
	input.BoundType, _ = p.Args["boundType"].(string)
	if location, ok := p.Args["location"].(map[string]any); ok {
		input.Location.Lat, _ = location["latitude"].(float64)
		input.Location.Lng, _ = location["longitude"].(float64)
	}
	if radius, ok := p.Args["circleRadius"].(float64); ok {
		input.CircleRadiusMeters = &radius
	}

	result, err := r.boundUC.UpdateDeliveryBoundsAndLocation(p.Context, input)
	if err != nil {
		return nil, r.toFieldError(p.Context, err)
	}

	out := map[string]any{
		"success": result.Success,
		"message": result.Message,
	}
	if result.Code != "" {
		out["code"] = result.Code
	}
	if result.Code == domainerrors.ErrNoDeliveryAreaDefined.ErrorCode() {
		out["message"] = noZoneMessage
	}
	if result.Data != nil {
		out["data"] = restaurantObject(result.Data)
	}

	return out, nil
}

func pointObject(p geometry.Point) map[string]any {
	return map[string]any{
		"type":        "Point",
		"coordinates": pointCoordinates(p),
	}
}

func polygonObject(ring geometry.Ring) map[string]any {
	return map[string]any{
		"type":        "Polygon",
		"coordinates": polygonCoordinates(ring),
	}
}

func restaurantObject(r *entity.Restaurant) map[string]any {
	out := map[string]any{
		"_id":         r.ID.String(),
		"name":        r.Name,
		"address":     r.Address,
		"shopType":    r.ShopType,
		"isActive":    r.IsActive,
		"isAvailable": r.IsAvailable,
		"boundType":   string(r.BoundType()),
	}
	if !geometry.IsUnset(r.Location) {
		out["location"] = pointObject(r.Location)
	}
	switch b := r.Bound.(type) {
	case entity.PolygonBound:
		out["deliveryBounds"] = polygonObject(b.Ring())
	case entity.CircleBound:
		out["circleBounds"] = map[string]any{"radius": b.RadiusMeters()}
	}
	if r.ZoneID != nil {
		out["zone"] = r.ZoneID.String()
	}

	return out
}
