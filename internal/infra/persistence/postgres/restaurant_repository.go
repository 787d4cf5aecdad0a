package postgres

import (
	"context"
	"time"

	"deliveryzone/internal/domain/entity"
	domainerrors "deliveryzone/internal/domain/errors"
	"deliveryzone/internal/domain/geometry"
	"deliveryzone/internal/domain/repository"
	"deliveryzone/internal/errors"
	"deliveryzone/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const restaurantColumns = `
	r.id, r.name, r.address, r.shop_type, r.is_active, r.is_available,
	ST_AsGeoJSON(r.location) AS location_geojson, r.bound_type,
	ST_AsGeoJSON(r.polygon_bound) AS polygon_bound_geojson, r.circle_radius,
	r.zone_id, r.created_at, r.updated_at`

// restaurantRepository implements the repository.RestaurantRepository interface.
type restaurantRepository struct {
	db *gorm.DB
}

// NewRestaurantRepository is the constructor for restaurantRepository.
func NewRestaurantRepository(db *gorm.DB) repository.RestaurantRepository {
	return &restaurantRepository{
		db: db,
	}
}

// CreateRestaurant persists a new restaurant. Restaurants start unbounded, so only
// the location (if any) is written as geometry.
func (repo *restaurantRepository) CreateRestaurant(ctx context.Context, restaurant *entity.Restaurant) error {
	location, err := encodePoint(restaurant.Location)
	if err != nil {
		return err
	}
	if restaurant.ID == uuid.Nil {
		restaurant.ID = uuid.New()
	}
	now := time.Now().UTC()

	query := `
		INSERT INTO restaurants (id, name, address, shop_type, is_active, is_available,
			location, bound_type, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ST_SetSRID(ST_GeomFromGeoJSON(CAST(? AS text)), 4326), ?, ?, ?)
	`

	if err := repo.db.WithContext(ctx).Exec(query,
		restaurant.ID, restaurant.Name, restaurant.Address, restaurant.ShopType,
		restaurant.IsActive, restaurant.IsAvailable, location,
		string(entity.BoundTypePoint), now, now,
	).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required restaurant information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create restaurant")
	}

	restaurant.Bound = entity.PointBound{}
	restaurant.CreatedAt = now
	restaurant.UpdatedAt = now

	return nil
}

// FindRestaurantByID retrieves a restaurant by its unique ID.
func (repo *restaurantRepository) FindRestaurantByID(ctx context.Context, id uuid.UUID) (*entity.Restaurant, error) {
	var restaurantModels []*model.RestaurantModel
	query := `SELECT ` + restaurantColumns + ` FROM restaurants r WHERE r.id = ?`

	if err := repo.db.WithContext(ctx).Raw(query, id).Scan(&restaurantModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find restaurant by ID")
	}

	if len(restaurantModels) == 0 {
		return nil, repository.ErrRestaurantNotFound
	}

	return toRestaurantDomain(restaurantModels[0])
}

// FindRestaurantsIntersecting uses the GiST index on delivery_area and falls back to the
// zone polygon for restaurants still in the point state.
func (repo *restaurantRepository) FindRestaurantsIntersecting(ctx context.Context, point geometry.Point, filter repository.RestaurantFilter) ([]*entity.Restaurant, error) {
	if geometry.IsUnset(point) || !geometry.ValidPoint(point) {
		return []*entity.Restaurant{}, nil
	}

	var restaurantModels []*model.RestaurantModel
	query := `
		WITH pt AS (SELECT ST_SetSRID(ST_MakePoint(@lng, @lat), 4326) AS geom)
		SELECT ` + restaurantColumns + `
		FROM restaurants r
		CROSS JOIN pt
		LEFT JOIN zones z ON z.id = r.zone_id AND z.is_active = true
		WHERE r.is_active = true
		  AND r.is_available = true
		  AND r.location IS NOT NULL
		  AND (@shopType = '' OR r.shop_type = @shopType)
		  AND (
		    ST_Intersects(r.delivery_area, pt.geom)
		    OR (r.bound_type = 'point' AND ST_Intersects(z.polygon, pt.geom))
		  )
		ORDER BY ST_Distance(r.location::geography, pt.geom::geography) ASC, r.id ASC
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, map[string]any{
			"lng":      point.Lon(),
			"lat":      point.Lat(),
			"shopType": filter.ShopType,
		}).
		Scan(&restaurantModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find restaurants intersecting point")
	}

	restaurants := make([]*entity.Restaurant, 0, len(restaurantModels))
	for _, restaurantM := range restaurantModels {
		restaurant, err := toRestaurantDomain(restaurantM)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	return restaurants, nil
}

// ReadDeliveryBoundInfo returns the admin editor projection of a restaurant.
func (repo *restaurantRepository) ReadDeliveryBoundInfo(ctx context.Context, id uuid.UUID) (*entity.DeliveryBoundInfo, error) {
	restaurant, err := repo.FindRestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return restaurant.DeliveryBoundInfo(), nil
}

// UpdateDeliveryBound writes every bound column in one UPDATE ... RETURNING statement,
// so readers never see a bound type without its matching payload.
func (repo *restaurantRepository) UpdateDeliveryBound(ctx context.Context, update repository.BoundUpdate) (*entity.Restaurant, error) {
	location, err := encodePoint(update.Location)
	if err != nil {
		return nil, err
	}
	area, err := encodeRing(update.Area)
	if err != nil {
		return nil, err
	}

	var (
		polygon      *string
		circleRadius *float64
	)
	switch b := update.Bound.(type) {
	case entity.PolygonBound:
		if polygon, err = encodeRing(b.Ring()); err != nil {
			return nil, err
		}
	case entity.CircleBound:
		radius := b.RadiusMeters()
		circleRadius = &radius
	case entity.PointBound, nil:
	default:
		return nil, errors.Errorf("unsupported delivery bound %T", update.Bound)
	}

	boundType := entity.BoundTypePoint
	if update.Bound != nil {
		boundType = update.Bound.Type()
	}

	var restaurantModels []*model.RestaurantModel
	query := `
		UPDATE restaurants r
		SET location      = ST_SetSRID(ST_GeomFromGeoJSON(CAST(@location AS text)), 4326),
		    bound_type    = @boundType,
		    polygon_bound = ST_SetSRID(ST_GeomFromGeoJSON(CAST(@polygon AS text)), 4326),
		    circle_radius = @circleRadius,
		    delivery_area = ST_SetSRID(ST_GeomFromGeoJSON(CAST(@area AS text)), 4326),
		    zone_id       = @zoneID,
		    updated_at    = @now
		WHERE r.id = @id
		RETURNING ` + restaurantColumns

	if err := repo.db.WithContext(ctx).
		Raw(query, map[string]any{
			"location":     location,
			"boundType":    string(boundType),
			"polygon":      polygon,
			"circleRadius": circleRadius,
			"area":         area,
			"zoneID":       update.ZoneID,
			"now":          time.Now().UTC(),
			"id":           update.RestaurantID,
		}).
		Scan(&restaurantModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to update delivery bound")
	}

	if len(restaurantModels) == 0 {
		return nil, repository.ErrRestaurantNotFound
	}

	return toRestaurantDomain(restaurantModels[0])
}

// RefreshZoneReferences recomputes zone_id for restaurants that referenced zoneID or sit inside it.
func (repo *restaurantRepository) RefreshZoneReferences(ctx context.Context, zoneID uuid.UUID) (int64, error) {
	query := `
		WITH candidates AS (
		  SELECT r.id,
		    (SELECT z.id FROM zones z
		     WHERE z.is_active = true AND ST_Intersects(z.polygon, r.location)
		     ORDER BY ` + zonePreferenceOrder + `
		     LIMIT 1) AS next_zone_id
		  FROM restaurants r
		  WHERE r.location IS NOT NULL
		    AND (
		      r.zone_id = @zoneID
		      OR ST_Intersects(r.location, (SELECT polygon FROM zones WHERE id = @zoneID))
		    )
		)
		UPDATE restaurants r
		SET zone_id = c.next_zone_id, updated_at = @now
		FROM candidates c
		WHERE r.id = c.id
		  AND r.zone_id IS DISTINCT FROM c.next_zone_id
	`

	result := repo.db.WithContext(ctx).Exec(query, map[string]any{
		"zoneID": zoneID,
		"now":    time.Now().UTC(),
	})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to refresh zone references")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toRestaurantDomain converts a GORM RestaurantModel to a domain Restaurant entity.
func toRestaurantDomain(data *model.RestaurantModel) (*entity.Restaurant, error) {
	if data == nil {
		return nil, nil
	}

	location, err := decodePoint(data.LocationGeoJSON)
	if err != nil {
		return nil, errors.Wrapf(err, "restaurant %s location", data.ID)
	}

	bound, err := toBoundDomain(data)
	if err != nil {
		return nil, errors.Wrapf(err, "restaurant %s bound", data.ID)
	}

	return &entity.Restaurant{
		ID:          data.ID,
		Name:        data.Name,
		Address:     data.Address,
		ShopType:    data.ShopType,
		IsActive:    data.IsActive,
		IsAvailable: data.IsAvailable,
		Location:    location,
		Bound:       bound,
		ZoneID:      data.ZoneID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}

func toBoundDomain(data *model.RestaurantModel) (entity.DeliveryBound, error) {
	boundType, err := entity.ParseBoundType(data.BoundType)
	if err != nil {
		return nil, err
	}

	switch boundType {
	case entity.BoundTypePolygon:
		ring, err := decodeRing(data.PolygonBoundGeoJSON)
		if err != nil {
			return nil, err
		}

		return entity.NewPolygonBound(ring)
	case entity.BoundTypeCircle:
		if data.CircleRadius == nil {
			return nil, errors.WithStack(entity.ErrInvalidRadius)
		}

		return entity.NewCircleBound(*data.CircleRadius)
	default:
		return entity.PointBound{}, nil
	}
}
