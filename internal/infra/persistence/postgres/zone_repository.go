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

const zoneColumns = `
	z.id, z.name, z.description, ST_AsGeoJSON(z.polygon) AS polygon_geojson,
	z.is_active, z.created_at, z.updated_at`

// zonePreferenceOrder mirrors entity.PreferZone.
const zonePreferenceOrder = `ST_Area(z.polygon::geography) ASC, z.created_at ASC, z.id ASC`

// zoneRepository implements the repository.ZoneRepository interface.
type zoneRepository struct {
	db *gorm.DB
}

// NewZoneRepository is the constructor for zoneRepository.
func NewZoneRepository(db *gorm.DB) repository.ZoneRepository {
	return &zoneRepository{
		db: db,
	}
}

// FindZoneContaining returns the smallest active zone intersecting point.
func (repo *zoneRepository) FindZoneContaining(ctx context.Context, point geometry.Point) (*entity.Zone, error) {
	if geometry.IsUnset(point) || !geometry.ValidPoint(point) {
		return nil, nil
	}

	var zoneModels []*model.ZoneModel
	query := `
		SELECT ` + zoneColumns + `
		FROM zones z
		WHERE z.is_active = true
		  AND ST_Intersects(z.polygon, ST_SetSRID(ST_MakePoint(?, ?), 4326))
		ORDER BY ` + zonePreferenceOrder + `
		LIMIT 1
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, point.Lon(), point.Lat()).
		Scan(&zoneModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find zone containing point")
	}

	if len(zoneModels) == 0 {
		return nil, nil
	}

	return toZoneDomain(zoneModels[0])
}

// ListActiveZones returns every active zone ordered by name.
func (repo *zoneRepository) ListActiveZones(ctx context.Context) ([]*entity.Zone, error) {
	var zoneModels []*model.ZoneModel
	query := `
		SELECT ` + zoneColumns + `
		FROM zones z
		WHERE z.is_active = true
		ORDER BY z.name ASC
	`

	if err := repo.db.WithContext(ctx).Raw(query).Scan(&zoneModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list active zones")
	}

	zones := make([]*entity.Zone, 0, len(zoneModels))
	for _, zoneM := range zoneModels {
		zone, err := toZoneDomain(zoneM)
		if err != nil {
			return nil, err
		}
		zones = append(zones, zone)
	}

	return zones, nil
}

// CreateZone persists a new zone.
func (repo *zoneRepository) CreateZone(ctx context.Context, zone *entity.Zone) error {
	polygon, err := encodeRing(zone.Polygon)
	if err != nil {
		return err
	}
	if zone.ID == uuid.Nil {
		zone.ID = uuid.New()
	}
	now := time.Now().UTC()

	query := `
		INSERT INTO zones (id, name, description, polygon, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ST_SetSRID(ST_GeomFromGeoJSON(?), 4326), ?, ?, ?)
	`

	if err := repo.db.WithContext(ctx).
		Exec(query, zone.ID, zone.Name, zone.Description, polygon, zone.IsActive, now, now).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrZoneNameConflict
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create zone")
	}

	zone.CreatedAt = now
	zone.UpdatedAt = now

	return nil
}

// FindZoneByID retrieves a zone regardless of its active flag.
func (repo *zoneRepository) FindZoneByID(ctx context.Context, id uuid.UUID) (*entity.Zone, error) {
	var zoneModels []*model.ZoneModel
	query := `SELECT ` + zoneColumns + ` FROM zones z WHERE z.id = ?`

	if err := repo.db.WithContext(ctx).Raw(query, id).Scan(&zoneModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find zone by ID")
	}

	if len(zoneModels) == 0 {
		return nil, repository.ErrZoneNotFound
	}

	return toZoneDomain(zoneModels[0])
}

// UpdateZone replaces the name, description and polygon of an existing zone.
func (repo *zoneRepository) UpdateZone(ctx context.Context, zone *entity.Zone) error {
	polygon, err := encodeRing(zone.Polygon)
	if err != nil {
		return err
	}
	now := time.Now().UTC()

	query := `
		UPDATE zones
		SET name = ?, description = ?, polygon = ST_SetSRID(ST_GeomFromGeoJSON(?), 4326), updated_at = ?
		WHERE id = ?
	`

	result := repo.db.WithContext(ctx).Exec(query, zone.Name, zone.Description, polygon, now, zone.ID)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrZoneNameConflict
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update zone")
	}

	if result.RowsAffected == 0 {
		return repository.ErrZoneNotFound
	}

	zone.UpdatedAt = now

	return nil
}

// SetZoneActive toggles the soft-deactivation flag.
func (repo *zoneRepository) SetZoneActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ZoneModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  active,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update zone status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrZoneNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toZoneDomain converts a GORM ZoneModel to a domain Zone entity.
func toZoneDomain(data *model.ZoneModel) (*entity.Zone, error) {
	if data == nil {
		return nil, nil
	}

	polygon, err := decodeRing(&data.PolygonGeoJSON)
	if err != nil {
		return nil, errors.Wrapf(err, "zone %s", data.ID)
	}

	return &entity.Zone{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Polygon:     polygon,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}, nil
}
