package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel is the GORM-specific struct for the 'restaurants' table.
// Geometry columns (location, polygon_bound, delivery_area) are handled with raw PostGIS SQL;
// the *GeoJSON fields are only populated by selects that alias ST_AsGeoJSON output.
// delivery_area is never read back: it exists for the GiST index.
type RestaurantModel struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name                string     `gorm:"type:varchar(255);not null"`
	Address             string     `gorm:"type:text;not null;default:''"`
	ShopType            string     `gorm:"type:varchar(64);not null;index"`
	IsActive            bool       `gorm:"not null;default:true"`
	IsAvailable         bool       `gorm:"not null;default:true"`
	LocationGeoJSON     *string    `gorm:"column:location_geojson;->"`
	BoundType           string     `gorm:"type:varchar(16);not null;default:'point'"`
	PolygonBoundGeoJSON *string    `gorm:"column:polygon_bound_geojson;->"`
	CircleRadius        *float64   `gorm:"type:double precision"`
	ZoneID              *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
