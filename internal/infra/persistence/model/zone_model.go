package model

import (
	"time"

	"github.com/google/uuid"
)

// ZoneModel is the GORM-specific struct for the 'zones' table.
// The polygon GEOMETRY(POLYGON, 4326) column is written with ST_GeomFromGeoJSON and
// read back through the polygon_geojson alias, so it is never mapped directly.
type ZoneModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name           string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Description    string    `gorm:"type:text;not null;default:''"`
	PolygonGeoJSON string    `gorm:"column:polygon_geojson;->"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ZoneModel) TableName() string {
	return "zones"
}
