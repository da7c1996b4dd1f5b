package profile

import (
	"time"

	"github.com/gofrs/uuid"
	"gorm.io/datatypes"
)

type Profile struct {
	ID        uuid.UUID      `gorm:"primary_key;type:char(36);default:uuid()"`
	UserID    uuid.UUID      `gorm:"type:char(36);unique;not null"`
	Username  string         `gorm:"unique;not null"`
	Bio       string         `gorm:"type:text"`
	Settings  datatypes.JSON `gorm:"type:json"` // notification toggles and the like
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt *time.Time     `gorm:"index"`
}
