package scheduledpost

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
)

// Supported destination platforms.
const (
	PlatformInstagram = "instagram"
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformLinkedin  = "linkedin"
	PlatformYoutube   = "youtube"
)

// AllPlatforms keeps the UI ordering of the platform pickers.
var AllPlatforms = []string{
	PlatformInstagram,
	PlatformFacebook,
	PlatformTwitter,
	PlatformLinkedin,
	PlatformYoutube,
}

func ValidPlatform(name string) bool {
	for _, p := range AllPlatforms {
		if p == name {
			return true
		}
	}
	return false
}

// StatusPending is the only status ever written; nothing in this service
// transitions a post beyond it.
const StatusPending = "pending"

// PlatformSet maps a platform name to its selected flag. Stored as a JSON
// column so the selection round-trips as one value.
type PlatformSet map[string]bool

func (ps *PlatformSet) Scan(value interface{}) error {
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into PlatformSet", value)
	}
	return json.Unmarshal(b, ps)
}

func (ps PlatformSet) Value() (driver.Value, error) {
	return json.Marshal(ps)
}

// Selected returns the platform names flagged true, in AllPlatforms order.
func (ps PlatformSet) Selected() []string {
	var names []string
	for _, p := range AllPlatforms {
		if ps[p] {
			names = append(names, p)
		}
	}
	return names
}

// Any reports whether at least one platform is selected.
func (ps PlatformSet) Any() bool {
	for _, v := range ps {
		if v {
			return true
		}
	}
	return false
}

type ScheduledPost struct {
	ID           uuid.UUID   `gorm:"primary_key;type:char(36);default:uuid()"`
	OwnerID      uuid.UUID   `gorm:"type:char(36);not null;index"`
	Content      string      `gorm:"type:text;not null"`
	MediaURL     string      `gorm:"type:varchar(255)"`
	Platforms    PlatformSet `gorm:"type:json;not null"`
	ScheduledFor time.Time   `gorm:"not null;index"`
	Status       string      `gorm:"type:varchar(32);not null;default:pending"`
	CreatedAt    time.Time   `gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `gorm:"autoUpdateTime"`
	DeletedAt    *time.Time  `gorm:"index"`
}
