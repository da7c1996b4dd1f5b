package socialaccount

import (
	"time"

	"github.com/gofrs/uuid"
)

type SocialAccount struct {
	ID           uuid.UUID  `gorm:"primary_key;type:char(36);default:uuid()"`
	UserID       uuid.UUID  `gorm:"type:char(36);not null;index"`
	Platform     string     `gorm:"type:varchar(32);not null"`
	Username     string     `gorm:"not null"`
	AccessToken  string     `gorm:"type:varchar(255)"`
	RefreshToken string     `gorm:"type:varchar(255)"`
	ExpiresAt    *time.Time
	ConnectedAt  time.Time  `gorm:"autoCreateTime"`
	DeletedAt    *time.Time `gorm:"index"`
}

// PlatformColors mirrors the badge colors the dashboard shows next to each
// connected account.
var PlatformColors = map[string]string{
	"instagram": "bg-pink-500",
	"facebook":  "bg-blue-600",
	"twitter":   "bg-sky-400",
	"linkedin":  "bg-blue-700",
	"youtube":   "bg-red-600",
}
