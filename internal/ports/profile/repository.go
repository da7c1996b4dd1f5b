package profile

import "clipcast/internal/core/profile"

// ProfileRepository is the outbound port for profile storage
type ProfileRepository interface {
	FindByUserID(userID string) (*profile.Profile, error)
	Upsert(p *profile.Profile) (*profile.Profile, error)
}

type ProfileDTO struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Bio      string `json:"bio"`
}
