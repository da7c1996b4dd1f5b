package database

import (
	"clipcast/internal/config"
	"clipcast/internal/core/profile"

	"gorm.io/gorm/clause"
)

// ProfileRepositoryDatabase implements ProfileRepository over the shared DB handle
type ProfileRepositoryDatabase struct{}

func NewProfileRepositoryDatabase() *ProfileRepositoryDatabase {
	return &ProfileRepositoryDatabase{}
}

func (repo *ProfileRepositoryDatabase) FindByUserID(userID string) (*profile.Profile, error) {
	var p profile.Profile
	if err := config.DB.Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Upsert keeps one profile row per user; a second save updates it in place.
func (repo *ProfileRepositoryDatabase) Upsert(p *profile.Profile) (*profile.Profile, error) {
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"username", "bio", "settings"}),
	}).Create(p).Error
	if err != nil {
		return nil, err
	}
	return p, nil
}
