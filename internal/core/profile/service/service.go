package profileapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	profileEntity "clipcast/internal/core/profile"
	profilePort "clipcast/internal/ports/profile"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

var ErrUsernameRequired = errors.New("username must not be empty")

type ProfileService struct {
	ProfileRepository profilePort.ProfileRepository
}

func NewProfileService(repo profilePort.ProfileRepository) *ProfileService {
	return &ProfileService{
		ProfileRepository: repo,
	}
}

// GetProfile fetches the profile for userID; a missing profile is returned
// as an empty DTO rather than an error so a fresh account renders a blank form.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*profilePort.ProfileDTO, error) {
	if _, err := uuid.FromString(userID); err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	p, err := s.ProfileRepository.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &profilePort.ProfileDTO{UserID: userID}, nil
		}
		return nil, err
	}

	return &profilePort.ProfileDTO{
		ID:       p.ID.String(),
		UserID:   p.UserID.String(),
		Username: p.Username,
		Bio:      p.Bio,
	}, nil
}

// SaveProfile creates or updates the profile for userID
func (s *ProfileService) SaveProfile(ctx context.Context, userID, username, bio string) (*profilePort.ProfileDTO, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}
	if strings.TrimSpace(username) == "" {
		return nil, ErrUsernameRequired
	}

	p := &profileEntity.Profile{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   uid,
		Username: username,
		Bio:      bio,
	}

	saved, err := s.ProfileRepository.Upsert(p)
	if err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	return &profilePort.ProfileDTO{
		ID:       saved.ID.String(),
		UserID:   saved.UserID.String(),
		Username: saved.Username,
		Bio:      saved.Bio,
	}, nil
}
