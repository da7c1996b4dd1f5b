package userapp

import (
	"context"
	"errors"
	"time"

	userEntity "clipcast/internal/core/user"
	sessionPort "clipcast/internal/ports/session"
	userPort "clipcast/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// UserService handles sign-up, sign-in and sign-out and publishes session
// change events on the bus so stores can refetch.
type UserService struct {
	UserRepository userPort.UserRepository
	SessionBus     sessionPort.Bus
	Tokens         sessionPort.TokenStore
	Logger         *zap.Logger
	jwtKey         []byte
}

func NewUserService(repo userPort.UserRepository, bus sessionPort.Bus, tokens sessionPort.TokenStore, logger *zap.Logger, jwtKey []byte) *UserService {
	return &UserService{
		UserRepository: repo,
		SessionBus:     bus,
		Tokens:         tokens,
		Logger:         logger,
		jwtKey:         jwtKey,
	}
}

// SignIn verifies credentials and issues a JWT
func (s *UserService) SignIn(ctx context.Context, email string, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByEmail(email)
	if err != nil {
		s.Logger.Info("Sign in failed: user not found", zap.String("email", email))
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.Logger.Info("Sign in failed: invalid password", zap.String("email", email))
		return nil, errors.New("invalid credentials")
	}

	token, err := s.generateJWT(user.ID.String())
	if err != nil {
		s.Logger.Error("Error generating JWT", zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	s.publish(ctx, sessionPort.EventSignedIn, user.ID.String())

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}, nil
}

// SignUp registers a new account
func (s *UserService) SignUp(ctx context.Context, email, password string) (*userPort.UserDTO, error) {
	existing, err := s.UserRepository.FindByEmail(email)
	if err == nil && existing != nil {
		return nil, errors.New("email already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Email:    email,
		Password: string(hashed),
	}

	u, err := s.UserRepository.Create(user)
	if err != nil {
		return nil, err
	}

	return &userPort.UserDTO{
		ID:    u.ID.String(),
		Email: u.Email,
	}, nil
}

// Refresh rotates the presented token: a new one is issued for the same
// subject and the old one stops working immediately.
func (s *UserService) Refresh(ctx context.Context, userID, token string) (*userPort.LoginResponse, error) {
	fresh, err := s.generateJWT(userID)
	if err != nil {
		s.Logger.Error("Error generating JWT", zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	if s.Tokens != nil && token != "" {
		if err := s.Tokens.Revoke(ctx, token, int64(tokenTTL.Seconds())); err != nil {
			s.Logger.Warn("Could not revoke token", zap.Error(err))
		}
	}

	s.publish(ctx, sessionPort.EventTokenRefreshed, userID)

	return &userPort.LoginResponse{
		Token:     fresh,
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}, nil
}

// SignOut revokes the presented token and announces the session change
func (s *UserService) SignOut(ctx context.Context, userID, token string) error {
	if s.Tokens != nil && token != "" {
		if err := s.Tokens.Revoke(ctx, token, int64(tokenTTL.Seconds())); err != nil {
			s.Logger.Warn("Could not revoke token", zap.Error(err))
		}
	}
	s.publish(ctx, sessionPort.EventSignedOut, userID)
	return nil
}

func (s *UserService) publish(ctx context.Context, eventType, userID string) {
	if s.SessionBus == nil {
		return
	}
	ev := sessionPort.Event{Type: eventType, UserID: userID}
	if err := s.SessionBus.Publish(ctx, ev); err != nil {
		s.Logger.Warn("Could not publish session event", zap.String("type", eventType), zap.Error(err))
	}
}

// generateJWT signs a token for subject. The jti claim keeps every issued
// token distinct, so revoking a replaced token never touches its successor.
func (s *UserService) generateJWT(subject string) (string, error) {
	claims := &jwt.StandardClaims{
		Id:        uuid.Must(uuid.NewV4()).String(),
		Subject:   subject,
		Issuer:    "clipcast",
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
