package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"toolhub/internal/domain"
	"toolhub/internal/repository"
)

// TokenTTL is the lifetime of every issued access token. There is no
// refresh flow; clients sign in again after expiry.
const TokenTTL = time.Hour

type AuthService struct {
	userRepo *repository.UserRepository
	jwtKey   string
	now      func() time.Time
}

func NewAuthService(userRepo *repository.UserRepository, jwtKey string) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		jwtKey:   jwtKey,
		now:      time.Now,
	}
}

// SignIn upserts the profile stored under email and issues a token for it.
// Store errors are returned unchanged and no token is issued.
func (s *AuthService) SignIn(ctx context.Context, email string, profile *domain.User) (*mongo.UpdateResult, string, error) {
	result, err := s.userRepo.UpsertByEmail(ctx, email, profile)
	if err != nil {
		return nil, "", err
	}

	token, err := s.GenerateToken(email)
	if err != nil {
		return nil, "", err
	}

	return result, token, nil
}

func (s *AuthService) GenerateToken(email string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(TokenTTL).Unix(),
		"jti":   uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtKey))
}
