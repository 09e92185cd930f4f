package services

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"toolhub/internal/domain"
	"toolhub/internal/repository"
)

type UserService struct {
	userRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// IsAdmin reports whether the user stored under email has the admin role.
// An unknown email is an error, not a false answer.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *UserService) MakeAdmin(ctx context.Context, email string) (*mongo.UpdateResult, error) {
	return s.userRepo.SetRole(ctx, email, domain.RoleAdmin)
}
