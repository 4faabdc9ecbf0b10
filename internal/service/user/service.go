package user

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/user"
)

type UserService interface {
	Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
}

type UserServiceImpl struct {
	user.UserRepository
}

func NewUserService(userRepo user.UserRepository) UserService {
	return &UserServiceImpl{UserRepository: userRepo}
}

// Create implements UserService. A requested role outside the fixed set
// falls back to viewer rather than failing, matching the onboarding flow the
// frontend expects.
func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	exists, err := s.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to check user email: %w", err)
	}
	if exists {
		return user.UserResponse{}, user.ErrUserEmailExists
	}

	role := user.Role(req.Role)
	if !user.IsValidRole(role) {
		role = user.RoleViewer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.UserRepository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(created), nil
}
