package identity

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Service wraps the user repository and owns credential handling: passwords
// are hashed here, before any document reaches the store. It satisfies
// UserRepository so callers that only create, count, or clear users can be
// handed the service directly.
type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

func (s *Service) Create(ctx context.Context, u *User) error {
	if u.Email == "" {
		return fmt.Errorf("email is required")
	}
	if u.Role != RolePatient && u.Role != RoleProvider {
		return fmt.Errorf("role must be %q or %q, got %q", RolePatient, RoleProvider, u.Role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	u.Password = string(hash)
	return s.users.Create(ctx, u)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}

func (s *Service) DeleteAll(ctx context.Context) error {
	return s.users.DeleteAll(ctx)
}
