package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	users UserRepository
}

func NewService(users UserRepository) *Service {
	return &Service{users: users}
}

var validRoles = map[string]bool{
	RoleAdmin: true, RoleDoctor: true, RoleStaff: true,
}

func (s *Service) CreateUser(ctx context.Context, u *User) error {
	if u.Username == "" {
		return fmt.Errorf("username is required")
	}
	if u.FullName == "" {
		return fmt.Errorf("full_name is required")
	}
	if u.Role == "" {
		u.Role = RoleStaff
	}
	if !validRoles[u.Role] {
		return fmt.Errorf("invalid role: %s", u.Role)
	}
	if u.Role == RoleDoctor && (u.Specialty == nil || *u.Specialty == "") {
		return fmt.Errorf("specialty is required for doctors")
	}
	return s.users.Create(ctx, u)
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return s.users.GetByUsername(ctx, username)
}

func (s *Service) UpdateUser(ctx context.Context, u *User) error {
	if u.Role != "" && !validRoles[u.Role] {
		return fmt.Errorf("invalid role: %s", u.Role)
	}
	if u.Role == RoleDoctor && (u.Specialty == nil || *u.Specialty == "") {
		return fmt.Errorf("specialty is required for doctors")
	}
	return s.users.Update(ctx, u)
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.users.Delete(ctx, id)
}

func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]*User, int, error) {
	return s.users.List(ctx, limit, offset)
}

// ListDoctors returns every user with the doctor role, ordered by name.
func (s *Service) ListDoctors(ctx context.Context) ([]*User, error) {
	return s.users.ListDoctors(ctx)
}
