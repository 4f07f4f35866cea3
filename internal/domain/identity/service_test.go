package identity

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
)

// -- Mock Repository --

type mockUserRepo struct {
	users map[uuid.UUID]*User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*User)}
}

func (m *mockUserRepo) Create(_ context.Context, u *User) error {
	u.ID = uuid.New()
	u.CreatedAt = time.Now()
	u.UpdatedAt = time.Now()
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return u, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockUserRepo) Update(_ context.Context, u *User) error {
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, limit, offset int) ([]*User, int, error) {
	var result []*User
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, len(result), nil
}

func (m *mockUserRepo) ListDoctors(_ context.Context) ([]*User, error) {
	var result []*User
	for _, u := range m.users {
		if u.Role == RoleDoctor {
			result = append(result, u)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].FullName < result[j].FullName })
	return result, nil
}

func strPtr(s string) *string { return &s }

// -- Tests --

func TestCreateUser_RequiresUsername(t *testing.T) {
	svc := NewService(newMockUserRepo())
	err := svc.CreateUser(context.Background(), &User{FullName: "Dr. Garcia"})
	if err == nil {
		t.Fatal("expected error for missing username")
	}
}

func TestCreateUser_DefaultsRoleToStaff(t *testing.T) {
	svc := NewService(newMockUserRepo())
	u := &User{Username: "jdoe", FullName: "Jane Doe"}
	if err := svc.CreateUser(context.Background(), u); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != RoleStaff {
		t.Errorf("expected default role staff, got %s", u.Role)
	}
}

func TestCreateUser_RejectsInvalidRole(t *testing.T) {
	svc := NewService(newMockUserRepo())
	err := svc.CreateUser(context.Background(), &User{
		Username: "jdoe", FullName: "Jane Doe", Role: "superuser",
	})
	if err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestCreateUser_DoctorRequiresSpecialty(t *testing.T) {
	svc := NewService(newMockUserRepo())
	err := svc.CreateUser(context.Background(), &User{
		Username: "garcia", FullName: "Dr. Garcia", Role: RoleDoctor,
	})
	if err == nil {
		t.Fatal("expected error for doctor without specialty")
	}

	err = svc.CreateUser(context.Background(), &User{
		Username: "garcia", FullName: "Dr. Garcia", Role: RoleDoctor,
		Specialty: strPtr("cardiology"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListDoctors_FiltersNonDoctors(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	users := []*User{
		{Username: "garcia", FullName: "Dr. Garcia", Role: RoleDoctor, Specialty: strPtr("cardiology")},
		{Username: "lopez", FullName: "Dr. Lopez", Role: RoleDoctor, Specialty: strPtr("pediatrics")},
		{Username: "front", FullName: "Front Desk", Role: RoleStaff},
		{Username: "boss", FullName: "Admin", Role: RoleAdmin},
	}
	for _, u := range users {
		if err := svc.CreateUser(ctx, u); err != nil {
			t.Fatalf("create %s: %v", u.Username, err)
		}
	}

	doctors, err := svc.ListDoctors(ctx)
	if err != nil {
		t.Fatalf("ListDoctors: %v", err)
	}
	if len(doctors) != 2 {
		t.Fatalf("expected 2 doctors, got %d", len(doctors))
	}
	for _, d := range doctors {
		if !d.IsDoctor() {
			t.Errorf("non-doctor in directory: %s", d.Username)
		}
	}
}

func TestUpdateUser_RejectsInvalidRole(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	u := &User{Username: "jdoe", FullName: "Jane Doe", Role: RoleStaff}
	if err := svc.CreateUser(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	u.Role = "wizard"
	if err := svc.UpdateUser(ctx, u); err == nil {
		t.Fatal("expected error for invalid role")
	}
}
