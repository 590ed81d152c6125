package auth

import "testing"

func TestPasswordIsHashedBeforeSaving(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	password := "Password@123"

	_, err := service.Register("Test User", "test@example.com", password, RoleOrganization, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	user := repo.users["test@example.com"]
	if user == nil {
		t.Fatalf("user not found")
	}

	if user.Password == password {
		t.Fatalf("password was stored in plain text")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	_, err := service.Register("Test User", "test@example.com", "Password@123", RoleOrganization, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = service.Register("Other User", "test@example.com", "Password@123", RoleOrganization, "")
	if err == nil {
		t.Fatalf("expected duplicate email error")
	}
}

func TestRegisterClientNeedsOrg(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	_, err := service.Register("Client", "client@example.com", "Password@123", RoleClient, "")
	if err == nil {
		t.Fatalf("expected error for client without org")
	}

	_, err = service.Register("Client", "client@example.com", "Password@123", RoleClient, "org-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := NewInMemoryUserRepository()
	service := NewService(repo)

	_, err := service.Register("Test User", "test@example.com", "Password@123", RoleOrganization, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.Login("test@example.com", "Password@123"); err != nil {
		t.Fatalf("expected login to succeed, got %v", err)
	}

	if _, err := service.Login("test@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := service.Login("nobody@example.com", "Password@123"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	user := &User{
		ID:    "user-1",
		Email: "test@example.com",
		Role:  RoleClient,
		OrgID: "org-1",
	}

	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.UserID != "user-1" || claims.Role != RoleClient || claims.OrgID != "org-1" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}
