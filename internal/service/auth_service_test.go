package service

import (
	"errors"
	"testing"

	"github.com/husncart/husncart/internal/config"
	"github.com/husncart/husncart/internal/models"
	"github.com/husncart/husncart/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthServiceTest(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t, &models.Admin{})
	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret-key-for-auth-tests"
	cfg.JWT.ExpireHours = 24
	return NewAuthService(cfg, repository.NewAdminRepository(db)), db
}

func createTestAdmin(t *testing.T, db *gorm.DB, username, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	admin := &models.Admin{Username: username, PasswordHash: string(hash)}
	if err := db.Create(admin).Error; err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	return admin
}

func TestLoginIssuesToken(t *testing.T) {
	svc, db := setupAuthServiceTest(t)

	createTestAdmin(t, db, "admin", "secret123")

	admin, token, expiresAt, err := svc.Login("admin", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}
	if expiresAt.IsZero() {
		t.Fatal("expected an expiry time")
	}
	if admin.LastLoginAt == nil {
		t.Fatal("expected last_login_at stamped")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.AdminID != admin.ID || claims.Username != "admin" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, db := setupAuthServiceTest(t)

	createTestAdmin(t, db, "admin", "secret123")

	if _, _, _, err := svc.Login("admin", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, _, err := svc.Login("ghost", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestParseJWTRejectsTampering(t *testing.T) {
	svc, db := setupAuthServiceTest(t)

	createTestAdmin(t, db, "admin", "secret123")
	_, token, _, err := svc.Login("admin", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if _, err := svc.ParseJWT(token + "x"); err == nil {
		t.Fatal("expected tampered token rejected")
	}
	if _, err := svc.ParseJWT("not-a-token"); err == nil {
		t.Fatal("expected malformed token rejected")
	}
}

func TestChangePasswordBumpsTokenVersion(t *testing.T) {
	svc, db := setupAuthServiceTest(t)

	admin := createTestAdmin(t, db, "admin", "secret123")

	if err := svc.ChangePassword(admin.ID, "wrong", "newpassword1"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if err := svc.ChangePassword(404, "secret123", "newpassword1"); !errors.Is(err, ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}

	if err := svc.ChangePassword(admin.ID, "secret123", "newpassword1"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	var reloaded models.Admin
	if err := db.First(&reloaded, admin.ID).Error; err != nil {
		t.Fatalf("reload admin failed: %v", err)
	}
	if reloaded.TokenVersion != admin.TokenVersion+1 {
		t.Fatalf("expected token version bump, got %d", reloaded.TokenVersion)
	}
	if reloaded.TokenInvalidBefore == nil {
		t.Fatal("expected token_invalid_before stamped")
	}

	if _, _, _, err := svc.Login("admin", "secret123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected old password rejected, got %v", err)
	}
	if _, _, _, err := svc.Login("admin", "newpassword1"); err != nil {
		t.Fatalf("expected new password accepted, got %v", err)
	}
}
