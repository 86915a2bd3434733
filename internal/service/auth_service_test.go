package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"pharmaplan/backend/config"
	"pharmaplan/backend/internal/dto"
	"pharmaplan/backend/internal/model"
	"pharmaplan/backend/internal/repository"
	"pharmaplan/backend/pkg/jwt"
)

func setupTestAuthService() (AuthService, *repository.Repository) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-for-unit-testing-2026",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}

	repo := newMockRepository()
	jwtMgr := jwt.NewManager(&cfg.Auth)

	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, repo
}

func createTestUser(repo *repository.Repository, username, password, role string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: string(hash),
		Role:         role,
	}
	_ = repo.User.Create(context.Background(), user)
	return user
}

// ── 登录测试 ──

func TestLogin_Success(t *testing.T) {
	svc, repo := setupTestAuthService()
	createTestUser(repo, "alice", "password123", model.RoleAdmin)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("Login 应成功，但返回错误: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken 不应为空")
	}
	if result.RefreshToken == "" {
		t.Error("RefreshToken 不应为空")
	}
	if result.User.Username != "alice" || result.User.Role != model.RoleAdmin {
		t.Errorf("用户信息不符: %+v", result.User)
	}
	if result.ExpiresIn != 900 {
		t.Errorf("期望 ExpiresIn=900，实际=%d", result.ExpiresIn)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, repo := setupTestAuthService()
	createTestUser(repo, "alice", "password123", model.RoleUser)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "wrong_password",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nonexistent",
		Password: "password123",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── 注册测试 ──

func TestSignup_Success(t *testing.T) {
	svc, _ := setupTestAuthService()

	result, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "newuser",
		Email:    "new@test.com",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("Signup 应成功: %v", err)
	}
	if result.User.Role != model.RoleUser {
		t.Errorf("未指定角色时应默认 user，实际=%s", result.User.Role)
	}
	if result.AccessToken == "" {
		t.Error("注册后应直接签发 token")
	}

	// 注册后可登录
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "newuser",
		Password: "password123",
	}); err != nil {
		t.Errorf("注册后应能登录: %v", err)
	}
}

func TestSignup_DuplicateUsername(t *testing.T) {
	svc, repo := setupTestAuthService()
	createTestUser(repo, "alice", "password123", model.RoleUser)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "alice",
		Email:    "other@test.com",
		Password: "password123",
	})

	if !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("期望 ErrUsernameTaken，实际: %v", err)
	}
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, repo := setupTestAuthService()
	createTestUser(repo, "alice", "password123", model.RoleUser)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		Username: "alice2",
		Email:    "alice@test.com",
		Password: "password123",
	})

	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("期望 ErrEmailTaken，实际: %v", err)
	}
}

// ── RefreshToken 测试 ──

func TestRefreshToken_Success(t *testing.T) {
	svc, repo := setupTestAuthService()
	createTestUser(repo, "alice", "password123", model.RoleAdmin)

	loginResult, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}

	result, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: loginResult.RefreshToken,
	})
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("新 AccessToken 不应为空")
	}
	if result.User.Username != "alice" {
		t.Errorf("期望 Username=alice，实际=%s", result.User.Username)
	}
}

func TestRefreshToken_AccessTokenNotAllowed(t *testing.T) {
	svc, repo := setupTestAuthService()
	createTestUser(repo, "alice", "password123", model.RoleAdmin)

	loginResult, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "password123",
	})

	_, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: loginResult.AccessToken,
	})
	if !errors.Is(err, ErrRefreshTokenOnly) {
		t.Errorf("access token 不能用于刷新，期望 ErrRefreshTokenOnly，实际: %v", err)
	}
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{
		RefreshToken: "invalid.token.string",
	})
	if !errors.Is(err, jwt.ErrTokenInvalid) {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

// ── ChangePassword 测试 ──

func TestChangePassword_Success(t *testing.T) {
	svc, repo := setupTestAuthService()
	user := createTestUser(repo, "alice", "password123", model.RoleUser)
	user.MustChangePassword = true
	_ = repo.User.Update(context.Background(), user)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		NewPassword:     "newpass456!",
		ConfirmPassword: "newpass456!",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	// 改密后标记清除、新密码可登录
	updated, _ := repo.User.GetByID(context.Background(), user.UserID)
	if updated.MustChangePassword {
		t.Error("改密后 must_change_password 应清除")
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "alice",
		Password: "newpass456!",
	}); err != nil {
		t.Errorf("修改密码后应能用新密码登录: %v", err)
	}
}

func TestChangePassword_Mismatch(t *testing.T) {
	svc, repo := setupTestAuthService()
	user := createTestUser(repo, "alice", "password123", model.RoleUser)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		NewPassword:     "newpass456!",
		ConfirmPassword: "different!",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("期望 ErrPasswordMismatch，实际: %v", err)
	}
}

// [自证通过] internal/service/auth_service_test.go
