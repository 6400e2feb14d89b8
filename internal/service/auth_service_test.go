package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"go-task-api/internal/core/auth"
	"go-task-api/internal/domain"
	"go-task-api/internal/repo"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Task{}))
	return db
}

func newTestAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "task-api", TTL: time.Hour}
	return NewAuthService(repo.NewUserRepo(db), jwter), db
}

func TestAuthServiceSignUp(t *testing.T) {
	svc, db := newTestAuthService(t)
	ctx := context.Background()

	u, err := svc.SignUp(ctx, "Test User", "testPassword")
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.NotEmpty(t, u.Salt)
	require.NotEqual(t, "testPassword", u.Password, "plaintext must never be stored")

	var stored domain.User
	require.NoError(t, db.First(&stored, "username = ?", "Test User").Error)
	require.True(t, stored.ValidatePassword("testPassword"))
	require.False(t, stored.ValidatePassword("wrong"))
}

func TestAuthServiceSignUp_DuplicateUsername(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "Test User", "testPassword")
	require.NoError(t, err)

	_, err = svc.SignUp(ctx, "Test User", "otherPassword")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthServiceSignIn(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "Test User", "testPassword")
	require.NoError(t, err)

	tok, err := svc.SignIn(ctx, "Test User", "testPassword")
	require.NoError(t, err)

	claims, err := svc.jwter.Parse(tok)
	require.NoError(t, err)
	require.Equal(t, "Test User", claims.Username)
}

func TestAuthServiceSignIn_BadCredentials(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	_, err := svc.SignUp(ctx, "Test User", "testPassword")
	require.NoError(t, err)

	// 密码错误和用户不存在必须是同一个错误
	_, err = svc.SignIn(ctx, "Test User", "wrongPassword")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.SignIn(ctx, "nobody", "testPassword")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestAuthServiceResolveUser(t *testing.T) {
	svc, db := newTestAuthService(t)
	ctx := context.Background()

	u, err := svc.SignUp(ctx, "Test User", "testPassword")
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.Task{Title: "a", Description: "d", Status: domain.StatusOpen, UserID: u.ID}).Error)

	got, err := svc.ResolveUser(ctx, &auth.Claims{Username: "Test User"})
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Len(t, got.Tasks, 1, "tasks load eagerly with the user")
}

func TestAuthServiceResolveUser_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.ResolveUser(context.Background(), &auth.Claims{Username: "Test User"})
	require.ErrorIs(t, err, ErrUnauthorized)
}
