package service

import (
	"context"
	"strings"

	"go-task-api/internal/core/auth"
	"go-task-api/internal/domain"
	"go-task-api/internal/repo"
	"go-task-api/pkg/utils"
)

type AuthService struct {
	users *repo.UserRepo
	jwter *auth.JWTer
}

func NewAuthService(users *repo.UserRepo, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

// SignUp 盐只在这里生成一次；库里永远只存 hash(password, salt)
func (s *AuthService) SignUp(ctx context.Context, username, password string) (*domain.User, error) {
	salt := utils.NewSalt()
	u := &domain.User{
		Username: username,
		Salt:     salt,
		Password: utils.HashPassword(password, salt),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if isDupKey(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return u, nil
}

// SignIn 未知用户和密码错误给同一个错误，不暴露用户名是否存在
func (s *AuthService) SignIn(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil || !u.ValidatePassword(password) {
		return "", ErrUnauthorized
	}
	return s.jwter.Issue(u.Username)
}

// ResolveUser 把已验签的 token claims 映射到持久化用户。
// 签名/过期由 JWTer.Parse 负责；这里只回答“这个用户名还在不在”
func (s *AuthService) ResolveUser(ctx context.Context, claims *auth.Claims) (*domain.User, error) {
	u, err := s.users.FindByUsername(ctx, claims.Username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnauthorized
	}
	return u, nil
}

func isDupKey(err error) bool {
	// 不依赖 gorm.ErrDuplicatedKey，避免版本差异导致“undefined”
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
