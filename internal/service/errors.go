package service

import "errors"

var (
	// ErrUnauthorized 身份无法确认：密码不对，或 token 声称的用户已不存在
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound 对调用者而言资源不存在（包括属于别人的任务）
	ErrNotFound = errors.New("task not found")
	// ErrUsernameTaken 注册时用户名撞唯一索引
	ErrUsernameTaken = errors.New("username already exists")
)
