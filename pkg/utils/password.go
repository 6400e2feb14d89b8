package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashIter   = 4096
	hashKeyLen = 32
	saltLen    = 16
)

// HashPassword 用给定盐派生密码哈希；同样的 (pw, salt) 必须得到同样的结果，
// 注册和校验共用这一个函数
func HashPassword(pw, salt string) string {
	key := pbkdf2.Key([]byte(pw), []byte(salt), hashIter, hashKeyLen, sha256.New)
	return hex.EncodeToString(key)
}

// NewSalt 每个用户注册时生成一次，之后不再变
func NewSalt() string {
	b := make([]byte, saltLen)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
