package domain

import (
	"time"

	"go-task-api/pkg/utils"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex:username_index;size:64;not null" json:"username"`
	Password string `gorm:"size:128;not null" json:"-"`
	Salt     string `gorm:"size:64;not null" json:"-"`
	Tasks    []Task `gorm:"foreignKey:UserID" json:"tasks"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// ValidatePassword 用存储的盐重算候选密码的哈希，与存储哈希做精确比较
func (u *User) ValidatePassword(candidate string) bool {
	return utils.HashPassword(candidate, u.Salt) == u.Password
}
