// Package model holds the gorm row types and their conversions to entities.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/cashease/backend/internal/domain/entity"
)

// UserModel is a row of users. Email is unique and already lower-cased by the
// register flow.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string    `gorm:"type:varchar(100);not null"`
	PasswordHash       string    `gorm:"type:varchar(255);not null"`
	EmailNotifications bool      `gorm:"default:true"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }

func (m *UserModel) ToEntity() *entity.User {
	u := entity.User(*m)
	return &u
}

func UserFromEntity(user *entity.User) *UserModel {
	m := UserModel(*user)
	return &m
}
