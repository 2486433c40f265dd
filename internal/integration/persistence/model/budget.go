package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/domain/entity"
)

// MonthlyLimitModel represents the monthly_limits table, one row per user.
type MonthlyLimitModel struct {
	UserID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for the MonthlyLimitModel.
func (MonthlyLimitModel) TableName() string {
	return "monthly_limits"
}

// ToEntity converts a MonthlyLimitModel to a domain MonthlyLimit.
func (m *MonthlyLimitModel) ToEntity() entity.MonthlyLimit {
	return entity.MonthlyLimit{
		UserID:    m.UserID,
		Amount:    m.Amount,
		UpdatedAt: m.UpdatedAt,
	}
}

// StreakModel represents the savings_streaks table, one row per user.
type StreakModel struct {
	UserID       uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Count        int        `gorm:"not null;default:0"`
	LastActivity *time.Time `gorm:"type:date"`
	UpdatedAt    time.Time  `gorm:"not null"`
}

// TableName returns the table name for the StreakModel.
func (StreakModel) TableName() string {
	return "savings_streaks"
}

// ToEntity converts a StreakModel to a domain Streak.
func (m *StreakModel) ToEntity() entity.Streak {
	s := entity.Streak{Count: m.Count}
	if m.LastActivity != nil {
		d := entity.DateOf(*m.LastActivity)
		s.LastActivity = &d
	}
	return s
}
