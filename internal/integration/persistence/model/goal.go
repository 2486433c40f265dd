package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashease/backend/internal/domain/entity"
)

// GoalModel represents the goals table in the database.
type GoalModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name       string          `gorm:"type:varchar(100);not null"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Saved      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TargetDate time.Time       `gorm:"type:date;not null"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GoalModel.
func (GoalModel) TableName() string {
	return "goals"
}

// ToEntity converts a GoalModel to a domain Goal entity.
func (m *GoalModel) ToEntity() *entity.Goal {
	return &entity.Goal{
		ID:         m.ID,
		UserID:     m.UserID,
		Name:       m.Name,
		Amount:     m.Amount,
		Saved:      m.Saved,
		TargetDate: entity.DateOf(m.TargetDate),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// GoalFromEntity creates a GoalModel from a domain Goal entity.
func GoalFromEntity(goal *entity.Goal) *GoalModel {
	return &GoalModel{
		ID:         goal.ID,
		UserID:     goal.UserID,
		Name:       goal.Name,
		Amount:     goal.Amount,
		Saved:      goal.Saved,
		TargetDate: goal.TargetDate,
		CreatedAt:  goal.CreatedAt,
		UpdatedAt:  goal.UpdatedAt,
	}
}
