package model

// All returns every model managed by auto-migration.
func All() []any {
	return []any{
		&UserModel{},
		&RefreshTokenModel{},
		&ExpenseModel{},
		&GoalModel{},
		&MonthlyLimitModel{},
		&StreakModel{},
		&EmailQueueModel{},
	}
}
