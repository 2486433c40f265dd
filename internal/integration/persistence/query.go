package persistence

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ownedBy scopes a query to rows of a single user.
func ownedBy(userID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

// oldestFirst orders rows by insertion time.
func oldestFirst(db *gorm.DB) *gorm.DB {
	return db.Order("created_at ASC")
}

// affected turns a write that matched no rows into notFound.
func affected(result *gorm.DB, notFound error) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}

func toEntities[M, E any](rows []M, convert func(*M) E) []E {
	out := make([]E, len(rows))
	for i := range rows {
		out[i] = convert(&rows[i])
	}
	return out
}
