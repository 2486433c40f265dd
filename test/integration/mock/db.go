//go:build integration

package mock

import (
	"fmt"
	"sync"

	"gorm.io/gorm"

	"github.com/cashease/backend/internal/infra/db"
	"github.com/cashease/backend/internal/integration/persistence/model"
)

var (
	dbOnce sync.Once
	shared *Db
)

// Db is an in-memory SQLite database shared by every scenario.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens and migrates the shared database on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		shared = open()
	})
	return shared
}

func open() *Db {
	database, err := db.NewSQLiteConnection("file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	sqlDB, err := database.DB().DB()
	if err != nil {
		panic(err)
	}
	// A single connection keeps the shared-cache database from locking.
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{DbConn: database.DB(), models: model.All()}
}

// ClearDB deletes every row of every table.
func (d *Db) ClearDB() error {
	for i := len(d.models) - 1; i >= 0; i-- {
		if err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(d.models[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of rows in table.
func (d *Db) Count(table string) (int64, error) {
	var n int64
	err := d.DbConn.Table(table).Count(&n).Error
	return n, err
}
