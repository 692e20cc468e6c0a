package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database migrated with the application models.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	order  []string
}

// NewDb opens the shared database on first use. Tables are keyed by name so
// steps can address them; order is the migration order.
func NewDb(order []string, models map[string]any) *Db {
	once.Do(func() {
		db = open(order, models)
	})
	return db
}

func open(order []string, models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file:pawz_connect?mode=memory&cache=shared")
	if err != nil {
		panic(err)
	}

	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
		order:  order,
	}

	modelList := make([]any, 0, len(order))
	for _, table := range order {
		model, ok := models[table]
		if !ok {
			panic(fmt.Sprintf("no model registered for table %q", table))
		}
		modelList = append(modelList, model)
	}
	if err := dbConn.AutoMigrate(modelList...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

// ClearDB removes every row, children first.
func (d *Db) ClearDB() error {
	for i := len(d.order) - 1; i >= 0; i-- {
		model := d.models[d.order[i]]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", d.order[i], err)
		}
	}
	return nil
}

// GetModel returns the model registered for table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
