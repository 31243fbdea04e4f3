package repo

import (
	"StockKeeper/internal/model"
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и выполняет миграции моделей.
// DSN со схемой postgres подключает Postgres, всё остальное трактуется
// как путь к файлу SQLite (cgo-free драйвер modernc).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = gormpostgres.Open(dsn)
	} else {
		if dsn == "" {
			dsn = "stockkeeper.db"
		}
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.InventoryItem{}); err != nil {
		return nil, err
	}
	return db, nil
}
