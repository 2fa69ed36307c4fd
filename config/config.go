package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB membuka koneksi gorm berdasarkan env:
// DB_DRIVER = sqlite (default) | mysql, DB_DSN = dsn driver.
// Database hanya dipakai untuk direktori staf, akun layar, dan arsip
// order terminal; state order live sepenuhnya in-memory di store.
func InitDB() (*gorm.DB, error) {
	driver := os.Getenv("DB_DRIVER")
	dsn := os.Getenv("DB_DSN")

	switch driver {
	case "", "sqlite":
		if dsn == "" {
			dsn = "kedai_kiry.db"
		}
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	case "mysql":
		if dsn == "" {
			dsn = "root:root@tcp(127.0.0.1:3306)/kedai_kiry?charset=utf8mb4&parseTime=True&loc=Local"
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", driver)
	}
}
