package Controllers_test

import (
	"github.com/awann-cloud/kedai-kiry-sub001/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testItems(names ...string) []*models.MenuItem {
	items := make([]*models.MenuItem, len(names))
	for i, name := range names {
		items[i] = &models.MenuItem{Name: name, Quantity: 1}
	}
	return items
}

// setupTestDB -> sqlite in-memory + migrasi model persisten
func setupTestDB() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.OrderArchive{},
		&models.OrderArchiveItem{},
	)
	if err != nil {
		panic(err)
	}
	return db
}
