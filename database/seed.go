package database

import (
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/awann-cloud/kedai-kiry-sub001/models"
	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

// Seed mengisi direktori staf dan akun admin default saat tabel masih
// kosong, supaya instalasi baru langsung bisa dipakai. Idempotent.
func Seed(db *gorm.DB) error {
	var staffCount int64
	if err := db.Model(&models.Staff{}).Count(&staffCount).Error; err != nil {
		return err
	}
	if staffCount == 0 {
		defaults := []models.Staff{
			{Name: "Budi", Role: models.StaffRoleCook, Active: true},
			{Name: "Agus", Role: models.StaffRoleCook, Active: true},
			{Name: "Dewi", Role: models.StaffRoleCook, Active: true},
			{Name: "Siti", Role: models.StaffRoleWaiter, Active: true},
			{Name: "Rina", Role: models.StaffRoleWaiter, Active: true},
		}
		if err := db.Create(&defaults).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded staff directory with %d entries", len(defaults))
	}

	var adminCount int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount == 0 {
		password := os.Getenv("ADMIN_PASSWORD")
		if password == "" {
			password = "admin123" // ganti lewat env di production
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		admin := models.User{
			Name:     "Admin",
			Email:    "admin@kedai-kiry.local",
			Password: string(hashed),
			Role:     "admin",
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		utils.InfoLogger.Printf("Seeded default admin account %s", admin.Email)
	}

	return nil
}
