package models

import "time"

// Peran staff di direktori (bukan akun login).
const (
	StaffRoleCook   = "cook"
	StaffRoleWaiter = "waiter"
)

// Staff adalah entri direktori staf: siapa yang bisa dipilih sebagai
// pemasak atau waiter. Core hanya membaca nama dari sini, tidak
// memvalidasi ketersediaan dunia nyata.
type Staff struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"type:varchar(255);not null" json:"name"`
	Role      string `gorm:"type:varchar(20);not null;index" json:"role"`
	Active    bool   `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
