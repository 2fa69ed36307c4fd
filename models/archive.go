package models

import "time"

// OrderArchive menyimpan order yang sudah terminal (completed && delivered)
// supaya riwayat tetap ada setelah layer display dimatikan.
type OrderArchive struct {
	ID           uint               `gorm:"primaryKey" json:"id"`
	OrderRef     string             `gorm:"type:varchar(64);uniqueIndex;not null" json:"order_ref"`
	TicketNumber string             `gorm:"type:varchar(16);not null" json:"ticket_number"`
	Name         string             `gorm:"type:varchar(255)" json:"name"`
	Department   string             `gorm:"type:varchar(20);not null;index" json:"department"`
	Priority     string             `gorm:"type:varchar(20);not null" json:"priority"`
	Waiter       string             `gorm:"type:varchar(255)" json:"waiter,omitempty"`
	FrozenTime   int64              `json:"frozen_time"`
	Items        []OrderArchiveItem `gorm:"foreignKey:OrderArchiveID" json:"items"`
	CreatedAt    time.Time          `json:"created_at"`
}

type OrderArchiveItem struct {
	ID                  uint   `gorm:"primaryKey" json:"id"`
	OrderArchiveID      uint   `gorm:"not null;index" json:"-"`
	ItemRef             string `gorm:"type:varchar(64);not null" json:"item_ref"`
	Name                string `gorm:"type:varchar(255);not null" json:"name"`
	Quantity            int    `gorm:"not null" json:"quantity"`
	Notes               string `gorm:"type:text" json:"notes,omitempty"`
	Staff               string `gorm:"type:varchar(255)" json:"staff,omitempty"`
	Waiter              string `gorm:"type:varchar(255)" json:"waiter,omitempty"`
	StartedTime         int64  `json:"started_time"`
	FinishedTime        int64  `json:"finished_time"`
	ElapsedTime         int64  `json:"elapsed_time"`
	DeliveryElapsedTime int64  `json:"delivery_elapsed_time"`
}
