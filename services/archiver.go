package services

import (
	"gorm.io/gorm"

	"github.com/awann-cloud/kedai-kiry-sub001/models"
	"github.com/awann-cloud/kedai-kiry-sub001/store"
	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

// Archiver berlangganan event store dan menulis order yang sudah terminal
// (completed && delivered) ke database sebagai riwayat. Store sendiri tetap
// in-memory; arsip inilah yang bertahan melewati restart.
type Archiver struct {
	DB       *gorm.DB
	Store    *store.Store
	StopChan chan struct{}

	cancel func()
}

func NewArchiver(db *gorm.DB, st *store.Store) *Archiver {
	return &Archiver{
		DB:       db,
		Store:    st,
		StopChan: make(chan struct{}),
	}
}

func (a *Archiver) Start() {
	events, cancel := a.Store.Subscribe()
	a.cancel = cancel

	go func() {
		for {
			select {
			case ev, ok := <-events:
				if !ok {
					return
				}
				a.handleEvent(ev)
			case <-a.StopChan:
				return
			}
		}
	}()
}

func (a *Archiver) Stop() {
	if a.cancel != nil {
		a.cancel()
	}
	close(a.StopChan)
}

// handleEvent -> hanya order_completed/order_delivered yang bisa membuat
// order jadi terminal; event lain dilewati.
func (a *Archiver) handleEvent(ev store.Event) {
	switch ev.Type {
	case store.EventOrderCompleted, store.EventOrderDelivered:
		if ev.Order != nil && ev.Order.Completed && ev.Order.Delivered {
			a.archiveOrder(ev.Order)
		}
	}
}

func (a *Archiver) archiveOrder(order *models.Order) {
	// Cek dulu, event terminal bisa datang dua kali (completed lalu delivered)
	var existing int64
	if err := a.DB.Model(&models.OrderArchive{}).
		Where("order_ref = ?", order.ID).
		Count(&existing).Error; err != nil {
		utils.ErrorLogger.Printf("Error checking archive for order %s: %v", order.ID, err)
		return
	}
	if existing > 0 {
		return
	}

	var frozen int64
	if order.FrozenTime != nil {
		frozen = *order.FrozenTime
	}

	archive := models.OrderArchive{
		OrderRef:     order.ID,
		TicketNumber: order.OrderID,
		Name:         order.Name,
		Department:   string(order.Department),
		Priority:     string(order.Priority),
		Waiter:       order.Waiter,
		FrozenTime:   frozen,
	}
	for _, it := range order.Items {
		archive.Items = append(archive.Items, models.OrderArchiveItem{
			ItemRef:             it.ID,
			Name:                it.Name,
			Quantity:            it.Quantity,
			Notes:               it.Notes,
			Staff:               it.Staff,
			Waiter:              it.Waiter,
			StartedTime:         it.StartedTime,
			FinishedTime:        it.FinishedTime,
			ElapsedTime:         it.ElapsedTime,
			DeliveryElapsedTime: it.DeliveryElapsedTime,
		})
	}

	if err := a.DB.Create(&archive).Error; err != nil {
		utils.ErrorLogger.Printf("Error archiving order %s: %v", order.ID, err)
		return
	}
	utils.InfoLogger.Printf("Archived terminal order %s (#%s)", order.ID, order.OrderID)
}
