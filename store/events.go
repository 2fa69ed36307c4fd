package store

import "github.com/awann-cloud/kedai-kiry-sub001/models"

// Event types yang disiarkan ke subscriber setiap mutasi sukses.
const (
	EventOrderCreated   = "order_created"
	EventItemStarted    = "item_started"
	EventItemFinished   = "item_finished"
	EventOrderCompleted = "order_completed"
	EventWaiterAssigned = "waiter_assigned"
	EventItemDelivered  = "item_delivered"
	EventOrderDelivered = "order_delivered"
)

// Event membawa snapshot order (deep copy) setelah mutasi; subscriber
// bebas menyimpan/meneruskannya tanpa menyentuh state store.
type Event struct {
	Type       string            `json:"type"`
	Department models.Department `json:"department"`
	Order      *models.Order     `json:"order"`
}
