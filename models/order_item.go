package models

// ItemStatus adalah status masak satu item. Transisi hanya maju:
// not-started -> on-their-way -> finished
type ItemStatus string

const (
	ItemNotStarted ItemStatus = "not-started"
	ItemOnTheirWay ItemStatus = "on-their-way"
	ItemFinished   ItemStatus = "finished"
)

// MenuItem is one line item of an order, tracked independently through the
// cooking phase (status/staff/startedTime/finishedTime) and the delivery
// phase (waiter/deliveryStartTime/deliveryFinishedTime).
// All *Time fields are epoch milliseconds, elapsed fields are seconds.
type MenuItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`

	Status ItemStatus `json:"status"`
	Staff  string     `json:"staff,omitempty"`

	StartedTime  int64 `json:"started_time,omitempty"`
	FinishedTime int64 `json:"finished_time,omitempty"`
	// ElapsedTime dibekukan saat item finished; selama on-their-way pakai ElapsedAt.
	ElapsedTime int64 `json:"elapsed_time,omitempty"`

	Waiter               string `json:"waiter,omitempty"`
	ItemDelivered        bool   `json:"item_delivered"`
	DeliveryStartTime    int64  `json:"delivery_start_time,omitempty"`
	DeliveryFinishedTime int64  `json:"delivery_finished_time,omitempty"`
	DeliveryElapsedTime  int64  `json:"delivery_elapsed_time,omitempty"`
}

// ElapsedAt -> detik memasak aktif pada saat nowMillis.
// Live selama on-their-way, beku setelah finished.
func (mi *MenuItem) ElapsedAt(nowMillis int64) int64 {
	switch mi.Status {
	case ItemFinished:
		return mi.ElapsedTime
	case ItemOnTheirWay:
		diff := nowMillis - mi.StartedTime
		if diff < 0 {
			return 0
		}
		return diff / 1000
	default:
		return 0
	}
}

func (mi *MenuItem) Clone() *MenuItem {
	clone := *mi
	return &clone
}
