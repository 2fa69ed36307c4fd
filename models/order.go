package models

import (
	"time"
)

// Department adalah stasiun penyiapan yang memiliki antrian order sendiri.
type Department string

const (
	DepartmentKitchen Department = "kitchen"
	DepartmentBar     Department = "bar"
	DepartmentSnack   Department = "snack"
)

// Departments in fixed display order.
var Departments = []Department{DepartmentKitchen, DepartmentBar, DepartmentSnack}

func (d Department) Valid() bool {
	switch d {
	case DepartmentKitchen, DepartmentBar, DepartmentSnack:
		return true
	}
	return false
}

// Priority satu order; PRIORITAS menyalip NORMAL dalam kategori yang sama.
type Priority string

const (
	PriorityNormal    Priority = "NORMAL"
	PriorityPrioritas Priority = "PRIORITAS"
)

// Order adalah satu struk/tiket milik tepat satu department.
// OrderID adalah nomor tiket yang naik monoton, jadi perbandingan
// leksikografis mencerminkan urutan pembuatan.
type Order struct {
	ID         string      `json:"id"`
	OrderID    string      `json:"order_id"`
	Name       string      `json:"name"`
	Department Department  `json:"department"`
	Priority   Priority    `json:"priority"`
	Items      []*MenuItem `json:"items"`
	Completed  bool        `json:"completed"`
	Delivered  bool        `json:"delivered"`
	// FrozenTime: total detik berjalan yang dibekukan saat order completed.
	FrozenTime *int64 `json:"frozen_time,omitempty"`
	// Waiter: field lama untuk penugasan satu waiter ke seluruh order.
	Waiter    string    `json:"waiter,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Item -> cari item berdasarkan id, nil jika tidak ada
func (o *Order) Item(itemID string) *MenuItem {
	for _, it := range o.Items {
		if it.ID == itemID {
			return it
		}
	}
	return nil
}

func (o *Order) AllItemsFinished() bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, it := range o.Items {
		if it.Status != ItemFinished {
			return false
		}
	}
	return true
}

func (o *Order) AllItemsNotStarted() bool {
	for _, it := range o.Items {
		if it.Status != ItemNotStarted {
			return false
		}
	}
	return true
}

func (o *Order) AllItemsHaveWaiter() bool {
	if len(o.Items) == 0 {
		return false
	}
	for _, it := range o.Items {
		if it.Waiter == "" {
			return false
		}
	}
	return true
}

// FirstStartedTime -> startedTime paling awal di antara item yang sudah mulai
// dimasak (0 jika belum ada yang mulai). Momen masak order ini dimulai.
func (o *Order) FirstStartedTime() int64 {
	var min int64
	for _, it := range o.Items {
		if it.StartedTime == 0 {
			continue
		}
		if min == 0 || it.StartedTime < min {
			min = it.StartedTime
		}
	}
	return min
}

// LastFinishedTime -> finishedTime paling akhir; momen item terakhir selesai
// menentukan kapan order ini selesai dimasak.
func (o *Order) LastFinishedTime() int64 {
	var max int64
	for _, it := range o.Items {
		if it.FinishedTime > max {
			max = it.FinishedTime
		}
	}
	return max
}

// ElapsedAt -> total detik berjalan order pada nowMillis.
// Setelah completed nilainya beku di FrozenTime.
func (o *Order) ElapsedAt(nowMillis int64) int64 {
	if o.FrozenTime != nil {
		return *o.FrozenTime
	}
	first := o.FirstStartedTime()
	if first == 0 {
		return 0
	}
	diff := nowMillis - first
	if diff < 0 {
		return 0
	}
	return diff / 1000
}

// Clone -> salinan dalam (items ikut disalin); pembaca tidak pernah
// memegang record yang bisa dimutasi store.
func (o *Order) Clone() *Order {
	clone := *o
	if o.FrozenTime != nil {
		frozen := *o.FrozenTime
		clone.FrozenTime = &frozen
	}
	clone.Items = make([]*MenuItem, len(o.Items))
	for i, it := range o.Items {
		clone.Items[i] = it.Clone()
	}
	return &clone
}
