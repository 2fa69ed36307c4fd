// Package scheduling menghitung urutan tampil order di layar department.
// Murni: tidak pernah memutasi input, deterministik untuk snapshot yang sama.
package scheduling

import (
	"sort"

	"github.com/awann-cloud/kedai-kiry-sub001/models"
)

// Category progress masak satu order secara keseluruhan.
// Finished tampil paling atas, lalu ongoing, lalu not-started.
type Category int

const (
	CategoryFinished Category = iota + 1
	CategoryOngoing
	CategoryNotStarted
)

// Classify -> tepat satu kategori per order:
// finished = semua item finished, not-started = semua item not-started,
// sisanya (status campur) = ongoing.
func Classify(o *models.Order) Category {
	if len(o.Items) == 0 {
		return CategoryNotStarted
	}
	allFinished, allNotStarted := true, true
	for _, it := range o.Items {
		if it.Status != models.ItemFinished {
			allFinished = false
		}
		if it.Status != models.ItemNotStarted {
			allNotStarted = false
		}
	}
	switch {
	case allFinished:
		return CategoryFinished
	case allNotStarted:
		return CategoryNotStarted
	default:
		return CategoryOngoing
	}
}

type entry struct {
	order *models.Order
	cat   Category
	// FIFO tie-break per kategori: finished pakai max finishedTime,
	// ongoing pakai min startedTime; not-started pakai nomor tiket.
	at     int64
	ticket string
}

// Arrange mengembalikan slice baru berisi order yang sama, terurut untuk
// display: kategori dulu, lalu PRIORITAS sebelum NORMAL di dalam kategori,
// lalu FIFO khas kategori. Sisa seri stabil (urutan masuk dipertahankan).
func Arrange(orders []*models.Order) []*models.Order {
	entries := make([]entry, len(orders))
	for i, o := range orders {
		e := entry{order: o, cat: Classify(o)}
		switch e.cat {
		case CategoryFinished:
			e.at = o.LastFinishedTime()
		case CategoryOngoing:
			e.at = o.FirstStartedTime()
		default:
			e.ticket = o.OrderID
		}
		entries[i] = e
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.cat != b.cat {
			return a.cat < b.cat
		}
		// Priority menyalip FIFO tapi tidak pernah lintas kategori
		aPrio := a.order.Priority == models.PriorityPrioritas
		bPrio := b.order.Priority == models.PriorityPrioritas
		if aPrio != bPrio {
			return aPrio
		}
		if a.cat == CategoryNotStarted {
			return a.ticket < b.ticket
		}
		return a.at < b.at
	})

	arranged := make([]*models.Order, len(entries))
	for i, e := range entries {
		arranged[i] = e.order
	}
	return arranged
}
