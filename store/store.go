package store

import (
	"fmt"
	"sync"

	"github.com/awann-cloud/kedai-kiry-sub001/models"
	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

// Store adalah pemilik tunggal state order/item yang bisa berubah.
// Semua mutasi diserialisasi lewat satu mutex: satu mutasi selesai penuh
// (termasuk publish event-nya) sebelum mutasi berikutnya terlihat, jadi
// invariant tidak pernah tampak rusak ke pembaca mana pun, walau sesaat.
type Store struct {
	mu     sync.Mutex
	clock  utils.Clock
	queues map[models.Department][]*models.Order
	seq    int // internal id counter
	ticket int // nomor tiket monoton

	subMu   sync.Mutex
	subs    map[int]chan Event
	nextSub int
}

func New(clock utils.Clock) *Store {
	if clock == nil {
		clock = utils.SystemClock()
	}
	queues := make(map[models.Department][]*models.Order, len(models.Departments))
	for _, d := range models.Departments {
		queues[d] = nil
	}
	return &Store{
		clock:  clock,
		queues: queues,
		subs:   make(map[int]chan Event),
	}
}

// Clock -> sumber waktu store; sisi baca memakai clock yang sama supaya
// perhitungan elapsed konsisten dengan timestamp yang tersimpan.
func (s *Store) Clock() utils.Clock { return s.clock }

/*
========================================
 QUERY SURFACE
========================================
*/

// GetOrders -> antrian order satu department dalam urutan masuk.
// Urutan display adalah urusan paket scheduling, bukan store.
func (s *Store) GetOrders(department models.Department) ([]*models.Order, error) {
	if !department.Valid() {
		return nil, newError(CodeNotFound, "unknown department %q", department)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queue := s.queues[department]
	out := make([]*models.Order, len(queue))
	for i, o := range queue {
		out[i] = o.Clone()
	}
	return out, nil
}

// GetAllOrders -> semua department (kitchen, bar, snack) dalam urutan masuk;
// setiap order sudah membawa field department-nya sendiri.
func (s *Store) GetAllOrders() []*models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Order
	for _, d := range models.Departments {
		for _, o := range s.queues[d] {
			out = append(out, o.Clone())
		}
	}
	return out
}

/*
========================================
 INTAKE
========================================
*/

// AddOrder memasukkan order baru dari intake ke antrian department-nya.
// Store yang memberi internal id, nomor tiket, dan status awal item.
func (s *Store) AddOrder(name string, department models.Department, priority models.Priority, items []*models.MenuItem) (*models.Order, error) {
	if !department.Valid() {
		return nil, newError(CodeNotFound, "unknown department %q", department)
	}
	if len(items) == 0 {
		return nil, newError(CodePreconditionNotMet, "order must contain at least one item")
	}
	if priority != models.PriorityPrioritas {
		priority = models.PriorityNormal
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.ticket++
	order := &models.Order{
		ID:         fmt.Sprintf("o-%d", s.seq),
		OrderID:    fmt.Sprintf("%04d", s.ticket),
		Name:       name,
		Department: department,
		Priority:   priority,
		CreatedAt:  s.clock.Now(),
	}
	for i, it := range items {
		order.Items = append(order.Items, &models.MenuItem{
			ID:       fmt.Sprintf("%s-i%d", order.ID, i+1),
			Name:     it.Name,
			Quantity: it.Quantity,
			Notes:    it.Notes,
			Status:   models.ItemNotStarted,
		})
	}
	s.queues[department] = append(s.queues[department], order)

	snapshot := order.Clone()
	s.publish(Event{Type: EventOrderCreated, Department: department, Order: snapshot})
	return snapshot, nil
}

/*
========================================
 ITEM-LEVEL COOKING
========================================
*/

// StartItem -> item "not-started" => "on-their-way"; catat pemasak & startedTime
func (s *Store) StartItem(department models.Department, orderID, itemID, staffName string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, item, err := s.findItem(department, orderID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != models.ItemNotStarted {
		return nil, newError(CodeInvalidTransition,
			"cannot start item %s: status is %q, want %q", itemID, item.Status, models.ItemNotStarted)
	}

	item.Status = models.ItemOnTheirWay
	item.Staff = staffName
	item.StartedTime = utils.EpochMillis(s.clock.Now())

	snapshot := order.Clone()
	s.publish(Event{Type: EventItemStarted, Department: department, Order: snapshot})
	return snapshot, nil
}

// FinishItem -> item "on-their-way" => "finished"; bekukan elapsedTime
func (s *Store) FinishItem(department models.Department, orderID, itemID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, item, err := s.findItem(department, orderID, itemID)
	if err != nil {
		return nil, err
	}
	if item.Status != models.ItemOnTheirWay {
		return nil, newError(CodeInvalidTransition,
			"cannot finish item %s: status is %q, want %q", itemID, item.Status, models.ItemOnTheirWay)
	}

	item.Status = models.ItemFinished
	item.FinishedTime = utils.EpochMillis(s.clock.Now())
	item.ElapsedTime = (item.FinishedTime - item.StartedTime) / 1000

	snapshot := order.Clone()
	s.publish(Event{Type: EventItemFinished, Department: department, Order: snapshot})
	return snapshot, nil
}

/*
========================================
 ORDER-LEVEL
========================================
*/

// CompleteOrder -> order selesai dimasak. Precondition keras: SEMUA item
// harus finished, dicek di sini, bukan cuma tombol disable di UI.
func (s *Store) CompleteOrder(department models.Department, orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.findOrder(department, orderID)
	if err != nil {
		return nil, err
	}
	if order.Completed {
		return nil, newError(CodeInvalidTransition, "order %s already completed", orderID)
	}
	if !order.AllItemsFinished() {
		return nil, newError(CodePreconditionNotMet,
			"cannot complete order %s: not every item is finished", orderID)
	}

	order.Completed = true
	frozen := order.ElapsedAt(utils.EpochMillis(s.clock.Now()))
	order.FrozenTime = &frozen

	snapshot := order.Clone()
	s.publish(Event{Type: EventOrderCompleted, Department: department, Order: snapshot})
	return snapshot, nil
}

// MarkDelivered -> seluruh order terkirim. Precondition: semua item
// sudah punya waiter.
func (s *Store) MarkDelivered(department models.Department, orderID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.findOrder(department, orderID)
	if err != nil {
		return nil, err
	}
	if order.Delivered {
		return nil, newError(CodeInvalidTransition, "order %s already delivered", orderID)
	}
	if !order.AllItemsHaveWaiter() {
		return nil, newError(CodePreconditionNotMet,
			"cannot deliver order %s: not every item has a waiter", orderID)
	}

	order.Delivered = true

	snapshot := order.Clone()
	s.publish(Event{Type: EventOrderDelivered, Department: department, Order: snapshot})
	return snapshot, nil
}

// MarkItemDelivered -> satu item terkirim; bekukan deliveryElapsedTime.
// Harus sudah punya waiter (assign dulu lewat AssignWaiterToItem).
func (s *Store) MarkItemDelivered(department models.Department, orderID, itemID string) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, item, err := s.findItem(department, orderID, itemID)
	if err != nil {
		return nil, err
	}
	if item.ItemDelivered {
		return nil, newError(CodeInvalidTransition, "item %s already delivered", itemID)
	}
	if item.Waiter == "" {
		return nil, newError(CodePreconditionNotMet,
			"cannot deliver item %s: no waiter assigned", itemID)
	}

	item.ItemDelivered = true
	item.DeliveryFinishedTime = utils.EpochMillis(s.clock.Now())
	item.DeliveryElapsedTime = (item.DeliveryFinishedTime - item.DeliveryStartTime) / 1000

	snapshot := order.Clone()
	s.publish(Event{Type: EventItemDelivered, Department: department, Order: snapshot})
	return snapshot, nil
}

/*
========================================
 WAITER ASSIGNMENT
========================================
*/

// AssignWaiterToItem -> tugaskan waiter ke satu item finished yang belum
// punya waiter; catat deliveryStartTime. Reassign tidak diizinkan.
func (s *Store) AssignWaiterToItem(department models.Department, orderID, itemID, waiterName string) (*models.Order, error) {
	return s.assign(department, orderID, waiterName, &itemID)
}

// AssignWaiter -> versi order-wide: satu langkah atomik menugaskan waiter
// ke semua item yang eligible (finished & belum punya waiter) sekaligus
// mengisi field waiter lama di level order.
func (s *Store) AssignWaiter(department models.Department, orderID, waiterName string) (*models.Order, error) {
	return s.assign(department, orderID, waiterName, nil)
}

// assign adalah satu operasi "tugaskan waiter ke himpunan item" dengan
// selector: itemID != nil berarti tepat satu item (dan pelanggaran aturan
// per-item jadi error), nil berarti semua item yang eligible.
func (s *Store) assign(department models.Department, orderID, waiterName string, itemID *string) (*models.Order, error) {
	if waiterName == "" {
		return nil, newError(CodePreconditionNotMet, "waiter name must not be empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.findOrder(department, orderID)
	if err != nil {
		return nil, err
	}

	now := utils.EpochMillis(s.clock.Now())

	if itemID != nil {
		item := order.Item(*itemID)
		if item == nil {
			return nil, newError(CodeNotFound, "item %s not found in order %s", *itemID, orderID)
		}
		if eligErr := waiterEligible(item); eligErr != nil {
			return nil, eligErr
		}
		assignTo(item, waiterName, now)
	} else {
		assigned := 0
		for _, item := range order.Items {
			if waiterEligible(item) != nil {
				continue
			}
			assignTo(item, waiterName, now)
			assigned++
		}
		if assigned == 0 {
			return nil, newError(CodePreconditionNotMet,
				"no eligible item in order %s (finished and unassigned)", orderID)
		}
		order.Waiter = waiterName
	}

	snapshot := order.Clone()
	s.publish(Event{Type: EventWaiterAssigned, Department: department, Order: snapshot})
	return snapshot, nil
}

// waiterEligible -> aturan per-item yang sama untuk kedua bentuk operasi
func waiterEligible(item *models.MenuItem) *Error {
	if item.Status != models.ItemFinished {
		return newError(CodePreconditionNotMet,
			"item %s is not finished yet", item.ID)
	}
	if item.Waiter != "" {
		return newError(CodeAlreadyAssigned,
			"item %s already has waiter %q", item.ID, item.Waiter)
	}
	return nil
}

func assignTo(item *models.MenuItem, waiterName string, nowMillis int64) {
	item.Waiter = waiterName
	item.DeliveryStartTime = nowMillis
}

/*
========================================
 SUBSCRIPTIONS
========================================
*/

// Subscribe -> channel event untuk satu consumer plus fungsi cancel.
// Buffer 64; subscriber yang macet di-drop event-nya, bukan memblokir store.
func (s *Store) Subscribe() (<-chan Event, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, 64)
	s.subs[id] = ch

	cancel := func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// publish dipanggil sambil memegang s.mu supaya urutan event per order
// sama untuk semua subscriber.
func (s *Store) publish(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
			// subscriber terlalu lambat; dia akan re-pull snapshot sendiri
		}
	}
}

/*
========================================
 LOOKUP (caller harus pegang s.mu)
========================================
*/

func (s *Store) findOrder(department models.Department, orderID string) (*models.Order, *Error) {
	if !department.Valid() {
		return nil, newError(CodeNotFound, "unknown department %q", department)
	}
	for _, o := range s.queues[department] {
		if o.ID == orderID {
			return o, nil
		}
	}
	return nil, newError(CodeNotFound, "order %s not found in department %s", orderID, department)
}

func (s *Store) findItem(department models.Department, orderID, itemID string) (*models.Order, *models.MenuItem, *Error) {
	order, err := s.findOrder(department, orderID)
	if err != nil {
		return nil, nil, err
	}
	item := order.Item(itemID)
	if item == nil {
		return nil, nil, newError(CodeNotFound, "item %s not found in order %s", itemID, orderID)
	}
	return order, item, nil
}
