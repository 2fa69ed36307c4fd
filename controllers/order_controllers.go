package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awann-cloud/kedai-kiry-sub001/models"
	"github.com/awann-cloud/kedai-kiry-sub001/scheduling"
	"github.com/awann-cloud/kedai-kiry-sub001/store"
	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

type OrderController struct {
	Store *store.Store
}

func NewOrderController(st *store.Store) *OrderController {
	return &OrderController{Store: st}
}

// respondStoreError memetakan kode taksonomi store ke status HTTP.
// Semua penolakan mutasi adalah 4xx, bukan crash (fail closed).
func respondStoreError(c *gin.Context, err error) {
	code := store.CodeOf(err)
	switch code {
	case store.CodeNotFound:
		utils.RespondWithCode(c, http.StatusNotFound, string(code), err)
	case store.CodeInvalidTransition, store.CodePreconditionNotMet, store.CodeAlreadyAssigned:
		utils.RespondWithCode(c, http.StatusConflict, string(code), err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}

// displayPayload -> snapshot terurut + "now" supaya layar bisa menghitung
// elapsed time sendiri tiap detik tanpa minta state baru.
func (oc *OrderController) displayPayload(orders []*models.Order) gin.H {
	nowMillis := utils.EpochMillis(oc.Store.Clock().Now())
	rows := make([]gin.H, len(orders))
	for i, o := range orders {
		rows[i] = gin.H{
			"order":        o,
			"elapsed_time": o.ElapsedAt(nowMillis),
		}
	}
	return gin.H{
		"now":    nowMillis,
		"orders": rows,
	}
}

// GetDepartmentDisplay -> list order satu department, urut display (paket scheduling)
func (oc *OrderController) GetDepartmentDisplay(c *gin.Context) {
	department := models.Department(c.Param("department"))

	orders, err := oc.Store.GetOrders(department)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	arranged := scheduling.Arrange(orders)
	utils.RespondJSON(c, http.StatusOK, "Department display", oc.displayPayload(arranged))
}

// GetAllDisplay -> tampilan checker: semua department sekaligus,
// masing-masing diurutkan sendiri.
func (oc *OrderController) GetAllDisplay(c *gin.Context) {
	byDepartment := gin.H{}
	for _, d := range models.Departments {
		orders, err := oc.Store.GetOrders(d)
		if err != nil {
			respondStoreError(c, err)
			return
		}
		byDepartment[string(d)] = oc.displayPayload(scheduling.Arrange(orders))
	}
	utils.RespondJSON(c, http.StatusOK, "All departments display", byDepartment)
}

// CreateOrder -> intake: terima order baru lengkap dengan items
func (oc *OrderController) CreateOrder(c *gin.Context) {
	type ItemReq struct {
		Name     string `json:"name" binding:"required"`
		Quantity int    `json:"quantity" binding:"required"`
		Notes    string `json:"notes"`
	}
	type ReqBody struct {
		Name       string    `json:"name" binding:"required"`
		Department string    `json:"department" binding:"required"`
		Priority   string    `json:"priority"`
		Items      []ItemReq `json:"items" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	items := make([]*models.MenuItem, len(body.Items))
	for i, it := range body.Items {
		items[i] = &models.MenuItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Notes:    it.Notes,
		}
	}

	order, err := oc.Store.AddOrder(
		body.Name,
		models.Department(body.Department),
		models.Priority(body.Priority),
		items,
	)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s (#%s) masuk antrian %s", order.ID, order.OrderID, order.Department)
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

/*
========================================
 ITEM-LEVEL COOKING
========================================
*/

// StartItem -> layar department menandai 1 item mulai dimasak
func (oc *OrderController) StartItem(c *gin.Context) {
	type ReqBody struct {
		Staff string `json:"staff" binding:"required"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Store.StartItem(
		models.Department(c.Param("department")),
		c.Param("order_id"),
		c.Param("item_id"),
		body.Staff,
	)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item on-their-way", order)
}

// FinishItem -> item selesai dimasak; elapsedTime beku di store
func (oc *OrderController) FinishItem(c *gin.Context) {
	order, err := oc.Store.FinishItem(
		models.Department(c.Param("department")),
		c.Param("order_id"),
		c.Param("item_id"),
	)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item finished", order)
}

/*
========================================
 ORDER-LEVEL / DELIVERY
========================================
*/

// CompleteOrder -> tandai order selesai dimasak (semua item finished)
func (oc *OrderController) CompleteOrder(c *gin.Context) {
	order, err := oc.Store.CompleteOrder(
		models.Department(c.Param("department")),
		c.Param("order_id"),
	)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order completed", order)
}

// MarkDelivered -> checker konfirmasi seluruh order terkirim
func (oc *OrderController) MarkDelivered(c *gin.Context) {
	order, err := oc.Store.MarkDelivered(
		models.Department(c.Param("department")),
		c.Param("order_id"),
	)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order delivered", order)
}

// MarkItemDelivered -> checker konfirmasi 1 item sampai di meja
func (oc *OrderController) MarkItemDelivered(c *gin.Context) {
	order, err := oc.Store.MarkItemDelivered(
		models.Department(c.Param("department")),
		c.Param("order_id"),
		c.Param("item_id"),
	)
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Item delivered", order)
}

// AssignWaiter -> tugaskan waiter; body dengan item_id berarti satu item,
// tanpa item_id berarti seluruh item eligible di order.
func (oc *OrderController) AssignWaiter(c *gin.Context) {
	type ReqBody struct {
		Waiter string `json:"waiter" binding:"required"`
		ItemID string `json:"item_id"`
	}
	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	department := models.Department(c.Param("department"))
	orderID := c.Param("order_id")

	var (
		order *models.Order
		err   error
	)
	if body.ItemID != "" {
		order, err = oc.Store.AssignWaiterToItem(department, orderID, body.ItemID, body.Waiter)
	} else {
		order, err = oc.Store.AssignWaiter(department, orderID, body.Waiter)
	}
	if err != nil {
		respondStoreError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Waiter assigned", order)
}
