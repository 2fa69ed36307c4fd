package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/awann-cloud/kedai-kiry-sub001/controllers"
	"github.com/awann-cloud/kedai-kiry-sub001/kds"
	"github.com/awann-cloud/kedai-kiry-sub001/middlewares"
	"github.com/awann-cloud/kedai-kiry-sub001/store"
)

func SetupRouter(db *gorm.DB, st *store.Store, hub *kds.Hub) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	userCtrl := controllers.NewUserController(db)
	orderCtrl := controllers.NewOrderController(st)
	staffCtrl := controllers.NewStaffController(db)
	historyCtrl := controllers.NewHistoryController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Intake: kolaborator kasir membuat order baru (tanpa auth layar,
	// intake punya jalur autentikasi sendiri di luar core ini)
	r.POST("/orders", orderCtrl.CreateOrder)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.EnhancedAuthMiddleware())

	auth.GET("/admin/profile", userCtrl.GetProfile)

	// DISPLAY (semua layar login boleh lihat; mutasi dibatasi per role)
	auth.GET("/kds/display", orderCtrl.GetAllDisplay)
	auth.GET("/kds/:department", orderCtrl.GetDepartmentDisplay)

	// STAFF DIRECTORY
	auth.GET("/staff", staffCtrl.GetStaff)
	auth.POST("/staff", middlewares.RequireRoles(), staffCtrl.CreateStaff)
	auth.DELETE("/staff/:staff_id", middlewares.RequireRoles(), staffCtrl.DeactivateStaff)

	// HISTORY (admin/checker)
	auth.GET("/admin/history", middlewares.RequireRoles("checker"), historyCtrl.GetOrderHistory)

	// LIFECYCLE MUTATIONS, department-scoped.
	// Layar department hanya departemennya sendiri; checker/admin semua.
	dept := auth.Group("/departments/:department")
	dept.Use(middlewares.RequireDepartmentRole())
	dept.Use(middlewares.MutationLoggerMiddleware())
	{
		// item-level cooking
		dept.POST("/orders/:order_id/items/:item_id/start", orderCtrl.StartItem)
		dept.POST("/orders/:order_id/items/:item_id/finish", orderCtrl.FinishItem)

		// order-level
		dept.POST("/orders/:order_id/complete", orderCtrl.CompleteOrder)

		// delivery sub-workflow (checker)
		dept.POST("/orders/:order_id/assign-waiter", orderCtrl.AssignWaiter)
		dept.POST("/orders/:order_id/items/:item_id/deliver", orderCtrl.MarkItemDelivered)
		dept.POST("/orders/:order_id/deliver", orderCtrl.MarkDelivered)
	}

	// WebSocket endpoint dengan middleware khusus
	wsGroup := r.Group("/ws")
	wsGroup.Use(middlewares.WebSocketAuthMiddleware())
	{
		wsGroup.GET("/:role", controllers.KDSHandler(hub))
	}

	return r
}
