package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/awann-cloud/kedai-kiry-sub001/models"
	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

// HistoryController membaca arsip order terminal (completed && delivered)
// yang ditulis services.Archiver.
type HistoryController struct {
	DB *gorm.DB
}

func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{DB: db}
}

// GetOrderHistory -> arsip, terbaru dulu, optional ?department=
func (hc *HistoryController) GetOrderHistory(c *gin.Context) {
	query := hc.DB.Preload("Items").Order("created_at desc")

	if department := c.Query("department"); department != "" {
		query = query.Where("department = ?", department)
	}

	var archives []models.OrderArchive
	if err := query.Limit(200).Find(&archives).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order history", archives)
}
