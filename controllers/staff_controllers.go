package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/awann-cloud/kedai-kiry-sub001/models"
	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

// StaffController melayani direktori staf: siapa saja cook/waiter yang
// tersedia. Core hanya baca nama dari sini, tidak memvalidasi kehadiran.
type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

// GetStaff -> list staf aktif, optional filter ?role=cook|waiter
func (sc *StaffController) GetStaff(c *gin.Context) {
	query := sc.DB.Where("active = ?", true)

	if role := c.Query("role"); role != "" {
		if role != models.StaffRoleCook && role != models.StaffRoleWaiter {
			utils.RespondError(c, http.StatusBadRequest, errors.New("unknown staff role "+role))
			return
		}
		query = query.Where("role = ?", role)
	}

	var staff []models.Staff
	if err := query.Order("name asc").Find(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Staff directory", staff)
}

// CreateStaff -> admin menambah entri direktori
func (sc *StaffController) CreateStaff(c *gin.Context) {
	type request struct {
		Name string `json:"name" binding:"required"`
		Role string `json:"role" binding:"required"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Role != models.StaffRoleCook && req.Role != models.StaffRoleWaiter {
		utils.RespondError(c, http.StatusBadRequest, errors.New("unknown staff role "+req.Role))
		return
	}

	staff := models.Staff{Name: req.Name, Role: req.Role, Active: true}
	if err := sc.DB.Create(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Staff created", staff)
}

// DeactivateStaff -> staf tidak lagi muncul di pilihan layar
func (sc *StaffController) DeactivateStaff(c *gin.Context) {
	var staff models.Staff
	if err := sc.DB.First(&staff, c.Param("staff_id")).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	staff.Active = false
	if err := sc.DB.Save(&staff).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Staff deactivated", staff)
}
