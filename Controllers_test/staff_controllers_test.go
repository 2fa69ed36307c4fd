package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/awann-cloud/kedai-kiry-sub001/controllers"
	"github.com/awann-cloud/kedai-kiry-sub001/models"
	"github.com/awann-cloud/kedai-kiry-sub001/utils"
	"gorm.io/gorm"
)

func setupStaffRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	staffCtrl := controllers.NewStaffController(db)
	router.GET("/staff", staffCtrl.GetStaff)
	router.POST("/staff", staffCtrl.CreateStaff)
	router.DELETE("/staff/:staff_id", staffCtrl.DeactivateStaff)
	return router
}

func TestStaffDirectoryFilterByRole(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	db.Create(&[]models.Staff{
		{Name: "Budi", Role: models.StaffRoleCook, Active: true},
		{Name: "Siti", Role: models.StaffRoleWaiter, Active: true},
		{Name: "Rina", Role: models.StaffRoleWaiter, Active: false}, // nonaktif
	})
	router := setupStaffRouter(db)

	req, _ := http.NewRequest("GET", "/staff?role=waiter", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Staff `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, "Siti", resp.Data[0].Name)
}

func TestStaffDirectoryRejectsUnknownRole(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupStaffRouter(db)

	req, _ := http.NewRequest("GET", "/staff?role=driver", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAndDeactivateStaff(t *testing.T) {
	utils.InitLogger()
	db := setupTestDB()
	router := setupStaffRouter(db)

	body := strings.NewReader(`{"name":"Agus","role":"cook"}`)
	req, _ := http.NewRequest("POST", "/staff", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Staff `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Data.Active)

	req, _ = http.NewRequest("DELETE", "/staff/1", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var remaining []models.Staff
	db.Where("active = ?", true).Find(&remaining)
	assert.Empty(t, remaining)
}
