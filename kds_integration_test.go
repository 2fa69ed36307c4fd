package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/awann-cloud/kedai-kiry-sub001/kds"
	"github.com/awann-cloud/kedai-kiry-sub001/models"
	"github.com/awann-cloud/kedai-kiry-sub001/router"
	"github.com/awann-cloud/kedai-kiry-sub001/services"
	"github.com/awann-cloud/kedai-kiry-sub001/store"
	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// TestEndToEndIntegration menguji flow utama:
// 0. Seed akun checker, login -> token
// 1. Intake order (2 item, kitchen)
// 2. Layar kitchen: start -> finish tiap item
// 3. Complete order (frozenTime terisi)
// 4. Checker: assign waiter -> deliver tiap item -> deliver order
// 5. Archiver menulis order terminal ke history
// 6. Event websocket sampai ke layar checker
func TestEndToEndIntegration(t *testing.T) {
	db := setupTestDB(t)
	st := store.New(nil)

	hub := kds.NewHub()
	events, cancelHub := st.Subscribe()
	defer cancelHub()
	go hub.Run(events)

	archiver := services.NewArchiver(db, st)
	archiver.Start()
	defer archiver.Stop()

	r := router.SetupRouter(db, st, hub)
	server := httptest.NewServer(r)
	defer server.Close()

	token := loginTest(t, r)

	// Buka layar checker lewat websocket sebelum ada mutasi
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/checker?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	assert.NoError(t, err)
	defer conn.Close()
	time.Sleep(100 * time.Millisecond) // tunggu registrasi client di hub

	orderID, itemIDs := createOrderTest(t, r)

	// Event order_created harus sampai ke checker
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	assert.NoError(t, err)
	var msg struct {
		Event string `json:"event"`
	}
	assert.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, store.EventOrderCreated, msg.Event)

	cookingProcessTest(t, r, token, orderID, itemIDs)
	completeOrderTest(t, r, token, orderID)
	deliveryTest(t, r, token, orderID, itemIDs)

	// Archiver menulis arsip secara async
	assert.Eventually(t, func() bool {
		var count int64
		db.Model(&models.OrderArchive{}).Where("order_ref = ?", orderID).Count(&count)
		return count == 1
	}, 3*time.Second, 50*time.Millisecond)

	historyTest(t, r, token, orderID)
}

// setupTestDB -> sqlite in-memory + seed akun checker
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Staff{},
		&models.OrderArchive{},
		&models.OrderArchiveItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	db.Create(&models.User{
		Name:     "Checker Satu",
		Email:    "checker@example.com",
		Password: string(hashedPassword),
		Role:     "checker",
	})

	return db
}

func loginTest(t *testing.T, r *gin.Engine) string {
	body, _ := json.Marshal(map[string]string{
		"email":    "checker@example.com",
		"password": "secret123",
	})

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("loginTest fail: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Token == "" {
		t.Fatalf("loginTest: token empty")
	}
	return resp.Data.Token
}

func createOrderTest(t *testing.T, r *gin.Engine) (string, []string) {
	body, _ := json.Marshal(map[string]interface{}{
		"name":       "Meja 12",
		"department": "kitchen",
		"priority":   "NORMAL",
		"items": []map[string]interface{}{
			{"name": "Nasi Goreng", "quantity": 2, "notes": "Pedas"},
			{"name": "Ayam Bakar", "quantity": 1},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("createOrderTest: expected 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			ID    string `json:"id"`
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.ID == "" || len(resp.Data.Items) != 2 {
		t.Fatalf("createOrderTest: bad response body=%s", w.Body.String())
	}

	itemIDs := []string{resp.Data.Items[0].ID, resp.Data.Items[1].ID}
	return resp.Data.ID, itemIDs
}

func authedPost(t *testing.T, r *gin.Engine, token, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if payload != nil {
		json.NewEncoder(&buf).Encode(payload)
	}
	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func cookingProcessTest(t *testing.T, r *gin.Engine, token, orderID string, itemIDs []string) {
	base := "/departments/kitchen/orders/" + orderID

	for _, itemID := range itemIDs {
		w := authedPost(t, r, token, base+"/items/"+itemID+"/start", map[string]string{"staff": "Budi"})
		if w.Code != http.StatusOK {
			t.Fatalf("start item %s: code %d, body=%s", itemID, w.Code, w.Body.String())
		}
		w = authedPost(t, r, token, base+"/items/"+itemID+"/finish", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("finish item %s: code %d, body=%s", itemID, w.Code, w.Body.String())
		}
	}
}

func completeOrderTest(t *testing.T, r *gin.Engine, token, orderID string) {
	w := authedPost(t, r, token, "/departments/kitchen/orders/"+orderID+"/complete", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("completeOrderTest: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Completed  bool   `json:"completed"`
			FrozenTime *int64 `json:"frozen_time"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(t, resp.Data.Completed)
	assert.NotNil(t, resp.Data.FrozenTime)
}

func deliveryTest(t *testing.T, r *gin.Engine, token, orderID string, itemIDs []string) {
	base := "/departments/kitchen/orders/" + orderID

	// deliver sebelum assign waiter -> ditolak dengan kode taksonomi
	w := authedPost(t, r, token, base+"/items/"+itemIDs[0]+"/deliver", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	var rejected utils.JSONResponse
	json.Unmarshal(w.Body.Bytes(), &rejected)
	assert.Equal(t, "precondition-not-met", rejected.Code)

	w = authedPost(t, r, token, base+"/assign-waiter", map[string]string{"waiter": "Siti"})
	if w.Code != http.StatusOK {
		t.Fatalf("assign waiter: code=%d, body=%s", w.Code, w.Body.String())
	}

	for _, itemID := range itemIDs {
		w = authedPost(t, r, token, base+"/items/"+itemID+"/deliver", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("deliver item %s: code=%d, body=%s", itemID, w.Code, w.Body.String())
		}
	}

	w = authedPost(t, r, token, base+"/deliver", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("deliver order: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data struct {
			Delivered bool `json:"delivered"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	assert.True(t, resp.Data.Delivered)
}

func historyTest(t *testing.T, r *gin.Engine, token, orderID string) {
	req := httptest.NewRequest(http.MethodGet, "/admin/history?department=kitchen", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("historyTest: code=%d, body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		Data []struct {
			OrderRef string `json:"order_ref"`
			Items    []struct {
				Waiter string `json:"waiter"`
			} `json:"items"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if len(resp.Data) != 1 {
		t.Fatalf("historyTest: expected 1 archived order, got %d", len(resp.Data))
	}
	assert.Equal(t, orderID, resp.Data[0].OrderRef)
	if assert.Len(t, resp.Data[0].Items, 2) {
		assert.Equal(t, "Siti", resp.Data[0].Items[0].Waiter)
	}
}
