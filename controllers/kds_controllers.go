package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/awann-cloud/kedai-kiry-sub001/kds"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // layar dilindungi token, origin bebas
	},
}

var screenSocketRoles = map[string]bool{
	"kitchen": true,
	"bar":     true,
	"snack":   true,
	"checker": true,
	"admin":   true,
}

// KDSHandler -> endpoint WebSocket; setiap layar yang terhubung menerima
// event store sesuai role-nya dan tinggal re-pull snapshot display.
func KDSHandler(hub *kds.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleInterface, exists := c.Get("role")
		if !exists {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		role := roleInterface.(string)

		if !screenSocketRoles[role] {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}

		hub.RegisterClient(ws, role)

		// Baca pesan (hanya untuk mendeteksi disconnect)
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.UnregisterClient(ws)
	}
}
