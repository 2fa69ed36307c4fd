package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

// MutationLoggerMiddleware mencatat setiap aksi lifecycle (start/finish/
// complete/deliver/assign) beserta hasilnya, untuk audit dari layar mana pun.
func MutationLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get("role")

		c.Next()

		if c.Writer.Status() < 300 {
			utils.InfoLogger.Printf("mutation ok: %s %s by role=%v",
				c.Request.Method, c.Request.URL.Path, role)
		} else {
			utils.ErrorLogger.Printf("mutation rejected (%d): %s %s by role=%v",
				c.Writer.Status(), c.Request.Method, c.Request.URL.Path, role)
		}
	}
}
