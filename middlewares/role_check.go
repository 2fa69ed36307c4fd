package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/awann-cloud/kedai-kiry-sub001/utils"
)

// RequireRoles -> hanya role yang disebut (admin selalu boleh) yang lolos
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if userRole == "admin" {
			c.Next()
			return
		}
		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, fmt.Errorf("%v access required", roles))
		c.Abort()
	}
}

// RequireDepartmentRole -> layar hanya boleh memutasi departemennya sendiri;
// checker & admin boleh semua (checker menggerakkan sub-workflow delivery).
func RequireDepartmentRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		department := c.Param("department")
		switch userRole {
		case "admin", "checker":
			c.Next()
		case department:
			c.Next()
		default:
			utils.RespondError(c, http.StatusForbidden,
				fmt.Errorf("role %v cannot act on department %s", userRole, department))
			c.Abort()
		}
	}
}
