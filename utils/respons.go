package utils

import (
	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Code    string      `json:"code,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Data:    nil,
	})
}

// RespondWithCode -> error response yang menyertakan kode mesin dari store
// (mis. "invalid-transition") supaya screen bisa menampilkan alasan penolakan.
func RespondWithCode(c *gin.Context, httpStatus int, code string, err error) {
	c.JSON(httpStatus, JSONResponse{
		Status:  false,
		Message: err.Error(),
		Code:    code,
	})
}
