package utils

import (
	"time"

	"github.com/gin-gonic/gin"
)

// BaseResponse wraps menu-side success payloads.
type BaseResponse struct {
	IsSuccess bool        `json:"isSuccess"`
	Message   string      `json:"message"`
	Result    interface{} `json:"result,omitempty"`
}

func RespondBase(c *gin.Context, code int, message string, result interface{}) {
	c.JSON(code, BaseResponse{
		IsSuccess: code >= 200 && code < 300,
		Message:   message,
		Result:    result,
	})
}

// ErrorResponse is the unified error payload for every endpoint.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{
		Success:   false,
		Message:   message,
		Status:    code,
		Timestamp: time.Now().UnixMilli(),
	})
}
