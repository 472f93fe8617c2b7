package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kitalk/kiosk-backend/apperr"
	"github.com/kitalk/kiosk-backend/utils"
)

// respondAppError maps a known taxonomy error to its HTTP status; anything
// else becomes a generic 500 with a safe message. The full cause goes to the
// log, never to the client.
func respondAppError(c *gin.Context, err error, fallbackMessage string) {
	if appErr, ok := apperr.As(err); ok {
		utils.InfoLogger.Printf("%s %s 실패 [%s]: %s", c.Request.Method, c.FullPath(), appErr.Code, appErr.Message)
		utils.RespondError(c, appErr.Status, appErr.Message)
		return
	}
	utils.ErrorLogger.Printf("%s %s 예상치 못한 오류: %v", c.Request.Method, c.FullPath(), err)
	utils.RespondError(c, http.StatusInternalServerError, fallbackMessage)
}
