package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kitalk/kiosk-backend/services"
	"github.com/kitalk/kiosk-backend/utils"
	"github.com/kitalk/kiosk-backend/validators"
)

type PhoneOrderController struct {
	History *services.HistoryService
}

func NewPhoneOrderController(history *services.HistoryService) *PhoneOrderController {
	return &PhoneOrderController{History: history}
}

// GetRecentOrders -> GET /api/phone/orders?phone=...
func (poc *PhoneOrderController) GetRecentOrders(c *gin.Context) {
	phone := c.Query("phone")
	if err := validators.ValidatePhoneNumber(phone); err != nil {
		respondAppError(c, err, "")
		return
	}
	phone = validators.NormalizePhoneNumber(phone)

	utils.InfoLogger.Printf("최근 주문 조회 API 호출 - phone: %s", validators.MaskPhoneNumber(phone))

	resp, err := poc.History.GetRecentOrders(phone)
	if err != nil {
		respondAppError(c, err, "최근 주문 조회 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTopMenus -> GET /api/phone/top-menus?phone=...
func (poc *PhoneOrderController) GetTopMenus(c *gin.Context) {
	phone := c.Query("phone")
	if err := validators.ValidatePhoneNumber(phone); err != nil {
		respondAppError(c, err, "")
		return
	}
	phone = validators.NormalizePhoneNumber(phone)

	utils.InfoLogger.Printf("인기 메뉴 조회 API 호출 - phone: %s", validators.MaskPhoneNumber(phone))

	resp, err := poc.History.GetTopMenus(phone)
	if err != nil {
		respondAppError(c, err, "인기 메뉴 조회 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, resp)
}
