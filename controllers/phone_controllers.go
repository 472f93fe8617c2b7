package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kitalk/kiosk-backend/apperr"
	"github.com/kitalk/kiosk-backend/services"
	"github.com/kitalk/kiosk-backend/utils"
	"github.com/kitalk/kiosk-backend/validators"
)

type PhoneController struct {
	Checkout *services.CheckoutService
}

func NewPhoneController(checkout *services.CheckoutService) *PhoneController {
	return &PhoneController{Checkout: checkout}
}

type phoneChoiceRequest struct {
	WantsPhone *bool `json:"wants_phone"`
}

type phoneInputRequest struct {
	PhoneNumber string `json:"phone_number"`
}

type phoneSaveRequest struct {
	Phone string `json:"phone"`
}

// ProcessPhoneChoice -> POST /api/touch/phone/:sessionId/choice
// Declining the prompt commits the order right away.
func (pc *PhoneController) ProcessPhoneChoice(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req phoneChoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAppError(c, apperr.ErrPhoneChoiceRequired, "")
		return
	}

	utils.InfoLogger.Printf("전화번호 선택 API 호출 - sessionId: %s", sessionID)

	ack, summary, err := pc.Checkout.ProcessPhoneChoice(c.Request.Context(), sessionID, req.WantsPhone)
	if err != nil {
		respondAppError(c, err, "전화번호 선택 처리 중 오류가 발생했습니다")
		return
	}
	if ack != nil {
		c.JSON(http.StatusOK, ack)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// ProcessPhoneInput -> POST /api/touch/phone/:sessionId/input
func (pc *PhoneController) ProcessPhoneInput(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req phoneInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAppError(c, apperr.ErrPhoneNumberRequired, "")
		return
	}

	utils.InfoLogger.Printf("전화번호 입력 API 호출 - sessionId: %s, phone: %s",
		sessionID, validators.MaskPhoneNumber(req.PhoneNumber))

	summary, err := pc.Checkout.ProcessPhoneInput(c.Request.Context(), sessionID, req.PhoneNumber)
	if err != nil {
		respondAppError(c, err, "전화번호 입력 처리 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// CompleteOrder -> POST /api/touch/phone/:sessionId/complete
// Commits a session whose phone number was stored earlier via SavePhone.
func (pc *PhoneController) CompleteOrder(c *gin.Context) {
	sessionID := c.Param("sessionId")
	utils.InfoLogger.Printf("주문 완료 API 호출 - sessionId: %s", sessionID)

	summary, err := pc.Checkout.CompleteOrderWithoutPhone(c.Request.Context(), sessionID)
	if err != nil {
		respondAppError(c, err, "주문 완료 처리 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SavePhone -> POST /api/touch/phone/:sessionId/phone_number
func (pc *PhoneController) SavePhone(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req phoneSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAppError(c, apperr.ErrPhoneNumberRequired, "")
		return
	}

	utils.InfoLogger.Printf("전화번호 저장 API 호출 - sessionId: %s, phone: %s",
		sessionID, validators.MaskPhoneNumber(req.Phone))

	ack, err := pc.Checkout.SavePhone(c.Request.Context(), sessionID, req.Phone)
	if err != nil {
		respondAppError(c, err, "전화번호 저장 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, ack)
}
