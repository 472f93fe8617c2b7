package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kitalk/kiosk-backend/apperr"
	"github.com/kitalk/kiosk-backend/services"
	"github.com/kitalk/kiosk-backend/utils"
)

type CartController struct {
	Carts *services.CartService
}

func NewCartController(carts *services.CartService) *CartController {
	return &CartController{Carts: carts}
}

type cartAddRequest struct {
	MenuID   int64 `json:"menuId"`
	Quantity int   `json:"quantity"`
}

type cartUpdateRequest struct {
	Orders []services.CartUpdateItem `json:"orders"`
}

type cartRemoveRequest struct {
	MenuID int64 `json:"menuId"`
}

type packagingRequest struct {
	PackagingType string `json:"packagingType"`
}

// AddToCart -> POST /api/touch/cart/:sessionId/add
func (cc *CartController) AddToCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req cartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAppError(c, apperr.ErrInvalidRequest, "")
		return
	}

	utils.InfoLogger.Printf("장바구니 추가 API 호출 - sessionId: %s, menuId: %d, quantity: %d",
		sessionID, req.MenuID, req.Quantity)

	view, err := cc.Carts.AddToCart(c.Request.Context(), sessionID, req.MenuID, req.Quantity)
	if err != nil {
		respondAppError(c, err, "장바구니 추가 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateCart -> PUT /api/touch/cart/:sessionId/update
func (cc *CartController) UpdateCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAppError(c, apperr.ErrInvalidRequest, "")
		return
	}

	utils.InfoLogger.Printf("장바구니 업데이트 API 호출 - sessionId: %s, 요청 항목 수: %d",
		sessionID, len(req.Orders))

	view, err := cc.Carts.UpdateCart(c.Request.Context(), sessionID, req.Orders)
	if err != nil {
		respondAppError(c, err, "장바구니 업데이트 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, view)
}

// RemoveItem -> DELETE /api/touch/cart/:sessionId/remove
func (cc *CartController) RemoveItem(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req cartRemoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAppError(c, apperr.ErrInvalidRequest, "")
		return
	}

	utils.InfoLogger.Printf("특정 메뉴 삭제 API 호출 - sessionId: %s, menuId: %d", sessionID, req.MenuID)

	view, err := cc.Carts.RemoveItem(c.Request.Context(), sessionID, req.MenuID)
	if err != nil {
		respondAppError(c, err, "메뉴 삭제 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, view)
}

// ClearCart -> DELETE /api/touch/cart/:sessionId/clear
func (cc *CartController) ClearCart(c *gin.Context) {
	sessionID := c.Param("sessionId")
	utils.InfoLogger.Printf("장바구니 비우기 API 호출 - sessionId: %s", sessionID)

	view, err := cc.Carts.ClearCart(c.Request.Context(), sessionID)
	if err != nil {
		respondAppError(c, err, "장바구니 비우기 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetCart -> GET /api/touch/cart/:sessionId
func (cc *CartController) GetCart(c *gin.Context) {
	sessionID := c.Param("sessionId")
	utils.InfoLogger.Printf("장바구니 조회 API 호출 - sessionId: %s", sessionID)

	view, err := cc.Carts.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		respondAppError(c, err, "장바구니 조회 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetPackaging -> POST /api/touch/cart/:sessionId/packaging
func (cc *CartController) SetPackaging(c *gin.Context) {
	sessionID := c.Param("sessionId")

	var req packagingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondAppError(c, apperr.ErrInvalidPackagingType, "")
		return
	}

	utils.InfoLogger.Printf("포장 방식 설정 API 호출 - sessionId: %s, packagingType: %s",
		sessionID, req.PackagingType)

	ack, err := cc.Carts.SetPackagingType(c.Request.Context(), sessionID, req.PackagingType)
	if err != nil {
		respondAppError(c, err, "포장 방식 설정 중 오류가 발생했습니다")
		return
	}
	c.JSON(http.StatusOK, ack)
}

// Health -> GET /api/touch/cart/health
func (cc *CartController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "touch-cart",
		"timestamp": time.Now().UnixMilli(),
	})
}
