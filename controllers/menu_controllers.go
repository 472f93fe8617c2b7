package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kitalk/kiosk-backend/services"
	"github.com/kitalk/kiosk-backend/utils"
)

type MenuController struct {
	Menus *services.MenuService
}

func NewMenuController(menus *services.MenuService) *MenuController {
	return &MenuController{Menus: menus}
}

// GetMenuList -> GET /api/menu/list?category=...
func (mc *MenuController) GetMenuList(c *gin.Context) {
	category := c.Query("category")
	utils.InfoLogger.Printf("메뉴 리스트 조회 API 호출 - category: %s", category)

	menus, err := mc.Menus.GetMenuList(category)
	if err != nil {
		respondAppError(c, err, "메뉴 목록 조회 중 오류가 발생했습니다")
		return
	}

	utils.RespondBase(c, http.StatusOK, "메뉴 조회 성공", menus)
}

// GetCategoryList -> GET /api/menu/categories
func (mc *MenuController) GetCategoryList(c *gin.Context) {
	utils.InfoLogger.Println("카테고리 목록 조회 API 호출")

	categories, err := mc.Menus.GetCategoryList()
	if err != nil {
		respondAppError(c, err, "카테고리 목록 조회 중 오류가 발생했습니다")
		return
	}

	utils.RespondBase(c, http.StatusOK, "카테고리 조회 성공", categories)
}
