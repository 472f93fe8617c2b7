package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kitalk/kiosk-backend/apperr"
	"github.com/kitalk/kiosk-backend/models"
	"github.com/kitalk/kiosk-backend/utils"
)

// Categories folded into the virtual "모든 메뉴" aggregate.
var allMenuCategories = []string{"스무디", "프라페", "특색 라떼", "스페셜 티", "에이드", "버블티"}

// Individually selectable categories.
var individualCategories = []string{"커피", "기타 음료", "주스", "차", "디저트"}

const allMenuLabel = "모든 메뉴"

type MenuResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Temperature string  `json:"temperature"`
	Price       int     `json:"price"`
	Category    string  `json:"category"`
	IsActive    bool    `json:"isActive"`
	Profile     *string `json:"profile"`
}

type CategoryResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MenuService is the read-only catalog. Inactive menus behave as not found
// everywhere.
type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

// GetMenuByID resolves an active menu item.
func (ms *MenuService) GetMenuByID(menuID uint) (*models.Menu, error) {
	var menu models.Menu
	err := ms.DB.Where("id = ? AND is_active = ?", menuID, true).First(&menu).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.ErrMenuNotFound
	}
	if err != nil {
		utils.ErrorLogger.Printf("메뉴 조회 실패 - menuId: %d: %v", menuID, err)
		return nil, apperr.ErrDatabaseAccessError
	}
	return &menu, nil
}

// GetMenuList lists active menus for a category. An empty category means the
// full catalog; "모든 메뉴" maps to the aggregate subset.
func (ms *MenuService) GetMenuList(category string) ([]MenuResponse, error) {
	category = strings.TrimSpace(category)

	var menus []models.Menu
	var err error

	switch {
	case category == "":
		err = ms.DB.Where("is_active = ?", true).
			Order("category ASC, name ASC, temperature ASC").
			Find(&menus).Error
	case equalsFoldAny(category, allMenuLabel):
		err = ms.DB.Where("category IN ? AND is_active = ?", allMenuCategories, true).
			Order("name ASC, temperature ASC").
			Find(&menus).Error
	case matchCategory(category, individualCategories) != "":
		err = ms.DB.Where("category = ? AND is_active = ?", matchCategory(category, individualCategories), true).
			Order("name ASC, temperature ASC").
			Find(&menus).Error
	default:
		utils.InfoLogger.Printf("유효하지 않은 카테고리 요청: %s", category)
		return nil, apperr.ErrInvalidCategory
	}

	if err != nil {
		utils.ErrorLogger.Printf("메뉴 리스트 조회 실패 - category: %s: %v", category, err)
		return nil, apperr.ErrDatabaseAccessError
	}

	if len(menus) == 0 && category != "" && !equalsFoldAny(category, allMenuLabel) {
		return nil, apperr.ErrEmptyCategoryResult
	}

	responses := make([]MenuResponse, 0, len(menus))
	for _, m := range menus {
		responses = append(responses, toMenuResponse(m))
	}
	return responses, nil
}

// GetCategoryList returns the aggregate category plus every non-empty
// individual category with its active-menu count.
func (ms *MenuService) GetCategoryList() ([]CategoryResponse, error) {
	categories := make([]CategoryResponse, 0, len(individualCategories)+1)

	var allCount int64
	if err := ms.DB.Model(&models.Menu{}).
		Where("category IN ? AND is_active = ?", allMenuCategories, true).
		Count(&allCount).Error; err != nil {
		utils.ErrorLogger.Printf("카테고리 목록 조회 실패: %v", err)
		return nil, apperr.ErrDatabaseAccessError
	}
	categories = append(categories, CategoryResponse{Category: "모든메뉴", Count: int(allCount)})

	for _, category := range individualCategories {
		var count int64
		if err := ms.DB.Model(&models.Menu{}).
			Where("category = ? AND is_active = ?", category, true).
			Count(&count).Error; err != nil {
			utils.InfoLogger.Printf("카테고리 '%s' 조회 중 오류, 제외: %v", category, err)
			continue
		}
		if count > 0 {
			categories = append(categories, CategoryResponse{Category: category, Count: int(count)})
		}
	}

	if len(categories) == 0 {
		return nil, apperr.ErrEmptyCategoryResult
	}
	return categories, nil
}

func toMenuResponse(m models.Menu) MenuResponse {
	return MenuResponse{
		ID:          m.ID,
		Name:        m.Name,
		Temperature: m.Temperature,
		Price:       m.Price,
		Category:    m.Category,
		IsActive:    m.IsActive,
		Profile:     m.Profile,
	}
}

func equalsFoldAny(category string, labels ...string) bool {
	for _, label := range labels {
		if strings.EqualFold(category, label) {
			return true
		}
	}
	return false
}

func matchCategory(category string, labels []string) string {
	for _, label := range labels {
		if strings.EqualFold(category, label) {
			return label
		}
	}
	return ""
}
