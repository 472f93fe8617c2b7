package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/kitalk/kiosk-backend/apperr"
	"github.com/kitalk/kiosk-backend/models"
	"github.com/kitalk/kiosk-backend/utils"
)

type OrderLine struct {
	MenuID   uint    `json:"menu_id"`
	MenuItem string  `json:"menu_item"`
	Price    int     `json:"price"`
	Temp     string  `json:"temp"`
	Profile  *string `json:"profile"`
}

type OrderBlock struct {
	OrderID   uint        `json:"order_id"`
	CreatedAt time.Time   `json:"created_at"`
	Orders    []OrderLine `json:"orders"`
}

type PhoneOrdersResponse struct {
	Results []OrderBlock `json:"results"`
}

type MenuStat struct {
	MenuID   uint    `json:"menu_id"`
	MenuItem string  `json:"menu_item"`
	Temp     string  `json:"temp"`
	Profile  *string `json:"profile"`
	Count    int64   `json:"count"`
}

type TopMenusResponse struct {
	TopMenus []MenuStat `json:"top_menus"`
}

// HistoryService answers the two read-side aggregates over committed orders,
// keyed by canonical phone number. Line prices come from the commit-time
// snapshot; only image URLs are looked up from the live catalog.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// GetRecentOrders returns the five most recent orders for the phone with
// their line items.
func (hs *HistoryService) GetRecentOrders(phone string) (*PhoneOrdersResponse, error) {
	var orders []models.Order
	if err := hs.db.Where("phone_number = ?", phone).
		Order("created_at DESC, id DESC").
		Limit(5).
		Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("최근 주문 조회 실패 - phone: %s: %v", phone, err)
		return nil, apperr.ErrDatabaseAccessError
	}
	if len(orders) == 0 {
		return nil, apperr.ErrPhoneOrderNotFound
	}

	orderIDs := make([]uint, 0, len(orders))
	for _, o := range orders {
		orderIDs = append(orderIDs, o.ID)
	}

	var items []models.OrderItem
	if err := hs.db.Where("order_id IN ?", orderIDs).
		Order("order_id ASC, id ASC").
		Find(&items).Error; err != nil {
		utils.ErrorLogger.Printf("주문 아이템 조회 실패 - phone: %s: %v", phone, err)
		return nil, apperr.ErrDatabaseAccessError
	}

	itemsByOrder := make(map[uint][]models.OrderItem, len(orders))
	menuIDs := make([]uint, 0, len(items))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
		menuIDs = append(menuIDs, item.MenuID)
	}
	profiles := hs.profilesByMenuID(menuIDs)

	blocks := make([]OrderBlock, 0, len(orders))
	for _, o := range orders {
		lines := make([]OrderLine, 0, len(itemsByOrder[o.ID]))
		for _, item := range itemsByOrder[o.ID] {
			lines = append(lines, OrderLine{
				MenuID:   item.MenuID,
				MenuItem: item.MenuName,
				Price:    item.Price,
				Temp:     item.Temp,
				Profile:  profiles[item.MenuID],
			})
		}
		blocks = append(blocks, OrderBlock{OrderID: o.ID, CreatedAt: o.CreatedAt, Orders: lines})
	}

	return &PhoneOrdersResponse{Results: blocks}, nil
}

// GetTopMenus returns the three menus appearing in the most orders for the
// phone. A menu ordered three times within one visit counts once: the metric
// is visit frequency, not bulk quantity.
func (hs *HistoryService) GetTopMenus(phone string) (*TopMenusResponse, error) {
	type topMenuRow struct {
		MenuID     uint   `gorm:"column:menu_id"`
		MenuName   string `gorm:"column:menu_name"`
		Temp       string `gorm:"column:temp"`
		OrderCount int64  `gorm:"column:order_count"`
	}

	var rows []topMenuRow
	err := hs.db.Raw(`
		SELECT oi.menu_id   AS menu_id,
		       oi.menu_name AS menu_name,
		       oi.temp      AS temp,
		       COUNT(DISTINCT oi.order_id) AS order_count
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		WHERE o.phone_number = ?
		GROUP BY oi.menu_id, oi.menu_name, oi.temp
		ORDER BY order_count DESC, oi.menu_id ASC
		LIMIT 3`, phone).Scan(&rows).Error
	if err != nil {
		utils.ErrorLogger.Printf("인기 메뉴 조회 실패 - phone: %s: %v", phone, err)
		return nil, apperr.ErrDatabaseAccessError
	}
	if len(rows) == 0 {
		return nil, apperr.ErrPhoneOrderNotFound
	}

	menuIDs := make([]uint, 0, len(rows))
	for _, r := range rows {
		menuIDs = append(menuIDs, r.MenuID)
	}
	profiles := hs.profilesByMenuID(menuIDs)

	stats := make([]MenuStat, 0, len(rows))
	for _, r := range rows {
		stats = append(stats, MenuStat{
			MenuID:   r.MenuID,
			MenuItem: r.MenuName,
			Temp:     r.Temp,
			Profile:  profiles[r.MenuID],
			Count:    r.OrderCount,
		})
	}

	return &TopMenusResponse{TopMenus: stats}, nil
}

// profilesByMenuID batches image-URL lookups; a vanished menu simply has no
// profile.
func (hs *HistoryService) profilesByMenuID(menuIDs []uint) map[uint]*string {
	profiles := make(map[uint]*string, len(menuIDs))
	if len(menuIDs) == 0 {
		return profiles
	}

	var menus []models.Menu
	if err := hs.db.Where("id IN ?", menuIDs).Find(&menus).Error; err != nil {
		utils.InfoLogger.Printf("메뉴 프로필 조회 실패, null 처리: %v", err)
		return profiles
	}
	for _, m := range menus {
		profiles[m.ID] = m.Profile
	}
	return profiles
}
