package services

import (
	"context"

	"github.com/kitalk/kiosk-backend/models"
	"github.com/kitalk/kiosk-backend/store"
	"github.com/kitalk/kiosk-backend/utils"
)

// CartItemDetail is one cart line enriched from the live catalog.
type CartItemDetail struct {
	MenuID   uint    `json:"menu_id"`
	MenuItem string  `json:"menu_item"`
	Price    int     `json:"price"`
	Quantity int     `json:"quantity"`
	Popular  bool    `json:"popular"`
	Temp     string  `json:"temp"`
	Profile  *string `json:"profile"`
}

// CartView is the outbound cart representation. total_items counts lines, not
// quantities; total_price uses live catalog prices.
type CartView struct {
	Message    string           `json:"message"`
	Orders     []CartItemDetail `json:"orders"`
	TotalItems int              `json:"total_items"`
	TotalPrice int              `json:"total_price"`
	Packaging  *string          `json:"packaging"`
	SessionID  string           `json:"session_id"`
}

type PackagingAck struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	SessionID     string `json:"sessionId"`
	PackagingType string `json:"packagingType"`
}

// Assembler joins cart lines with the menu catalog to build outbound payloads.
type Assembler struct {
	menus *MenuService
	store *store.SessionStore
}

func NewAssembler(menus *MenuService, sessionStore *store.SessionStore) *Assembler {
	return &Assembler{menus: menus, store: sessionStore}
}

// Details enriches cart lines from the current catalog. Lines whose menu no
// longer resolves are logged and skipped rather than failing the response.
func (a *Assembler) Details(items []models.CartLine) []CartItemDetail {
	details := make([]CartItemDetail, 0, len(items))
	for _, line := range items {
		menu, err := a.menus.GetMenuByID(line.MenuID)
		if err != nil {
			utils.InfoLogger.Printf("장바구니 아이템 변환 중 메뉴 조회 실패 - menuId: %d: %v", line.MenuID, err)
			continue
		}
		details = append(details, CartItemDetail{
			MenuID:   menu.ID,
			MenuItem: menu.Name,
			Price:    menu.Price,
			Quantity: line.Quantity,
			Popular:  menu.IsPopular,
			Temp:     menu.Temperature,
			Profile:  menu.Profile,
		})
	}
	return details
}

// TotalPrice sums price x quantity over the resolved details.
func (a *Assembler) TotalPrice(details []CartItemDetail) int {
	total := 0
	for _, d := range details {
		total += d.Price * d.Quantity
	}
	return total
}

// BuildCartView joins the cart record with the catalog and whatever packaging
// record is currently present (absent packaging stays null).
func (a *Assembler) BuildCartView(ctx context.Context, message, sessionID string, record *models.CartRecord) *CartView {
	details := a.Details(record.Items)
	return &CartView{
		Message:    message,
		Orders:     details,
		TotalItems: len(details),
		TotalPrice: a.TotalPrice(details),
		Packaging:  a.packagingLabel(ctx, sessionID),
		SessionID:  sessionID,
	}
}

// packagingLabel is tolerant: any store failure reads as "no packaging yet".
func (a *Assembler) packagingLabel(ctx context.Context, sessionID string) *string {
	record, err := a.store.GetPackaging(ctx, sessionID)
	if err != nil {
		utils.InfoLogger.Printf("포장 방식 조회 실패 - sessionId: %s, null 처리: %v", sessionID, err)
		return nil
	}
	if record == nil {
		return nil
	}
	return &record.PackagingType
}
