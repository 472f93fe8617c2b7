package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kitalk/kiosk-backend/apperr"
	"github.com/kitalk/kiosk-backend/models"
	"github.com/kitalk/kiosk-backend/store"
	"github.com/kitalk/kiosk-backend/utils"
	"github.com/kitalk/kiosk-backend/validators"
)

// CartUpdateItem is one entry of a declarative cart update. Quantity zero
// deletes the line; a nil quantity is rejected.
type CartUpdateItem struct {
	MenuID   int64 `json:"menu_id"`
	Quantity *int  `json:"quantity"`
}

// CartService maintains the per-session cart record and the packaging choice.
// There is no locking around cart mutation: a session belongs to one kiosk,
// so per-key last-writer-wins is the accepted contract.
type CartService struct {
	store *store.SessionStore
	menus *MenuService
	asm   *Assembler
}

func NewCartService(sessionStore *store.SessionStore, menus *MenuService, asm *Assembler) *CartService {
	return &CartService{store: sessionStore, menus: menus, asm: asm}
}

// AddToCart folds quantity into an existing line for the same menu, or
// appends a new line in insertion order.
func (cs *CartService) AddToCart(ctx context.Context, sessionID string, menuID int64, quantity int) (*CartView, error) {
	if err := validators.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	if err := validators.ValidateMenuID(menuID); err != nil {
		return nil, err
	}
	if err := validators.ValidateAddQuantity(quantity); err != nil {
		return nil, err
	}
	if _, err := cs.menus.GetMenuByID(uint(menuID)); err != nil {
		return nil, err
	}

	record, err := cs.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if line := record.FindLine(uint(menuID)); line != nil {
		line.Quantity += quantity
	} else {
		record.Items = append(record.Items, models.CartLine{MenuID: uint(menuID), Quantity: quantity})
	}

	if err := cs.store.SaveCart(ctx, sessionID, record); err != nil {
		utils.ErrorLogger.Printf("장바구니 저장 실패 - sessionId: %s: %v", sessionID, err)
		return nil, apperr.ErrCartSaveFailed
	}

	utils.InfoLogger.Printf("장바구니 담기 완료 - sessionId: %s, 총 항목 수: %d", sessionID, len(record.Items))
	return cs.asm.BuildCartView(ctx, "장바구니에 담겼습니다", sessionID, record), nil
}

// UpdateCart replaces the cart's line set with the requested one: positive
// quantities upsert, zero deletes, and lines missing from the request are
// removed. The response message reports added/changed/removed counts.
func (cs *CartService) UpdateCart(ctx context.Context, sessionID string, orders []CartUpdateItem) (*CartView, error) {
	if err := validators.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, apperr.ErrInvalidRequest
	}
	for _, item := range orders {
		if err := validators.ValidateMenuID(item.MenuID); err != nil {
			return nil, err
		}
		if err := validators.ValidateUpdateQuantity(item.Quantity); err != nil {
			return nil, err
		}
		if _, err := cs.menus.GetMenuByID(uint(item.MenuID)); err != nil {
			return nil, err
		}
	}

	record, err := cs.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	requested := make(map[uint]int, len(orders))
	for _, item := range orders {
		requested[uint(item.MenuID)] = *item.Quantity
	}

	added, changed, removed := 0, 0, 0

	// Requested lines: upsert or delete.
	for _, item := range orders {
		menuID := uint(item.MenuID)
		quantity := *item.Quantity
		existing := record.FindLine(menuID)

		switch {
		case quantity == 0:
			if record.RemoveLine(menuID) {
				removed++
			}
		case existing != nil:
			if existing.Quantity != quantity {
				existing.Quantity = quantity
				changed++
			}
		default:
			record.Items = append(record.Items, models.CartLine{MenuID: menuID, Quantity: quantity})
			added++
		}
	}

	// Existing lines absent from the request are dropped.
	kept := record.Items[:0]
	for _, line := range record.Items {
		if _, ok := requested[line.MenuID]; ok {
			kept = append(kept, line)
		} else {
			removed++
		}
	}
	record.Items = kept

	if err := cs.store.SaveCart(ctx, sessionID, record); err != nil {
		utils.ErrorLogger.Printf("장바구니 저장 실패 - sessionId: %s: %v", sessionID, err)
		return nil, apperr.ErrCartSaveFailed
	}

	utils.InfoLogger.Printf("장바구니 업데이트 완료 - sessionId: %s, 추가: %d, 변경: %d, 제거: %d, 총 항목: %d",
		sessionID, added, changed, removed, len(record.Items))

	message := fmt.Sprintf("장바구니가 업데이트되었습니다 (추가: %d, 변경: %d, 제거: %d)", added, changed, removed)
	return cs.asm.BuildCartView(ctx, message, sessionID, record), nil
}

// RemoveItem deletes the line for one menu.
func (cs *CartService) RemoveItem(ctx context.Context, sessionID string, menuID int64) (*CartView, error) {
	if err := validators.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	if err := validators.ValidateMenuID(menuID); err != nil {
		return nil, err
	}
	if _, err := cs.menus.GetMenuByID(uint(menuID)); err != nil {
		return nil, err
	}

	record, err := cs.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !record.RemoveLine(uint(menuID)) {
		return nil, apperr.ErrCartItemNotFound
	}

	if err := cs.store.SaveCart(ctx, sessionID, record); err != nil {
		utils.ErrorLogger.Printf("장바구니 저장 실패 - sessionId: %s: %v", sessionID, err)
		return nil, apperr.ErrCartSaveFailed
	}

	utils.InfoLogger.Printf("특정 메뉴 삭제 완료 - sessionId: %s, menuId: %d, 남은 항목 수: %d",
		sessionID, menuID, len(record.Items))
	return cs.asm.BuildCartView(ctx, "메뉴가 삭제되었습니다", sessionID, record), nil
}

// ClearCart drops the cart record entirely. The packaging record is untouched.
func (cs *CartService) ClearCart(ctx context.Context, sessionID string) (*CartView, error) {
	if err := validators.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}

	if _, err := cs.store.DeleteCart(ctx, sessionID); err != nil {
		utils.ErrorLogger.Printf("장바구니 비우기 실패 - sessionId: %s: %v", sessionID, err)
		return nil, apperr.ErrCartClearFailed
	}

	utils.InfoLogger.Printf("장바구니 비우기 완료 - sessionId: %s", sessionID)
	return cs.asm.BuildCartView(ctx, "장바구니가 비워졌습니다", sessionID, models.NewCartRecord()), nil
}

// GetCart returns the enriched view without mutating anything.
func (cs *CartService) GetCart(ctx context.Context, sessionID string) (*CartView, error) {
	if err := validators.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}

	record, err := cs.loadCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return cs.asm.BuildCartView(ctx, "장바구니 조회 성공", sessionID, record), nil
}

// SetPackagingType stores the packaging choice under its own key. It neither
// creates nor refreshes the cart record.
func (cs *CartService) SetPackagingType(ctx context.Context, sessionID, packagingType string) (*PackagingAck, error) {
	if err := validators.ValidateSessionID(sessionID); err != nil {
		return nil, err
	}
	if err := validators.ValidatePackagingType(packagingType); err != nil {
		return nil, err
	}

	if err := cs.store.SavePackaging(ctx, sessionID, packagingType); err != nil {
		utils.ErrorLogger.Printf("포장 방식 설정 실패 - sessionId: %s: %v", sessionID, err)
		return nil, apperr.ErrPackagingUpdateFailed
	}

	utils.InfoLogger.Printf("포장 방식 설정 완료 - sessionId: %s, packagingType: %s", sessionID, packagingType)
	return &PackagingAck{
		Success:       true,
		Message:       "포장 방식이 설정되었습니다",
		SessionID:     sessionID,
		PackagingType: packagingType,
	}, nil
}

// loadCart fetches the session's cart, starting an empty one when absent.
func (cs *CartService) loadCart(ctx context.Context, sessionID string) (*models.CartRecord, error) {
	record, err := cs.store.GetCart(ctx, sessionID)
	if errors.Is(err, store.ErrCorrupted) {
		return nil, apperr.ErrCartDataCorrupted
	}
	if err != nil {
		utils.ErrorLogger.Printf("장바구니 조회 실패 - sessionId: %s: %v", sessionID, err)
		return nil, apperr.ErrCartFetchFailed
	}
	if record == nil {
		return models.NewCartRecord(), nil
	}
	return record, nil
}
