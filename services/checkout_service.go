package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/kitalk/kiosk-backend/apperr"
	"github.com/kitalk/kiosk-backend/models"
	"github.com/kitalk/kiosk-backend/store"
	"github.com/kitalk/kiosk-backend/utils"
	"github.com/kitalk/kiosk-backend/validators"
)

// PhoneStepAck tells the client which step comes next without committing.
type PhoneStepAck struct {
	Message  string `json:"message"`
	NextStep string `json:"next_step"`
}

// OrderSummary is the committed-order payload.
type OrderSummary struct {
	Message     string           `json:"message"`
	OrderID     uint             `json:"order_id"`
	Orders      []CartItemDetail `json:"orders"`
	TotalItems  int              `json:"total_items"`
	TotalPrice  int              `json:"total_price"`
	Packaging   string           `json:"packaging"`
	PhoneNumber *string          `json:"phone_number"`
	NextStep    string           `json:"next_step"`
}

// CheckoutService drives the terminal part of the session protocol: the
// phone-number steps and the handoff from Redis session state to a durable
// order row.
type CheckoutService struct {
	db    *gorm.DB
	store *store.SessionStore
	asm   *Assembler
}

func NewCheckoutService(db *gorm.DB, sessionStore *store.SessionStore, asm *Assembler) *CheckoutService {
	return &CheckoutService{db: db, store: sessionStore, asm: asm}
}

// ProcessPhoneChoice handles the wants-phone prompt. Declining commits the
// order immediately with a null phone number; exactly one of the returns is
// non-nil on success.
func (s *CheckoutService) ProcessPhoneChoice(ctx context.Context, sessionID string, wantsPhone *bool) (*PhoneStepAck, *OrderSummary, error) {
	if err := validators.ValidateSessionIDForPhone(sessionID); err != nil {
		return nil, nil, err
	}
	if wantsPhone == nil {
		return nil, nil, apperr.ErrPhoneChoiceRequired
	}
	if err := s.requireCart(ctx, sessionID); err != nil {
		return nil, nil, err
	}

	if *wantsPhone {
		utils.InfoLogger.Printf("전화번호 입력 선택 - sessionId: %s", sessionID)
		return &PhoneStepAck{Message: "전화번호를 입력해주세요.", NextStep: "전화번호 입력"}, nil, nil
	}

	summary, err := s.CompleteOrder(ctx, sessionID)
	return nil, summary, err
}

// ProcessPhoneInput validates, normalizes and stores the phone number, then
// commits the order.
func (s *CheckoutService) ProcessPhoneInput(ctx context.Context, sessionID, phoneNumber string) (*OrderSummary, error) {
	if err := validators.ValidateSessionIDForPhone(sessionID); err != nil {
		return nil, err
	}
	if err := validators.ValidatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	if err := s.requireCart(ctx, sessionID); err != nil {
		return nil, err
	}

	normalized := validators.NormalizePhoneNumber(phoneNumber)
	if err := s.store.SavePhone(ctx, sessionID, normalized); err != nil {
		utils.ErrorLogger.Printf("전화번호 저장 실패 - sessionId: %s: %v", sessionID, err)
		return nil, apperr.ErrPhoneDataSaveFailed
	}
	utils.InfoLogger.Printf("전화번호 입력 처리 완료 - sessionId: %s, phone: %s",
		sessionID, validators.MaskPhoneNumber(normalized))

	return s.CompleteOrder(ctx, sessionID)
}

// SavePhone stores the phone number without committing. This is the one spot
// where the checkout engine materializes a cart record: a session that starts
// at the phone screen gets an empty cart so later steps see it as live.
func (s *CheckoutService) SavePhone(ctx context.Context, sessionID, phoneNumber string) (*PhoneStepAck, error) {
	if err := validators.ValidateSessionIDForPhone(sessionID); err != nil {
		return nil, err
	}
	if err := validators.ValidatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}

	hasCart, err := s.store.HasCart(ctx, sessionID)
	if err != nil {
		utils.ErrorLogger.Printf("장바구니 키 확인 실패 - sessionId: %s: %v", sessionID, err)
		return nil, apperr.ErrStoreUnavailable
	}
	if !hasCart {
		if err := s.store.SaveCart(ctx, sessionID, models.NewCartRecord()); err != nil {
			utils.ErrorLogger.Printf("장바구니 키 생성 실패 - sessionId: %s: %v", sessionID, err)
			return nil, apperr.ErrStoreUnavailable
		}
		utils.InfoLogger.Printf("장바구니 키가 없어 새로 생성 - sessionId: %s", sessionID)
	}

	normalized := validators.NormalizePhoneNumber(phoneNumber)
	if err := s.store.SavePhone(ctx, sessionID, normalized); err != nil {
		utils.ErrorLogger.Printf("전화번호 저장 실패 - sessionId: %s: %v", sessionID, err)
		return nil, apperr.ErrPhoneDataSaveFailed
	}

	utils.InfoLogger.Printf("전화번호 저장 완료 - sessionId: %s, phone: %s",
		sessionID, validators.MaskPhoneNumber(normalized))
	return &PhoneStepAck{Message: "전화번호가 저장되었습니다.", NextStep: "주문 완료"}, nil
}

// CompleteOrder commits the session: one orders row plus its order_items in a
// single transaction, then the completion marker. The phone record is
// optional here.
func (s *CheckoutService) CompleteOrder(ctx context.Context, sessionID string) (*OrderSummary, error) {
	return s.commit(ctx, sessionID, false)
}

// CompleteOrderWithoutPhone commits a session whose phone number was already
// saved via SavePhone; a missing phone record is an error.
func (s *CheckoutService) CompleteOrderWithoutPhone(ctx context.Context, sessionID string) (*OrderSummary, error) {
	return s.commit(ctx, sessionID, true)
}

func (s *CheckoutService) commit(ctx context.Context, sessionID string, requirePhone bool) (*OrderSummary, error) {
	if err := validators.ValidateSessionIDForPhone(sessionID); err != nil {
		return nil, err
	}
	if err := s.requireCart(ctx, sessionID); err != nil {
		return nil, err
	}

	completed, err := s.store.IsCompleted(ctx, sessionID)
	if err != nil {
		// Marker check failure must not block ordering; worst case the
		// idempotency window shrinks.
		utils.InfoLogger.Printf("주문 완료 상태 확인 중 오류 - sessionId: %s: %v", sessionID, err)
	}
	if completed {
		return nil, apperr.ErrOrderAlreadyCompleted
	}

	record, err := s.store.GetCart(ctx, sessionID)
	if errors.Is(err, store.ErrCorrupted) {
		return nil, apperr.ErrPhoneDataCorrupted
	}
	if err != nil {
		utils.ErrorLogger.Printf("장바구니 조회 실패 - sessionId: %s: %v", sessionID, err)
		return nil, apperr.ErrStoreUnavailable
	}
	if record == nil {
		return nil, apperr.ErrSessionExpiredForPhone
	}
	if len(record.Items) == 0 {
		return nil, apperr.ErrNoItemsToOrder
	}

	packaging, err := s.packagingType(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	phoneNumber := s.phoneNumber(ctx, sessionID)
	if requirePhone && (phoneNumber == nil || strings.TrimSpace(*phoneNumber) == "") {
		return nil, apperr.ErrPhoneNumberRequired
	}

	details := s.asm.Details(record.Items)
	totalPrice := s.asm.TotalPrice(details)

	orderID, err := s.saveOrder(details, totalPrice, packaging, phoneNumber)
	if err != nil {
		return nil, err
	}

	// Best effort: a lost marker only degrades the idempotency window.
	if err := s.store.MarkCompleted(ctx, sessionID, orderID); err != nil {
		utils.InfoLogger.Printf("세션 완료 상태 업데이트 실패 - sessionId: %s, orderId: %d: %v", sessionID, orderID, err)
	}

	utils.InfoLogger.Printf("주문 완료 처리 성공 - sessionId: %s, orderId: %d, totalPrice: %d원",
		sessionID, orderID, totalPrice)

	return &OrderSummary{
		Message:     "주문이 완료되었습니다!",
		OrderID:     orderID,
		Orders:      details,
		TotalItems:  len(details),
		TotalPrice:  totalPrice,
		Packaging:   packaging,
		PhoneNumber: phoneNumber,
		NextStep:    "주문 완료",
	}, nil
}

// saveOrder writes the order and its items atomically and returns the new id.
func (s *CheckoutService) saveOrder(details []CartItemDetail, totalPrice int, packaging string, phoneNumber *string) (uint, error) {
	order := models.Order{
		PhoneNumber:   phoneNumber,
		TotalPrice:    totalPrice,
		PackagingType: packaging,
		Status:        "completed",
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		items := make([]models.OrderItem, 0, len(details))
		for _, d := range details {
			items = append(items, models.OrderItem{
				OrderID:  order.ID,
				MenuID:   d.MenuID,
				MenuName: d.MenuItem,
				Price:    d.Price,
				Quantity: d.Quantity,
				Temp:     d.Temp,
			})
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		utils.ErrorLogger.Printf("주문 저장 실패: %v", err)
		return 0, apperr.ErrOrderSaveFailed
	}

	return order.ID, nil
}

// requireCart maps an absent cart record to an expired session.
func (s *CheckoutService) requireCart(ctx context.Context, sessionID string) error {
	hasCart, err := s.store.HasCart(ctx, sessionID)
	if err != nil {
		utils.ErrorLogger.Printf("세션 상태 검증 중 오류 - sessionId: %s: %v", sessionID, err)
		return apperr.ErrStoreUnavailable
	}
	if !hasCart {
		return apperr.ErrSessionExpiredForPhone
	}
	return nil
}

// packagingType requires a non-blank packaging record before commit.
func (s *CheckoutService) packagingType(ctx context.Context, sessionID string) (string, error) {
	record, err := s.store.GetPackaging(ctx, sessionID)
	if errors.Is(err, store.ErrCorrupted) {
		return "", apperr.ErrPhoneDataCorrupted
	}
	if err != nil {
		utils.ErrorLogger.Printf("포장 방식 조회 실패 - sessionId: %s: %v", sessionID, err)
		return "", apperr.ErrStoreUnavailable
	}
	if record == nil || strings.TrimSpace(record.PackagingType) == "" {
		return "", apperr.ErrPackagingTypeNotSet
	}
	return record.PackagingType, nil
}

// phoneNumber is optional at commit; any failure reads as "no phone".
func (s *CheckoutService) phoneNumber(ctx context.Context, sessionID string) *string {
	record, err := s.store.GetPhone(ctx, sessionID)
	if err != nil {
		utils.InfoLogger.Printf("전화번호 조회 중 오류 - sessionId: %s, null 처리: %v", sessionID, err)
		return nil
	}
	if record == nil || record.PhoneNumber == "" {
		return nil
	}
	return &record.PhoneNumber
}
