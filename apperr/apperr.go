package apperr

import (
	"errors"
	"net/http"
)

// AppError is one member of the closed error taxonomy. Every kind carries a
// stable code, a default client-facing message, the external HTTP status and
// the module it belongs to. Services return these sentinel values; anything
// else reaching a controller is treated as an unknown 500.
type AppError struct {
	Code    string
	Message string
	Status  int
	Module  string
}

func (e *AppError) Error() string {
	return e.Message
}

// As unwraps err into an *AppError if it is (or wraps) one.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Cart module (C...)
var (
	ErrInvalidSessionID     = &AppError{"C001", "유효하지 않은 세션 ID입니다.", http.StatusBadRequest, "cart"}
	ErrInvalidMenuID        = &AppError{"C002", "유효하지 않은 메뉴 ID입니다.", http.StatusBadRequest, "cart"}
	ErrInvalidQuantity      = &AppError{"C003", "유효하지 않은 수량입니다.", http.StatusBadRequest, "cart"}
	ErrInvalidRequest       = &AppError{"C004", "유효하지 않은 요청입니다.", http.StatusBadRequest, "cart"}
	ErrInvalidPackagingType = &AppError{"C005", "유효하지 않은 포장 방식입니다.", http.StatusBadRequest, "cart"}
	ErrCartItemNotFound     = &AppError{"C006", "장바구니에서 해당 메뉴를 찾을 수 없습니다.", http.StatusNotFound, "cart"}
	ErrCartIsEmpty          = &AppError{"C007", "장바구니가 비어있습니다.", http.StatusNotFound, "cart"}
	ErrCartUpdateFailed     = &AppError{"C008", "장바구니 업데이트 중 오류가 발생했습니다.", http.StatusInternalServerError, "cart"}
	ErrCartFetchFailed      = &AppError{"C009", "장바구니 조회 중 오류가 발생했습니다.", http.StatusInternalServerError, "cart"}
	ErrCartSaveFailed       = &AppError{"C010", "장바구니 저장 중 오류가 발생했습니다.", http.StatusInternalServerError, "cart"}
	ErrCartClearFailed      = &AppError{"C011", "장바구니 비우기 중 오류가 발생했습니다.", http.StatusInternalServerError, "cart"}
	ErrCartDataCorrupted    = &AppError{"C012", "장바구니 데이터가 손상되었습니다.", http.StatusInternalServerError, "cart"}
	ErrPackagingUpdateFailed = &AppError{"C014", "포장 방식 설정 중 오류가 발생했습니다.", http.StatusInternalServerError, "cart"}
)

// Menu module (M...)
var (
	ErrInvalidCategory        = &AppError{"M001", "유효하지 않은 카테고리입니다.", http.StatusBadRequest, "menu"}
	ErrEmptyCategoryResult    = &AppError{"M002", "해당 카테고리에 조회된 메뉴가 없습니다.", http.StatusNotFound, "menu"}
	ErrMenuListFetchError     = &AppError{"M003", "메뉴 목록 조회 중 서버 오류가 발생했습니다.", http.StatusInternalServerError, "menu"}
	ErrCategoryListFetchError = &AppError{"M004", "카테고리 목록 조회 중 서버 오류가 발생했습니다.", http.StatusInternalServerError, "menu"}
	ErrDatabaseAccessError    = &AppError{"M005", "데이터베이스 접근 중 오류가 발생했습니다.", http.StatusInternalServerError, "menu"}
	ErrMenuNotFound           = &AppError{"M006", "메뉴를 찾을 수 없습니다.", http.StatusNotFound, "menu"}
)

// Phone / checkout module (P...)
var (
	ErrInvalidPhoneNumber     = &AppError{"P001", "유효하지 않은 전화번호 형식입니다. (예: 010-1234-5678)", http.StatusBadRequest, "phone"}
	ErrPhoneNumberRequired    = &AppError{"P002", "전화번호는 필수 입력값입니다.", http.StatusBadRequest, "phone"}
	ErrPhoneChoiceRequired    = &AppError{"P003", "전화번호 입력 여부를 선택해주세요.", http.StatusBadRequest, "phone"}
	ErrInvalidSessionForPhone = &AppError{"P004", "전화번호 처리가 불가능한 세션 상태입니다.", http.StatusBadRequest, "phone"}
	ErrSessionExpiredForPhone = &AppError{"P005", "세션이 만료되어 전화번호 처리가 불가능합니다.", http.StatusGone, "phone"}
	ErrNoItemsToOrder         = &AppError{"P006", "주문할 메뉴가 없습니다.", http.StatusBadRequest, "phone"}
	ErrPackagingTypeNotSet    = &AppError{"P007", "포장 방식이 설정되지 않았습니다.", http.StatusBadRequest, "phone"}
	ErrOrderAlreadyCompleted  = &AppError{"P008", "이미 완료된 주문입니다.", http.StatusConflict, "phone"}
	ErrPhoneDataSaveFailed    = &AppError{"P009", "전화번호 저장 중 오류가 발생했습니다.", http.StatusInternalServerError, "phone"}
	ErrOrderSaveFailed        = &AppError{"P010", "주문 저장 중 오류가 발생했습니다.", http.StatusInternalServerError, "phone"}
	ErrPhoneDataCorrupted     = &AppError{"P011", "전화번호 데이터가 손상되었습니다.", http.StatusInternalServerError, "phone"}
	ErrDatabaseUnavailable    = &AppError{"P012", "데이터베이스 연결에 실패했습니다.", http.StatusServiceUnavailable, "phone"}
	ErrStoreUnavailable       = &AppError{"P013", "세션 저장소 연결에 실패했습니다.", http.StatusServiceUnavailable, "phone"}
)

// Phone-order history module (PO...)
var (
	ErrPhoneOrderNotFound = &AppError{"PO001", "등록된 번호가 없습니다.", http.StatusNotFound, "phone-order"}
)
