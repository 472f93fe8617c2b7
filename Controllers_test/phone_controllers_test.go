package Controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kitalk/kiosk-backend/models"
)

func TestCheckout_WithPhoneNumber(t *testing.T) {
	env := newTestEnv(t)
	addItem(t, env, "s1", 1, 2)
	setPackaging(t, env, "s1", "포장")

	// wants_phone=true only advances the flow
	w := doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/choice",
		map[string]interface{}{"wants_phone": true})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var ack struct {
		Message  string `json:"message"`
		NextStep string `json:"next_step"`
	}
	decodeBody(t, w, &ack)
	assert.Equal(t, "전화번호를 입력해주세요.", ack.Message)
	assert.Equal(t, "전화번호 입력", ack.NextStep)

	// the raw digits are normalized before persisting
	w = doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/input",
		map[string]string{"phone_number": "01012345678"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var summary orderSummaryBody
	decodeBody(t, w, &summary)
	assert.Equal(t, "주문이 완료되었습니다!", summary.Message)
	assert.NotZero(t, summary.OrderID)
	require.Len(t, summary.Orders, 1)
	assert.Equal(t, 2, summary.Orders[0].Quantity)
	assert.Equal(t, 6000, summary.TotalPrice)
	assert.Equal(t, "포장", summary.Packaging)
	require.NotNil(t, summary.PhoneNumber)
	assert.Equal(t, "010-1234-5678", *summary.PhoneNumber)
	assert.Equal(t, "주문 완료", summary.NextStep)

	var order models.Order
	require.NoError(t, env.db.Preload("OrderItems").First(&order, summary.OrderID).Error)
	require.NotNil(t, order.PhoneNumber)
	assert.Equal(t, "010-1234-5678", *order.PhoneNumber)
	assert.Equal(t, 6000, order.TotalPrice)
	assert.Equal(t, "completed", order.Status)
	require.Len(t, order.OrderItems, 1)
	assert.Equal(t, "아메리카노", order.OrderItems[0].MenuName)
	assert.Equal(t, 3000, order.OrderItems[0].Price)
	assert.Equal(t, "HOT", order.OrderItems[0].Temp)
}

func TestCheckout_DeclinePhoneCommitsImmediately(t *testing.T) {
	env := newTestEnv(t)
	addItem(t, env, "s1", 3, 1)
	setPackaging(t, env, "s1", "매장")

	w := doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/choice",
		map[string]interface{}{"wants_phone": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var summary orderSummaryBody
	decodeBody(t, w, &summary)
	assert.NotZero(t, summary.OrderID)
	assert.Nil(t, summary.PhoneNumber)
	assert.Equal(t, "매장", summary.Packaging)

	var order models.Order
	require.NoError(t, env.db.First(&order, summary.OrderID).Error)
	assert.Nil(t, order.PhoneNumber)
}

func TestCheckout_DoubleCommitConflicts(t *testing.T) {
	env := newTestEnv(t)
	addItem(t, env, "s1", 1, 1)
	setPackaging(t, env, "s1", "포장")

	w := doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/choice",
		map[string]interface{}{"wants_phone": false})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// the completion marker blocks the second attempt
	w = doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/choice",
		map[string]interface{}{"wants_phone": false})
	require.Equal(t, http.StatusConflict, w.Code)

	var resp errorBody
	decodeBody(t, w, &resp)
	assert.Equal(t, "이미 완료된 주문입니다.", resp.Message)

	var count int64
	env.db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCheckout_RequiresPackaging(t *testing.T) {
	env := newTestEnv(t)
	addItem(t, env, "s1", 1, 1)

	w := doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/choice",
		map[string]interface{}{"wants_phone": false})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorBody
	decodeBody(t, w, &resp)
	assert.Equal(t, "포장 방식이 설정되지 않았습니다.", resp.Message)
}

func TestCheckout_RequiresItems(t *testing.T) {
	env := newTestEnv(t)

	// storing the phone first materializes an empty cart record
	w := doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/phone_number",
		map[string]string{"phone": "01012345678"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var ack struct {
		Message  string `json:"message"`
		NextStep string `json:"next_step"`
	}
	decodeBody(t, w, &ack)
	assert.Equal(t, "전화번호가 저장되었습니다.", ack.Message)
	assert.Equal(t, "주문 완료", ack.NextStep)

	w = doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/complete", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorBody
	decodeBody(t, w, &resp)
	assert.Equal(t, "주문할 메뉴가 없습니다.", resp.Message)
}

func TestCheckout_ExpiredSession(t *testing.T) {
	env := newTestEnv(t)

	w := doJSON(t, env.router, http.MethodPost, "/api/touch/phone/no-such-session/choice",
		map[string]interface{}{"wants_phone": true})
	require.Equal(t, http.StatusGone, w.Code)

	var resp errorBody
	decodeBody(t, w, &resp)
	assert.Equal(t, "세션이 만료되어 전화번호 처리가 불가능합니다.", resp.Message)
}

func TestCheckout_InvalidPhoneInput(t *testing.T) {
	env := newTestEnv(t)
	addItem(t, env, "s1", 1, 1)

	w := doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/input",
		map[string]string{"phone_number": "02-555-1234"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorBody
	decodeBody(t, w, &resp)
	assert.Equal(t, "유효하지 않은 전화번호 형식입니다. (예: 010-1234-5678)", resp.Message)
}

func TestCheckout_MissingChoice(t *testing.T) {
	env := newTestEnv(t)
	addItem(t, env, "s1", 1, 1)

	w := doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/choice",
		map[string]interface{}{})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorBody
	decodeBody(t, w, &resp)
	assert.Equal(t, "전화번호 입력 여부를 선택해주세요.", resp.Message)
}

func TestCheckout_SavePhoneThenComplete(t *testing.T) {
	env := newTestEnv(t)
	addItem(t, env, "s1", 1, 1)
	setPackaging(t, env, "s1", "takeout")

	w := doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/phone_number",
		map[string]string{"phone": "010-9876-5432"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/complete", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var summary orderSummaryBody
	decodeBody(t, w, &summary)
	require.NotNil(t, summary.PhoneNumber)
	assert.Equal(t, "010-9876-5432", *summary.PhoneNumber)
	assert.Equal(t, "takeout", summary.Packaging)
}

func TestCheckout_CompleteWithoutSavedPhone(t *testing.T) {
	env := newTestEnv(t)
	addItem(t, env, "s1", 1, 1)
	setPackaging(t, env, "s1", "포장")

	// the complete endpoint expects a previously saved number
	w := doJSON(t, env.router, http.MethodPost, "/api/touch/phone/s1/complete", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp errorBody
	decodeBody(t, w, &resp)
	assert.Equal(t, "전화번호는 필수 입력값입니다.", resp.Message)
}
