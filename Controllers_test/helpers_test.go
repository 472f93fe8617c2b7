package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kitalk/kiosk-backend/controllers"
	"github.com/kitalk/kiosk-backend/models"
	"github.com/kitalk/kiosk-backend/services"
	"github.com/kitalk/kiosk-backend/store"
	"github.com/kitalk/kiosk-backend/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	os.Exit(m.Run())
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

// newTestEnv builds the full controller stack on an in-memory SQLite catalog
// and a miniredis session store, with the production route table.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Menu{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	seedMenus(t, db)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionStore := store.NewSessionStore(rdb)

	menuService := services.NewMenuService(db)
	assembler := services.NewAssembler(menuService, sessionStore)
	cartService := services.NewCartService(sessionStore, menuService, assembler)
	checkoutService := services.NewCheckoutService(db, sessionStore, assembler)
	historyService := services.NewHistoryService(db)

	menuCtrl := controllers.NewMenuController(menuService)
	cartCtrl := controllers.NewCartController(cartService)
	phoneCtrl := controllers.NewPhoneController(checkoutService)
	phoneOrderCtrl := controllers.NewPhoneOrderController(historyService)

	r := gin.New()
	r.GET("/api/menu/list", menuCtrl.GetMenuList)
	r.GET("/api/menu/categories", menuCtrl.GetCategoryList)
	r.GET("/api/touch/cart/health", cartCtrl.Health)
	r.POST("/api/touch/cart/:sessionId/add", cartCtrl.AddToCart)
	r.PUT("/api/touch/cart/:sessionId/update", cartCtrl.UpdateCart)
	r.DELETE("/api/touch/cart/:sessionId/remove", cartCtrl.RemoveItem)
	r.DELETE("/api/touch/cart/:sessionId/clear", cartCtrl.ClearCart)
	r.GET("/api/touch/cart/:sessionId", cartCtrl.GetCart)
	r.POST("/api/touch/cart/:sessionId/packaging", cartCtrl.SetPackaging)
	r.POST("/api/touch/phone/:sessionId/choice", phoneCtrl.ProcessPhoneChoice)
	r.POST("/api/touch/phone/:sessionId/input", phoneCtrl.ProcessPhoneInput)
	r.POST("/api/touch/phone/:sessionId/complete", phoneCtrl.CompleteOrder)
	r.POST("/api/touch/phone/:sessionId/phone_number", phoneCtrl.SavePhone)
	r.GET("/api/phone/orders", phoneOrderCtrl.GetRecentOrders)
	r.GET("/api/phone/top-menus", phoneOrderCtrl.GetTopMenus)

	return &testEnv{db: db, router: r}
}

func seedMenus(t *testing.T, db *gorm.DB) {
	t.Helper()
	menus := []models.Menu{
		{ID: 1, Name: "아메리카노", Temperature: "HOT", Price: 3000, Category: "커피", IsActive: true, IsPopular: true, Profile: ptrString("americano.jpg")},
		{ID: 2, Name: "카페라떼", Temperature: "ICE", Price: 4000, Category: "커피", IsActive: true},
		{ID: 3, Name: "딸기 스무디", Temperature: "ICE", Price: 5000, Category: "스무디", IsActive: true},
		{ID: 4, Name: "치즈케이크", Temperature: "NONE", Price: 6500, Category: "디저트", IsActive: true},
	}
	if err := db.Create(&menus).Error; err != nil {
		t.Fatalf("failed to seed menus: %v", err)
	}

	// an inactive menu must stay invisible everywhere; the is_active column
	// carries a default so the flag is set with an explicit update
	retired := models.Menu{ID: 99, Name: "단종 커피", Temperature: "HOT", Price: 1000, Category: "커피"}
	if err := db.Create(&retired).Error; err != nil {
		t.Fatalf("failed to seed retired menu: %v", err)
	}
	if err := db.Model(&models.Menu{}).Where("id = ?", 99).Update("is_active", false).Error; err != nil {
		t.Fatalf("failed to deactivate menu: %v", err)
	}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %s: %v", w.Body.String(), err)
	}
}

type errorBody struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

type cartViewBody struct {
	Message    string  `json:"message"`
	Orders     []cartItemBody `json:"orders"`
	TotalItems int     `json:"total_items"`
	TotalPrice int     `json:"total_price"`
	Packaging  *string `json:"packaging"`
	SessionID  string  `json:"session_id"`
}

type cartItemBody struct {
	MenuID   uint    `json:"menu_id"`
	MenuItem string  `json:"menu_item"`
	Price    int     `json:"price"`
	Quantity int     `json:"quantity"`
	Popular  bool    `json:"popular"`
	Temp     string  `json:"temp"`
	Profile  *string `json:"profile"`
}

type orderSummaryBody struct {
	Message     string         `json:"message"`
	OrderID     uint           `json:"order_id"`
	Orders      []cartItemBody `json:"orders"`
	TotalItems  int            `json:"total_items"`
	TotalPrice  int            `json:"total_price"`
	Packaging   string         `json:"packaging"`
	PhoneNumber *string        `json:"phone_number"`
	NextStep    string         `json:"next_step"`
}

func ptrString(s string) *string {
	return &s
}
