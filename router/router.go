package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kitalk/kiosk-backend/controllers"
	"github.com/kitalk/kiosk-backend/middlewares"
	"github.com/kitalk/kiosk-backend/services"
	"github.com/kitalk/kiosk-backend/store"
)

// SetupRouter wires stores, services and controllers onto the route table.
func SetupRouter(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.OptionalAuth())

	rl := middlewares.NewRateLimiter(300, 60)
	r.Use(rl.RateLimit())

	sessionStore := store.NewSessionStore(rdb)

	menuService := services.NewMenuService(db)
	assembler := services.NewAssembler(menuService, sessionStore)
	cartService := services.NewCartService(sessionStore, menuService, assembler)
	checkoutService := services.NewCheckoutService(db, sessionStore, assembler)
	historyService := services.NewHistoryService(db)

	menuController := controllers.NewMenuController(menuService)
	cartController := controllers.NewCartController(cartService)
	phoneController := controllers.NewPhoneController(checkoutService)
	phoneOrderController := controllers.NewPhoneOrderController(historyService)
	healthController := controllers.NewHealthController(db, sessionStore)

	r.GET("/health", healthController.Health)

	api := r.Group("/api")
	{
		menu := api.Group("/menu")
		{
			menu.GET("/list", menuController.GetMenuList)
			menu.GET("/categories", menuController.GetCategoryList)
		}

		cart := api.Group("/touch/cart")
		{
			cart.GET("/health", cartController.Health)
			cart.POST("/:sessionId/add", cartController.AddToCart)
			cart.PUT("/:sessionId/update", cartController.UpdateCart)
			cart.DELETE("/:sessionId/remove", cartController.RemoveItem)
			cart.DELETE("/:sessionId/clear", cartController.ClearCart)
			cart.GET("/:sessionId", cartController.GetCart)
			cart.POST("/:sessionId/packaging", cartController.SetPackaging)
		}

		phone := api.Group("/touch/phone")
		{
			phone.POST("/:sessionId/choice", phoneController.ProcessPhoneChoice)
			phone.POST("/:sessionId/input", phoneController.ProcessPhoneInput)
			phone.POST("/:sessionId/complete", phoneController.CompleteOrder)
			phone.POST("/:sessionId/phone_number", phoneController.SavePhone)
		}

		history := api.Group("/phone", middlewares.NewHistoryRateLimiter())
		{
			history.GET("/orders", phoneOrderController.GetRecentOrders)
			history.GET("/top-menus", phoneOrderController.GetTopMenus)
		}
	}

	return r
}
