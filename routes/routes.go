package routes

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/shstksdbs/ERP-Project-sub001/configs"
	"github.com/shstksdbs/ERP-Project-sub001/controllers"
	"github.com/shstksdbs/ERP-Project-sub001/middlewares"
	"github.com/shstksdbs/ERP-Project-sub001/repository"
	"github.com/shstksdbs/ERP-Project-sub001/services"
	"github.com/shstksdbs/ERP-Project-sub001/ws"
)

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, hub *ws.OrderHub) {
	db := configs.DB()

	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	optionRepo := repository.NewOptionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	reportRepo := repository.NewReportRepository(db)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	branchSvc := services.NewBranchService(branchRepo)
	menuSvc := services.NewMenuService(menuRepo)
	optionSvc := services.NewOptionService(optionRepo)
	orderSvc := services.NewOrderService(db, orderRepo, menuRepo, optionRepo, branchRepo, cfg.OrderSecret)
	orderSvc.SetNotify(hub.NotifyCreated)
	reportSvc := services.NewReportService(reportRepo, orderSvc)
	paymentSvc := services.NewPaymentService(services.PaymentGatewayConfig{
		StoreID:    cfg.PGStoreID,
		APIKey:     cfg.PGAPIKey,
		APIURL:     cfg.PGAPIURL,
		SuccessURL: cfg.PGSuccessURL,
		FailURL:    cfg.PGFailURL,
	})

	// Checkout posts to the order intake endpoint over HTTP. By default it
	// talks to this same server.
	orderAPIURL := cfg.OrderAPIURL
	if orderAPIURL == "" {
		orderAPIURL = fmt.Sprintf("http://127.0.0.1:%s/api/orders/create", cfg.Port)
	}
	cartSvc := services.NewCartService()
	checkoutSvc := services.NewCheckoutService(services.NewHTTPOrderSubmitter(orderAPIURL), cfg.OrderSecret)

	authCtl := controllers.NewAuthController(authSvc)
	branchCtl := controllers.NewBranchController(branchSvc)
	menuCtl := controllers.NewMenuController(menuSvc)
	optionCtl := controllers.NewOptionController(optionSvc)
	kioskCtl := controllers.NewKioskController(cartSvc, menuSvc, checkoutSvc)
	orderCtl := controllers.NewOrderController(orderSvc)
	reportCtl := controllers.NewReportController(reportSvc)
	paymentCtl := controllers.NewPaymentController(paymentSvc)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authCtl.Login)
			auth.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtl.Me)
		}

		// Catalog reads are public so kiosks can browse without a login.
		api.GET("/branches", branchCtl.List)
		api.GET("/branches/:id", branchCtl.Detail)
		api.GET("/menus", menuCtl.List)
		api.GET("/menus/:id", menuCtl.Detail)
		api.GET("/menus/:id/options", menuCtl.ListOptions)
		api.GET("/menu-categories", menuCtl.Categories)
		api.GET("/menu-options", optionCtl.List)
		api.GET("/menu-options/category/:category", optionCtl.ListByCategory)

		// Catalog writes are HQ only.
		hq := api.Group("", middlewares.AuthMiddleware(cfg.JWTSecret, "hq"))
		{
			hq.POST("/branches", branchCtl.Create)
			hq.PUT("/branches/:id", branchCtl.Update)
			hq.DELETE("/branches/:id", branchCtl.Delete)

			hq.POST("/menus", menuCtl.Create)
			hq.PUT("/menus/:id", menuCtl.Update)
			hq.DELETE("/menus/:id", menuCtl.Delete)
			hq.POST("/menus/:id/options/:optionId", menuCtl.AttachOption)
			hq.DELETE("/menus/:id/options/:optionId", menuCtl.DetachOption)

			hq.POST("/menu-options", optionCtl.Create)
			hq.PUT("/menu-options/:id", optionCtl.Update)
			hq.DELETE("/menu-options/:id", optionCtl.Delete)
		}

		kiosk := api.Group("/kiosk")
		{
			kiosk.POST("/sessions", kioskCtl.StartSession)
			kiosk.DELETE("/sessions/:sid", kioskCtl.EndSession)
			kiosk.GET("/sessions/:sid/cart", kioskCtl.GetCart)
			kiosk.POST("/sessions/:sid/cart/lines", kioskCtl.AddLine)
			kiosk.PATCH("/sessions/:sid/cart/lines/:lineId", kioskCtl.UpdateLine)
			kiosk.DELETE("/sessions/:sid/cart/lines/:lineId", kioskCtl.RemoveLine)
			kiosk.POST("/sessions/:sid/checkout", kioskCtl.CheckoutCart)
		}

		orders := api.Group("/orders")
		{
			// Intake is unauthenticated; the security hash is the gate.
			orders.POST("/create", orderCtl.Create)

			console := orders.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
			{
				console.GET("", orderCtl.List)
				console.GET("/:id", orderCtl.Detail)
				console.PATCH("/:id/accept", orderCtl.Accept)
				console.PATCH("/:id/complete", orderCtl.Complete)
				console.PATCH("/:id/cancel", orderCtl.Cancel)
			}
		}

		api.GET("/reports/sales", middlewares.AuthMiddleware(cfg.JWTSecret), reportCtl.Sales)

		api.POST("/payments/ready", paymentCtl.Ready)
	}

	r.GET("/ws/branches/:id/orders", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
