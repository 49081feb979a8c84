package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"haircare-web/appointments"
	"haircare-web/backend"
	"haircare-web/cart"
	"haircare-web/checkout"
	"haircare-web/config"
	"haircare-web/controllers"
	"haircare-web/pkg/logging"
	"haircare-web/session"
)

// Deps carries everything the router wires into the controllers.
type Deps struct {
	Settings config.Settings
	API      *backend.Client
	Sessions *session.Manager
	Carts    *cart.Stores
	Flows    *checkout.Registry
	Logger   *logging.Logger
}

// SetupRouter assembles the gateway's HTTP surface.
func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(d.Logger))

	authCtl := &controllers.AuthController{API: d.API, Sessions: d.Sessions, Carts: d.Carts, Logger: d.Logger}
	siteCtl := &controllers.SiteController{Settings: d.Settings, Sessions: d.Sessions}
	serviceCtl := &controllers.ServiceController{API: d.API, Sessions: d.Sessions, Logger: d.Logger}
	cartCtl := &controllers.CartController{API: d.API, Sessions: d.Sessions, Carts: d.Carts, Logger: d.Logger}
	checkoutCtl := &controllers.CheckoutController{API: d.API, Sessions: d.Sessions, Carts: d.Carts, Flows: d.Flows, Logger: d.Logger}
	appointmentCtl := &controllers.AppointmentController{
		Manager: appointments.NewManager(d.API, d.Logger),
		Logger:  d.Logger,
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/logout", authCtl.Logout)
		auth.GET("/me", authCtl.Me)
	}

	// Public views: catalog browsing, language, contact chrome.
	r.GET("/api/services", serviceCtl.ListServices)
	r.GET("/api/language", siteCtl.GetLanguage)
	r.PUT("/api/language", siteCtl.SetLanguage)
	r.GET("/api/contact", siteCtl.Contact)

	api := r.Group("/api")
	api.Use(d.Sessions.AuthRequired())
	{
		carts := api.Group("/cart")
		{
			carts.GET("", cartCtl.GetCart)
			carts.POST("", cartCtl.AddItem)
			carts.PUT("/edit", cartCtl.UpdateQuantity)
			carts.DELETE("", cartCtl.RemoveItem)
		}

		co := api.Group("/checkout")
		{
			co.GET("", checkoutCtl.GetState)
			co.POST("", checkoutCtl.Start)
			co.POST("/fee", checkoutCtl.ResolveFee)
			co.POST("/confirm", checkoutCtl.Confirm)
			co.POST("/schedule", checkoutCtl.Submit)
		}

		admin := api.Group("")
		admin.Use(d.Sessions.AdminRequired())
		{
			admin.POST("/services", serviceCtl.CreateService)
			admin.PUT("/services/:id", serviceCtl.UpdateService)
			admin.DELETE("/services/:id", serviceCtl.DeleteService)

			admin.GET("/appointments", appointmentCtl.List)
			admin.POST("/appointments/:action/:id", appointmentCtl.Act)
		}
	}

	return r
}
