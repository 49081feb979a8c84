package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"haircare-web/backend"
	"haircare-web/cart"
	"haircare-web/checkout"
	"haircare-web/config"
	"haircare-web/pkg/logging"
	"haircare-web/routes"
	"haircare-web/services"
	"haircare-web/session"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
}

func main() {
	settings := config.Load()
	logger := logging.New(settings.LogLevel)

	if settings.SessionSecret == "" {
		log.Fatal("SESSION_SECRET not set")
	}

	api := backend.New(settings.APIBaseURL(), logger.Component("backend"))
	sessions := session.NewManager([]byte(settings.SessionSecret), logger.Component("session"))
	carts := cart.NewStores()
	flows := checkout.NewRegistry()

	janitor := services.NewJanitor(flows, settings.FlowTTL, logger.Component("janitor"))
	janitor.StartScheduler()
	defer janitor.Stop()

	r := routes.SetupRouter(routes.Deps{
		Settings: settings,
		API:      api,
		Sessions: sessions,
		Carts:    carts,
		Flows:    flows,
		Logger:   logger,
	})
	printRoutes(r)

	logger.Info("gateway starting", "port", settings.Port, "backend", settings.APIBaseURL())
	if err := r.Run(":" + settings.Port); err != nil {
		log.Fatal(err)
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
