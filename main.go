package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/shstksdbs/ERP-Project-sub001/configs"
	"github.com/shstksdbs/ERP-Project-sub001/entity"
	"github.com/shstksdbs/ERP-Project-sub001/middlewares"
	"github.com/shstksdbs/ERP-Project-sub001/routes"
	"github.com/shstksdbs/ERP-Project-sub001/ws"
)

func main() {
	cfg := configs.LoadConfig()

	configs.ConnectionDB(cfg.DBSource)
	if err := configs.DB().SetupJoinTable(&entity.Menu{}, "Options", &entity.MenuOption{}); err != nil {
		log.Fatal("setup join table:", err)
	}
	configs.SetupDatabase()
	if err := configs.SeedLookups(); err != nil {
		log.Fatal("seed lookups:", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatal("seed catalog:", err)
	}
	if err := configs.SeedAdmin(); err != nil {
		log.Fatal("seed admin:", err)
	}

	hub := ws.NewOrderHub()
	go hub.Run()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, cfg, hub)

	r.GET("/", func(c *gin.Context) {
		c.String(200, "API RUNNING... PORT: %s", cfg.Port)
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("server stopped:", err)
	}
}
