package main

import (
	"log"
	"net/http"
	"time"

	"ecodenuncias-web/config"
	"ecodenuncias-web/middlewares"
	"ecodenuncias-web/routes"
	"ecodenuncias-web/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if cfg.UseMockData {
		log.Println("Mock data mode enabled; no backend calls will be made")
	} else {
		log.Printf("Using denuncias API at %s", cfg.APIBaseURL)
	}

	if cfg.RedisAddress != "" {
		if err := config.ConnectRedis(cfg.RedisAddress, cfg.RedisPassword); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
	} else {
		log.Println("REDIS_ADDRESS not set; write rate limiting disabled")
	}

	svc := services.New(cfg)

	r := gin.Default()

	r.Use(middlewares.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	routes.DenunciaRoutes(r, svc, cfg.DenunciaRateLimit)
	routes.AdminRoutes(r, svc)
	routes.ReporteRoutes(r, svc)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
