package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mohammedmokhtar77/Bank-System/internal/bank"
	"github.com/mohammedmokhtar77/Bank-System/internal/config"
	"github.com/mohammedmokhtar77/Bank-System/internal/events"
	"github.com/mohammedmokhtar77/Bank-System/internal/handler"
	"github.com/mohammedmokhtar77/Bank-System/internal/middleware"
	redisclient "github.com/mohammedmokhtar77/Bank-System/internal/redis"
	"github.com/mohammedmokhtar77/Bank-System/internal/service"
)

func main() {
	cfg := config.FromEnv()

	// Event stream (optional; REDIS_ADDR="" runs without it)
	var publisher service.EventPublisher = events.NopPublisher{}
	if cfg.RedisAddr != "" {
		redis, err := redisclient.NewClient(cfg.RedisAddr, "", 0)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redis.Close()
		publisher = events.NewPublisher(redis.Client)
	}

	registry := bank.NewAccountRegistry()
	bankSvc := service.NewBankService(registry, publisher)
	authSvc := service.NewAuthService(registry, []byte(cfg.JWTSecret))

	accountHandler := handler.NewAccountHandler(bankSvc, bankSvc)
	transferHandler := handler.NewTransferHandler(bankSvc)
	authHandler := handler.NewAuthHandler(authSvc)

	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	router.POST("/v1/auth/login", authHandler.Login)

	// Account opening needs no session, like user registration
	router.POST("/v1/accounts", accountHandler.CreateAccount)

	auth := middleware.AuthMiddleware([]byte(cfg.JWTSecret))
	v1 := router.Group("/v1", auth)
	{
		v1.GET("/accounts", accountHandler.ListAccounts)
		v1.GET("/accounts/search", accountHandler.SearchAccounts)
		v1.GET("/accounts/stats", accountHandler.GetStats)
		v1.GET("/accounts/:accountId", accountHandler.GetAccount)
		v1.POST("/accounts/:accountId/deposits", accountHandler.Deposit)
		v1.POST("/accounts/:accountId/withdrawals", accountHandler.Withdraw)
		v1.POST("/accounts/:accountId/interest", accountHandler.AddInterest)
		v1.POST("/transfers", transferHandler.CreateTransfer)
	}

	log.Printf("Bank server starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
