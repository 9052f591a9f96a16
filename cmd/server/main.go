package main

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hopefoundation/charity-backend/internal/config"
	"github.com/hopefoundation/charity-backend/internal/db"
	"github.com/hopefoundation/charity-backend/internal/handler"
	"github.com/hopefoundation/charity-backend/internal/router"
	"github.com/hopefoundation/charity-backend/internal/service"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

func main() {
	envFile := ""
	if _, err := os.Stat(".env"); err == nil {
		envFile = ".env"
	}
	if err := config.Load(envFile); err != nil {
		logger.Fatal(err)
	}
	cfg := config.Get()

	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg); err != nil {
		logger.Fatal(err)
	}

	auth := service.NewAuthService(db.DB, cfg.JWTSecret, time.Duration(cfg.JWTExpiresHours)*time.Hour)
	telegram := service.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID)
	email := service.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	api := handler.NewAPI(db.DB, cfg, auth, telegram, email)
	r := router.Setup(api, cfg.UploadDir, cfg.UploadURLPath)

	logger.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal(err)
	}
}
