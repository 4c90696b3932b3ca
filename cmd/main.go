package main

import (
	"github.com/aarusa/your-ai-meal-sub000/config"
	"github.com/aarusa/your-ai-meal-sub000/logger"
	"github.com/aarusa/your-ai-meal-sub000/routes"
	"github.com/aarusa/your-ai-meal-sub000/utils"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	config.InitDB()
	utils.InitS3()

	r := routes.SetupRouter()

	addr := ":" + config.GetEnv("PORT", "8080")
	logger.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
