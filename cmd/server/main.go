package main

import (
	"context"
	"net/http"
	"time"

	"redmedicos-be/internal/config"
	"redmedicos-be/internal/db"
	"redmedicos-be/internal/lead"
	"redmedicos-be/internal/logger"
	"redmedicos-be/internal/news"
	"redmedicos-be/internal/order"
	"redmedicos-be/internal/payment"
	"redmedicos-be/internal/product"
	"redmedicos-be/internal/redisx"
	"redmedicos-be/internal/transport"
	"redmedicos-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	database := db.InitDB(cfg)
	defer database.Close()

	rdb := redisx.New(cfg.RedisAddr)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	if err := redisx.Ping(ctx, rdb); err != nil {
		log.Warn("redis unreachable, news caching disabled", zap.Error(err))
		rdb = nil
	}
	cancel()

	gateway := payment.NewTossGateway(cfg.TossSecretKey)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, gateway, productRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	leadSvc := lead.NewService(cfg.LeadWebhookURL)
	newsSvc := news.NewService(rdb)

	router := transport.NewRouter(&transport.Handlers{
		Orders:   orderSvc,
		Products: productSvc,
		Users:    userSvc,
		Leads:    leadSvc,
		News:     newsSvc,
		Gateway:  gateway,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("server listening", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal("server stopped", zap.Error(err))
	}
}
