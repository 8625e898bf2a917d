package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	httpadp "givemarket-backend/internal/adapter/http"
	"givemarket-backend/internal/adapter/repository/mysql"
	"givemarket-backend/internal/config"
	"givemarket-backend/internal/infrastructure/cache"
	"givemarket-backend/internal/infrastructure/db"
	"givemarket-backend/internal/infrastructure/logger"
	"givemarket-backend/internal/usecase/catalog"
	"givemarket-backend/internal/usecase/chatbot"
	"givemarket-backend/internal/usecase/donation"
	"givemarket-backend/internal/usecase/order"
	"givemarket-backend/internal/usecase/organization"
	"givemarket-backend/internal/usecase/product"
	"givemarket-backend/internal/usecase/rating"
	"givemarket-backend/internal/usecase/user"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		zlog.Fatal("mysql connect", zap.Error(err))
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		zlog.Fatal("redis connect", zap.Error(err))
	}

	userRepo := mysql.NewUserRepository(gdb)
	productRepo := mysql.NewProductRepository(gdb)
	orderRepo := mysql.NewOrderRepository(gdb)
	orderItemRepo := mysql.NewOrderItemRepository(gdb)
	donationRepo := mysql.NewDonationRepository(gdb)
	orgRepo := mysql.NewOrganizationRepository(gdb)
	categoryRepo := mysql.NewCategoryRepository(gdb)
	ratingRepo := mysql.NewRatingRepository(gdb)
	txn := mysql.NewGormUoW(gdb)

	handlers := httpadp.Handlers{
		Base:         httpadp.NewHandler(),
		User:         httpadp.NewUserHandler(user.NewUsecase(userRepo, zlog)),
		Product:      httpadp.NewProductHandler(product.NewUsecase(productRepo, txn, zlog)),
		Order:        httpadp.NewOrderHandler(order.NewUsecase(orderRepo, orderItemRepo, txn, zlog)),
		Donation:     httpadp.NewDonationHandler(donation.NewUsecase(donationRepo, txn, zlog)),
		Organization: httpadp.NewOrganizationHandler(organization.NewUsecase(orgRepo, txn, zlog)),
		Catalog:      httpadp.NewCatalogHandler(catalog.NewUsecase(categoryRepo)),
		Rating:       httpadp.NewRatingHandler(rating.NewUsecase(ratingRepo)),
		Chatbot:      httpadp.NewChatbotHandler(chatbot.NewUsecase()),
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	httpadp.RegisterRoutes(e, handlers, cfg.JWTSecret, rdb,
		time.Duration(cfg.IdempTTLSecs)*time.Second)

	addr := ":" + cfg.AppPort
	zlog.Info("listening", zap.String("addr", addr))
	if err := e.Start(addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
