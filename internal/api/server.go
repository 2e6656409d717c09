package api

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/nivaro/account_service/config"
	"github.com/nivaro/account_service/infra/queue"
	"github.com/nivaro/account_service/internal/api/rest/handlers"
	"github.com/nivaro/account_service/internal/domain"
	"github.com/nivaro/account_service/internal/helper"
	"github.com/nivaro/account_service/internal/notify"
	"github.com/nivaro/account_service/internal/repository"
	"github.com/nivaro/account_service/internal/services"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func StartServer(cfg config.Config) {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.BaseURL,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DatabaseDSN,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection error: %v", err)
	}

	// single migrator at a time
	const migrateLockID int64 = 20260831

	if err := db.Exec("SELECT pg_advisory_lock(?)", migrateLockID).Error; err != nil {
		log.Fatalf("migration lock error: %v", err)
	}
	defer func() {
		_ = db.Exec("SELECT pg_advisory_unlock(?)", migrateLockID).Error
	}()

	if err := db.AutoMigrate(&domain.Account{}); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	producer := queue.NewProducer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
	)
	notifier := notify.NewEmailNotifier(producer)

	auth := helper.SetupAuth(cfg.AccessSecret, cfg.JWTIssuer, cfg.AccessTokenTTL, cfg.EmailTokenTTL)

	accountRepo := repository.NewAccountRepository(db)
	accountSvc := services.NewAccountService(accountRepo, auth, notifier)

	accountHandler := handlers.NewAccountHandler(accountSvc)
	accountHandler.SetupRoutes(app, auth)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	log.Println("listening on", cfg.ServerAddr)
	log.Fatal(app.Listen(cfg.ServerAddr))
}
