package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Sr-Das-Ofertas/probotsv2/auth"
	"github.com/Sr-Das-Ofertas/probotsv2/cart"
	"github.com/Sr-Das-Ofertas/probotsv2/checkout"
	"github.com/Sr-Das-Ofertas/probotsv2/config"
	checkoutController "github.com/Sr-Das-Ofertas/probotsv2/controllers/checkout"
	"github.com/Sr-Das-Ofertas/probotsv2/models"
	"github.com/Sr-Das-Ofertas/probotsv2/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("invalid configuration")
	}
	initLogger(cfg)
	zlog.Info().Str("environment", cfg.Environment).Msg("starting storefront api")

	db := initDatabase(cfg)
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Category{},
		&models.Banner{},
		&models.Settings{},
	); err != nil {
		zlog.Fatal().Err(err).Msg("automigrate failed")
	}

	redisClient, err := cfg.Redis.NewClient()
	if err != nil {
		zlog.Fatal().Err(err).Msg("redis connection failed")
	}
	store := cart.NewStore(cart.NewRedisKV(redisClient), cfg.CartTTL)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	r.Static("/uploads", cfg.UploadsDir)

	routes.SetupRoutes(r, routes.Deps{
		DB:       db,
		Store:    store,
		Sessions: auth.NewSessionIssuer(cfg.JWTSecret, cfg.SessionTTL),
		CEP:      checkout.NewCEPClient(cfg.ViaCEPBaseURL),
		Hub:      checkoutController.NewHub(),
		Config:   cfg,
	})

	// Nightly uploads backup at 2 AM when a backup dir is configured
	if cfg.BackupDir != "" {
		go startDailyBackupAtFixedTime(cfg.UploadsDir, cfg.BackupDir, cfg.BackupRetention, 2, 0)
	}

	zlog.Info().Str("port", cfg.Port).Msg("server running")
	if err := r.Run(":" + cfg.Port); err != nil {
		zlog.Fatal().Err(err).Msg("failed to start server")
	}
}

func initLogger(cfg *config.Config) {
	if cfg.IsProduction() {
		zlog.Logger = zlog.Logger.Level(zerolog.InfoLevel)
		return
	}
	zlog.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Caller().Logger()
	zlog.Logger = zlog.Logger.Level(zerolog.DebugLevel)
}

func initDatabase(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zlog.Fatal().Err(err).Msg("db connection failed")
	}
	return db
}
