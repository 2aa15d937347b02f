package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pawtrail/internal/blobstore"
	"pawtrail/internal/config"
	"pawtrail/internal/database"
	"pawtrail/internal/handlers"
	"pawtrail/internal/logger"
	"pawtrail/internal/middleware"
	"pawtrail/internal/token"
)

func main() {
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if cfg.JWT.Secret == config.InsecureJWTSecret {
		log.Warn().Msg("PAWTRAIL_JWT_SECRET is not set, using the insecure development fallback")
	}

	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to database")
	}
	defer db.Close()

	if err := database.CreateTables(db); err != nil {
		log.Fatal().Err(err).Msg("creating tables")
	}

	tokens, err := token.NewManager(cfg.JWT.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("configuring token manager")
	}

	blob, err := blobstore.New(context.Background(), cfg.S3)
	if err != nil {
		log.Fatal().Err(err).Msg("configuring blob store")
	}

	h := handlers.New(db, tokens, blob, log, cfg)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID(log))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	auth := middleware.Auth(tokens)

	router.GET("/", h.Root)
	router.GET("/api/health", h.HealthCheck)

	router.POST("/api/user", h.Register)
	router.POST("/api/user/login", h.Login)
	router.POST("/api/user/verify", h.Verify)

	router.POST("/api/animal", auth, h.CreateAnimal)
	router.POST("/api/training", auth, h.CreateTraining)

	admin := router.Group("/api/admin", auth)
	admin.GET("/users", h.ListUsers)
	admin.GET("/animals", h.ListAnimals)
	admin.GET("/trainings", h.ListTrainings)

	router.POST("/api/file/upload", auth, h.UploadFile)

	addr := ":" + cfg.Server.Port
	log.Info().Str("addr", addr).Msg("pawtrail api starting")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
