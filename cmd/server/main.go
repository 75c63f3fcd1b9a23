package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tinylink/internal/codegen"
	"tinylink/internal/config"
	"tinylink/internal/handler"
	"tinylink/internal/model"
	"tinylink/internal/mq"
	"tinylink/internal/repository"
	"tinylink/internal/service"
	"tinylink/pkg/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title tinylink API
// @version 1.0
// @description URL shortening service with deduplication and click analytics

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Setup logger
	setupLogger(cfg.Server.Mode)

	// Initialize repositories
	cache := repository.NewRedisCache(&cfg.Database.Redis)
	defer cache.Close()

	store := repository.NewMySQLStore(&cfg.Database.MySQL)
	defer store.Close()

	// Blocklist
	blocklist, err := service.NewBlocklist(&cfg.Blocklist)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load blocklist")
	}

	// Code generator; the cache layer is the shared sequence allocator for
	// the counter strategy
	gen := codegen.NewGenerator(
		codegen.Strategy(cfg.Codegen.Strategy),
		cache,
		cfg.Codegen.Length,
		cfg.Codegen.Fallback,
	)

	shortener := service.NewShortener(
		store, cache, gen, blocklist,
		cfg.Server.BaseURL,
		cfg.Cache.URLTTL, cfg.Cache.DedupTTL,
		cfg.Codegen.MaxAttempts,
	)

	// Initialize MQ (optional, can be nil)
	var producer *mq.Producer
	if cfg.RocketMQ.NameServer != "" {
		producer, err = mq.NewProducer(&cfg.RocketMQ)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ producer, running without MQ")
			producer = nil
		}
	}

	var producerIface mq.ProducerInterface
	if producer != nil {
		producerIface = producer
	}
	recorder := service.NewClickRecorder(cache, producerIface, cfg.Clicks.QueueSize, cfg.Clicks.Workers)

	// Setup Gin
	gin.SetMode(cfg.Server.Mode)
	router := gin.New()

	// Middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.SecureHeaders())
	router.Use(corsMiddleware())

	linkHandler := handler.NewLinkHandler(shortener)
	redirectHandler := handler.NewRedirectHandler(shortener, recorder)

	// API v1 routes
	v1 := router.Group("/api/v1")
	if cfg.RateLimit.Enabled {
		v1.Use(middleware.RateLimit(cache, "create", cfg.RateLimit.CreateLimit, cfg.RateLimit.Window))
	}
	{
		v1.POST("/links", linkHandler.Create)
		v1.GET("/links/:shortCode/stats", linkHandler.Stats)
		v1.DELETE("/links/:shortCode", linkHandler.Deactivate)
	}

	// Redirect route (short codes)
	redirect := router.Group("/")
	if cfg.RateLimit.Enabled {
		redirect.Use(middleware.RateLimit(cache, "redirect", cfg.RateLimit.RedirectLimit, cfg.RateLimit.Window))
	}
	redirect.GET("/:shortCode", redirectHandler.Redirect)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// Start MQ consumer if configured; it persists click events to MySQL
	var consumer *mq.Consumer
	if cfg.RocketMQ.NameServer != "" {
		consumer, err = mq.NewConsumer(&cfg.RocketMQ, func(ctx context.Context, msg *mq.ClickMessage) error {
			return store.SaveClickEvent(ctx, &model.ClickEvent{
				EventID:   msg.EventID,
				ShortCode: msg.ShortCode,
				ClientIP:  msg.ClientIP,
				UserAgent: msg.UserAgent,
				Referer:   msg.Referer,
				ClickedAt: msg.ClickedAt,
			})
		})

		if err != nil {
			log.Warn().Err(err).Msg("Failed to initialize RocketMQ consumer")
		} else {
			go func() {
				if err := consumer.Subscribe(); err != nil {
					log.Error().Err(err).Msg("Failed to subscribe to RocketMQ")
				}
			}()
			defer consumer.Close()
		}
	}

	// Janitor: purge expired links and orphaned dedup entries
	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go runJanitor(janitorCtx, store, cfg.Janitor.Interval)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Msgf("Starting server on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Drain queued clicks before the producer goes away
	recorder.Close()
	if producer != nil {
		producer.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// runJanitor periodically removes expired links and dedup rows that no
// longer point at a live link
func runJanitor(ctx context.Context, store repository.StoreInterface, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sweepCtx, cancel := context.WithTimeout(ctx, time.Minute)
			purged, err := store.DeleteExpired(sweepCtx)
			cancel()
			if err != nil {
				log.Error().Err(err).Msg("Expired link sweep failed")
				continue
			}
			if purged > 0 {
				log.Info().Int64("purged", purged).Msg("Expired links removed")
			}
		}
	}
}

// setupLogger configures the logger
func setupLogger(mode string) {
	if mode == "release" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Use console writer for pretty output
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
