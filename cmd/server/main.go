package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindful/backend/internal/auth"
	"mindful/backend/internal/config"
	"mindful/backend/internal/database"
	"mindful/backend/internal/handler"
	"mindful/backend/internal/media"
	"mindful/backend/pkg/jwt"
	"mindful/backend/pkg/logger"
	"mindful/backend/pkg/monitoring"
	"mindful/backend/pkg/security"
	"mindful/backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	// Swagger imports
	_ "mindful/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Mindful API
// @version         1.0
// @description     Accounts, audio catalog, scheduled sessions, playlists and friends for the mindfulness app.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	zlog, level, err := logger.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	config.Watch(".", func(c *config.Config) {
		if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
			zlog.Warn("ignoring invalid LOG_LEVEL", zap.String("level", c.LogLevel))
			return
		}
		zlog.Info("config reloaded", zap.String("log_level", c.LogLevel))
	}, func(err error) {
		zlog.Warn("config reload failed", zap.Error(err))
	})

	// Connect to the database
	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database", zap.Error(err))
	}

	ctx := context.Background()

	var logins auth.SessionStore = auth.NewDBSessionStore(db)
	if cfg.RedisAddr != "" {
		rdb, err := database.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			zlog.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()
		logins = auth.NewRedisSessionStore(rdb)
		zlog.Info("login sessions stored in redis", zap.String("addr", cfg.RedisAddr))
	}

	tokens := jwt.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	h := handler.New(db, tokens, logins, zlog)
	h.MediaBaseURL = cfg.MediaBaseURL
	h.SessionTTL = cfg.SessionTTL
	h.SecureCookies = cfg.IsRelease()

	if cfg.MinioEndpoint != "" {
		store, err := media.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL, cfg.MinioPublicURL)
		if err != nil {
			zlog.Fatal("minio", zap.Error(err))
		}
		if err := store.EnsureBucket(ctx); err != nil {
			zlog.Fatal("minio", zap.Error(err))
		}
		h.Uploader = store
	}

	metrics := monitoring.New()
	sqlDB, err := db.DB()
	if err != nil {
		zlog.Fatal("database", zap.Error(err))
	}
	metrics.Registry().MustRegister(collectors.NewDBStatsCollector(sqlDB, cfg.DatabaseDriver))

	router := gin.New()
	router.Use(
		gin.Recovery(),
		logger.GinMiddleware(zlog),
		metrics.Middleware(),
		security.Secure(),
		security.CORS(cfg.AllowedOrigins()),
	)

	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer("mindful-backend", cfg.TracingCollectorEndpoint)
		if err != nil {
			zlog.Fatal("tracing", zap.Error(err))
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(shutdownCtx)
		}()
		router.Use(tracing.GinMiddleware())
	}

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metrics.Handler())

	authn := auth.NewAuthenticator(tokens, logins, h.Accounts)
	h.RegisterRoutes(router, authn, security.RateLimiter(cfg.RateLimitMaxRequests, cfg.RateLimitWindow))

	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("server is running",
			zap.String("addr", srv.Addr),
			zap.String("swagger", "http://localhost:"+cfg.ServerPort+"/swagger/index.html"),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("listen", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
}
