package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/justice-chain/classifier/internal/client"
	"github.com/justice-chain/classifier/internal/config"
	"github.com/justice-chain/classifier/internal/handler"
	"github.com/justice-chain/classifier/internal/service"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// .env 파일은 선택 사항
	_ = godotenv.Load()

	cfg := config.Load()
	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	svc := service.NewClassifyService(newCompleter(cfg, logger), logger)

	router := handler.NewRouter(handler.RouterConfig{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Provider:       cfg.Provider,
		Model:          cfg.Model(),
	}, svc, logger)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting AI server",
			zap.String("addr", srv.Addr),
			zap.String("provider", cfg.Provider),
			zap.String("model", cfg.Model()),
			zap.Bool("api_key_configured", svc.Configured()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
}

// 업스트림 클라이언트 생성 실패 시 nil 반환 (미설정 상태로 계속 서비스)
func newCompleter(cfg config.Config, logger *zap.Logger) service.Completer {
	switch cfg.Provider {
	case config.ProviderGemini:
		c, err := client.NewGeminiClient(context.Background(), cfg.Gemini, cfg.Timeout)
		if err != nil {
			logger.Warn("gemini client not configured", zap.Error(err))
			return nil
		}
		return c
	case config.ProviderGroq:
		c, err := client.NewGroqClient(cfg.Groq, cfg.Timeout)
		if err != nil {
			logger.Warn("groq client not configured", zap.Error(err))
			return nil
		}
		return c
	default:
		logger.Warn("unknown AI_PROVIDER", zap.String("provider", cfg.Provider))
		return nil
	}
}

func newLogger(level string) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
