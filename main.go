package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mesorian1996/contact-backend/config"
	"github.com/Mesorian1996/contact-backend/handlers"
	"github.com/Mesorian1996/contact-backend/logger"
	"github.com/Mesorian1996/contact-backend/middleware"
	"github.com/Mesorian1996/contact-backend/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// 設定の初期化
	cfg, err := config.InitConfig()
	if err != nil {
		logger.Logger.Fatal("設定の初期化に失敗しました", zap.Error(err))
	}

	// サイトレジストリの読み込み（以降は読み取り専用）
	registry := config.LoadRegistry()

	// 送信手段の初期化
	var mailer services.Mailer
	switch cfg.MailProvider {
	case "smtp":
		mailer = services.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	default:
		mailer = services.NewSendGridMailer(cfg.SendGridAPIKey)
	}

	// ルーターの設定
	r := gin.New()
	middleware.SetupMiddleware(r)

	// ハンドラーの設定
	contactHandler := handlers.NewContactHandler(registry, mailer)
	r.GET("/health", handlers.HandleHealthCheck)
	r.POST("/v1/contact", contactHandler.HandleContact)

	// サーバーの設定と起動
	srv := config.SetupServer(r, cfg)

	// グレースフルシャットダウンの実装
	handleGracefulShutdown(srv, cfg.ShutdownTimeout)
}

func handleGracefulShutdown(srv *http.Server, timeout time.Duration) {
	// サーバーを別のゴルーチンで起動
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("サーバーの起動に失敗しました", zap.Error(err))
		}
	}()

	// シグナルの受信設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Logger.Info("シャットダウンを開始します...")

	// シャットダウンのタイムアウト設定
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// グレースフルシャットダウンの実行
	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("サーバーのシャットダウンでエラーが発生", zap.Error(err))
	}

	logger.Logger.Info("サーバーを正常に終了しました")
}
