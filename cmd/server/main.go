package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	authapp "transaction-api/internal/application/auth"
	transactionapp "transaction-api/internal/application/transaction"
	"transaction-api/internal/domain/partner"
	"transaction-api/internal/domain/service"
	"transaction-api/internal/domain/signature"
	"transaction-api/internal/infrastructure/config"
	otelinfra "transaction-api/internal/infrastructure/observability/otel"
	grpcserver "transaction-api/internal/presentation/grpc"
	"transaction-api/internal/presentation/rest"
)

const serviceName = "transaction-api"

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	tracerShutdown, err := otelinfra.InitTracer(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracer: %v", err)
		}
	}()

	meterShutdown, err := otelinfra.InitMeter(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize meter: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown meter: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer(serviceName)
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics(serviceName)
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// パートナーディレクトリの初期化
	directory, err := partner.NewDirectory(cfg.Partners.Secrets)
	if err != nil {
		log.Fatalf("Failed to load partner directory: %v", err)
	}

	// ドメインサービスの初期化
	mode, err := signature.NewTimestampMode(cfg.Signature.TimestampMode)
	if err != nil {
		log.Fatalf("Failed to parse signature timestamp mode: %v", err)
	}
	signer, err := signature.NewSigner(directory, mode, cfg.Signature.FixedTimestamp)
	if err != nil {
		log.Fatalf("Failed to create signer: %v", err)
	}

	validator := service.NewTransactionValidator(directory, signer, service.ValidationPolicy{
		TimestampOffset:       cfg.Validation.TimestampOffset,
		TimestampWindow:       cfg.Validation.TimestampWindow,
		VerifyPartnerPassword: cfg.Validation.VerifyPartnerPassword,
	})

	// アプリケーションサービスの初期化
	transactionAppService := transactionapp.NewTransactionApplicationService(validator, signer, logger, metrics)
	authAppService := authapp.NewAuthApplicationService(&cfg.JWT, &cfg.DemoLogin, transactionAppService, logger, metrics)

	// REST APIルーターの初期化
	router, err := rest.NewRouter(cfg, logger, metrics, transactionAppService, authAppService)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// gRPCサーバーの初期化
	grpcSrv, err := grpcserver.NewServer(cfg, logger, metrics, transactionAppService, authAppService)
	if err != nil {
		log.Fatalf("Failed to create gRPC server: %v", err)
	}

	ctx := context.Background()
	logger.Info(ctx, "Partner directory loaded", map[string]interface{}{
		"partners":       directory.IDs(),
		"timestamp_mode": signer.Mode().String(),
		"environment":    cfg.Environment,
	})

	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// REST APIサーバーを別ゴルーチンで起動
	go func() {
		logger.Info(ctx, "REST API server starting", map[string]interface{}{
			"address": address,
		})
		if err := router.Start(address); err != nil {
			logger.Error(ctx, "REST API server error", err, nil)
			stop(quit)
		}
	}()

	// gRPCサーバーを別ゴルーチンで起動
	go func() {
		if err := grpcSrv.Start(); err != nil {
			logger.Error(ctx, "gRPC server error", err, nil)
			stop(quit)
		}
	}()

	// シグナルを待機
	<-quit
	logger.Info(ctx, "Shutting down servers", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := router.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Error shutting down REST API server", err, nil)
	}

	if err := grpcSrv.Stop(shutdownCtx); err != nil {
		logger.Error(ctx, "Error shutting down gRPC server", err, nil)
	}

	logger.Info(ctx, "Servers stopped", nil)
}

// stop 起動失敗時にシャットダウン処理へ移る
func stop(quit chan<- os.Signal) {
	select {
	case quit <- syscall.SIGTERM:
	default:
	}
}
