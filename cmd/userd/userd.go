package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/zstrangeway/ai-scaffold/internal/config"
	"github.com/zstrangeway/ai-scaffold/internal/database"
	"github.com/zstrangeway/ai-scaffold/internal/pb"
	"github.com/zstrangeway/ai-scaffold/internal/rpc"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
)

var (
	loadConfig      = config.LoadUser
	newPgxPool      = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	listenFn        = net.Listen
	serveFn         = func(s *grpc.Server, lis net.Listener) error { return s.Serve(lis) }
	gracefulStop    = func(s *grpc.Server) { s.GracefulStop() }
	signalNotify    = signal.Notify
	exitFunc        = os.Exit
)

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("設定載入失敗: %v", err)
	}

	pool, err := newPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer pool.Close()

	if err := runMigrationsFn(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	lis, err := listenFn("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("監聽 %s 失敗: %v", cfg.Addr(), err)
	}

	s := grpc.NewServer(grpc.NumStreamWorkers(10))
	pb.RegisterUserServiceServer(s, rpc.NewUserServer(pool))

	quit := make(chan os.Signal, 1)
	signalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Info().Msg("收到終止訊號，開始關閉 user service")
		gracefulStop(s)
	}()

	log.Info().Str("addr", cfg.Addr()).Msg("user service 開始提供 gRPC 服務")
	if err := serveFn(s, lis); err != nil {
		return fmt.Errorf("gRPC 服務異常終止: %v", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("user service 啟動失敗")
		exitFunc(1)
	}
}
