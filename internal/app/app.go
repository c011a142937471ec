package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gowvp/bbbrooms/internal/conf"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Run 启动 http 服务，收到退出信号后优雅关闭
func Run(bc *conf.Bootstrap) error {
	log, closeLog := SetupLog(bc)
	defer closeLog()
	slog.SetDefault(log)

	handler, cleanUp, err := wireApp(bc)
	if err != nil {
		return err
	}
	defer cleanUp()

	svc := newServer(bc, handler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		slog.Info("http server start", "addr", svc.Addr, "version", bc.BuildVersion)
		if err := svc.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	slog.Info("http server shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return svc.Shutdown(shutdownCtx)
}

// newServer 请求超时未配置或小于等于 0 时使用默认值
func newServer(bc *conf.Bootstrap, handler http.Handler) *http.Server {
	timeout := bc.Server.HTTP.Timeout.Duration()
	if timeout <= 0 {
		timeout = conf.DefaultConfig().Server.HTTP.Timeout.Duration()
	}
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", bc.Server.HTTP.Port),
		Handler:           http.TimeoutHandler(handler, timeout, "timeout"),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout + time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}

// SetupLog 日志同时输出到控制台与滚动文件
func SetupLog(bc *conf.Bootstrap) (*slog.Logger, func()) {
	cfg := bc.Log
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	if bc.Debug {
		level = slog.LevelDebug
	}

	w := io.Writer(os.Stdout)
	closeFn := func() {}
	if cfg.Dir != "" {
		rotate := &lumberjack.Logger{
			Filename: filepath.Join(cfg.Dir, "bbbrooms.log"),
			MaxSize:  int(cfg.RotationSize),
			MaxAge:   int(cfg.MaxAge.Duration().Hours() / 24),
			Compress: true,
		}
		w = io.MultiWriter(os.Stdout, rotate)
		closeFn = func() { _ = rotate.Close() }
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		AddSource: bc.Debug,
		Level:     level,
	})), closeFn
}
