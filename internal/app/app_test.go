package app

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gowvp/bbbrooms/internal/conf"
)

func TestSetupLog(t *testing.T) {
	cfg := conf.DefaultConfig()
	cfg.Log.Dir = t.TempDir()
	cfg.Log.Level = "warn"

	log, closeLog := SetupLog(&cfg)
	if log.Enabled(context.Background(), slog.LevelInfo) {
		t.Fatal("info should be disabled at warn level")
	}
	log.Warn("room cache miss", "room_id", "r1")
	closeLog()

	b, err := os.ReadFile(filepath.Join(cfg.Log.Dir, "bbbrooms.log"))
	if err != nil {
		t.Fatal(err)
	}
	if len(b) == 0 {
		t.Fatal("log file is empty")
	}
}

func TestSetupLogDebug(t *testing.T) {
	cfg := conf.DefaultConfig()
	cfg.Log.Dir = ""
	cfg.Log.Level = "not-a-level"
	cfg.Debug = true

	log, closeLog := SetupLog(&cfg)
	defer closeLog()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("debug should be enabled in debug mode")
	}
}

func TestNewServerZeroTimeout(t *testing.T) {
	cfg := conf.DefaultConfig()
	cfg.Server.HTTP.Timeout = 0

	svc := newServer(&cfg, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	if svc.ReadTimeout != conf.DefaultConfig().Server.HTTP.Timeout.Duration() {
		t.Fatalf("ReadTimeout = %v, want default", svc.ReadTimeout)
	}

	w := httptest.NewRecorder()
	svc.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK || w.Body.String() != "ok" {
		t.Fatalf("code = %d, body = %q", w.Code, w.Body.String())
	}
}
