// @title         board-service API
// @version       1.0
// @description   Имиджборд: капча, разрешение на постинг, роли персонала.
// @BasePath      /
// @schemes       http
// @host          localhost:1234
// @securityDefinitions.apikey Bearer
// @in            header
// @name          Authorization
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vbncursed/vkr/board-service/internal/config"
	"github.com/vbncursed/vkr/board-service/internal/contract"
	"github.com/vbncursed/vkr/board-service/internal/crypto"
	bh "github.com/vbncursed/vkr/board-service/internal/http"
	"github.com/vbncursed/vkr/board-service/internal/logger"
	"github.com/vbncursed/vkr/board-service/internal/models"
	"github.com/vbncursed/vkr/board-service/internal/repo"
	bsvc "github.com/vbncursed/vkr/board-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", slog.Any("err", err))
		os.Exit(1)
	}
	log := newLogger(cfg)
	log.Info("config",
		slog.String("bind", cfg.Bind),
		slog.String("store", cfg.Driver()),
		slog.Bool("trust_proxy", cfg.TrustProxy),
		slog.Bool("swagger", cfg.EnableSwagger),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closeStore, err := repo.Open(ctx, cfg, log)
	if err != nil {
		log.Error("store", slog.Any("err", err))
		os.Exit(1)
	}
	defer closeStore()

	signer, err := crypto.NewSigner([]byte(cfg.Secret))
	if err != nil {
		log.Error("signer", slog.Any("err", err))
		os.Exit(1)
	}
	sealer, err := crypto.NewSealer([]byte(cfg.Secret))
	if err != nil {
		log.Error("sealer", slog.Any("err", err))
		os.Exit(1)
	}

	clock := bsvc.RealClock{}
	gate := bsvc.NewRoleGate(signer, clock, models.DefaultRing)
	svc := bsvc.New(store, store, signer, gate, clock, bsvc.WithLogger(log))
	challenges := bsvc.NewChallenges(signer, sealer, bsvc.NewCaptchaRenderer(), clock)

	e := bh.Router(bh.Deps{
		Service:    svc,
		Challenges: challenges,
		Gate:       gate,
		Contracts:  contract.MustLoad(),
		Store:      store,
		Logger:     log,
	}, cfg)

	srv := &http.Server{
		Addr:              cfg.Bind,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("board-service listening", slog.String("addr", cfg.Bind))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel2 := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel2()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("board-service stopped")
}

func newLogger(cfg config.Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "board-service"),
		logger.WithContextValue("request_id", bh.RequestIDKey{}),
	}
	if lvl, ok := logger.ParseLevel(cfg.LogLevel); ok {
		opts = append(opts, logger.WithLevel(lvl))
	}
	if cfg.LogFormat != "" {
		opts = append(opts, logger.WithFormat(logger.Format(cfg.LogFormat)))
	}
	l := logger.New(opts...)
	slog.SetDefault(l)
	return l
}
