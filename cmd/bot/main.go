package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/tahsin-quran-bot/internal/config"
	"github.com/aliskhannn/tahsin-quran-bot/internal/delivery/telegram"
	"github.com/aliskhannn/tahsin-quran-bot/internal/infra/postgres"
	pgrepo "github.com/aliskhannn/tahsin-quran-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/tahsin-quran-bot/internal/logger"
	"github.com/aliskhannn/tahsin-quran-bot/internal/repository"
	"github.com/aliskhannn/tahsin-quran-bot/internal/service"
	"github.com/aliskhannn/tahsin-quran-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}
	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	contentRepo, err := repository.NewContentRepository(cfg.Content.Dir)
	if err != nil {
		return err
	}
	lg.Info("content loaded",
		zap.String("dir", cfg.Content.Dir),
		zap.Int("materials", len(contentRepo.ListMaterials())),
		zap.Int("letters", len(contentRepo.ListLetters())),
	)

	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}
	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, postgres.NewTransactor(pool)); err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = !cfg.IsProduction()
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(telegram.Commands()...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	userRepo := pgrepo.NewUserRepository(pool)
	quizStorage := storage.NewQuizStorage()

	userService := service.NewUserService(userRepo, lg)
	materialService := service.NewMaterialService(contentRepo)
	letterService := service.NewLetterService(contentRepo)
	quizService := service.NewQuizService(contentRepo, quizStorage, lg)
	sweeper := service.NewSessionSweeper(quizService, cfg.Quiz.SweepSchedule, cfg.Quiz.SessionTTL, lg)

	handler := telegram.NewHandler(
		bot,
		lg,
		cfg.Telegram.PollTimeout,
		userService,
		materialService,
		quizService,
		letterService,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return sweeper.Start(gctx) })
	g.Go(func() error { return handler.Run(gctx) })

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
