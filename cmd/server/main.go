package main

import (
	"context"
	"flag"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/pricelab/pricelab/client/web"
	"github.com/pricelab/pricelab/infra/config"
	"github.com/pricelab/pricelab/internal/notify"
	"github.com/pricelab/pricelab/internal/server"
	"github.com/pricelab/pricelab/internal/storage"
	"github.com/pricelab/pricelab/internal/storage/file"
	"github.com/pricelab/pricelab/internal/task"
)

func main() {

	configPath := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var store storage.Registry = storage.NewVoidRegistry()
	if cfg.Storage.Enabled {
		store, err = file.NewRegistry(cfg.Storage.DataDir)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create storage")
		}
	}

	source := web.New(cfg.Market.BaseURL, cfg.Market.Timeout, cfg.Market.RequestDelay, cfg.Market.MaxPages)

	pool := task.NewPool(cfg.Optimizer.Workers, cfg.Optimizer.QueueSize, source, task.NewRegistry(store)).
		WithNotifier(notify.Log)

	if cfg.Telegram.Enabled {
		telegram, err := notify.NewTelegram(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create telegram notifier")
		}
		pool.WithNotifier(func(t task.Task) {
			notify.Log(t)
			if err := telegram.Notify(t); err != nil {
				log.Error().Err(err).Str("id", t.ID).Msg("could not send notification")
			}
		})
	}

	ctx, cnl := context.WithCancel(context.Background())
	defer cnl()
	pool.Start(ctx)

	s := server.NewServer("pricelab", cfg.Server.Port).
		Add(server.Live()).
		Add(server.Optimize(pool, cfg.Server.Debug)).
		Add(server.TaskStatus(pool.Registry())).
		Add(server.Tasks(pool.Registry()))
	if cfg.Server.Debug {
		s.Debug()
	}

	if err := s.Run(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
