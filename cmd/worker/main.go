package main

import (
	"context"
	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// The worker sweeps expired holds and applies channel manager updates from Kafka.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := di.InitializeScheduler()
	consumer := di.InitializeConsumer()

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return consumer.Run(ctx)
	})

	group.Go(func() error {
		return scheduler.Run(ctx)
	})

	if err := group.Wait(); err != nil {
		log.Fatal().Err(err).Msg("Worker stopped with error")
	}

	log.Info().Msg("Worker stopped")
}
