package kafka

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/internal/domains/sync/model/dto"
	syncService "hotel/internal/domains/sync/service"
	"hotel/shared/validator"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const applyTimeout = 30 * time.Second

// Consumer applies channel manager updates from the incoming sync topic.
type Consumer struct {
	cfg    *config.Config
	client kafka.Client
	sync   syncService.Service
}

func New(cfg *config.Config, client kafka.Client, sync syncService.Service) *Consumer {
	return &Consumer{
		cfg:    cfg,
		client: client,
		sync:   sync,
	}
}

// Run blocks until ctx is done. Nothing is consumed when Kafka is disabled.
func (c *Consumer) Run(ctx context.Context) error {
	if !c.cfg.Kafka.Enable {
		log.Warn().Msg("Kafka is disabled, incoming sync consumer not started")

		<-ctx.Done()

		return nil
	}

	topic := c.cfg.Kafka.Topics.SyncIncoming

	log.Info().Str("topic", topic).Msg("Incoming sync consumer started")

	defer func() {
		if err := c.client.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close Kafka client")
		}
	}()

	return c.client.Consume(ctx, c.cfg.Kafka.ConsumerGroup, topic, c.Handle)
}

// Handle accepts either a bare update or one wrapped in the event envelope.
func (c *Consumer) Handle(ctx context.Context, message kafkaGo.Message) error {
	req, err := kafka.Decode[dto.IncomingSyncRequest](message.Value)
	if err != nil {
		return err
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return fmt.Errorf("invalid incoming sync message: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), applyTimeout)
	defer cancel()

	res, err := c.sync.ApplyIncoming(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to apply incoming sync: %w", err)
	}

	log.Info().Str("hotel_id", req.HotelID).Int("records", res.Records).Msg("Incoming sync message applied")

	return nil
}
