package kafka_test

import (
	"context"
	"errors"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	syncMocks "hotel/internal/domains/sync/mocks"
	"hotel/internal/domains/sync/model/dto"
	"hotel/transport/kafka"
)

const hotelID = "11111111-1111-4111-8111-111111111111"

func newConsumer(t *testing.T) (*kafka.Consumer, *syncMocks.MockService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sync := syncMocks.NewMockService(ctrl)

	return kafka.New(&config.Config{}, kafkaMocks.NewMockClient(ctrl), sync), sync
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"bare update", `{"hotel_id":"` + hotelID + `","pricing_updates":[{"room_type_id":"22222222-2222-4222-8222-222222222222","price":900}]}`},
		{"enveloped update", `{"type":"sync.incoming","data":{"hotel_id":"` + hotelID + `","pricing_updates":[{"room_type_id":"22222222-2222-4222-8222-222222222222","price":900}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			consumer, sync := newConsumer(t)

			sync.EXPECT().ApplyIncoming(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req dto.IncomingSyncRequest) (dto.IncomingSyncResponse, error) {
					assert.Equal(t, hotelID, req.HotelID)
					require.Len(t, req.PricingUpdates, 1)
					assert.Equal(t, int64(900), req.PricingUpdates[0].Price)

					return dto.IncomingSyncResponse{Processed: true, Records: 1}, nil
				})

			err := consumer.Handle(context.Background(), kafkaGo.Message{Value: []byte(tt.value)})

			require.NoError(t, err)
		})
	}
}

func TestHandle_Rejects(t *testing.T) {
	t.Run("not json", func(t *testing.T) {
		consumer, _ := newConsumer(t)

		err := consumer.Handle(context.Background(), kafkaGo.Message{Value: []byte("nope")})

		assert.Error(t, err)
	})

	t.Run("missing hotel", func(t *testing.T) {
		consumer, _ := newConsumer(t)

		err := consumer.Handle(context.Background(), kafkaGo.Message{Value: []byte(`{"pricing_updates":[]}`)})

		assert.Error(t, err)
	})

	t.Run("service failure", func(t *testing.T) {
		consumer, sync := newConsumer(t)

		sync.EXPECT().ApplyIncoming(gomock.Any(), gomock.Any()).Return(dto.IncomingSyncResponse{}, errors.New("deadlock detected"))

		err := consumer.Handle(context.Background(), kafkaGo.Message{Value: []byte(`{"hotel_id":"` + hotelID + `"}`)})

		assert.ErrorContains(t, err, "deadlock detected")
	})
}

func TestRun(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		consumer, _ := newConsumer(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, consumer.Run(ctx))
	})

	t.Run("consumes the incoming topic", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		cfg := &config.Config{}
		cfg.Kafka.Enable = true
		cfg.Kafka.ConsumerGroup = "hotel-worker"
		cfg.Kafka.Topics.SyncIncoming = "sync-incoming"

		gomock.InOrder(
			client.EXPECT().Consume(gomock.Any(), "hotel-worker", "sync-incoming", gomock.Any()).Return(nil),
			client.EXPECT().Close().Return(nil),
		)

		consumer := kafka.New(cfg, client, syncMocks.NewMockService(ctrl))

		assert.NoError(t, consumer.Run(context.Background()))
	})
}
