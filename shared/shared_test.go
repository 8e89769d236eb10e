package shared_test

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{0, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 20, 5},
		{5, 0, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit), "total=%d limit=%d", tt.total, tt.limit)
	}
}

func TestConvertStringToInt(t *testing.T) {
	v, err := shared.ConvertStringToInt(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = shared.ConvertStringToInt("four")
	assert.Error(t, err)
}

func TestTransformFields(t *testing.T) {
	type roomUpdate struct {
		Name       string  `db:"name"`
		Location   string  `db:"location"`
		SingleBeds *int    `db:"single_beds"`
		RoomView   *string `db:"room_view"`
		Upload     string
		Internal   string `db:"-"`
	}

	zero := 0

	fields := shared.TransformFields(&roomUpdate{
		Name:       "Garden 101",
		SingleBeds: &zero,
		Upload:     "room.png",
		Internal:   "skip",
	}, "manager-1")

	assert.Equal(t, "Garden 101", fields["name"])
	assert.Equal(t, &zero, fields["single_beds"], "an explicit zero is still an update")
	assert.NotContains(t, fields, "location")
	assert.NotContains(t, fields, "room_view")
	assert.NotContains(t, fields, "-")
	assert.Equal(t, "manager-1", fields[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, fields[constant.FieldModifiedAt])
	assert.Len(t, fields, 4)
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("rt-1", "id", "room_types")

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_types.id = :id)", where)
	assert.Equal(t, map[string]any{"id": "rt-1"}, args)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:get:abc", shared.BuildCacheKey("room:get", "abc"))
	assert.Equal(t, "limiter:127.0.0.1:curl", shared.BuildCacheKey("limiter", "127.0.0.1", "curl"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	filter := shared.FilterByID("booking-1", "id", "bookings")

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	assert.Equal(t, first, shared.BuildCacheKeyWithQuery("booking:gets", params, filter))
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 2, Limit: 10}, filter))
	assert.Regexp(t, `^booking:gets:[0-9a-f]{64}$`, first)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	redisCache.EXPECT().Clear(gomock.Any(), "room_type:*").Return(errors.New("redis down"))

	shared.InvalidateCaches(context.Background(), redisCache, constant.CachePrefixRoomType)
}

func TestPublishEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	event := kafka.NewEvent("booking-1", "booking.created", map[string]string{"status": "pending"})

	shared.PublishEvents(context.Background(), client, cfg, "booking-events", event)

	cfg.Kafka.Enable = true
	sent := make(chan struct{})

	client.EXPECT().SendMessages(gomock.Any(), "booking-events", event).
		DoAndReturn(func(context.Context, string, ...kafka.Message) error {
			close(sent)

			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	shared.PublishEvents(ctx, client, cfg, "booking-events", event)
	cancel()

	select {
	case <-sent:
	case <-time.After(time.Second):
		t.Fatal("event was not published")
	}
}

func TestCanManage(t *testing.T) {
	withActor := func(userID, role string) context.Context {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, userID)

		return context.WithValue(ctx, constant.ContextKeyUserRole, role)
	}

	tests := []struct {
		name  string
		ctx   context.Context
		owner string
		want  bool
	}{
		{name: "owner", ctx: withActor("u1", constant.RoleHotelManager), owner: "u1", want: true},
		{name: "admin", ctx: withActor("u2", constant.RoleAdmin), owner: "u1", want: true},
		{name: "other manager", ctx: withActor("u2", constant.RoleHotelManager), owner: "u1", want: false},
		{name: "anonymous", ctx: context.Background(), owner: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CanManage(tt.ctx, tt.owner))
		})
	}
}
