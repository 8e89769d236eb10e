package service_test

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	"hotel/internal/domains/inventory/model/dto"
	"hotel/internal/domains/inventory/service"
	roomMocks "hotel/internal/domains/room/mocks"
	"hotel/shared/daterange"
	"hotel/shared/failure"
)

func newStoreService(t *testing.T, s *store) service.Service {
	t.Helper()

	ctrl := gomock.NewController(t)

	return service.New(
		fakeHolds{s: s},
		fakeBookings{s: s},
		roomMocks.NewMockRoom(ctrl),
		fakeRoomTypes{s: s},
		fakeRoomLogs{},
		s,
		kafkaMocks.NewMockClient(ctrl),
		&config.Config{},
		mocks.NewOtel(),
	)
}

func TestInventoryService_CreateHold_LastUnitRace(t *testing.T) {
	s := newStore(activeRoomType(5))
	svc := newStoreService(t, s)

	const workers = 40

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.CreateHold(context.Background(), dto.CreateHoldRequest{
				RoomTypeID: roomTypeID,
				CheckIn:    "2030-06-01",
				CheckOut:   "2030-06-03",
				Quantity:   1,
			})

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				succeeded++
			case failure.GetCode(err) == http.StatusConflict:
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 5, succeeded)
	assert.Equal(t, workers-5, conflicts)
}

func TestInventoryService_CreateHold_NeverOversells(t *testing.T) {
	const quantity = 4

	s := newStore(activeRoomType(quantity))
	s.bookings = []bookingModel.Booking{
		booking(t, "room-a", bookingModel.StatusAccepted, "2030-07-03", "2030-07-05"),
		booking(t, "room-b", bookingModel.StatusCancelled, "2030-07-01", "2030-07-10"),
	}
	svc := newStoreService(t, s)

	base := time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC)
	rng := rand.New(rand.NewSource(42))

	type attempt struct {
		from, to string
		quantity int
	}

	attempts := make([]attempt, 60)
	for i := range attempts {
		start := rng.Intn(9)
		nights := 1 + rng.Intn(3)
		attempts[i] = attempt{
			from:     daterange.Format(base.AddDate(0, 0, start)),
			to:       daterange.Format(base.AddDate(0, 0, start+nights)),
			quantity: 1 + rng.Intn(2),
		}
	}

	var wg sync.WaitGroup

	for _, a := range attempts {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.CreateHold(context.Background(), dto.CreateHoldRequest{
				RoomTypeID: roomTypeID,
				CheckIn:    a.from,
				CheckOut:   a.to,
				Quantity:   a.quantity,
			})
			if err != nil && failure.GetCode(err) != http.StatusConflict {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	for day := range 12 {
		night := daterange.Night(base.AddDate(0, 0, day))
		used := 0

		for _, b := range s.bookings {
			if b.Status.Occupies(true) && b.Stay().Overlaps(night) {
				used++
			}
		}

		for _, h := range s.holds {
			if h.Stay().Overlaps(night) {
				used += h.Quantity
			}
		}

		assert.LessOrEqual(t, used, quantity, fmt.Sprintf("night %s", daterange.Format(night.Start)))
	}
}

func TestInventoryService_Available_DisjointWindowsAreIndependent(t *testing.T) {
	s := newStore(activeRoomType(3))
	svc := newStoreService(t, s)
	ctx := context.Background()

	first := stay(t, "2030-08-01", "2030-08-04")

	before, err := svc.Available(ctx, roomTypeID, first, 1)
	require.NoError(t, err)

	_, err = svc.CreateHold(ctx, dto.CreateHoldRequest{RoomTypeID: roomTypeID, CheckIn: "2030-08-04", CheckOut: "2030-08-06", Quantity: 3})
	require.NoError(t, err)

	after, err := svc.Available(ctx, roomTypeID, first, 1)
	require.NoError(t, err)

	assert.Equal(t, before, after)

	overlapping, err := svc.Available(ctx, roomTypeID, stay(t, "2030-08-03", "2030-08-05"), 1)
	require.NoError(t, err)
	assert.False(t, overlapping.IsAvailable)
}

func TestInventoryService_ReleaseHold_FreesCapacityOnce(t *testing.T) {
	s := newStore(activeRoomType(2))
	svc := newStoreService(t, s)
	ctx := context.Background()
	window := stay(t, "2030-09-01", "2030-09-03")

	created, err := svc.CreateHold(ctx, dto.CreateHoldRequest{RoomTypeID: roomTypeID, CheckIn: "2030-09-01", CheckOut: "2030-09-03", Quantity: 2})
	require.NoError(t, err)

	held, err := svc.Available(ctx, roomTypeID, window, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, held.AvailableCount)

	first, err := svc.ReleaseHold(ctx, created.HoldID)
	require.NoError(t, err)
	assert.True(t, first.Released)

	second, err := svc.ReleaseHold(ctx, created.HoldID)
	require.NoError(t, err)
	assert.False(t, second.Released)

	freed, err := svc.Available(ctx, roomTypeID, window, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, freed.AvailableCount)
}
